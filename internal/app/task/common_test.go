package task_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"taskboard/internal/app/board"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"
	"taskboard/internal/apperror"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&user.User{}, &board.Board{}, &task.Task{}))
	return gdb
}

func seedUsers(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	users := []user.User{
		{ID: 1, Name: "Alice Carter", Email: "alice@taskboard.local"},
		{ID: 2, Name: "Bob Singh", Email: "bob@taskboard.local"},
		{ID: 3, Name: "Carol Jones", Email: "carol@taskboard.local"},
	}
	require.NoError(t, gdb.Create(&users).Error)
}

func createBoard(t *testing.T, gdb *gorm.DB, name string, createdBy uint64) *board.Board {
	t.Helper()
	b := &board.Board{Name: name, CreatedBy: createdBy, CreatedAt: time.Now().UTC()}
	require.NoError(t, board.NewRepository(gdb).CreateBoard(context.Background(), b))
	return b
}

func insertTask(t *testing.T, gdb *gorm.DB, boardID uint64, title string, status task.Status, createdBy uint64, createdAt time.Time) *task.Task {
	t.Helper()
	tk := &task.Task{
		BoardID:   boardID,
		Slug:      "TST-1000",
		Title:     title,
		Status:    status,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
	require.NoError(t, gdb.Create(tk).Error)
	return tk
}

func newTaskService(gdb *gorm.DB) task.Service {
	return task.NewService(task.NewRepository(gdb), board.NewRepository(gdb), nil, zap.NewNop())
}

func assertNotFound(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.TypeNotFound, appErr.Type)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func ptrStr(s string) *string {
	return &s
}

func ptrUint64(v uint64) *uint64 {
	return &v
}
