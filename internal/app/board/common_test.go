package board_test

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/app/board"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
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

func createBoard(t *testing.T, repo board.Repository, name string, createdBy uint64, createdAt time.Time) *board.Board {
	t.Helper()
	b := &board.Board{Name: name, CreatedBy: createdBy, CreatedAt: createdAt}
	require.NoError(t, repo.CreateBoard(context.Background(), b))
	return b
}

func createTask(t *testing.T, gdb *gorm.DB, boardID uint64, status task.Status, createdBy uint64, createdAt time.Time) *task.Task {
	t.Helper()
	tk := &task.Task{
		BoardID:   boardID,
		Slug:      "TST-1000",
		Title:     "Test task",
		Status:    status,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
	require.NoError(t, gdb.Create(tk).Error)
	return tk
}

func ptrStr(s string) *string {
	return &s
}

func ptrUint64(v uint64) *uint64 {
	return &v
}
