package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskboard/internal/app/user"

	"gorm.io/gorm"
)

type Repository interface {
	CreateTask(ctx context.Context, t *Task) error
	GetTaskByID(ctx context.Context, id uint64) (*Task, error)
	ListTasksForBoard(ctx context.Context, boardID uint64, search string, filterUserID *uint64) (*GroupedTasks, error)
	UpdateTaskByID(ctx context.Context, id uint64, columns map[string]interface{}) (int64, error)
	SoftDeleteTaskByID(ctx context.Context, id, deletedBy uint64, deletedAt time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTask(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) GetTaskByID(ctx context.Context, id uint64) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type taskRow struct {
	ID             uint64
	BoardID        uint64
	Slug           string
	Title          string
	Description    *string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	CreatedByID    *uint64
	CreatedByName  *string
	CreatedByEmail *string
	UpdatedByID    *uint64
	UpdatedByName  *string
	UpdatedByEmail *string
}

func (row *taskRow) toItem() *Item {
	return &Item{
		ID:          row.ID,
		BoardID:     row.BoardID,
		Slug:        row.Slug,
		Title:       row.Title,
		Description: row.Description,
		Status:      Status(row.Status),
		CreatedAt:   row.CreatedAt,
		CreatedBy:   user.Ref{ID: row.CreatedByID, Name: row.CreatedByName, Email: row.CreatedByEmail},
		UpdatedAt:   row.UpdatedAt,
		UpdatedBy:   user.Ref{ID: row.UpdatedByID, Name: row.UpdatedByName, Email: row.UpdatedByEmail},
	}
}

// ListTasksForBoard selects the board's live tasks newest-created first and
// partitions them by status with per-group and total counts. An optional
// search narrows on title/description case-insensitively; an optional user id
// narrows to tasks that user created or last updated. All filters AND.
func (r *repository) ListTasksForBoard(ctx context.Context, boardID uint64, search string, filterUserID *uint64) (*GroupedTasks, error) {
	var rows []*taskRow

	query := r.db.WithContext(ctx).Table("tasks").
		Select(`tasks.id, tasks.board_id, tasks.slug, tasks.title, tasks.description, tasks.status,
			tasks.created_at, tasks.updated_at,
			cu.id AS created_by_id, cu.name AS created_by_name, cu.email AS created_by_email,
			uu.id AS updated_by_id, uu.name AS updated_by_name, uu.email AS updated_by_email`).
		Joins("LEFT JOIN users cu ON cu.id = tasks.created_by").
		Joins("LEFT JOIN users uu ON uu.id = tasks.updated_by").
		Where("tasks.board_id = ?", boardID).
		Where("tasks.deleted_at IS NULL")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(tasks.title) LIKE ? OR LOWER(tasks.description) LIKE ?)", pattern, pattern)
	}
	if filterUserID != nil {
		query = query.Where("(tasks.created_by = ? OR tasks.updated_by = ?)", *filterUserID, *filterUserID)
	}

	if err := query.Order("tasks.created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	grouped := &GroupedTasks{
		Tasks: Groups{
			Pending:    []*Item{},
			InProgress: []*Item{},
			Completed:  []*Item{},
		},
	}

	for _, row := range rows {
		item := row.toItem()
		switch item.Status {
		case StatusPending:
			grouped.Tasks.Pending = append(grouped.Tasks.Pending, item)
			grouped.Counts.Pending++
		case StatusInProgress:
			grouped.Tasks.InProgress = append(grouped.Tasks.InProgress, item)
			grouped.Counts.InProgress++
		case StatusCompleted:
			grouped.Tasks.Completed = append(grouped.Tasks.Completed, item)
			grouped.Counts.Completed++
		}
	}
	grouped.Total = grouped.Counts.Pending + grouped.Counts.InProgress + grouped.Counts.Completed

	return grouped, nil
}

// UpdateTaskByID applies a column map built by the service from a fixed set
// of reviewed names, touching live rows only.
func (r *repository) UpdateTaskByID(ctx context.Context, id uint64, columns map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Table("tasks").
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(columns)
	return result.RowsAffected, result.Error
}

// SoftDeleteTaskByID is idempotent at the storage layer, same conditional
// pattern as boards. The tasks table has no deleted_by column; the deleting
// actor lands in updated_by.
func (r *repository) SoftDeleteTaskByID(ctx context.Context, id, deletedBy uint64, deletedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Table("tasks").
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": deletedAt,
			"updated_by": deletedBy,
			"updated_at": deletedAt,
		})
	return result.RowsAffected, result.Error
}
