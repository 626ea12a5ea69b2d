package board

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskboard/internal/app/user"

	"gorm.io/gorm"
)

type Repository interface {
	CreateBoard(ctx context.Context, b *Board) error
	GetBoardByID(ctx context.Context, id uint64) (*Board, error)
	ListBoardsForUser(ctx context.Context, userID uint64, search string) ([]*Summary, error)
	UpdateBoardByID(ctx context.Context, id uint64, columns map[string]interface{}) (int64, error)
	SoftDeleteBoardByID(ctx context.Context, id, deletedBy uint64, deletedAt time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBoard(ctx context.Context, b *Board) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// GetBoardByID returns nil for rows that are absent or soft-deleted; the two
// cases are deliberately indistinguishable.
func (r *repository) GetBoardByID(ctx context.Context, id uint64) (*Board, error) {
	var b Board
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type boardRow struct {
	ID             uint64
	Name           string
	Description    *string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	CreatedByID    *uint64
	CreatedByName  *string
	CreatedByEmail *string
	UpdatedByID    *uint64
	UpdatedByName  *string
	UpdatedByEmail *string
	TaskCount      int64
}

func (row *boardRow) toSummary() *Summary {
	return &Summary{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		CreatedBy:   user.Ref{ID: row.CreatedByID, Name: row.CreatedByName, Email: row.CreatedByEmail},
		UpdatedAt:   row.UpdatedAt,
		UpdatedBy:   user.Ref{ID: row.UpdatedByID, Name: row.UpdatedByName, Email: row.UpdatedByEmail},
		TaskCount:   row.TaskCount,
	}
}

// ListBoardsForUser returns every live board the user may see: boards they
// created, plus boards where they authored or last updated at least one live
// task. A non-empty search additionally requires a case-insensitive
// name/description match. Ordered oldest-created first.
func (r *repository) ListBoardsForUser(ctx context.Context, userID uint64, search string) ([]*Summary, error) {
	var rows []*boardRow

	query := r.db.WithContext(ctx).Table("boards").
		Select(`boards.id, boards.name, boards.description, boards.created_at, boards.updated_at,
			cu.id AS created_by_id, cu.name AS created_by_name, cu.email AS created_by_email,
			uu.id AS updated_by_id, uu.name AS updated_by_name, uu.email AS updated_by_email,
			(SELECT COUNT(*) FROM tasks
				WHERE tasks.board_id = boards.id AND tasks.deleted_at IS NULL) AS task_count`).
		Joins("LEFT JOIN users cu ON cu.id = boards.created_by").
		Joins("LEFT JOIN users uu ON uu.id = boards.updated_by").
		Where("boards.deleted_at IS NULL")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(boards.name) LIKE ? OR LOWER(boards.description) LIKE ?)", pattern, pattern)
	}

	query = query.Where(`(boards.created_by = ? OR EXISTS (
			SELECT 1 FROM tasks
			WHERE tasks.board_id = boards.id
			  AND (tasks.created_by = ? OR tasks.updated_by = ?)
			  AND tasks.deleted_at IS NULL))`, userID, userID, userID).
		Order("boards.created_at ASC")

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]*Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}

// UpdateBoardByID applies a column map built by the service from a fixed set
// of reviewed names. The statement only touches live rows, so an update that
// races a delete affects zero rows instead of editing a deleted board.
func (r *repository) UpdateBoardByID(ctx context.Context, id uint64, columns map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Table("boards").
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(columns)
	return result.RowsAffected, result.Error
}

// SoftDeleteBoardByID is idempotent at the storage layer: a second delete of
// the same row matches nothing.
func (r *repository) SoftDeleteBoardByID(ctx context.Context, id, deletedBy uint64, deletedAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Table("boards").
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": deletedAt,
			"deleted_by": deletedBy,
			"updated_by": deletedBy,
			"updated_at": deletedAt,
		})
	return result.RowsAffected, result.Error
}
