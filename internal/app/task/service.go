package task

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskboard/internal/app/board"
	"taskboard/internal/apperror"
	"taskboard/internal/providers/redis"
	"taskboard/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateTask(ctx context.Context, boardID uint64, title string, description *string, assigneeID *uint64, userID uint64) (*Task, error)
	ListTasks(ctx context.Context, boardID uint64, search string, filterUserID *uint64) (*GroupedTasks, error)
	GetTaskByID(ctx context.Context, id uint64) (*Task, error)
	UpdateTaskStatus(ctx context.Context, id uint64, status Status, userID uint64) error
	UpdateTask(ctx context.Context, id uint64, patch Patch, userID uint64) error
	DeleteTask(ctx context.Context, id, userID uint64) error
}

type service struct {
	repo             Repository
	boardRepo        board.Repository
	redisP           *redis.RedisProvider
	logger           *zap.SugaredLogger
	cachePrefix      string
	boardCachePrefix string
}

// NewService wires the task domain logic over its store plus the board store
// it validates parents against. redisP may be nil; list reads then skip the
// cache.
func NewService(repo Repository, boardRepo board.Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:             repo,
		boardRepo:        boardRepo,
		redisP:           redisP,
		logger:           logger.Sugar(),
		cachePrefix:      "tasks:board",
		boardCachePrefix: "boards:user",
	}
}

// CreateTask inserts a pending task under a live board. The parent check and
// the insert are separate statements; a board deleted in the gap is accepted
// as a best-effort invariant, not a hard guarantee.
func (s *service) CreateTask(ctx context.Context, boardID uint64, title string, description *string, assigneeID *uint64, userID uint64) (*Task, error) {
	parent, err := s.boardRepo.GetBoardByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}
	if parent == nil {
		return nil, apperror.NewNotFound("Board not found!")
	}

	t := &Task{
		BoardID:     boardID,
		Slug:        GenerateSlug(parent.Name),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		AssigneeID:  assigneeID,
		CreatedBy:   userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.invalidateCaches(boardID)
	return t, nil
}

func (s *service) ListTasks(ctx context.Context, boardID uint64, search string, filterUserID *uint64) (*GroupedTasks, error) {
	cacheKey := fmt.Sprintf("%s:%d:search:%s:user:%s", s.cachePrefix, boardID, search, formatFilterUser(filterUserID))

	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var grouped GroupedTasks
			if json.Unmarshal([]byte(cached), &grouped) == nil {
				return &grouped, nil
			}
		}
	}

	grouped, err := s.repo.ListTasksForBoard(ctx, boardID, search, filterUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if s.redisP != nil && grouped.Total > 0 {
		if data, err := json.Marshal(grouped); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return grouped, nil
}

func (s *service) GetTaskByID(ctx context.Context, id uint64) (*Task, error) {
	return s.repo.GetTaskByID(ctx, id)
}

// UpdateTaskStatus patches only the status plus the audit stamp. There is no
// transition guard: any valid status is reachable from any other, including
// re-setting the current one (which still refreshes the stamp).
func (s *service) UpdateTaskStatus(ctx context.Context, id uint64, status Status, userID uint64) error {
	return s.UpdateTask(ctx, id, Patch{Status: utils.NewOptional(status)}, userID)
}

// UpdateTask merge-patches the supplied fields. The audit stamp is refreshed
// even when the patch carries no content fields.
func (s *service) UpdateTask(ctx context.Context, id uint64, patch Patch, userID uint64) error {
	existing, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch task: %w", err)
	}
	if existing == nil {
		return apperror.NewNotFound("Task not found!")
	}

	columns := map[string]interface{}{
		"updated_by": userID,
		"updated_at": time.Now().UTC(),
	}
	if patch.Title.Set {
		columns["title"] = patch.Title.Value
	}
	if patch.Description.Set {
		columns["description"] = patch.Description.Value
	}
	if patch.Status.Set {
		columns["status"] = patch.Status.Value
	}
	if patch.AssigneeID.Set {
		columns["assignee_id"] = patch.AssigneeID.Value
	}

	affected, err := s.repo.UpdateTaskByID(ctx, id, columns)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	// A concurrent delete between the fetch and the update leaves the
	// conditional statement with nothing to match.
	if affected == 0 {
		return apperror.NewNotFound("Task not found!")
	}

	s.invalidateCaches(existing.BoardID)
	return nil
}

func (s *service) DeleteTask(ctx context.Context, id, userID uint64) error {
	existing, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch task: %w", err)
	}
	if existing == nil {
		return apperror.NewNotFound("Task not found!")
	}

	affected, err := s.repo.SoftDeleteTaskByID(ctx, id, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("Task not found!")
	}

	s.invalidateCaches(existing.BoardID)
	return nil
}

// Task mutations change the board's grouped lists and also its task counts
// and per-user visibility, so both cache namespaces are dropped.
func (s *service) invalidateCaches(boardID uint64) {
	if s.redisP == nil {
		return
	}
	ctx := context.Background()
	for _, pattern := range []string{
		fmt.Sprintf("%s:%d:*", s.cachePrefix, boardID),
		s.boardCachePrefix + ":*",
	} {
		deleted, err := s.redisP.DeleteByPattern(ctx, pattern)
		if err != nil {
			s.logger.Warnw("Failed to invalidate task cache", "error", err, "pattern", pattern)
			continue
		}
		if deleted > 0 {
			s.logger.Debugw("Task cache invalidated", "board_id", boardID, "pattern", pattern, "deleted_keys", deleted)
		}
	}
}

func formatFilterUser(filterUserID *uint64) string {
	if filterUserID == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *filterUserID)
}
