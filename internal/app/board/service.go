package board

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskboard/internal/apperror"
	"taskboard/internal/providers/redis"

	"go.uber.org/zap"
)

type Service interface {
	CreateBoard(ctx context.Context, name string, description *string, userID uint64) (*Board, error)
	ListBoards(ctx context.Context, userID uint64, search string) ([]*Summary, error)
	GetBoardByID(ctx context.Context, id uint64) (*Board, error)
	UpdateBoard(ctx context.Context, id uint64, patch Patch, userID uint64) error
	DeleteBoard(ctx context.Context, id, userID uint64) error
}

type service struct {
	repo        Repository
	redisP      *redis.RedisProvider
	logger      *zap.SugaredLogger
	cachePrefix string
}

// NewService wires the board domain logic over its store. redisP may be nil;
// list reads then skip the cache.
func NewService(repo Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		redisP:      redisP,
		logger:      logger.Sugar(),
		cachePrefix: "boards:user",
	}
}

func (s *service) CreateBoard(ctx context.Context, name string, description *string, userID uint64) (*Board, error) {
	b := &Board{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreateBoard(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	s.invalidateListCache()
	return b, nil
}

func (s *service) ListBoards(ctx context.Context, userID uint64, search string) ([]*Summary, error) {
	cacheKey := fmt.Sprintf("%s:%d:search:%s", s.cachePrefix, userID, search)

	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			var boards []*Summary
			if json.Unmarshal([]byte(cached), &boards) == nil {
				return boards, nil
			}
		}
	}

	boards, err := s.repo.ListBoardsForUser(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	if s.redisP != nil && len(boards) > 0 {
		if data, err := json.Marshal(boards); err == nil {
			s.redisP.SetWithDefaultTTL(ctx, cacheKey, data, 0)
		}
	}

	return boards, nil
}

func (s *service) GetBoardByID(ctx context.Context, id uint64) (*Board, error) {
	return s.repo.GetBoardByID(ctx, id)
}

// UpdateBoard merge-patches the supplied fields. The audit stamp is refreshed
// even when the patch carries no content fields.
func (s *service) UpdateBoard(ctx context.Context, id uint64, patch Patch, userID uint64) error {
	existing, err := s.repo.GetBoardByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch board: %w", err)
	}
	if existing == nil {
		return apperror.NewNotFound("Board not found!")
	}

	columns := map[string]interface{}{
		"updated_by": userID,
		"updated_at": time.Now().UTC(),
	}
	if patch.Name.Set {
		columns["name"] = patch.Name.Value
	}
	if patch.Description.Set {
		columns["description"] = patch.Description.Value
	}

	affected, err := s.repo.UpdateBoardByID(ctx, id, columns)
	if err != nil {
		return fmt.Errorf("failed to update board: %w", err)
	}
	// A concurrent delete between the fetch and the update leaves the
	// conditional statement with nothing to match.
	if affected == 0 {
		return apperror.NewNotFound("Board not found!")
	}

	s.invalidateListCache()
	return nil
}

func (s *service) DeleteBoard(ctx context.Context, id, userID uint64) error {
	existing, err := s.repo.GetBoardByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch board: %w", err)
	}
	if existing == nil {
		return apperror.NewNotFound("Board not found!")
	}

	affected, err := s.repo.SoftDeleteBoardByID(ctx, id, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("Board not found!")
	}

	s.invalidateListCache()
	return nil
}

// Board visibility is per-user, so every mutation drops all cached lists.
func (s *service) invalidateListCache() {
	if s.redisP == nil {
		return
	}
	pattern := s.cachePrefix + ":*"
	deleted, err := s.redisP.DeleteByPattern(context.Background(), pattern)
	if err != nil {
		s.logger.Warnw("Failed to invalidate board list cache", "error", err, "pattern", pattern)
		return
	}
	if deleted > 0 {
		s.logger.Debugw("Board list cache invalidated", "deleted_keys", deleted)
	}
}
