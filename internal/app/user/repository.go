package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetUserByID(ctx context.Context, id uint64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserByID(ctx context.Context, id uint64) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}
