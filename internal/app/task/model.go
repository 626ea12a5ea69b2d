package task

import (
	"time"

	"taskboard/internal/app/user"
	"taskboard/internal/utils"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the three known statuses. Transitions
// between valid statuses are unconstrained.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task belongs to exactly one board; BoardID never changes after creation.
// DeletedAt marks the row invisible to every read, mirroring Board.
type Task struct {
	ID          uint64     `json:"id" gorm:"primaryKey"`
	BoardID     uint64     `json:"board_id" gorm:"not null;index"`
	Slug        string     `json:"slug" gorm:"not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description"`
	Status      Status     `json:"status" gorm:"not null;default:pending"`
	AssigneeID  *uint64    `json:"assignee_id"`
	CreatedBy   uint64     `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedBy   *uint64    `json:"updated_by"`
	UpdatedAt   *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	DeletedAt   *time.Time `json:"-"`
}

// Item is the identity-enriched task shape returned by the grouped list.
type Item struct {
	ID          uint64     `json:"id"`
	BoardID     uint64     `json:"board_id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   user.Ref   `json:"created_by"`
	UpdatedAt   *time.Time `json:"updated_at"`
	UpdatedBy   user.Ref   `json:"updated_by"`
}

// Groups always carries all three status keys; empty groups are empty
// arrays, never null.
type Groups struct {
	Pending    []*Item `json:"pending"`
	InProgress []*Item `json:"in_progress"`
	Completed  []*Item `json:"completed"`
}

type Counts struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
}

type GroupedTasks struct {
	Tasks  Groups `json:"tasks"`
	Counts Counts `json:"counts"`
	Total  int64  `json:"total"`
}

// Patch carries only the fields the caller wants changed. Description and
// AssigneeID can be patched to an explicit null.
type Patch struct {
	Title       utils.Optional[string]  `json:"title"`
	Description utils.Optional[*string] `json:"description"`
	Status      utils.Optional[Status]  `json:"status"`
	AssigneeID  utils.Optional[*uint64] `json:"assignee_id"`
}

type CreateTaskRequest struct {
	BoardID     uint64  `json:"board_id" binding:"required"`
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	AssigneeID  *uint64 `json:"assignee_id"`
}

type UpdateTaskStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListMeta struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Total      int64 `json:"total"`
}

type ListTasksResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	MetaData ListMeta `json:"meta_data"`
	Data     Groups   `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
