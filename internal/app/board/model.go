package board

import (
	"time"

	"taskboard/internal/app/user"
	"taskboard/internal/utils"
)

// Board rows are never hard-deleted: DeletedAt marks them invisible to every
// read. Audit timestamps are stamped by the service layer, so gorm's own
// update tracking is switched off.
type Board struct {
	ID          uint64     `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description *string    `json:"description"`
	CreatedBy   uint64     `json:"created_by" gorm:"not null"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedBy   *uint64    `json:"updated_by"`
	UpdatedAt   *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	DeletedBy   *uint64    `json:"-"`
	DeletedAt   *time.Time `json:"-"`
}

// Summary is the identity-enriched list shape for a visible board.
type Summary struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   user.Ref   `json:"created_by"`
	UpdatedAt   *time.Time `json:"updated_at"`
	UpdatedBy   user.Ref   `json:"updated_by"`
	TaskCount   int64      `json:"task_count"`
}

// Patch carries only the fields the caller wants changed. Description can be
// patched to an explicit null.
type Patch struct {
	Name        utils.Optional[string]  `json:"name"`
	Description utils.Optional[*string] `json:"description"`
}

type CreateBoardRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
