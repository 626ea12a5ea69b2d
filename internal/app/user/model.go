package user

import "time"

type User struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;unique"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Ref is the identity shape embedded in board and task reads. Fields are
// pointers because audit columns join against users with LEFT JOIN: a row
// that was never updated carries an all-null updated_by object.
type Ref struct {
	ID    *uint64 `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type ListUsersResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    []*User `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
