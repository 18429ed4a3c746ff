package models

import "time"

// RoleAdmin is the only role this system knows.
const RoleAdmin = "admin"

// User is the single administrative account. Singleton is pinned to 1 for
// every row; its unique index is the store-level guarantee that at most one
// user can ever be registered, even under concurrent requests.
type User struct {
	Id           string    `json:"id" gorm:"column:id;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role"`
	Singleton    int       `json:"-" gorm:"uniqueIndex;default:1"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisteredUser is the response shape; the hash never leaves the store.
type RegisteredUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
