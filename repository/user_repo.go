package repository

import (
	"context"

	"safeindiatransport/models"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.AppUser) error
	GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error)
	GetUserByID(ctx context.Context, id string) (*models.AppUser, error)
}
