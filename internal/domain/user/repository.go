package user

import "context"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByVerificationToken(ctx context.Context, token string) (User, error)
	MarkEmailVerified(ctx context.Context, id string) error
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
