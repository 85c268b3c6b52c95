package domain

import "context"

// ImageRepository defines persistence for generated image records. Lookups
// report a missing record through the boolean result rather than an error.
type ImageRepository interface {
	CreateImage(ctx context.Context, in NewImage) (GeneratedImage, error)
	ListImages(ctx context.Context) ([]GeneratedImage, error)
	ImageByID(ctx context.Context, id int64) (GeneratedImage, bool, error)
	DeleteImage(ctx context.Context, id int64) (bool, error)
	CountImages(ctx context.Context) (int, error)
}

// UserRepository defines access methods for users.
type UserRepository interface {
	CreateUser(ctx context.Context, in NewUser) (User, error)
	UserByID(ctx context.Context, id int64) (User, bool, error)
	UserByUsername(ctx context.Context, username string) (User, bool, error)
}
