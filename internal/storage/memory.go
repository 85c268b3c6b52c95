package storage

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"imagecraft/internal/domain"
)

// MemStore keeps image and user records in process memory. Its lifetime is
// the lifetime of the process; nothing is written to disk.
type MemStore struct {
	mu          sync.RWMutex
	images      map[int64]domain.GeneratedImage
	users       map[int64]domain.User
	nextImageID int64
	nextUserID  int64
	now         func() time.Time
}

// Option customizes a MemStore.
type Option func(*MemStore)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewMemStore returns an empty store whose identifiers start at 1.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		images:      make(map[int64]domain.GeneratedImage),
		users:       make(map[int64]domain.User),
		nextImageID: 1,
		nextUserID:  1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateImage assigns the next id and the insertion time, then stores a copy.
func (s *MemStore) CreateImage(ctx context.Context, in domain.NewImage) (domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeneratedImage{}, err
	}
	size := in.Size
	if size == "" {
		size = domain.DefaultImageSize
	}
	style := in.Style
	if style == "" {
		style = domain.DefaultImageStyle
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	img := domain.GeneratedImage{
		ID:        s.nextImageID,
		Prompt:    in.Prompt,
		MaskType:  in.MaskType,
		ImageURL:  in.ImageURL,
		Size:      size,
		Style:     style,
		CreatedAt: s.now(),
	}
	s.nextImageID++
	s.images[img.ID] = img
	return img, nil
}

// ListImages returns every image, newest first. Records created at the same
// instant are ordered by descending id.
func (s *MemStore) ListImages(ctx context.Context) ([]domain.GeneratedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]domain.GeneratedImage, 0, len(s.images))
	for _, img := range s.images {
		out = append(out, img)
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.GeneratedImage) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

// ImageByID returns the image with the given id, or false when absent.
func (s *MemStore) ImageByID(ctx context.Context, id int64) (domain.GeneratedImage, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeneratedImage{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok, nil
}

// DeleteImage removes the image and reports whether it existed.
func (s *MemStore) DeleteImage(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.images[id]; !ok {
		return false, nil
	}
	delete(s.images, id)
	return true, nil
}

// CountImages returns the number of stored images.
func (s *MemStore) CountImages(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images), nil
}

// CreateUser stores a new user. Usernames are unique.
func (s *MemStore) CreateUser(ctx context.Context, in domain.NewUser) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == in.Username {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}
	user := domain.User{ID: s.nextUserID, Username: in.Username, Password: in.Password}
	s.nextUserID++
	s.users[user.ID] = user
	return user, nil
}

// UserByID returns the user with the given id, or false when absent.
func (s *MemStore) UserByID(ctx context.Context, id int64) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok, nil
}

// UserByUsername looks a user up by exact username.
func (s *MemStore) UserByUsername(ctx context.Context, username string) (domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, false, err
	}
	if strings.TrimSpace(username) == "" {
		return domain.User{}, false, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

var (
	_ domain.ImageRepository = (*MemStore)(nil)
	_ domain.UserRepository  = (*MemStore)(nil)
)
