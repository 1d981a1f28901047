package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/pkg/idx"
	"github.com/orthonext/team/pkg/slogx"
)

// PasswordHasher is implemented by cryptox.Argon2id.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

// NewUser carries the fields a caller supplies at registration.
type NewUser struct {
	Email        string
	FullName     string
	PasswordHash string
}

type SearchQuery struct {
	Text  string
	Limit int // <= 0 means unlimited
}

// DirectoryService owns user profiles and directory search.
type DirectoryService struct {
	Store  store.Store
	Hasher PasswordHasher

	// Optional; default to the wall clock and the global ID generator.
	Now func() time.Time
	IDs *idx.Generator
}

// NewDirectoryService wires a directory over st. hasher may be nil if
// Register and Authenticate are not used.
func NewDirectoryService(st store.Store, hasher PasswordHasher) *DirectoryService {
	return &DirectoryService{Store: st, Hasher: hasher}
}

// CreateUser registers a user with the default profile.
func (s *DirectoryService) CreateUser(ctx context.Context, in NewUser) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email := domain.NormalizeEmail(in.Email)
	if email == "" || in.PasswordHash == "" {
		return domain.User{}, ErrInvalidUser
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info("registration with taken email", slog.String("email", email))
		return domain.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up email", slog.Any("error", err))
		return domain.User{}, err
	}

	now := stamp(s.Now)
	u := domain.User{
		ID:           newID(s.IDs, now),
		Email:        email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: in.PasswordHash,
		Specialty:    domain.DefaultSpecialty,
		Languages:    domain.DefaultLanguages,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user created", slog.String("user_id", u.ID))
	return u, nil
}

// Register hashes password and creates the user.
func (s *DirectoryService) Register(ctx context.Context, email, fullName, password string) (domain.User, error) {
	if password == "" || domain.NormalizeEmail(email) == "" {
		return domain.User{}, ErrInvalidUser
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	return s.CreateUser(ctx, NewUser{Email: email, FullName: fullName, PasswordHash: hash})
}

// Authenticate checks a password against the stored hash. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *DirectoryService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, err
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		log.Warn("failed login", slog.String("user_id", u.ID), slog.Any("error", err))
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *DirectoryService) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return u, err
}

// FindByEmail looks a user up by email, ignoring case and surrounding space.
func (s *DirectoryService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	return u, err
}

// UpdateProfile merges the set fields of p into the user's profile. An empty
// update returns the user unchanged.
func (s *DirectoryService) UpdateProfile(ctx context.Context, id string, p domain.ProfileUpdate) (domain.User, error) {
	if p.IsEmpty() {
		return s.GetUser(ctx, id)
	}

	u, err := s.Store.Users().UpdateProfile(ctx, id, p, stamp(s.Now))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		slogx.FromContext(ctx).Error("failed to update profile",
			slog.String("user_id", id),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("profile updated", slog.String("user_id", id))
	return u, nil
}

// Search returns users whose name, sub-specialties, region, city or
// hospitals contain q.Text, newest first.
func (s *DirectoryService) Search(ctx context.Context, q SearchQuery) ([]domain.User, error) {
	return s.Store.Users().SearchUsers(ctx, store.UserQuery{
		Text:  strings.TrimSpace(q.Text),
		Limit: q.Limit,
	})
}
