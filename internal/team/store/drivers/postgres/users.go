package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return mapUnique(r.q.createUser(ctx, u))
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := r.q.getUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := r.q.getUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateProfile(
	ctx context.Context,
	id string,
	p domain.ProfileUpdate,
	updatedAt time.Time,
) (domain.User, error) {
	u, err := r.q.updateProfile(ctx, id, p, updatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) SearchUsers(ctx context.Context, q store.UserQuery) ([]domain.User, error) {
	return r.q.searchUsers(ctx, strings.ToLower(q.Text), q.Limit)
}
