package memory

import (
	"context"
	"slices"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
)

type usersRepo struct {
	db access
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.users[u.ID]; ok {
			return store.ErrAlreadyExists
		}
		if _, ok := st.emails[u.Email]; ok {
			return store.ErrAlreadyExists
		}
		st.users[u.ID] = u
		st.emails[u.Email] = u.ID
		return nil
	})
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var out domain.User
	err := r.db.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return store.ErrNotFound
		}
		out = u
		return nil
	})
	return out, err
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var out domain.User
	err := r.db.read(func(st *state) error {
		id, ok := st.emails[email]
		if !ok {
			return store.ErrNotFound
		}
		out = st.users[id]
		return nil
	})
	return out, err
}

func (r *usersRepo) UpdateProfile(
	ctx context.Context,
	id string,
	p domain.ProfileUpdate,
	updatedAt time.Time,
) (domain.User, error) {
	var out domain.User
	err := r.db.write(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return store.ErrNotFound
		}
		u = p.Apply(u)
		u.UpdatedAt = updatedAt
		st.users[id] = u
		out = u
		return nil
	})
	return out, err
}

func (r *usersRepo) SearchUsers(ctx context.Context, q store.UserQuery) ([]domain.User, error) {
	var out []domain.User
	err := r.db.read(func(st *state) error {
		for _, u := range st.users {
			if u.MatchesQuery(q.Text) {
				out = append(out, u)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b domain.User) int {
		switch {
		case a.NewerThan(b):
			return -1
		case b.NewerThan(a):
			return 1
		default:
			return 0
		}
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}
