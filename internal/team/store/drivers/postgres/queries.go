package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orthonext/team/internal/team/domain"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type queries struct {
	db DBTX
}

func newQueries(db DBTX) *queries {
	return &queries{db: db}
}

const userColumns = `id, email, full_name, password_hash, specialty, sub_specialties,
	region, city, hospitals, languages, bio, availability, created_at, updated_at`

const inviteColumns = `id, from_user, to_user, status, created_at, responded_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Specialty, &u.SubSpecialties,
		&u.Region, &u.City, &u.Hospitals, &u.Languages, &u.Bio, &u.Availability,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}

func scanInvite(row pgx.Row) (domain.Invite, error) {
	var (
		inv         domain.Invite
		status      string
		respondedAt *time.Time
	)
	if err := row.Scan(&inv.ID, &inv.FromUser, &inv.ToUser, &status, &inv.CreatedAt, &respondedAt); err != nil {
		return domain.Invite{}, err
	}
	inv.Status = domain.InviteStatus(status)
	inv.CreatedAt = inv.CreatedAt.UTC()
	inv.RespondedAt = mapTimePtr(respondedAt)
	return inv, nil
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// users

func (q *queries) createUser(ctx context.Context, u domain.User) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		u.ID, u.Email, u.FullName, u.PasswordHash, u.Specialty, u.SubSpecialties,
		u.Region, u.City, u.Hospitals, u.Languages, u.Bio, u.Availability,
		u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (q *queries) getUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (q *queries) getUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (q *queries) updateProfile(ctx context.Context, id string, p domain.ProfileUpdate, updatedAt time.Time) (domain.User, error) {
	return scanUser(q.db.QueryRow(ctx, `
		UPDATE users SET
			specialty       = COALESCE($2, specialty),
			sub_specialties = COALESCE($3, sub_specialties),
			region          = COALESCE($4, region),
			city            = COALESCE($5, city),
			hospitals       = COALESCE($6, hospitals),
			languages       = COALESCE($7, languages),
			availability    = COALESCE($8, availability),
			bio             = COALESCE($9, bio),
			updated_at      = $10
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.Specialty, p.SubSpecialties, p.Region, p.City, p.Hospitals,
		p.Languages, p.Availability, p.Bio, updatedAt,
	))
}

// searchUsers matches needle, already lower-cased, against the searchable
// columns.
func (q *queries) searchUsers(ctx context.Context, needle string, limit int) ([]domain.User, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + userColumns + ` FROM users`)
	args := []any{}
	if needle != "" {
		args = append(args, needle)
		sb.WriteString(` WHERE strpos(lower(full_name || sub_specialties || region || city || hospitals), $1) > 0`)
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC`)
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))
	}

	rows, err := q.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

// invites

func (q *queries) createInvite(ctx context.Context, inv domain.Invite) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO invites (`+inviteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.ID, inv.FromUser, inv.ToUser, string(inv.Status), inv.CreatedAt, inv.RespondedAt,
	)
	return err
}

func (q *queries) getInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	return scanInvite(q.db.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = $1`, id))
}

func (q *queries) hasPendingInvite(ctx context.Context, from, to string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM invites
			WHERE from_user = $1 AND to_user = $2 AND status = 'pending'
		)`, from, to,
	).Scan(&exists)
	return exists, err
}

// resolveInvite only matches pending rows; pgx.ErrNoRows means the id is
// unknown or the invite was already resolved.
func (q *queries) resolveInvite(ctx context.Context, id, status string, at time.Time) (domain.Invite, error) {
	return scanInvite(q.db.QueryRow(ctx, `
		UPDATE invites SET status = $2, responded_at = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING `+inviteColumns,
		id, status, at,
	))
}

func (q *queries) listInvitesTo(ctx context.Context, userID string) ([]domain.Invite, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE to_user = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInvite)
}

func (q *queries) listInvitesFrom(ctx context.Context, userID string) ([]domain.Invite, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE from_user = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInvite)
}
