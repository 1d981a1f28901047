package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/orthonext/team/internal/team/domain"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                    domain.User
		createdAt, updatedAt string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Specialty, &u.SubSpecialties,
		&u.Region, &u.City, &u.Hospitals, &u.Languages, &u.Bio, &u.Availability,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv         domain.Invite
		status      string
		createdAt   string
		respondedAt sql.NullString
	)
	if err := row.Scan(&inv.ID, &inv.FromUser, &inv.ToUser, &status, &createdAt, &respondedAt); err != nil {
		return domain.Invite{}, err
	}
	inv.Status = domain.InviteStatus(status)

	var err error
	if inv.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Invite{}, err
	}
	if inv.RespondedAt, err = mapNullTimePtr(respondedAt); err != nil {
		return domain.Invite{}, err
	}
	return inv, nil
}

func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
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
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FullName, u.PasswordHash, u.Specialty, u.SubSpecialties,
		u.Region, u.City, u.Hospitals, u.Languages, u.Bio, u.Availability,
		formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
	)
	return err
}

func (q *queries) getUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (q *queries) getUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email))
}

type updateProfileParams struct {
	ID             string
	Specialty      sql.NullString
	SubSpecialties sql.NullString
	Region         sql.NullString
	City           sql.NullString
	Hospitals      sql.NullString
	Languages      sql.NullString
	Availability   sql.NullString
	Bio            sql.NullString
	UpdatedAt      string
}

func (q *queries) updateProfile(ctx context.Context, p updateProfileParams) (domain.User, error) {
	return scanUser(q.db.QueryRowContext(ctx, `
		UPDATE users SET
			specialty       = COALESCE(?, specialty),
			sub_specialties = COALESCE(?, sub_specialties),
			region          = COALESCE(?, region),
			city            = COALESCE(?, city),
			hospitals       = COALESCE(?, hospitals),
			languages       = COALESCE(?, languages),
			availability    = COALESCE(?, availability),
			bio             = COALESCE(?, bio),
			updated_at      = ?
		WHERE id = ?
		RETURNING `+userColumns,
		p.Specialty, p.SubSpecialties, p.Region, p.City, p.Hospitals,
		p.Languages, p.Availability, p.Bio, p.UpdatedAt, p.ID,
	))
}

// searchUsers matches needle, already lower-cased, against the searchable
// columns folded with unicode_lower.
func (q *queries) searchUsers(ctx context.Context, needle string, limit int) ([]domain.User, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + userColumns + ` FROM users`)
	args := []any{}
	if needle != "" {
		sb.WriteString(` WHERE instr(` + unicodeLowerFunc + `(full_name || sub_specialties || region || city || hospitals), ?) > 0`)
		args = append(args, needle)
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC`)
	if limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := q.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanUser)
}

// invites

func (q *queries) createInvite(ctx context.Context, inv domain.Invite) error {
	var respondedAt sql.NullString
	if inv.RespondedAt != nil {
		respondedAt = sql.NullString{String: formatTime(*inv.RespondedAt), Valid: true}
	}
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO invites (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.FromUser, inv.ToUser, string(inv.Status), formatTime(inv.CreatedAt), respondedAt,
	)
	return err
}

func (q *queries) getInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	return scanInvite(q.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id))
}

func (q *queries) hasPendingInvite(ctx context.Context, from, to string) (bool, error) {
	var n int
	err := q.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM invites
		WHERE from_user = ? AND to_user = ? AND status = 'pending'`,
		from, to,
	).Scan(&n)
	return n > 0, err
}

// resolveInvite only matches pending rows; sql.ErrNoRows means the id is
// unknown or the invite was already resolved.
func (q *queries) resolveInvite(ctx context.Context, id, status, at string) (domain.Invite, error) {
	return scanInvite(q.db.QueryRowContext(ctx, `
		UPDATE invites SET status = ?, responded_at = ?
		WHERE id = ? AND status = 'pending'
		RETURNING `+inviteColumns,
		status, at, id,
	))
}

func (q *queries) listInvitesTo(ctx context.Context, userID string) ([]domain.Invite, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE to_user = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInvite)
}

func (q *queries) listInvitesFrom(ctx context.Context, userID string) ([]domain.Invite, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE from_user = ?
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanInvite)
}
