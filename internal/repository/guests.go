package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Guest is an anonymous session identity row.
type Guest struct {
	ID           pgtype.UUID
	SessionToken string
	CreatedAt    pgtype.Timestamptz
	ExpiresAt    pgtype.Timestamptz
}

const createGuest = `
insert into guests (session_token, expires_at)
values ($1, $2)
returning id, session_token, created_at, expires_at
`

// CreateGuestParams holds the values for a new guest row.
type CreateGuestParams struct {
	SessionToken string
	ExpiresAt    pgtype.Timestamptz
}

// CreateGuest inserts a new guest identity.
func (q *Queries) CreateGuest(ctx context.Context, arg CreateGuestParams) (Guest, error) {
	row := q.db.QueryRow(ctx, createGuest, arg.SessionToken, arg.ExpiresAt)
	var g Guest
	err := row.Scan(&g.ID, &g.SessionToken, &g.CreatedAt, &g.ExpiresAt)
	return g, err
}

const getGuestByToken = `
select id, session_token, created_at, expires_at
from guests
where session_token = $1
`

// GetGuestByToken looks up a guest by its opaque session token.
func (q *Queries) GetGuestByToken(ctx context.Context, sessionToken string) (Guest, error) {
	row := q.db.QueryRow(ctx, getGuestByToken, sessionToken)
	var g Guest
	err := row.Scan(&g.ID, &g.SessionToken, &g.CreatedAt, &g.ExpiresAt)
	return g, err
}

const deleteGuest = `
delete from guests where id = $1
`

// DeleteGuest removes a guest identity. The owning cart and its items are
// removed by the cascade.
func (q *Queries) DeleteGuest(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, deleteGuest, id)
	return err
}

const deleteExpiredGuests = `
delete from guests where expires_at < now()
`

// DeleteExpiredGuests removes every guest whose session has lapsed and
// returns the number of rows deleted.
func (q *Queries) DeleteExpiredGuests(ctx context.Context) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteExpiredGuests)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
