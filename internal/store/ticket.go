package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chamados-hub/apiserver/types"
)

// TicketRepository handles persistence for tickets.
type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) List(ctx context.Context) ([]types.Ticket, error) {
	const query = `
		SELECT id, owner_user_id, text, state, image_url, created_at, updated_at
		FROM chamados
		ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]types.Ticket, 0)
	for rows.Next() {
		var ticket types.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.OwnerUserID,
			&ticket.Text,
			&ticket.State,
			&ticket.ImageURL,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepository) Get(ctx context.Context, id int) (types.Ticket, error) {
	const query = `
		SELECT id, owner_user_id, text, state, image_url, created_at, updated_at
		FROM chamados
		WHERE id = $1`
	var ticket types.Ticket
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.OwnerUserID,
		&ticket.Text,
		&ticket.State,
		&ticket.ImageURL,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Ticket{}, ErrNotFound
		}
		return types.Ticket{}, err
	}
	return ticket, nil
}

func (r *TicketRepository) Create(ctx context.Context, ticket types.Ticket) (types.Ticket, error) {
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	const query = `
		INSERT INTO chamados (owner_user_id, text, state, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		ticket.OwnerUserID,
		ticket.Text,
		ticket.State,
		ticket.ImageURL,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	).Scan(&ticket.ID); err != nil {
		return types.Ticket{}, err
	}

	return ticket, nil
}

// Replace overwrites every mutable column of an existing ticket.
func (r *TicketRepository) Replace(ctx context.Context, ticket types.Ticket) (types.Ticket, error) {
	ticket.UpdatedAt = time.Now()

	const query = `
		UPDATE chamados
		SET owner_user_id = $1,
			text = $2,
			state = $3,
			image_url = $4,
			updated_at = $5
		WHERE id = $6
		RETURNING created_at`
	err := r.db.QueryRowContext(
		ctx,
		query,
		ticket.OwnerUserID,
		ticket.Text,
		ticket.State,
		ticket.ImageURL,
		ticket.UpdatedAt,
		ticket.ID,
	).Scan(&ticket.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Ticket{}, ErrNotFound
		}
		return types.Ticket{}, err
	}

	return ticket, nil
}

// Patch merges the supplied fields into an existing ticket. Nil patch
// fields are sent as NULL and coalesced against the stored value, so the
// merge happens in a single statement.
func (r *TicketRepository) Patch(ctx context.Context, id int, patch types.TicketPatch) (types.Ticket, error) {
	const query = `
		UPDATE chamados
		SET owner_user_id = COALESCE($1, owner_user_id),
			text = COALESCE($2, text),
			state = COALESCE($3, state),
			image_url = COALESCE($4, image_url),
			updated_at = $5
		WHERE id = $6
		RETURNING id, owner_user_id, text, state, image_url, created_at, updated_at`
	var ticket types.Ticket
	err := r.db.QueryRowContext(
		ctx,
		query,
		patch.OwnerUserID,
		patch.Text,
		patch.State,
		patch.ImageURL,
		time.Now(),
		id,
	).Scan(
		&ticket.ID,
		&ticket.OwnerUserID,
		&ticket.Text,
		&ticket.State,
		&ticket.ImageURL,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Ticket{}, ErrNotFound
		}
		return types.Ticket{}, err
	}

	return ticket, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM chamados WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
