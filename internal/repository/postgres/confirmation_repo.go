package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"rsvp/internal/domain"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

type confirmationRepository struct {
	DB *sql.DB
}

func NewConfirmationRepository(db *sql.DB) domain.ConfirmationRepository {
	return &confirmationRepository{
		DB: db,
	}
}

func (r *confirmationRepository) Create(ctx context.Context, c *domain.Confirmation) error {
	query := `
		INSERT INTO confirmacoes (nome, data_confirmacao, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.Name, c.ConfirmedAt, c.Status).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyConfirmed
		}
		return err
	}
	return nil
}

func (r *confirmationRepository) GetByName(ctx context.Context, name string) (*domain.Confirmation, error) {
	query := `
		SELECT id, nome, data_confirmacao, status
		FROM confirmacoes
		WHERE nome = $1
	`
	c := &domain.Confirmation{}
	err := r.DB.QueryRowContext(ctx, query, name).
		Scan(&c.ID, &c.Name, &c.ConfirmedAt, &c.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *confirmationRepository) ListAll(ctx context.Context) ([]*domain.Confirmation, error) {
	query := `
		SELECT id, nome, data_confirmacao, status
		FROM confirmacoes
		ORDER BY data_confirmacao DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	confirmations := make([]*domain.Confirmation, 0)
	for rows.Next() {
		c := &domain.Confirmation{}
		if err := rows.Scan(&c.ID, &c.Name, &c.ConfirmedAt, &c.Status); err != nil {
			return nil, err
		}
		confirmations = append(confirmations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return confirmations, nil
}
