package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/models"
)

// recipientRepository is the PostgreSQL-backed implementation of
// [RecipientRepository] for the "recipients" table.
type recipientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipientRepository constructs a [RecipientRepository] backed by the
// provided database connection and logger.
func NewRecipientRepository(db *DB, logger *logger.Logger) RecipientRepository {
	logger.Debug().Msg("creating recipient repository")
	return &recipientRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecipient persists a new recipient row and returns the fully
// populated [models.Recipient] with its server-assigned RecipientID.
func (r *recipientRepository) CreateRecipient(ctx context.Context, recipient models.Recipient) (models.Recipient, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRecipient, recipient.Name, recipient.Email, recipient.Phone, recipient.Address)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*recipientRepository.CreateRecipient").Msg("error: row is nil")
		return models.Recipient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var capacity sql.NullInt64
	if err := row.Scan(&recipient.RecipientID, &recipient.Name, &recipient.Email, &recipient.Phone, &recipient.Address, &capacity); err != nil {
		log.Err(err).Str("func", "*recipientRepository.CreateRecipient").Msg("error: scanning error")
		return models.Recipient{}, err
	}
	if capacity.Valid {
		recipient.Capacity = &capacity.Int64
	}

	return recipient, nil
}

// GetAllRecipients returns every recipient row ordered by primary key.
// This order is also the candidate order the matching engine iterates in.
func (r *recipientRepository) GetAllRecipients(ctx context.Context) ([]models.Recipient, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllRecipients().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building recipients query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipientRepository.GetAllRecipients").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	recipients := make([]models.Recipient, 0)
	for rows.Next() {
		var recipient models.Recipient
		var capacity sql.NullInt64

		if err := rows.Scan(&recipient.RecipientID, &recipient.Name, &recipient.Email, &recipient.Phone, &recipient.Address, &capacity); err != nil {
			log.Err(err).Str("func", "*recipientRepository.GetAllRecipients").Msg("error: scanning error")
			return nil, err
		}
		if capacity.Valid {
			recipient.Capacity = &capacity.Int64
		}

		recipients = append(recipients, recipient)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*recipientRepository.GetAllRecipients").Msg("error: rows iteration error")
		return nil, err
	}

	return recipients, nil
}
