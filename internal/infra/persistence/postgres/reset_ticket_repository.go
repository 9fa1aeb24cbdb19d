package postgres

import (
	"context"
	"time"

	"ridehail/internal/domain/entity"
	"ridehail/internal/domain/repository"
	"ridehail/internal/errors"
	"ridehail/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type resetTicketRepository struct {
	db *gorm.DB
}

// NewResetTicketRepository creates a password-reset ticket repository backed by PostgreSQL.
func NewResetTicketRepository(db *gorm.DB) repository.ResetTicketRepository {
	return &resetTicketRepository{db: db}
}

func (r *resetTicketRepository) Create(ctx context.Context, ticket *entity.PasswordResetTicket) error {
	record := &model.ResetTicketModel{
		ID:         ticket.ID,
		AccountID:  ticket.AccountID,
		TicketHash: ticket.TicketHash,
		ExpiresAt:  ticket.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create reset ticket")
	}

	ticket.ID = record.ID
	ticket.CreatedAt = record.CreatedAt

	return nil
}

func (r *resetTicketRepository) Consume(ctx context.Context, ticketHash string, now time.Time) (*entity.PasswordResetTicket, error) {
	// Single conditional UPDATE with RETURNING: the ticket is claimed and read
	// back in one statement, so a second concurrent consumer matches zero rows.
	var record model.ResetTicketModel
	result := r.db.WithContext(ctx).
		Model(&record).
		Clauses(clause.Returning{}).
		Where("ticket_hash = ? AND consumed_at IS NULL AND expires_at > ?", ticketHash, now).
		Update("consumed_at", now)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume reset ticket")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTicketNotFound
	}

	return &entity.PasswordResetTicket{
		ID:         record.ID,
		AccountID:  record.AccountID,
		TicketHash: record.TicketHash,
		ExpiresAt:  record.ExpiresAt,
		ConsumedAt: record.ConsumedAt,
		CreatedAt:  record.CreatedAt,
	}, nil
}

func (r *resetTicketRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	err := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.ResetTicketModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired reset tickets")
	}

	return nil
}
