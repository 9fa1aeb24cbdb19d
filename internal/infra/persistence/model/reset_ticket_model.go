package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTicketModel mirrors the 'password_reset_tickets' table.
// Tickets are stored by hash, bound to one account, expiring and single-use.
type ResetTicketModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTicketModel) TableName() string {
	return "password_reset_tickets"
}
