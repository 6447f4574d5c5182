package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryLog is an append-only audit record of one matching run. Writes are
// best effort; a failed insert never fails the request that produced it.
type QueryLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Query         string    `gorm:"type:text;not null" json:"query"`
	PersonTitles  string    `gorm:"type:text" json:"person_titles"`
	InvestorCount int       `gorm:"not null;default:0" json:"investor_count"`
	CreatedAt     time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (QueryLog) TableName() string {
	return "query_logs"
}
