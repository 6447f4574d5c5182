package models

import (
	"time"

	"github.com/google/uuid"
)

type EmailRequestStatus string

const (
	EmailRequestPending EmailRequestStatus = "pending"
	EmailRequestSent    EmailRequestStatus = "sent"
)

// EmailRequest records a founder's request to send an introduction email to
// an investor. Requests are queued as "pending" for manual review.
type EmailRequest struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InvestorID      string             `gorm:"type:text;not null" json:"investor_id"`
	InvestorName    string             `gorm:"type:text" json:"investor_name"`
	InvestorEmail   string             `gorm:"type:text" json:"investor_email"`
	InvestorCompany string             `gorm:"type:text" json:"investor_company"`
	Subject         string             `gorm:"type:text;not null" json:"subject"`
	EmailBody       string             `gorm:"type:text;not null" json:"email_body"`
	Status          EmailRequestStatus `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt       time.Time          `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (EmailRequest) TableName() string {
	return "email_requests"
}
