package models

import (
	"time"

	"github.com/google/uuid"
)

// Certification represents a quality/compliance certificate held by a member
type Certification struct {
	BaseModel
	UserID            uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type              CertificationType `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	CertificateNumber string            `json:"certificate_number" gorm:"size:100" validate:"max=100"`
	IssuedDate        time.Time         `json:"issued_date" gorm:"type:date"`
	ExpiryDate        time.Time         `json:"expiry_date" gorm:"type:date;index"`
	IssuingBody       string            `json:"issuing_body" gorm:"size:200" validate:"max=200"`
	Notes             string            `json:"notes" gorm:"type:text"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Certification
func (Certification) TableName() string {
	return "certifications"
}

// DaysUntilExpiry returns the number of whole days until the certificate expires.
// Negative values mean the certificate already expired.
func (c *Certification) DaysUntilExpiry(now time.Time) int {
	return int(c.ExpiryDate.Sub(now).Hours() / 24)
}
