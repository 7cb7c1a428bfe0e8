package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

type Report struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ReporterID     uuid.UUID `gorm:"type:uuid;not null" json:"reporter_id"`
	ReportedUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"reported_user_id"`
	Reason         string    `gorm:"size:100;not null" json:"reason"`
	Description    string    `gorm:"type:text" json:"description"`
	Status         string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// AdminAction is an append-only audit record of moderation actions.
type AdminAction struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AdminID    uuid.UUID `gorm:"type:uuid;not null" json:"admin_id"`
	ActionType string    `gorm:"size:50;not null" json:"action_type"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null" json:"target_id"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
