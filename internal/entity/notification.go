package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationTypeSwapRequest       = "swap_request"
	NotificationTypeSwapRequestStatus = "swap_request_status"
)

// Notification is an advisory record: it is written as a side effect of swap
// mutations and its failure never rolls back the mutation that caused it.
type Notification struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Message         string     `gorm:"type:text;not null" json:"message"`
	Type            string     `gorm:"size:50;not null" json:"type"`
	RelatedEntityID *uuid.UUID `gorm:"type:uuid" json:"related_entity_id,omitempty"`
	IsRead          bool       `gorm:"default:false" json:"is_read"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
