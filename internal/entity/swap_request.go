package entity

import (
	"time"

	"github.com/google/uuid"
)

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCancelled SwapStatus = "cancelled"
	SwapStatusCompleted SwapStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s SwapStatus) Valid() bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected,
		SwapStatusCancelled, SwapStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s SwapStatus) Terminal() bool {
	switch s {
	case SwapStatusRejected, SwapStatusCancelled, SwapStatusCompleted:
		return true
	}
	return false
}

// SwapRequest is a directed proposal from one member to another. Everything
// except Status (and UpdatedAt) is immutable after creation; requests are
// never deleted.
type SwapRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FromUserID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"fromUserId"`
	ToUserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"toUserId"`
	SkillWanted string     `gorm:"size:100;not null" json:"skillWanted"`
	Message     string     `gorm:"type:text" json:"message"`
	Status      SwapStatus `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
