package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SwapRequestID uuid.UUID `gorm:"type:uuid;not null" json:"swap_request_id"`
	FromUserID    uuid.UUID `gorm:"type:uuid;not null" json:"from_user_id"`
	ToUserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"to_user_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
