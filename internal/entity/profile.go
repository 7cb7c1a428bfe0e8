package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ProfileStatusActive = "active"
	ProfileStatusBanned = "banned"
)

// Profile is the account record of a marketplace member. Profiles are never
// deleted; banning flips Status to "banned" and the row stays.
type Profile struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	Email          string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"size:255;not null" json:"-"`
	Role           string         `gorm:"size:20;not null;default:user" json:"role"`
	Location       string         `gorm:"size:100" json:"location"`
	Bio            *string        `gorm:"type:text" json:"bio,omitempty"`
	SkillsOffered  pq.StringArray `gorm:"type:text[]" json:"skillsOffered"`
	SkillsWanted   pq.StringArray `gorm:"type:text[]" json:"skillsWanted"`
	Rating         float64        `gorm:"default:0" json:"rating"`
	CompletedSwaps int            `gorm:"default:0" json:"completedSwaps"`
	IsPublic       bool           `gorm:"default:true" json:"isPublic"`
	Status         string         `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
