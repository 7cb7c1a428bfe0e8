package profile

import (
	"time"

	"anoa.com/skillswap/internal/entity"
	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Location      *string  `json:"location" binding:"omitempty,max=100"`
	Bio           *string  `json:"bio" binding:"omitempty,max=2000"`
	SkillsOffered []string `json:"skillsOffered" binding:"omitempty,max=20,dive,min=1,max=100"`
	SkillsWanted  []string `json:"skillsWanted" binding:"omitempty,max=20,dive,min=1,max=100"`
	IsPublic      *bool    `json:"isPublic"`
}

// PublicProfile is the profile view exposed to other members and attached to
// enriched swap requests.
type PublicProfile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Bio            *string   `json:"bio,omitempty"`
	SkillsOffered  []string  `json:"skillsOffered"`
	SkillsWanted   []string  `json:"skillsWanted"`
	Rating         float64   `json:"rating"`
	CompletedSwaps int       `json:"completedSwaps"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToPublicProfile(p *entity.Profile) *PublicProfile {
	if p == nil {
		return nil
	}
	return &PublicProfile{
		ID:             p.ID,
		Name:           p.Name,
		Location:       p.Location,
		Bio:            p.Bio,
		SkillsOffered:  p.SkillsOffered,
		SkillsWanted:   p.SkillsWanted,
		Rating:         p.Rating,
		CompletedSwaps: p.CompletedSwaps,
		CreatedAt:      p.CreatedAt,
	}
}
