package swap

import (
	"time"

	"anoa.com/skillswap/internal/entity"
	profileDto "anoa.com/skillswap/internal/modules/profile/dto"
)

type CreateSwapRequestInput struct {
	ToUserID    string `json:"toUserId" binding:"required,uuid"`
	SkillWanted string `json:"skillWanted" binding:"required,min=1,max=100"`
	Message     string `json:"message" binding:"max=2000"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected cancelled completed"`
}

// EnrichedRequest is a swap request with resolved profile snapshots attached.
// A profile that could not be resolved is simply omitted.
type EnrichedRequest struct {
	entity.SwapRequest
	From *profileDto.PublicProfile `json:"from,omitempty"`
	To   *profileDto.PublicProfile `json:"to,omitempty"`
}

// CompletedSwap adds the viewer-relative fields of the completed view.
type CompletedSwap struct {
	EnrichedRequest
	Partner        *profileDto.PublicProfile `json:"partner,omitempty"`
	SkillExchanged string                    `json:"skillExchanged"`
	CompletedDate  time.Time                 `json:"completedDate"`
}

// RequestViews is the three-way partition of a user's requests.
type RequestViews struct {
	Received  []EnrichedRequest `json:"received"`
	Sent      []EnrichedRequest `json:"sent"`
	Completed []CompletedSwap   `json:"completed"`
}

// EmptyViews is the fail-safe view: empty slices, never nil, so it always
// serializes as {"received":[],"sent":[],"completed":[]}.
func EmptyViews() RequestViews {
	return RequestViews{
		Received:  []EnrichedRequest{},
		Sent:      []EnrichedRequest{},
		Completed: []CompletedSwap{},
	}
}
