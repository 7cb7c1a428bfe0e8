package swap

import "anoa.com/skillswap/internal/entity"

// allowedTransitions is the request lifecycle:
//
//	pending  -> accepted | rejected | cancelled
//	accepted -> completed
//
// rejected, cancelled and completed are terminal.
var allowedTransitions = map[entity.SwapStatus]map[entity.SwapStatus]bool{
	entity.SwapStatusPending: {
		entity.SwapStatusAccepted:  true,
		entity.SwapStatusRejected:  true,
		entity.SwapStatusCancelled: true,
	},
	entity.SwapStatusAccepted: {
		entity.SwapStatusCompleted: true,
	},
}

// CanTransition reports whether a request in status from may move to status to.
func CanTransition(from, to entity.SwapStatus) bool {
	return allowedTransitions[from][to]
}
