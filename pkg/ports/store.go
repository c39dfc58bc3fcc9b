package ports

import "github.com/aretw0/rowexpand/pkg/domain"

// ViewStateStore holds the view state shared by the table widget.
// Writes replace whole values; readers always receive a copy.
type ViewStateStore interface {
	// GetState returns a snapshot of the current state.
	GetState() domain.ViewState

	// SetState applies a partial update and notifies subscribers.
	SetState(patch domain.StatePatch)

	// Subscribe registers fn to be called with the new state after each write.
	// The returned function removes the subscription.
	Subscribe(fn func(domain.ViewState)) (unsubscribe func())
}
