package domain

// InputEvent is the raw user input that caused a toggle.
// Its default action and propagation are suppressed before any state change.
type InputEvent interface {
	PreventDefault()
	StopPropagation()
}

// Event is a minimal InputEvent used by terminal and network hosts.
type Event struct {
	Name string

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates an event named after its source (e.g. "click", "key").
func NewEvent(name string) *Event {
	return &Event{Name: name}
}

func (e *Event) PreventDefault()  { e.defaultPrevented = true }
func (e *Event) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// ExpansionHooks defines the side-effect callbacks of the controller.
// A nil field means no callback was provided.
type ExpansionHooks struct {
	// OnExpand fires on every toggle attempt, including no-ops.
	OnExpand func(expanded bool, record Row)

	// OnExpandedRowsChange fires on every committed change of the expanded set.
	OnExpandedRowsChange func(keys KeySet)
}

// Chain returns hooks that call h first and then next.
func (h ExpansionHooks) Chain(next ExpansionHooks) ExpansionHooks {
	return ExpansionHooks{
		OnExpand: func(expanded bool, record Row) {
			if h.OnExpand != nil {
				h.OnExpand(expanded, record)
			}
			if next.OnExpand != nil {
				next.OnExpand(expanded, record)
			}
		},
		OnExpandedRowsChange: func(keys KeySet) {
			if h.OnExpandedRowsChange != nil {
				h.OnExpandedRowsChange(keys.Clone())
			}
			if next.OnExpandedRowsChange != nil {
				next.OnExpandedRowsChange(keys.Clone())
			}
		},
	}
}
