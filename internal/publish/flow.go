package publish

import "fmt"

// State is a step in the publication flow.
type State string

const (
	StateIdle           State = "idle"
	StateCheckingDomain State = "checking_domain"
	StateDomainChecked  State = "domain_checked"
	StatePublishing     State = "publishing"
	StatePublished      State = "published"
	StateFailed         State = "failed"
)

// Flow tracks one publication attempt through its states. It only encodes
// which transitions are legal; side effects belong to the Service driving it.
// Publishing requires a prior availability check of the same domain that
// came back available.
type Flow struct {
	state     State
	domain    string
	available bool
}

// NewFlow starts an idle flow.
func NewFlow() *Flow {
	return &Flow{state: StateIdle}
}

// State returns the current state.
func (f *Flow) State() State {
	return f.state
}

// Domain returns the domain under consideration.
func (f *Flow) Domain() string {
	return f.domain
}

// Available reports the outcome of the last completed check.
func (f *Flow) Available() bool {
	return f.state == StateDomainChecked && f.available
}

// BeginCheck starts an availability check. Checking again with a different
// domain discards the previous result.
func (f *Flow) BeginCheck(domain string) error {
	switch f.state {
	case StateIdle, StateDomainChecked, StateFailed:
		f.state = StateCheckingDomain
		f.domain = domain
		f.available = false
		return nil
	default:
		return transitionError(f.state, StateCheckingDomain)
	}
}

// CompleteCheck records the registrar's answer.
func (f *Flow) CompleteCheck(available bool) error {
	if f.state != StateCheckingDomain {
		return transitionError(f.state, StateDomainChecked)
	}
	f.state = StateDomainChecked
	f.available = available
	return nil
}

// BeginPublish starts publication. The domain must have been checked and
// found available.
func (f *Flow) BeginPublish() error {
	if f.state != StateDomainChecked {
		return transitionError(f.state, StatePublishing)
	}
	if !f.available {
		return ErrDomainUnavailable
	}
	f.state = StatePublishing
	return nil
}

// CompletePublish marks the flow as successfully finished. Published is
// terminal.
func (f *Flow) CompletePublish() error {
	if f.state != StatePublishing {
		return transitionError(f.state, StatePublished)
	}
	f.state = StatePublished
	return nil
}

// Fail marks the current step as failed. A failed flow may start over with
// a new check.
func (f *Flow) Fail() error {
	switch f.state {
	case StateCheckingDomain, StatePublishing:
		f.state = StateFailed
		return nil
	default:
		return transitionError(f.state, StateFailed)
	}
}

func transitionError(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
