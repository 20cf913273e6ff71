package controller

// Subscription accumulates scroll deltas and fires its callback once when
// the threshold is crossed, then cancels itself. The self-cancellation is
// what makes duplicate prompts impossible.
type Subscription struct {
	threshold float64
	total     float64
	fn        func()
	done      bool
}

func newSubscription(threshold float64, fn func()) *Subscription {
	return &Subscription{threshold: threshold, fn: fn}
}

// Offer feeds one scroll delta and reports whether the callback fired.
// A cancelled or spent subscription ignores further deltas.
func (s *Subscription) Offer(delta float64) bool {
	if s == nil || s.done {
		return false
	}
	s.total += delta
	if s.total < s.threshold {
		return false
	}
	s.done = true
	fn := s.fn
	s.fn = nil
	if fn != nil {
		fn()
	}
	return true
}

// Cancel detaches the subscription without firing.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.done = true
	s.fn = nil
}

// Active reports whether the subscription can still fire.
func (s *Subscription) Active() bool {
	return s != nil && !s.done
}
