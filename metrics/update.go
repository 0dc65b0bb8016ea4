package metrics

import "sync/atomic"

type SessionMetrics struct {
	ItemsAdded        atomic.Int32
	ItemsRemoved      atomic.Int32
	RejectedAdds      atomic.Int32
	SuggestionsServed atomic.Int32
}
