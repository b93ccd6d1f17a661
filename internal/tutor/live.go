package tutor

import "sync"

// questionKind separates the two live-question slots a session can hold, so
// a stale assessment question is never mistaken for an active transfer
// question.
type questionKind int

const (
	kindAssessment questionKind = iota
	kindTransfer
)

type liveKey struct {
	sessionID string
	kind      questionKind
}

// liveQuestions tracks the question currently posed per session, separate
// from persisted session state. At most one question of each kind is live
// per session; binding a new one overwrites the previous.
//
// The table is mutex-guarded so independent sessions can be processed
// concurrently by a surrounding server. Turns on a single session must be
// serialized by the transport layer.
type liveQuestions struct {
	mu sync.Mutex
	m  map[liveKey]*Question
}

func newLiveQuestions() *liveQuestions {
	return &liveQuestions{m: make(map[liveKey]*Question)}
}

func (l *liveQuestions) bind(sessionID string, kind questionKind, q *Question) {
	if sessionID == "" || q == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[liveKey{sessionID, kind}] = q
}

// lookup returns the live question of the given kind, or nil if none is
// bound. A bound question whose transfer flag disagrees with the kind is
// treated as absent: that guards against cross-phase contamination of the
// binding.
func (l *liveQuestions) lookup(sessionID string, kind questionKind) *Question {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := l.m[liveKey{sessionID, kind}]
	if q == nil {
		return nil
	}
	if q.Transfer != (kind == kindTransfer) {
		return nil
	}
	return q
}

func (l *liveQuestions) clear(sessionID string, kind questionKind) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.m, liveKey{sessionID, kind})
}
