package domain

// SessionStatus defines the lifecycle phase of a conversation.
type SessionStatus string

const (
	// SessionActive means the dialog still has steps to evaluate.
	SessionActive SessionStatus = "active"
	// SessionCompleted means a terminal step has executed.
	SessionCompleted SessionStatus = "completed"
)

// Session is the per-conversation record of filled slot values plus the
// position of the earliest step whose handler has not run yet.
// It is a plain value passed into and out of every engine call, never a
// process-wide singleton.
type Session struct {
	// ID identifies the conversation.
	ID string `json:"session_id"`

	// Slots maps slot name to filled value. Once set, a value is never
	// cleared automatically; overwrites are last-write-wins.
	Slots map[string]string `json:"slots"`

	// Cursor is the index of the step currently being evaluated.
	Cursor int `json:"cursor"`

	// Status indicates whether the dialog can still advance.
	Status SessionStatus `json:"status"`
}

// NewSession creates a clean session at the first step of a dialog.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Slots:  make(map[string]string),
		Status: SessionActive,
	}
}

// Get returns the filled value for a slot name, if present.
func (s *Session) Get(name string) (string, bool) {
	v, ok := s.Slots[name]
	return v, ok
}

// Set fills a slot. Unknown slot names are accepted without validation so
// out-of-order fills can satisfy a later step.
func (s *Session) Set(name, value string) {
	if s.Slots == nil {
		s.Slots = make(map[string]string)
	}
	s.Slots[name] = value
}

// HasAll reports whether every named slot is present.
func (s *Session) HasAll(names ...string) bool {
	for _, n := range names {
		if _, ok := s.Slots[n]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, safe for independent mutation.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Slots = make(map[string]string, len(s.Slots))
	for k, v := range s.Slots {
		next.Slots[k] = v
	}
	return &next
}
