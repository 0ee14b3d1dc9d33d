package middleware

import (
	"context"
	"regexp"

	"parley/pkg/domain"
	"parley/pkg/ports"
)

// maskedValue replaces PII slot values at rest.
const maskedValue = "***"

type piiMiddleware struct {
	next     ports.SessionStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks the values of slots
// whose names match the patterns before they reach the store. Masking is
// one-way: loaded sessions carry the masked values.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.SessionStore) ports.SessionStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, sess *domain.Session) error {
	// Clone so the in-flight session used by the engine keeps its values.
	cloned := sess.Clone()

	for name := range cloned.Slots {
		for _, p := range m.patterns {
			if p.MatchString(name) {
				cloned.Slots[name] = maskedValue
				break
			}
		}
	}

	return m.next.Save(ctx, cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	return m.next.Load(ctx, sessionID)
}

func (m *piiMiddleware) Delete(ctx context.Context, sessionID string) error {
	return m.next.Delete(ctx, sessionID)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
