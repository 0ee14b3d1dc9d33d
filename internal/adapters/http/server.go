// Package http exposes the dialog engine as a JSON API. Every advance for
// a conversation runs a full load-advance-save cycle under the session
// manager's lock, so duplicate or retried deliveries cannot overlap.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"parley"
	"parley/internal/logging"
	"parley/pkg/domain"
	"parley/pkg/intent"
	"parley/pkg/session"
)

// Server handles the dialog API routes.
type Server struct {
	engine   *parley.Engine
	sessions *session.Manager
	router   *intent.Router // optional; nil means slot-addressed requests only
	logger   *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithIntentRouter enables intent-addressed advance requests.
func WithIntentRouter(r *intent.Router) Option {
	return func(s *Server) {
		s.router = r
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *parley.Engine, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		engine:   engine,
		sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", s.listSessions)
		r.Post("/", s.createSession)
		r.Get("/{sessionID}", s.getSession)
		r.Delete("/{sessionID}", s.deleteSession)
		r.Post("/{sessionID}/advance", s.advance)
	})
	return r
}

type advanceRequest struct {
	Intent string `json:"intent,omitempty"`
	Slot   string `json:"slot,omitempty"`
	Value  string `json:"value,omitempty"`
}

type advanceResponse struct {
	SessionID string               `json:"session_id"`
	Mode      domain.Mode          `json:"mode"`
	Text      string               `json:"text"`
	Slot      string               `json:"slot,omitempty"`
	Step      string               `json:"step,omitempty"`
	Status    domain.SessionStatus `json:"status"`
}

type createRequest struct {
	SessionID string `json:"session_id,omitempty"`
}

// createSession starts a conversation and returns its opening prompt.
// Without a requested ID, a fresh one is minted.
func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			s.logger.Warn("createSession: invalid request body", "err", err)
			return
		}
	}

	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resp, err := s.turn(r.Context(), sessionID, advanceRequest{})
	if err != nil {
		http.Error(w, "advance error", http.StatusInternalServerError)
		s.logger.Error("createSession failed", "session_id", sessionID, "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp, s.logger)
}

// advance applies one utterance to a conversation.
func (s *Server) advance(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var body advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		s.logger.Warn("advance: invalid request body", "err", err)
		return
	}

	if body.Intent != "" && s.router == nil {
		http.Error(w, "intent routing is not configured", http.StatusBadRequest)
		return
	}

	resp, err := s.turn(r.Context(), sessionID, body)
	if err != nil {
		var unknown *unknownIntentError
		if errors.As(err, &unknown) {
			http.Error(w, unknown.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "advance error", http.StatusInternalServerError)
		s.logger.Error("advance failed", "session_id", sessionID, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, resp, s.logger)
}

type unknownIntentError struct {
	cause error
}

func (e *unknownIntentError) Error() string { return e.cause.Error() }
func (e *unknownIntentError) Unwrap() error { return e.cause }

// turn runs one locked load-advance-save cycle.
func (s *Server) turn(ctx context.Context, sessionID string, req advanceRequest) (*advanceResponse, error) {
	var resp *advanceResponse

	err := s.sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		store := s.sessions.Store()

		sess, err := store.Load(ctx, sessionID)
		if errors.Is(err, domain.ErrSessionNotFound) {
			sess = domain.NewSession(sessionID)
		} else if err != nil {
			return err
		}

		var res domain.Result
		if req.Intent != "" {
			res, err = s.router.Dispatch(ctx, s.engine, sess, req.Intent, req.Value)
			if err != nil {
				if _, known := s.router.Resolve(req.Intent); !known {
					return &unknownIntentError{cause: err}
				}
				return err
			}
		} else {
			res, err = s.engine.Advance(ctx, sess, req.Slot, req.Value)
			if err != nil {
				return err
			}
		}

		if err := store.Save(ctx, sess); err != nil {
			return err
		}

		resp = &advanceResponse{
			SessionID: sess.ID,
			Mode:      res.Mode,
			Text:      res.Text,
			Slot:      res.Slot,
			Step:      res.Step,
			Status:    sess.Status,
		}
		return nil
	})
	return resp, err
}

// getSession returns the raw session state.
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := s.sessions.Load(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "load error", http.StatusInternalServerError)
		s.logger.Error("getSession failed", "session_id", sessionID, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, sess, s.logger)
}

// deleteSession ends a conversation.
func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := s.sessions.Delete(r.Context(), sessionID); err != nil {
		http.Error(w, "delete error", http.StatusInternalServerError)
		s.logger.Error("deleteSession failed", "session_id", sessionID, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listSessions returns known session IDs.
func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		s.logger.Error("listSessions failed", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": ids}, s.logger)
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": parley.Version}, s.logger)
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
