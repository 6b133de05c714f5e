// Package httpapi serves the session endpoint used by web and mobile
// clients to trade a sealed session for an access token.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxBodyBytes = 64 << 10

// Sessions checks and issues sealed sessions.
type Sessions interface {
	Check(ctx context.Context, sealed string, forceRefresh bool) *services.AuthCheckResult
	Issue(ctx context.Context, profile models.ProviderProfile) (*services.AuthCheckResult, error)
}

type Options struct {
	AllowedOrigins []string
	// DevSessions mounts POST /auth/session, which opens a session for any
	// posted profile.
	DevSessions bool
}

type accessTokenRequest struct {
	SealedSession     string `json:"sealedSession"`
	ForceRefreshToken bool   `json:"forceRefreshToken"`
}

type handler struct {
	sessions Sessions
	logger   logging.Logger
}

// NewRouter configures the chi router with middleware and routes.
func NewRouter(sessions Sessions, opts Options, l logging.Logger) *chi.Mux {
	h := &handler{sessions: sessions, logger: l.With("module", "httpapi")}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/at", h.accessToken)
		r.Options("/at", h.preflight)

		if opts.DevSessions {
			r.Post("/session", h.issueSession)
		}
	})

	return r
}

func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// preflight answers bare OPTIONS requests that the CORS middleware lets
// through.
func (h *handler) preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}

// accessToken checks a sealed session. Only a missing or unreadable body
// is reported as an error; every session failure is an unauthenticated
// result.
func (h *handler) accessToken(w http.ResponseWriter, r *http.Request) {
	var req accessTokenRequest
	if err := decode(w, r, &req); err != nil {
		h.logger.Warn(r.Context(), "bad session request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.SealedSession == "" {
		writeError(w, http.StatusBadRequest, "Missing sealedSession")
		return
	}

	writeJSON(w, http.StatusOK, h.sessions.Check(r.Context(), req.SealedSession, req.ForceRefreshToken))
}

func (h *handler) issueSession(w http.ResponseWriter, r *http.Request) {
	var p models.ProviderProfile
	if err := decode(w, r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.sessions.Issue(r.Context(), p)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error(r.Context(), "issue session failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
