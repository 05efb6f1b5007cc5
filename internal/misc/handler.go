package misc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct {
	versionInfo string
	authService *auth.Service
	now         func() time.Time
}

func NewHandler(
	versionInfo string,
	authService *auth.Service,
) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		authService: authService,
		now:         time.Now,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	sessionSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	sessionSubrouter.
		HandleFunc("/session", handler.handleOpenSession).
		Methods("POST", "OPTIONS").Name("open-session")
	sessionSubrouter.
		HandleFunc("/session/close", handler.handleCloseSession).
		Methods("POST", "OPTIONS").Name("close-session")

	// rate limit the session endpoints to prevent token farming
	sessionSubrouter.Use(middleware.RateLimit(rateLimiter, "session", 15, metricsManager))
	sessionSubrouter.Use(middleware.Cors())
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.getMyIp")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("failed to get user IP address: %s", err))
		log.Errorf("failed to get user IP address: %s", err)
		http.Error(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	span.SetStatus(codes.Ok, fmt.Sprintf("user IP address: %s", ip))
	pkg.WriteTextResponseOK(w, ip)
}

// handleOpenSession issues a session token for a user. Only the trusted
// client app reaches it, the auth middleware checks the app secret.
func (handler *Handler) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.openSession")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type sessionRequest struct {
		UserID string `json:"user_id"`
	}

	var sessionReq sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&sessionReq); err != nil {
		log.Errorf("open session, unmarshal json params: %s", err)
		http.Error(w, "open session failed", http.StatusBadRequest)
		return
	}

	if sessionReq.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	userID, err := uuid.Parse(sessionReq.UserID)
	if err != nil || userID == uuid.Nil {
		http.Error(w, "error, invalid user id", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("user.id", userID.String()))

	token, err := handler.authService.Open(r.Context(), userID, handler.now())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("open session failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Tracef("new session for user %s", userID)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token": "%s"}`, token))
}

func (handler *Handler) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.closeSession")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get(middleware.SessionTokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	closed, err := handler.authService.Close(r.Context(), authToken)
	if err != nil {
		log.Tracef("[failed session close] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	if !closed {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	log.Trace("session closed")
	pkg.WriteTextResponseOK(w, "closed")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
