package middleware

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	AppSecretHeader    = "X-GYMPLAN-SECRET"
	SessionTokenHeader = "X-GYMPLAN-TOKEN"
)

type userResolver interface {
	UserID(ctx context.Context, token string) (uuid.UUID, error)
}

type AuthMiddlewareHandler struct {
	appSecretHash  string
	userResolver   userResolver
	metricsManager *metrics.Manager
	allowedPaths   map[string]bool

	// paths that only need the app secret, no user session yet
	secretOnlyPaths map[string]bool

	// secrets that already matched the hash
	verifiedSecrets sync.Map
}

func NewAuthMiddlewareHandler(
	appSecretHash string,
	userResolver userResolver,
	metricsManager *metrics.Manager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		appSecretHash:  appSecretHash,
		userResolver:   userResolver,
		metricsManager: metricsManager,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
		},
		secretOnlyPaths: map[string]bool{
			"/a/session": true,
		},
	}
}

func (h *AuthMiddlewareHandler) secretValid(secret string) bool {
	if secret == "" || h.appSecretHash == "" {
		return false
	}
	if _, ok := h.verifiedSecrets.Load(secret); ok {
		return true
	}
	if !pkg.CheckPasswordHash(secret, h.appSecretHash) {
		return false
	}
	h.verifiedSecrets.Store(secret, struct{}{})
	return true
}

func (h *AuthMiddlewareHandler) unauthorized(w http.ResponseWriter) {
	if h.metricsManager != nil {
		h.metricsManager.CounterUnauthorized.Inc()
	}
	http.Error(w, "no can do", http.StatusUnauthorized)
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if !h.secretValid(r.Header.Get(AppSecretHeader)) {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Tracef("[invalid app secret] [auth middleware] unauthorized => %s from %s", r.URL.Path, reqIp)
				h.unauthorized(w)
				span.SetStatus(codes.Error, "invalid-app-secret")
				return
			}

			if h.secretOnlyPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(SessionTokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				h.unauthorized(w)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.userResolver.UserID(ctx, authToken)
			if err != nil {
				if !errors.Is(err, auth.ErrNoSession) {
					log.Errorf("[failed session check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				}
				h.unauthorized(w)
				span.SetStatus(codes.Error, "no-session")
				return
			}

			span.SetAttributes(attribute.String("user.id", userID.String()))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
