package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"

	"simsea/internal/models"
)

type ctxKey string

const CtxActor ctxKey = "actor"

var errNoCredentials = errors.New("no credentials")

func writeJSONError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": code, "message": message})
}

// NewToken signs an HS256 token for actor.
func NewToken(secret string, actor models.Actor, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  actor.Username,
		"role": actor.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies tokenString and returns the actor it names.
func ParseToken(secret, tokenString string) (models.Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil || token == nil || !token.Valid {
		return models.Actor{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Actor{}, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return models.Actor{}, errors.New("invalid token subject")
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	return models.Actor{Username: sub, Role: role}, nil
}

func bearerActor(r *http.Request, secret string) (models.Actor, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Actor{}, errNoCredentials
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return models.Actor{}, errors.New("invalid Authorization header")
	}
	return ParseToken(secret, parts[1])
}

// Authenticate resolves the caller from a Bearer token or, failing that, from
// the session cookie set at login. Requests with neither get 401.
func Authenticate(secret string, store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := bearerActor(r, secret)
			if errors.Is(err, errNoCredentials) && store != nil {
				var ok bool
				actor, ok = SessionActor(r, store)
				if ok {
					err = nil
				}
			}
			if err != nil {
				message := "Authentication required"
				if !errors.Is(err, errNoCredentials) {
					message = err.Error()
				}
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", message)
				return
			}

			ctx := context.WithValue(r.Context(), CtxActor, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok || !actor.IsAdmin() {
			writeJSONError(w, http.StatusForbidden, "permission_denied", "Permission denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(CtxActor).(models.Actor)
	return actor, ok
}

// WithActor returns ctx carrying actor.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, CtxActor, actor)
}
