package infrastructure

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// SessionCookieName is the cookie carrying the sealed session token.
const SessionCookieName = "weaver_session"

// SessionService seals a user identity into a signed token with an absolute
// expiry. Resolution of a bad token is never an error; it is the same as
// having no session at all.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{secret: []byte(secret), ttl: ttl}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue seals userID into a fresh token valid for the configured TTL.
func (s *SessionService) Issue(userID string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, entities.NotConfiguredError("SESSION_SECRET")
	}

	now := time.Now()
	expires := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": expires.Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Resolve returns the user ID sealed into the token, or ok=false for any
// malformed, unsigned or expired token.
func (s *SessionService) Resolve(token string) (string, bool) {
	if token == "" || len(s.secret) == 0 {
		return "", false
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", false
	}
	return sub, true
}
