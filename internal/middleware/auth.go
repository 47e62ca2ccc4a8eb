package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "roundup/internal/errors"
)

const (
	// TokenCookie is the cookie that carries the session token for browsers.
	TokenCookie = "token"
	// UserIDKey is the gin context key holding the authenticated user id.
	UserIDKey = "userID"

	tokenIssuer = "roundup-api"
)

// ErrInvalidToken is returned for malformed, forged or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// JWTClaims represents the claims in the JWT
type JWTClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with secret. Tokens expire
// ttl after issuance.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns how long issued tokens stay valid.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate issues a token asserting userID.
func (s *TokenService) Generate(userID string) (string, error) {
	now := s.now()
	claims := &JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies tokenString and returns the user id it asserts.
func (s *TokenService) Parse(tokenString string) (string, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// ResolveIdentity returns the user id asserted by the request's bearer
// header or, failing that, its token cookie. ok is false when neither
// carries a valid token.
func (s *TokenService) ResolveIdentity(r *http.Request) (userID string, ok bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if id, err := s.Parse(strings.TrimSpace(parts[1])); err == nil {
				return id, true
			}
		}
	}

	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		if id, err := s.Parse(cookie.Value); err == nil {
			return id, true
		}
	}

	return "", false
}

// RequireAuth aborts with 401 unless the request carries a valid token.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := tokens.ResolveIdentity(c.Request)
		if !ok {
			writeError(c, apperrors.ErrUnauthorized)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth records the caller's identity when present and never aborts.
func OptionalAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := tokens.ResolveIdentity(c.Request); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}
