package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenValidity is the lifetime of an issued session token. The session
	// cookie expires at the same time so the two never disagree.
	TokenValidity = 24 * time.Hour

	tokenIssuer   = "ripple-api"
	tokenAudience = "ripple-client"
)

// Identity is the payload embedded in a session token. It is immutable once
// issued; a profile update does not rewrite tokens already in the wild.
type Identity struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type sessionClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies signed session tokens. It is safe for
// concurrent use; the secret and clock are fixed at construction.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// NewTokenCodec builds a codec around the given signing secret. An empty
// secret is a startup misconfiguration and must be caught by config
// validation before this constructor runs.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

// NewTokenCodecWithClock is NewTokenCodec with an injectable clock for tests.
func NewTokenCodecWithClock(secret string, now func() time.Time) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: now}
}

// Issue signs a token for the given identity, valid for TokenValidity.
func (t *TokenCodec) Issue(identity Identity) (string, error) {
	if len(t.secret) == 0 {
		return "", errors.New("signing secret not configured")
	}

	now := t.now()
	claims := sessionClaims{
		UserID: identity.ID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates a raw token string and extracts its identity payload.
// Every failure path (empty string, malformed token, signature mismatch,
// expiry, wrong issuer or audience) collapses to (nil, false); callers only
// ever branch on the boolean.
func (t *TokenCodec) Verify(raw string) (*Identity, bool) {
	if raw == "" {
		return nil, false
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}
	if claims.UserID == 0 {
		return nil, false
	}

	return &Identity{ID: claims.UserID, Email: claims.Email}, true
}

// FromRequest reads the session token from the request cookie and verifies
// it. Absent cookie behaves exactly like an invalid token.
func (t *TokenCodec) FromRequest(c *fiber.Ctx) (*Identity, bool) {
	return t.Verify(c.Cookies(CookieName))
}
