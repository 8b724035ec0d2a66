package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"resume-builder-backend/pkg/apperror"
)

const (
	Issuer = "resume-builder-api"

	// Audiences separate the user and admin token spaces. A user token
	// never authorizes an admin route and vice versa.
	AudienceUsers  = "users"
	AudienceAdmins = "admins"

	tokenTTL = 24 * time.Hour
)

// Claims is the signed payload carried by both user and admin tokens.
// The account id serializes under user_id for the users realm and
// admin_id for the admins realm. Role is empty for user tokens and
// "admin" or "super_admin" for admins.
type Claims struct {
	UserID  string `json:"user_id,omitempty"`
	AdminID string `json:"admin_id,omitempty"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AccountID returns the realm id claim, falling back to the registered
// subject for tokens minted by older builds.
func (c *Claims) AccountID() string {
	if c.UserID != "" {
		return c.UserID
	}
	if c.AdminID != "" {
		return c.AdminID
	}
	return c.Subject
}

type TokenManager struct {
	key []byte
}

func NewTokenManager(key string) *TokenManager {
	return &TokenManager{key: []byte(key)}
}

func (m *TokenManager) Generate(id, email, name, role, audience string) (string, error) {
	if len(m.key) == 0 {
		return "", apperror.Internal(nil)
	}

	now := time.Now()
	claims := Claims{
		Email: email,
		Name:  name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   id,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	if audience == AudienceAdmins {
		claims.AdminID = id
	} else {
		claims.UserID = id
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// Verify parses and validates a token, requiring the given audience.
// All failure modes (bad signature, expiry, wrong audience, alg confusion)
// collapse into a single Unauthorized error.
func (m *TokenManager) Verify(tokenString, audience string) (*Claims, error) {
	if len(m.key) == 0 {
		return nil, apperror.Unauthorized("Invalid Token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, apperror.Unauthorized("Invalid Token")
	}
	return claims, nil
}
