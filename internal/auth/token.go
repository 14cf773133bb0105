// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
	}
}

type Claims struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id,omitempty"`
	OrgAdmin       bool   `json:"org_admin,omitempty"`
	Superadmin     bool   `json:"superadmin,omitempty"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(identity *Identity) (string, error) {
	claims := Claims{
		UserID:     identity.UserID.String(),
		Email:      identity.Email,
		OrgAdmin:   identity.OrgAdmin,
		Superadmin: identity.Superadmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if identity.OrganizationID != nil {
		claims.OrganizationID = identity.OrganizationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Identity converts validated claims into a caller identity. The organization
// claim is advisory transport only; services re-read the organization record
// from the store before trusting anything about it.
func (c *Claims) Identity() (*Identity, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID claim: %w", err)
	}

	identity := &Identity{
		UserID:     userID,
		Email:      c.Email,
		OrgAdmin:   c.OrgAdmin,
		Superadmin: c.Superadmin,
	}

	if c.OrganizationID != "" {
		orgID, err := uuid.Parse(c.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("invalid organization ID claim: %w", err)
		}
		identity.OrganizationID = &orgID
	}

	return identity, nil
}
