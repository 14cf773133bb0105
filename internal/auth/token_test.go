package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/questdeckhq/questdeck/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	orgID := uuid.New()
	identity := &auth.Identity{
		UserID:         uuid.New(),
		Email:          "admin@acme.test",
		OrganizationID: &orgID,
		OrgAdmin:       true,
	}

	token, err := tm.Generate(identity)
	assert.NoError(t, err)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)

	got, err := claims.Identity()
	assert.NoError(t, err)
	assert.Equal(t, identity.UserID, got.UserID)
	assert.Equal(t, identity.Email, got.Email)
	assert.Equal(t, orgID, *got.OrganizationID)
	assert.True(t, got.OrgAdmin)
	assert.False(t, got.Superadmin)
}

func TestTokenWithoutOrganization(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate(&auth.Identity{UserID: uuid.New(), Email: "solo@example.test"})
	assert.NoError(t, err)

	claims, err := tm.Validate(token)
	assert.NoError(t, err)

	got, err := claims.Identity()
	assert.NoError(t, err)
	assert.Nil(t, got.OrganizationID)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	other := auth.NewTokenManager("another-secret", time.Hour)

	token, err := tm.Generate(&auth.Identity{UserID: uuid.New()})
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Generate(&auth.Identity{UserID: uuid.New()})
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}
