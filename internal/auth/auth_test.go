package auth

import (
	"context"
	"testing"
	"time"

	"gamereviews/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

func testUser() models.User {
	return models.User{Username: "mallionaire", Name: "haz", AvatarURL: "https://example.com/haz.png"}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "gamereviews-test", time.Hour)

	token, err := issuer.Issue(testUser(), models.AccessLevelAdmin)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "mallionaire", claims.Username)
	assert.Equal(t, "haz", claims.Name)
	assert.Equal(t, "https://example.com/haz.png", claims.AvatarURL)
	assert.Equal(t, "gamereviews-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, models.Identity{Username: "mallionaire", AccessLevel: models.AccessLevelAdmin}, claims.Identity())
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "gamereviews-test", time.Hour)

	first, err := issuer.Issue(testUser(), models.AccessLevelUser)
	require.NoError(t, err)
	second, err := issuer.Issue(testUser(), models.AccessLevelUser)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenIssuer_Verify_Rejects(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "gamereviews-test", time.Hour)
	valid, err := issuer.Issue(testUser(), models.AccessLevelUser)
	require.NoError(t, err)

	expiredIssuer := NewTokenIssuer(testSecret, "gamereviews-test", time.Hour)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredIssuer.Issue(testUser(), models.AccessLevelUser)
	require.NoError(t, err)

	otherSecret, err := NewTokenIssuer("another-secret-key-that-is-long-enough-123", "gamereviews-test", time.Hour).
		Issue(testUser(), models.AccessLevelUser)
	require.NoError(t, err)

	otherIssuer, err := NewTokenIssuer(testSecret, "someone-else", time.Hour).Issue(testUser(), models.AccessLevelUser)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "mallionaire",
		"iss":      "gamereviews-test",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"wrong issuer", otherIssuer},
		{"tampered", valid[:len(valid)-2] + "xx"},
		{"garbage", "not-a-token"},
		{"alg none", noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := issuer.Verify(tt.token)
			assert.Nil(t, claims)
			require.Error(t, err)

			appErr, ok := models.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 401, appErr.Status)
			assert.Equal(t, models.MsgInvalidToken, appErr.Message)
		})
	}
}

func TestClaims_IdentityDefaultsToUser(t *testing.T) {
	claims := &Claims{Username: "bainesface"}
	assert.Equal(t, models.AccessLevelUser, claims.Identity().AccessLevel)
	assert.False(t, claims.Identity().IsAdmin())
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 2)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "mallionaire")
	require.NoError(t, err)
	assert.NotEqual(t, "mallionaire", hash)

	ok, err := h.Compare(ctx, hash, "mallionaire")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(ctx, hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := h.Hash(ctx, "mallionaire")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 1)
	ok, err := h.Compare(context.Background(), "not-a-bcrypt-hash", "x")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestPasswordHasher_CancelledContext(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost, 1)
	require.True(t, h.sem.TryAcquire(1))
	defer h.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Hash(ctx, "password")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCanModify(t *testing.T) {
	tests := []struct {
		name    string
		caller  models.Identity
		owner   string
		allowed bool
	}{
		{"owner", models.Identity{Username: "mallionaire", AccessLevel: "user"}, "mallionaire", true},
		{"other user", models.Identity{Username: "mallionaire", AccessLevel: "user"}, "philippaclaire9", false},
		{"admin", models.Identity{Username: "mallionaire", AccessLevel: "admin"}, "philippaclaire9", true},
		{"anonymous token", models.Identity{AccessLevel: "user"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanModify(tt.caller, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, models.IsKind(err, models.KindForbidden))
		})
	}
}
