package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newTestManager(now time.Time) *TokenManager {
	m := NewTokenManager(Config{Secret: "test-secret", TTL: time.Hour, Issuer: "biblioteca"})
	m.now = func() time.Time { return now }
	return m
}

func TestTokenManager_IssueParse(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := newTestManager(now)

	token, claims, err := m.Issue(Profile{UserID: 7, Email: "ana@example.com", Role: RoleReader})
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, now.Add(time.Hour), claims.ExpiresAt.Time)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, claims.ID, parsed.ID)
	require.Equal(t, Profile{UserID: 7, Email: "ana@example.com", Role: RoleReader}, parsed.Profile)
}

func TestTokenManager_Parse(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := newTestManager(now)
	token, _, err := issuer.Issue(Profile{UserID: 1, Role: RoleLibrarian})
	require.NoError(t, err)

	tests := []struct {
		name    string
		manager *TokenManager
		token   string
		wantErr error
	}{
		{
			name:    "expired",
			manager: newTestManager(now.Add(2 * time.Hour)),
			token:   token,
			wantErr: ErrTokenExpired,
		},
		{
			name: "wrong key",
			manager: func() *TokenManager {
				m := NewTokenManager(Config{Secret: "other", TTL: time.Hour, Issuer: "biblioteca"})
				m.now = func() time.Time { return now }
				return m
			}(),
			token:   token,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage",
			manager: issuer,
			token:   "not.a.token",
			wantErr: ErrInvalidToken,
		},
		{
			name:    "unsigned",
			manager: issuer,
			token: func() string {
				s, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return s
			}(),
			wantErr: ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.manager.Parse(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	require.False(t, IsLibrarian(ctx))
	_, err := GetProfile(ctx)
	require.ErrorIs(t, err, ErrNoProfile)

	ctx = SetAuthContext(ctx, &Claims{Profile: Profile{UserID: 3, Role: RoleLibrarian}})
	p, err := GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), p.UserID)
	require.True(t, IsLibrarian(ctx))
	require.True(t, HasRole(ctx, RoleReader, RoleLibrarian))
	require.False(t, HasRole(ctx, RoleReader))
}
