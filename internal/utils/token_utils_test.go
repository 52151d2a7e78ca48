package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("session-123", testSecret, time.Hour, "pricex")
	require.NoError(t, err)

	sessionID, err := ParseSessionToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestParseSessionToken_Rejects(t *testing.T) {
	expired, err := GenerateSessionToken("session-123", testSecret, -time.Minute, "pricex")
	require.NoError(t, err)
	noSubject, err := GenerateSessionToken("", testSecret, time.Hour, "pricex")
	require.NoError(t, err)
	otherKey, err := GenerateSessionToken("session-123", "another-secret", time.Hour, "pricex")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: jwt.ErrTokenExpired},
		{name: "missing subject", token: noSubject, wantErr: ErrMissingSessionID},
		{name: "wrong key", token: otherKey, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.token, testSecret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
