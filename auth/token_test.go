package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("remo", time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("remo", claims.Username)
}

func TestTokenFailsClosed(t *testing.T) {
	req := require.New(t)

	valid, err := GenerateToken("remo", time.Hour)
	req.NoError(err)

	expired, err := GenerateToken("remo", -time.Minute)
	req.NoError(err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"tampered signature", valid[:len(valid)-2] + "xx"},
		{"truncated", valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token)
			require.Error(t, err)
		})
	}
}

func TestTokenRejectsForeignSignature(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("remo", time.Hour)
	req.NoError(err)

	SetSecret("a-different-secret")
	defer SetSecret("dev-secret-change-me")

	_, err = ValidateToken(token)
	req.Error(err)
}
