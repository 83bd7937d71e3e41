package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurpe/gigledger/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseValidToken(t *testing.T) {
	profileID := uuid.New()
	raw := signToken(t, testSecret, jwt.MapClaims{
		"profile_id": profileID.String(),
		"role":       "client",
		"admin":      true,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	principal, err := NewParser(testSecret).Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.ProfileID != profileID {
		t.Errorf("profile id = %s, want %s", principal.ProfileID, profileID)
	}
	if principal.Role != model.RoleClient {
		t.Errorf("role = %s, want client", principal.Role)
	}
	if !principal.Admin {
		t.Error("admin flag lost")
	}
}

func TestParseRejects(t *testing.T) {
	profileID := uuid.New().String()
	tests := []struct {
		name   string
		secret string
		claims jwt.MapClaims
	}{
		{
			name:   "wrong secret",
			secret: "other-secret",
			claims: jwt.MapClaims{"profile_id": profileID, "role": "client"},
		},
		{
			name:   "expired",
			secret: testSecret,
			claims: jwt.MapClaims{
				"profile_id": profileID,
				"role":       "client",
				"exp":        time.Now().Add(-time.Hour).Unix(),
			},
		},
		{
			name:   "unknown role",
			secret: testSecret,
			claims: jwt.MapClaims{"profile_id": profileID, "role": "superuser"},
		},
		{
			name:   "missing profile id",
			secret: testSecret,
			claims: jwt.MapClaims{"role": "client"},
		},
		{
			name:   "malformed profile id",
			secret: testSecret,
			claims: jwt.MapClaims{"profile_id": "not-a-uuid", "role": "client"},
		},
	}

	parser := NewParser(testSecret)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := signToken(t, tt.secret, tt.claims)
			if _, err := parser.Parse(raw); err == nil {
				t.Error("Parse succeeded, want error")
			}
		})
	}
}
