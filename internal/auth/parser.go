package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurpe/gigledger/internal/model"
)

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

type accessClaims struct {
	ProfileID string `json:"profile_id"`
	Role      string `json:"role"`
	Admin     bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Parse validates an HS256 access token and resolves the caller principal.
func (p *Parser) Parse(raw string) (model.Principal, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return p.secret, nil
	})
	if err != nil {
		return model.Principal{}, err
	}
	if !token.Valid {
		return model.Principal{}, fmt.Errorf("invalid token")
	}

	profileID, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		return model.Principal{}, fmt.Errorf("invalid profile_id claim: %w", err)
	}

	role := model.ProfileRole(claims.Role)
	switch role {
	case model.RoleClient, model.RoleContractor:
	default:
		return model.Principal{}, fmt.Errorf("unknown role claim %q", claims.Role)
	}

	return model.Principal{
		ProfileID: profileID,
		Role:      role,
		Admin:     claims.Admin,
	}, nil
}
