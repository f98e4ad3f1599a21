package authn

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator is the credential-validation collaborator the gate
// delegates to. Implementations map their internal failure modes onto the
// package sentinels: ErrTokenExpired, ErrTokenInvalid, ErrTokenMissing.
// Any other error, and a nil identity with a nil error, are treated by the
// gate as a generic authentication failure.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*Identity, error)
}

// Claims is the JWT payload shape the service issues and consumes.
type Claims struct {
	jwt.RegisteredClaims
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	TenantID string   `json:"tenant_id,omitempty"`
}

// JWTValidator validates HS256-signed bearer tokens with a shared secret.
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator creates a validator for the given signing secret.
func NewJWTValidator(secret string) (*JWTValidator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTValidator{secret: []byte(secret)}, nil
}

// Validate parses and verifies the token, returning the caller identity.
// An expired token still yields the identity parsed from its claims
// alongside ErrTokenExpired, so callers can observe who presented it;
// the error takes precedence for the accept/reject decision.
func (v *JWTValidator) Validate(_ context.Context, tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return identityFromClaims(claims), errors.Join(ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, errors.Join(ErrTokenInvalid, err)
		default:
			return nil, err
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return identityFromClaims(claims), nil
}

func identityFromClaims(claims *Claims) *Identity {
	if claims.Subject == "" {
		return nil
	}
	return &Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Roles:    claims.Roles,
		TenantID: claims.TenantID,
	}
}
