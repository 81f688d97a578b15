// Package auth resolves bearer tokens issued by the identity provider to callers.
package auth

import (
	"context"
	"strings"
	"time"

	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtVerifier validates HS256 access tokens signed with the project's JWT secret.
type jwtVerifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// accessClaims is the subset of the access token payload read here.
type accessClaims struct {
	jwt.RegisteredClaims

	Role        string `json:"role,omitempty"`
	AppMetadata struct {
		Role string `json:"role,omitempty"`
	} `json:"app_metadata"`
}

// NewJWTVerifier is the constructor for jwtVerifier. The issuer is checked only when set.
func NewJWTVerifier(secret, issuer string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(secret),
		issuer: issuer,
		leeway: 30 * time.Second,
	}, nil
}

// Verify checks signature, expiry and subject, then reads the caller role.
func (v *jwtVerifier) Verify(_ context.Context, rawToken string) (*entity.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token has no subject")
	}

	return &entity.Caller{
		UserID: claims.Subject,
		Role:   resolveRole(claims.AppMetadata.Role, claims.Role),
	}, nil
}

// resolveRole returns the first known application role, falling back to customer.
// The top-level role claim usually carries the provider's own value ("authenticated").
func resolveRole(candidates ...string) entity.Role {
	for _, candidate := range candidates {
		role := entity.Role(strings.TrimSpace(candidate))
		if role.IsValid() {
			return role
		}
	}

	return entity.RoleCustomer
}
