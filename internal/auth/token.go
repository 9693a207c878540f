package auth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated principal extracted from a bearer token
// issued by the identity provider. Role claims are only ever taken from the
// verified token, never from the request body.
type Identity struct {
	UserID uint64
	Role   string
	Name   string
	Email  string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Claims struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 tokens signed with the secret shared with the
// identity provider.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	role := claims.Role
	if role == "" {
		role = RoleCustomer
	}

	return Identity{
		UserID: userID,
		Role:   role,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
