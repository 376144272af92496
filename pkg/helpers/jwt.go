package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthenticatedAudience is the audience the hosted auth service puts on user tokens.
const AuthenticatedAudience = "authenticated"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingSub   = errors.New("token has no subject")
)

// Claims are the fields of a Supabase access token that the API relies on.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID is the auth user id, which is also the profile id.
func (c *Claims) UserID() string { return c.Subject }

// JWTVerifier validates HS256 access tokens signed with the project's JWT secret.
type JWTVerifier struct {
	Secret   []byte
	Audience string
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{Secret: []byte(secret), Audience: AuthenticatedAudience}
}

// Parse verifies signature, expiry and audience and returns the claims.
func (v *JWTVerifier) Parse(tokenStr string) (*Claims, error) {
	if len(v.Secret) == 0 {
		return nil, ErrInvalidToken
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if v.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.Audience))
	}
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.Secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSub
	}
	return claims, nil
}

// Sign issues a token shaped like the hosted auth service's. Used by local
// tooling (seed) to mint development sessions.
func (v *JWTVerifier) Sign(userID, email string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := &Claims{
		Email: email,
		Role:  AuthenticatedAudience,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{v.Audience},
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.Secret)
	return s, exp, err
}
