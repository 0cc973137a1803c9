package utils // package utils provides helpers for token creation and hashing

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Purpose distinguishes what a signed token may be used for.  A verification
// link token must never open a session and a session token must never verify
// an account.
type Purpose string

const (
	PurposeSession Purpose = "session" // login session, carried by cookie or bearer header
	PurposeVerify  Purpose = "verify"  // e-mail verification link
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrWrongPurpose = errors.New("token purpose mismatch")
)

// Claims is the payload of every signed token.  The subject of the token is
// the user id.
type Claims struct {
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// UserID returns the id embedded in the token.
func (c *Claims) UserID() string { return c.Subject }

// SignedToken is a serialized JWT along with its expiry.
type SignedToken struct {
	Token string
	Exp   time.Time
}

// NewToken builds and signs an HS256 JWT for userID that expires after ttl.
func NewToken(secret, userID string, purpose Purpose, ttl time.Duration) (SignedToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := &Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return SignedToken{}, err
	}
	return SignedToken{Token: signed, Exp: exp}, nil
}

// ParseToken validates signature, expiry and purpose and returns the claims.
func ParseToken(secret, raw string, purpose Purpose) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Reject anything that is not HMAC so a forged "none" or RSA header
		// cannot be verified against the shared secret.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	if claims.Purpose != purpose {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}
