package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	ownerContextKey = "session_owner"
	bearerPrefix    = "Bearer "
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrMissingOwner = errors.New("session token has no subject")
)

// SessionClaims is the storefront session token. The subject is the owner
// id of the shopper.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionVerifier validates HS256 session tokens signed with a shared secret.
type SessionVerifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

func NewSessionVerifier(secret string, opts ...jwt.ParserOption) SessionVerifier {
	return SessionVerifier{
		secret: []byte(secret),
		opts:   append([]jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}, opts...),
	}
}

// Owner returns the subject of a valid token.
func (v SessionVerifier) Owner(token string) (string, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil || !parsed.Valid {
		return "", errors.Join(ErrInvalidToken, err)
	}

	owner := strings.TrimSpace(claims.Subject)
	if owner == "" {
		return "", ErrMissingOwner
	}
	return owner, nil
}

// Sign issues a token for owner. Used by tests and local tooling.
func (v SessionVerifier) Sign(claims SessionClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Session reads an optional bearer token. Without one the request continues
// anonymously and handlers decide whether a session is required; a token
// that does not verify is refused with 401.
func Session(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "needs login").SetInternal(ErrInvalidToken)
			}

			owner, err := verifier.Owner(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "needs login").SetInternal(err)
			}

			c.Set(ownerContextKey, owner)
			return next(c)
		}
	}
}

// Owner is the session owner set by Session; empty for anonymous requests.
func Owner(c echo.Context) string {
	owner, _ := c.Get(ownerContextKey).(string)
	return owner
}
