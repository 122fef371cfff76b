package middleware

import (
	"crypto/subtle"
	"errors"

	"github.com/gin-gonic/gin"
)

// ErrUnauthorized is returned when a request carries no valid credential
var ErrUnauthorized = errors.New("unauthorized")

// Principal identifies an authenticated caller
type Principal string

// Authenticator validates a request's credential and resolves the caller.
// Implementations decide where the credential lives (query parameter,
// header) and how it is checked.
type Authenticator interface {
	Authenticate(c *gin.Context) (Principal, error)
}

// SharedKeyAuth accepts requests whose "key" query parameter matches a
// configured secret. Used by the cron cleanup endpoint.
type SharedKeyAuth struct {
	Secret    string
	Principal Principal
}

func (a SharedKeyAuth) Authenticate(c *gin.Context) (Principal, error) {
	key := c.Query("key")
	if subtle.ConstantTimeCompare([]byte(key), []byte(a.Secret)) != 1 {
		return "", ErrUnauthorized
	}
	return a.Principal, nil
}
