package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/pkg/helpers"
)

const CtxRequesterKey = "requester"

// ErrMissingToken is returned by ResolveRequired when no bearer token is sent.
var ErrMissingToken = errors.New("missing bearer token")

// TokenDecoder verifies a token and returns its claims.
type TokenDecoder interface {
	Decode(token string) (*helpers.Claims, error)
}

func requesterFromClaims(c *helpers.Claims) (entity.Requester, error) {
	if c.UserID == "" {
		return entity.Anonymous(), helpers.ErrInvalidToken
	}
	return entity.Requester{ID: c.UserID, Role: entity.Role(c.Role)}, nil
}

// ResolveRequired returns the requester for an Authorization header value and
// fails when the header is missing, malformed or carries an invalid token.
func ResolveRequired(header string, dec TokenDecoder) (entity.Requester, error) {
	tok, ok := helpers.BearerToken(header)
	if !ok {
		return entity.Anonymous(), ErrMissingToken
	}
	claims, err := dec.Decode(tok)
	if err != nil {
		return entity.Anonymous(), err
	}
	return requesterFromClaims(claims)
}

// ResolveOptional is ResolveRequired with every failure mapped to the
// anonymous requester.
func ResolveOptional(header string, dec TokenDecoder) entity.Requester {
	r, err := ResolveRequired(header, dec)
	if err != nil {
		return entity.Anonymous()
	}
	return r
}

// OptionalSession stores the resolved requester in the context. Requests
// without a usable token continue as anonymous.
func OptionalSession(dec TokenDecoder, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := ResolveRequired(c.GetHeader("Authorization"), dec)
		if err != nil && !errors.Is(err, ErrMissingToken) && logger != nil {
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Debug("ignoring unusable token")
		}
		c.Set(CtxRequesterKey, r)
		c.Next()
	}
}

// RequesterFrom returns the requester stored by OptionalSession, or the
// anonymous requester when none was stored.
func RequesterFrom(c *gin.Context) entity.Requester {
	if v, ok := c.Get(CtxRequesterKey); ok {
		if r, ok := v.(entity.Requester); ok {
			return r
		}
	}
	return entity.Anonymous()
}
