package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/client"
)

// Error names returned in the "error" field of error bodies.
const (
	ErrNameBadRequest       = "BadRequestError"
	ErrNameUnauthorized     = "UnauthorizedError"
	ErrNameNotFound         = "NotFoundError"
	ErrNameMethodNotAllowed = "MethodNotAllowedError"
	ErrNameValidation       = "RequestValidationError"
	ErrNameInternal         = "InternalServerError"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

func respondError(c *gin.Context, status int, name string, detail any) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: name, Detail: detail})
}

// upstreamStatus maps an upstream failure to the reply status and error name.
// Only 400, 404 and 405 pass through; everything else is a 500.
func upstreamStatus(err error) (int, string) {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusBadRequest:
			return http.StatusBadRequest, ErrNameBadRequest
		case http.StatusNotFound:
			return http.StatusNotFound, ErrNameNotFound
		case http.StatusMethodNotAllowed:
			return http.StatusMethodNotAllowed, ErrNameMethodNotAllowed
		}
	}
	return http.StatusInternalServerError, ErrNameInternal
}
