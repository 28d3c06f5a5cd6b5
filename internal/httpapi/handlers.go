package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sandrosmarzaro/starwars-func-api/pkg/query"
)

// DocumentationURL is advertised by the root listing.
const DocumentationURL = "https://swapi.dev/documentation"

type handlers struct {
	resolver   Resolver
	gatewayURL string
	logger     zerolog.Logger
}

func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// root lists one query URL per resource.
func (h *handlers) root(c *gin.Context) {
	body := gin.H{"documentation": DocumentationURL}
	for _, r := range query.Resources {
		body[string(r)] = h.gatewayURL + "/api/v1/swapi?resource=" + string(r)
	}
	c.JSON(http.StatusOK, body)
}

func (h *handlers) swapi(c *gin.Context) {
	var q query.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusUnprocessableEntity, ErrNameValidation, query.ValidationErrors{{
			Tag:     "parse",
			Message: err.Error(),
		}})
		return
	}

	if err := q.Validate(); err != nil {
		var verrs query.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(c, http.StatusUnprocessableEntity, ErrNameValidation, verrs)
			return
		}
		respondError(c, http.StatusUnprocessableEntity, ErrNameValidation, err.Error())
		return
	}

	doc, err := h.resolver.Resolve(c.Request.Context(), q)
	if err != nil {
		status, name := upstreamStatus(err)
		h.logger.Error().
			Err(err).
			Str("request_id", GetRequestID(c)).
			Str("resource", string(q.Resource)).
			Int("status_code", status).
			Msg("Query failed")
		respondError(c, status, name, http.StatusText(status))
		return
	}

	c.JSON(http.StatusOK, doc)
}
