package rest

import (
	"errors"
	"net/http"

	"github.com/dailyjournal/journal/api"
	"github.com/dailyjournal/journal/journal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// fail writes the error envelope with the given status.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, api.ErrorResponse{Ok: false, Error: message})
}

// handleError maps domain errors onto the HTTP contract: validation
// failures become 400s, missing ids become 404s, everything else is a
// storage failure surfaced as a 500 with the underlying message.
func handleError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		fail(c, http.StatusBadRequest, validationErr.Reason)
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		fail(c, http.StatusNotFound, "Not found")
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	fail(c, http.StatusInternalServerError, err.Error())
}
