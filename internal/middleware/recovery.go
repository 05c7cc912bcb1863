package middleware

import (
	"fmt"
	"net/http"

	"github.com/dailyjournal/journal/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HandlePanics converts a handler panic into the standard error envelope.
func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		message := "internal server error"
		if err, ok := recovered.(error); ok {
			message = err.Error()
		} else if recovered != nil {
			message = fmt.Sprint(recovered)
		}

		log.Error().Str("path", c.Request.URL.Path).Msg("Recovered from panic: " + message)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Ok: false, Error: message})
	}
}
