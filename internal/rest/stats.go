package rest

import (
	"net/http"

	"github.com/dailyjournal/journal/api"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.posts.Stats(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.StatsResponse{
		Ok:         true,
		Total:      stats.Total,
		ByCategory: stats.ByCategory,
		LatestDate: stats.LatestDate,
	})
}
