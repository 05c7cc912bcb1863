package rest

import (
	"github.com/dailyjournal/journal/journal/application"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	posts *application.PostService
}

// NewApi registers the journal API routes on router.
func NewApi(router *gin.Engine, posts *application.PostService) {
	h := &Handler{posts: posts}

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/posts", h.ListPosts)
		apiGroup.GET("/posts/:postId", h.GetPost)
		apiGroup.POST("/posts", h.CreatePost)
		apiGroup.PUT("/posts/:postId", h.UpdatePost)
		apiGroup.DELETE("/posts/:postId", h.DeletePost)
		apiGroup.GET("/stats", h.GetStats)
	}
}
