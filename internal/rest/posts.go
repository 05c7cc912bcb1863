package rest

import (
	"net/http"

	"github.com/dailyjournal/journal/api"
	"github.com/dailyjournal/journal/journal/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPosts(c *gin.Context) {
	filter := domain.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	posts, err := h.posts.List(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.PostsResponse{Ok: true, Posts: posts})
}

func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.PostResponse{Ok: true, Post: *post})
}

func (h *Handler) CreatePost(c *gin.Context) {
	post, err := h.posts.Create(c.Request.Context(), bindFields(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.PostResponse{Ok: true, Post: *post})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	post, err := h.posts.Update(c.Request.Context(), c.Param("postId"), bindFields(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.PostResponse{Ok: true, Post: *post})
}

func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("postId")); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.DeleteResponse{Ok: true})
}

// bindFields parses the request body. A malformed or empty body binds as
// an empty field set, which then fails headline validation downstream;
// bad JSON is not its own error kind.
func bindFields(c *gin.Context) domain.PostFields {
	var req api.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = api.PostRequest{}
	}
	return req.Fields()
}
