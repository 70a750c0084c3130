package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/api/metrics"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// PostHandler handles HTTP requests for the feed.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Content string `json:"content" validate:"required,max=3000"`
	Image   string `json:"image"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// Create handles POST /posts.
//
// @Summary      Create a feed post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  domain.Post
// @Failure      422   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), userID, req.Content, req.Image)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, post)
}

// Feed handles GET /posts.
//
// @Summary      Get the feed, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *PostHandler) Feed(c echo.Context) error {
	posts, err := h.service.Feed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /posts/:id.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// ToggleLike handles PUT /posts/:id/like.
//
// @Summary      Toggle a like on a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [put]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	post, err := h.service.ToggleLike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	action := "unlike"
	if post.LikedBy(userID) {
		action = "like"
	}
	metrics.PostLikesTotal.WithLabelValues(action).Inc()
	return c.JSON(http.StatusOK, post)
}

// Comment handles POST /posts/:id/comment.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post id"
// @Param        body  body      commentRequest  true  "Comment text"
// @Success      201   {object}  domain.Post
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /posts/{id}/comment [post]
func (h *PostHandler) Comment(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.service.Comment(c.Request().Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Delete handles DELETE /posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}
