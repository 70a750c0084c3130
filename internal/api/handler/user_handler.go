package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory and profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	Name           *string              `json:"name,omitempty"`
	Headline       *string              `json:"headline,omitempty"`
	Summary        *string              `json:"summary,omitempty"`
	Location       *string              `json:"location,omitempty"`
	Company        *string              `json:"company,omitempty"`
	Position       *string              `json:"position,omitempty"`
	ProfilePicture *string              `json:"profile_picture,omitempty"`
	Skills         *[]string            `json:"skills,omitempty"`
	Experience     *[]domain.Experience `json:"experience,omitempty"`
	Education      *[]domain.Education  `json:"education,omitempty"`
}

// List handles GET /users. Admin only, enforced by RBAC middleware.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id. Only the profile owner or an admin may
// update, and only the allow-listed profile fields ever reach storage.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actorID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), c.Param("id"), actorID, role, ports.ProfileUpdate{
		Name:           req.Name,
		Headline:       req.Headline,
		Summary:        req.Summary,
		Location:       req.Location,
		Company:        req.Company,
		Position:       req.Position,
		ProfilePicture: req.ProfilePicture,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Education:      req.Education,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id. Admin only, enforced by RBAC middleware.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
