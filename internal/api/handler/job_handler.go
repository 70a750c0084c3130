package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkup/linkup-api/internal/api/metrics"
	"github.com/linkup/linkup-api/internal/core/domain"
	"github.com/linkup/linkup-api/internal/core/ports"
)

// JobHandler handles HTTP requests for the job board.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type salaryRequest struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type createJobRequest struct {
	Title        string        `json:"title" validate:"required"`
	Company      string        `json:"company" validate:"required"`
	Location     string        `json:"location" validate:"required"`
	Type         string        `json:"type" validate:"required,oneof=full-time part-time contract internship remote"`
	Description  string        `json:"description" validate:"required"`
	Requirements []string      `json:"requirements"`
	Salary       salaryRequest `json:"salary"`
	Deadline     string        `json:"deadline"`
}

type updateJobRequest struct {
	Title        *string        `json:"title,omitempty"`
	Company      *string        `json:"company,omitempty"`
	Location     *string        `json:"location,omitempty"`
	Type         *string        `json:"type,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Requirements *[]string      `json:"requirements,omitempty"`
	Salary       *domain.Salary `json:"salary,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

type applyRequest struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
}

type applicantStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles POST /jobs. Restricted to job posters and admins by RBAC.
//
// @Summary      Publish a job listing
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Listing details"
// @Success      201   {object}  domain.Job
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary: domain.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
		},
		Deadline: req.Deadline,
		PostedBy: userID,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.Type)).Inc()
	return c.JSON(http.StatusCreated, job)
}

// List handles GET /jobs with optional type, location and search filters.
//
// @Summary      Browse active job listings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        type      query  string  false  "Employment type"
// @Param        location  query  string  false  "Location substring"
// @Param        search    query  string  false  "Search over title, company and description"
// @Success      200  {array}  domain.Job
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context(), ports.ListJobsFilter{
		Type:     c.QueryParam("type"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job listing
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Update handles PUT /jobs/:id.
//
// @Summary      Update a job listing
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, role, ports.JobUpdate{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /jobs/:id.
//
// @Summary      Delete a job listing
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID, role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "job deleted"})
}

// Apply handles POST /jobs/:id/apply.
//
// @Summary      Apply to a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Job id"
// @Param        body  body      applyRequest  true  "Resume and cover letter"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:       c.Param("id"),
		UserID:      userID,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}

	metrics.JobApplicationsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "application submitted"})
}

// SetApplicantStatus handles PUT /jobs/:id/applicants/:applicantId.
//
// @Summary      Move an application to a new review state
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string                  true  "Job id"
// @Param        applicantId  path      string                  true  "Applicant entry id"
// @Param        body         body      applicantStatusRequest  true  "New status"
// @Success      200          {object}  messageResponse
// @Failure      400          {object}  map[string]string
// @Failure      403          {object}  map[string]string
// @Failure      404          {object}  map[string]string
// @Router       /jobs/{id}/applicants/{applicantId} [put]
func (h *JobHandler) SetApplicantStatus(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applicantStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.SetApplicantStatus(c.Request().Context(),
		c.Param("id"), c.Param("applicantId"), userID, role, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "applicant status updated"})
}

// Save handles POST /jobs/:id/save.
//
// @Summary      Save a job for later
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id}/save [post]
func (h *JobHandler) Save(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Save(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "job saved"})
}

// Unsave handles DELETE /jobs/:id/save.
//
// @Summary      Remove a job from the saved set
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Router       /jobs/{id}/save [delete]
func (h *JobHandler) Unsave(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Unsave(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "job unsaved"})
}
