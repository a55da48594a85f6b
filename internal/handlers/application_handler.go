package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/headhunt/headhunt-helper/internal/dtos"
	"github.com/headhunt/headhunt-helper/internal/models"
	"github.com/headhunt/headhunt-helper/internal/repository"
	"github.com/headhunt/headhunt-helper/internal/services"
)

type ApplicationHandler struct {
	Apps      *services.ApplicationService
	Extractor *services.ExtractorService
}

func NewApplicationHandler(apps *services.ApplicationService, extractor *services.ExtractorService) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Extractor: extractor}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// List is GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Apps.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Get is GET /api/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	app, err := h.Apps.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch application: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create is POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, ok := modelFromRequest(c, &req)
	if !ok {
		return
	}
	if err := h.Apps.Create(app); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Update is PUT /api/applications/:id — a full-record replacement.
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, ok := modelFromRequest(c, &req)
	if !ok {
		return
	}
	updated, err := h.Apps.Update(id, app)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete is DELETE /api/applications/:id. Deleting a nonexistent
// identifier is a no-op, not an error.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Apps.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application: " + err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// SearchByCompany is GET /api/applications/search/company?companyName=
func (h *ApplicationHandler) SearchByCompany(c *gin.Context) {
	apps, err := h.Apps.SearchByCompany(c.Query("companyName"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// SearchByPosition is GET /api/applications/search/position?position=
func (h *ApplicationHandler) SearchByPosition(c *gin.Context) {
	apps, err := h.Apps.SearchByPosition(c.Query("position"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByStatus is GET /api/applications/status/:status
func (h *ApplicationHandler) ListByStatus(c *gin.Context) {
	status, ok := models.ParseStatus(c.Param("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status: " + c.Param("status")})
		return
	}
	apps, err := h.Apps.GetByStatus(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ExtractFromHTML is POST /api/applications/html. The body is the raw
// job-posting HTML; the response is the extraction result, or a single
// structured error object on any pipeline failure.
func (h *ApplicationHandler) ExtractFromHTML(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain HTML content"})
		return
	}
	result, err := h.Extractor.ExtractAndCreate(c.Request.Context(), string(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error processing HTML: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID: " + c.Param("id")})
		return 0, false
	}
	return uint(id), true
}

// modelFromRequest maps the validated payload onto the storage model,
// rejecting unknown status values before anything touches the store.
func modelFromRequest(c *gin.Context, req *dtos.ApplicationRequest) (*models.JobApplication, bool) {
	status := models.StatusApplied
	if req.Status != "" {
		parsed, ok := models.ParseStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status: " + req.Status})
			return nil, false
		}
		status = parsed
	}
	return &models.JobApplication{
		CompanyName:   req.CompanyName,
		Position:      req.Position,
		JobURL:        req.JobURL,
		JobWebsite:    req.JobWebsite,
		Status:        status,
		AppliedDate:   req.AppliedDate,
		Location:      req.Location,
		Salary:        req.Salary,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		Notes:         req.Notes,
	}, true
}
