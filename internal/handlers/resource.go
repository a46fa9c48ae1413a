package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kamilarndt/fabmanage-api/internal/dto"
	apierrors "github.com/kamilarndt/fabmanage-api/internal/errors"
	"github.com/kamilarndt/fabmanage-api/internal/models"
	"github.com/kamilarndt/fabmanage-api/internal/services"
)

type ResourceHandler struct {
	resourceService *services.ResourceService
}

func NewResourceHandler(resourceService *services.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// ListResources returns all resources, optionally filtered by category
func (h *ResourceHandler) ListResources(c *gin.Context) {
	var category *models.ResourceCategory
	if raw := c.Query("category"); raw != "" {
		cat := models.ResourceCategory(raw)
		category = &cat
	}

	resources, err := h.resourceService.ListResources(category)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to fetch resources")
		return
	}

	c.JSON(http.StatusOK, gin.H{"resources": dto.ToResourceDTOs(resources)})
}

// GetResource returns a specific resource by ID
func (h *ResourceHandler) GetResource(c *gin.Context) {
	resource, err := h.resourceService.GetResource(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			apierrors.NotFound(c, "Resource not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch resource")
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceDTO(*resource))
}

// CreateResource creates a new resource
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	type CreateResourceRequest struct {
		ID       string `json:"id" binding:"required"`
		Title    string `json:"title" binding:"required"`
		Color    string `json:"color"`
		Category string `json:"category" binding:"required"`
	}

	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	resource, err := h.resourceService.CreateResource(services.CreateResourceInput{
		ID:       req.ID,
		Title:    req.Title,
		Color:    req.Color,
		Category: models.ResourceCategory(req.Category),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrResourceIDMissing):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create resource")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceDTO(*resource))
}

// UpdateResource updates an existing resource
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	type UpdateResourceRequest struct {
		Title    *string `json:"title"`
		Color    *string `json:"color"`
		Category *string `json:"category"`
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateResourceInput{
		Title: req.Title,
		Color: req.Color,
	}
	if req.Category != nil {
		cat := models.ResourceCategory(*req.Category)
		input.Category = &cat
	}

	resource, err := h.resourceService.UpdateResource(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrResourceNotFound):
			apierrors.NotFound(c, "Resource not found")
		case errors.Is(err, services.ErrInvalidCategory), errors.Is(err, services.ErrTitleRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to update resource")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceDTO(*resource))
}

// DeleteResource deletes a resource. Events that reference it are left in
// place and drop out of resource-scoped views.
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	if err := h.resourceService.DeleteResource(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrResourceNotFound) {
			apierrors.NotFound(c, "Resource not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete resource")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully"})
}
