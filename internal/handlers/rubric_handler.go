package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type RubricHandler struct {
	rubricService *services.RubricService
}

func NewRubricHandler(rubricService *services.RubricService) *RubricHandler {
	return &RubricHandler{rubricService: rubricService}
}

// Create godoc
// @Summary Create a rubric
// @Tags rubrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateRubricRequest true "Rubric data"
// @Success 201 {object} models.Rubric
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/rubrics [post]
func (h *RubricHandler) Create(c *gin.Context) {
	var req models.CreateRubricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	rubric, err := h.rubricService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": rubric, "message": "Rubric created"})
}

// List godoc
// @Summary List rubrics
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Rubric
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/rubrics [get]
func (h *RubricHandler) List(c *gin.Context) {
	rubrics, err := h.rubricService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rubrics, "count": len(rubrics)})
}

// Get godoc
// @Summary Get a rubric
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rubric ID"
// @Success 200 {object} models.Rubric
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/rubrics/{id} [get]
func (h *RubricHandler) Get(c *gin.Context) {
	rubric, err := h.rubricService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rubric})
}

// Update godoc
// @Summary Update a rubric
// @Tags rubrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rubric ID"
// @Param request body models.UpdateRubricRequest true "Fields to update"
// @Success 200 {object} models.Rubric
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/rubrics/{id} [put]
func (h *RubricHandler) Update(c *gin.Context) {
	var req models.UpdateRubricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	rubric, err := h.rubricService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rubric, "message": "Rubric updated"})
}

// Delete godoc
// @Summary Delete a rubric
// @Tags rubrics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rubric ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/rubrics/{id} [delete]
func (h *RubricHandler) Delete(c *gin.Context) {
	if err := h.rubricService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rubric deleted"})
}
