package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type MajorHandler struct {
	majorService *services.MajorService
}

func NewMajorHandler(majorService *services.MajorService) *MajorHandler {
	return &MajorHandler{majorService: majorService}
}

// Create godoc
// @Summary Create a major
// @Tags majors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateMajorRequest true "Major data"
// @Success 201 {object} models.Major
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/majors [post]
func (h *MajorHandler) Create(c *gin.Context) {
	var req models.CreateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	major, err := h.majorService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": major, "message": "Major created"})
}

// List godoc
// @Summary List majors
// @Tags majors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Major
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/majors [get]
func (h *MajorHandler) List(c *gin.Context) {
	majors, err := h.majorService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": majors, "count": len(majors)})
}

// Get godoc
// @Summary Get a major
// @Tags majors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Major ID"
// @Success 200 {object} models.Major
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/majors/{id} [get]
func (h *MajorHandler) Get(c *gin.Context) {
	major, err := h.majorService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": major})
}

// Update godoc
// @Summary Update a major
// @Tags majors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Major ID"
// @Param request body models.UpdateMajorRequest true "Fields to update"
// @Success 200 {object} models.Major
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/majors/{id} [put]
func (h *MajorHandler) Update(c *gin.Context) {
	var req models.UpdateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	major, err := h.majorService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": major, "message": "Major updated"})
}

// Delete godoc
// @Summary Delete a major
// @Tags majors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Major ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/majors/{id} [delete]
func (h *MajorHandler) Delete(c *gin.Context) {
	if err := h.majorService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Major deleted"})
}
