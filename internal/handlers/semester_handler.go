package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type SemesterHandler struct {
	semesterService *services.SemesterService
}

func NewSemesterHandler(semesterService *services.SemesterService) *SemesterHandler {
	return &SemesterHandler{semesterService: semesterService}
}

// Create godoc
// @Summary Create a semester
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateSemesterRequest true "Semester data"
// @Success 201 {object} models.Semester
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/semesters [post]
func (h *SemesterHandler) Create(c *gin.Context) {
	var req models.CreateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	semester, err := h.semesterService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": semester, "message": "Semester created"})
}

// List godoc
// @Summary List semesters
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Semester
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/semesters [get]
func (h *SemesterHandler) List(c *gin.Context) {
	semesters, err := h.semesterService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": semesters, "count": len(semesters)})
}

// Get godoc
// @Summary Get a semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Semester ID"
// @Success 200 {object} models.Semester
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/semesters/{id} [get]
func (h *SemesterHandler) Get(c *gin.Context) {
	semester, err := h.semesterService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": semester})
}

// GetActive godoc
// @Summary Get the active semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Semester
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/semesters/active [get]
func (h *SemesterHandler) GetActive(c *gin.Context) {
	semester, err := h.semesterService.GetActive()
	if err != nil {
		respondError(c, err)
		return
	}
	if semester == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No active semester"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": semester})
}

// Update godoc
// @Summary Update a semester
// @Description Update a semester. Activating fails while another semester is active.
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Semester ID"
// @Param request body models.UpdateSemesterRequest true "Fields to update"
// @Success 200 {object} models.Semester
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/semesters/{id} [put]
func (h *SemesterHandler) Update(c *gin.Context) {
	var req models.UpdateSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	semester, err := h.semesterService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": semester, "message": "Semester updated"})
}

// Delete godoc
// @Summary Delete a semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Semester ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/semesters/{id} [delete]
func (h *SemesterHandler) Delete(c *gin.Context) {
	if err := h.semesterService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Semester deleted"})
}
