package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationPeriodHandler struct {
	periodService *services.RegistrationPeriodService
}

func NewRegistrationPeriodHandler(periodService *services.RegistrationPeriodService) *RegistrationPeriodHandler {
	return &RegistrationPeriodHandler{periodService: periodService}
}

// Create godoc
// @Summary Create a registration period
// @Tags registration-periods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateRegistrationPeriodRequest true "Registration period data"
// @Success 201 {object} models.RegistrationPeriod
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/registration-periods [post]
func (h *RegistrationPeriodHandler) Create(c *gin.Context) {
	var req models.CreateRegistrationPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	period, err := h.periodService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": period, "message": "Registration period created"})
}

// List godoc
// @Summary List registration periods
// @Tags registration-periods
// @Produce json
// @Security BearerAuth
// @Param semester_id query string false "Filter by semester"
// @Success 200 {array} models.RegistrationPeriod
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/registration-periods [get]
func (h *RegistrationPeriodHandler) List(c *gin.Context) {
	var periods []models.RegistrationPeriod
	var err error
	if semesterID := c.Query("semester_id"); semesterID != "" {
		periods, err = h.periodService.GetBySemester(semesterID)
	} else {
		periods, err = h.periodService.GetAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": periods, "count": len(periods)})
}

// Get godoc
// @Summary Get a registration period
// @Tags registration-periods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration period ID"
// @Success 200 {object} models.RegistrationPeriod
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/registration-periods/{id} [get]
func (h *RegistrationPeriodHandler) Get(c *gin.Context) {
	period, err := h.periodService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": period})
}

// Update godoc
// @Summary Update a registration period
// @Description Update a registration period. Closing it or clearing allow_registration takes effect immediately.
// @Tags registration-periods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration period ID"
// @Param request body models.UpdateRegistrationPeriodRequest true "Fields to update"
// @Success 200 {object} models.RegistrationPeriod
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/registration-periods/{id} [put]
func (h *RegistrationPeriodHandler) Update(c *gin.Context) {
	var req models.UpdateRegistrationPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	period, err := h.periodService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": period, "message": "Registration period updated"})
}

// Delete godoc
// @Summary Delete a registration period
// @Tags registration-periods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration period ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/registration-periods/{id} [delete]
func (h *RegistrationPeriodHandler) Delete(c *gin.Context) {
	if err := h.periodService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration period deleted"})
}
