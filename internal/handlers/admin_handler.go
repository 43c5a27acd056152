package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers user management and system settings
type AdminHandler struct {
	userService    *services.UserService
	settingService *services.SystemSettingService
}

func NewAdminHandler(userService *services.UserService, settingService *services.SystemSettingService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		settingService: settingService,
	}
}

// CreateUser godoc
// @Summary Create a user
// @Description Create a student, teacher or admin account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateUserRequest true "User data"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user.ToResponse(), "message": "User created"})
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by username or full name"
// @Param role query string false "Filter by role"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} models.UserResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	users, total, err := h.userService.List(page, pageSize, c.Query("search"), c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       users,
		"count":      total,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// GetUser godoc
// @Summary Get a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user.ToResponse()})
}

// UpdateUser godoc
// @Summary Update a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user.ToResponse(), "message": "User updated"})
}

// SetUserActive godoc
// @Summary Activate or deactivate a user
// @Description Deactivation invalidates the user's outstanding tokens
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.SetUserActiveRequest true "Active flag"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id}/active [post]
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var req models.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := h.userService.SetActive(c.Param("id"), req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user.ToResponse(), "message": "User status updated"})
}

// ResetPassword godoc
// @Summary Reset a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id}/reset-password [post]
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Param("id"), req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ListSettings godoc
// @Summary List system settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SystemSetting
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/admin/settings [get]
func (h *AdminHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings, "count": len(settings)})
}

// UpsertSetting godoc
// @Summary Create or update a system setting
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpsertSettingRequest true "Setting key and value"
// @Success 200 {object} models.SystemSetting
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/admin/settings [put]
func (h *AdminHandler) UpsertSetting(c *gin.Context) {
	var req models.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	setting, err := h.settingService.Upsert(req.Key, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": setting, "message": "Setting saved"})
}

// DeleteSetting godoc
// @Summary Delete a system setting
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/settings/{key} [delete]
func (h *AdminHandler) DeleteSetting(c *gin.Context) {
	if err := h.settingService.Delete(c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting deleted"})
}
