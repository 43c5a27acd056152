package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/database/repository"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/middleware"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/utils"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService        *services.TopicService
	registrationService *services.RegistrationService
}

func NewTopicHandler(topicService *services.TopicService, registrationService *services.RegistrationService) *TopicHandler {
	return &TopicHandler{
		topicService:        topicService,
		registrationService: registrationService,
	}
}

// Create godoc
// @Summary Create a topic
// @Description Create a topic. Teachers and admins create approved topics directly; students file pending proposals when proposals are enabled and the period is open.
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTopicRequest true "Topic data"
// @Success 201 {object} models.TopicResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics [post]
func (h *TopicHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	topic, err := h.topicService.Create(user, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    services.TopicToResponse(topic),
		"message": "Topic created",
	})
}

// List godoc
// @Summary List topics
// @Description List topics with filters and pagination
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param status query string false "Topic status (pending, approved)"
// @Param instructor_id query string false "Instructor ID"
// @Param category_id query string false "Category ID"
// @Param major_id query string false "Major ID"
// @Param period_id query string false "Registration period ID"
// @Param search query string false "Title search"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} models.TopicResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics [get]
func (h *TopicHandler) List(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	filter := repository.TopicFilter{
		Status:       c.Query("status"),
		InstructorID: c.Query("instructor_id"),
		CategoryID:   c.Query("category_id"),
		MajorID:      c.Query("major_id"),
		PeriodID:     c.Query("period_id"),
		Search:       c.Query("search"),
	}

	topics, total, err := h.topicService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       topics,
		"count":      total,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// Get godoc
// @Summary Get topic detail
// @Description Get a topic with its members and, for students, registration eligibility
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 200 {object} models.TopicDetailResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id} [get]
func (h *TopicHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	topicID := c.Param("id")

	topic, err := h.topicService.GetByID(topicID)
	if err != nil {
		respondError(c, err)
		return
	}

	detail := models.TopicDetailResponse{Topic: services.TopicToResponse(topic)}
	if user != nil && user.Role == models.RoleStudent {
		eligibility, err := h.registrationService.Eligibility(user.ID, topicID)
		if err != nil {
			respondError(c, err)
			return
		}
		detail.Eligibility = eligibility
	}

	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// Update godoc
// @Summary Update a topic
// @Description Update topic fields. Max members cannot drop below the approved member count.
// @Tags topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Param request body models.UpdateTopicRequest true "Fields to update"
// @Success 200 {object} models.TopicResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id} [put]
func (h *TopicHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req models.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	topic, err := h.topicService.Update(user, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services.TopicToResponse(topic), "message": "Topic updated"})
}

// Approve godoc
// @Summary Approve a topic proposal
// @Description Approve a pending student proposal, making it open for registration
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 200 {object} models.TopicResponse
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id}/approve [post]
func (h *TopicHandler) Approve(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	topic, err := h.topicService.ApproveProposal(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services.TopicToResponse(topic), "message": "Topic approved"})
}

// Delete godoc
// @Summary Delete a topic
// @Description Delete a topic without live membership records
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id} [delete]
func (h *TopicHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if err := h.topicService.Delete(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Topic deleted"})
}

// Mine godoc
// @Summary List own topics
// @Description List topics created by the caller
// @Tags topics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TopicResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/mine [get]
func (h *TopicHandler) Mine(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	topics, err := h.topicService.GetByCreator(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": topics, "count": len(topics)})
}
