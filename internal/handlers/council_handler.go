package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type CouncilHandler struct {
	councilService *services.CouncilService
}

func NewCouncilHandler(councilService *services.CouncilService) *CouncilHandler {
	return &CouncilHandler{councilService: councilService}
}

// Create godoc
// @Summary Create a council
// @Tags councils
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCouncilRequest true "Council data"
// @Success 201 {object} models.Council
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/councils [post]
func (h *CouncilHandler) Create(c *gin.Context) {
	var req models.CreateCouncilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	council, err := h.councilService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": council, "message": "Council created"})
}

// List godoc
// @Summary List councils
// @Tags councils
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Council
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/councils [get]
func (h *CouncilHandler) List(c *gin.Context) {
	councils, err := h.councilService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": councils, "count": len(councils)})
}

// Get godoc
// @Summary Get a council
// @Tags councils
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Success 200 {object} models.Council
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/councils/{id} [get]
func (h *CouncilHandler) Get(c *gin.Context) {
	council, err := h.councilService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": council})
}

// Update godoc
// @Summary Update a council
// @Tags councils
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Param request body models.UpdateCouncilRequest true "Fields to update"
// @Success 200 {object} models.Council
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/councils/{id} [put]
func (h *CouncilHandler) Update(c *gin.Context) {
	var req models.UpdateCouncilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	council, err := h.councilService.Update(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": council, "message": "Council updated"})
}

// Delete godoc
// @Summary Delete a council
// @Description Delete a council, detaching its assigned topics first
// @Tags councils
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/councils/{id} [delete]
func (h *CouncilHandler) Delete(c *gin.Context) {
	if err := h.councilService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Council deleted"})
}

// AddMember godoc
// @Summary Add a council member
// @Description Seat a teacher on the council. A user holds at most one seat per council.
// @Tags councils
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Param request body models.AddCouncilMemberRequest true "Member data"
// @Success 201 {object} models.CouncilMember
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/councils/{id}/members [post]
func (h *CouncilHandler) AddMember(c *gin.Context) {
	var req models.AddCouncilMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	member, err := h.councilService.AddMember(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": member, "message": "Council member added"})
}

// RemoveMember godoc
// @Summary Remove a council member
// @Tags councils
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/councils/{id}/members/{userId} [delete]
func (h *CouncilHandler) RemoveMember(c *gin.Context) {
	if err := h.councilService.RemoveMember(c.Param("id"), c.Param("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Council member removed"})
}

// AssignTopic godoc
// @Summary Assign a topic to a council
// @Description Assign an approved topic to the council for defense
// @Tags councils
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Param request body models.AssignCouncilTopicRequest true "Topic reference"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/councils/{id}/topics [post]
func (h *CouncilHandler) AssignTopic(c *gin.Context) {
	var req models.AssignCouncilTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.councilService.AssignTopic(c.Param("id"), req.TopicID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Topic assigned to council"})
}

// UnassignTopic godoc
// @Summary Detach a topic from its council
// @Tags councils
// @Produce json
// @Security BearerAuth
// @Param id path string true "Council ID"
// @Param topicId path string true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/councils/{id}/topics/{topicId} [delete]
func (h *CouncilHandler) UnassignTopic(c *gin.Context) {
	if err := h.councilService.UnassignTopic(c.Param("topicId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Topic detached from council"})
}
