package handlers

import (
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
	}
}

// Register godoc
// @Summary Register for a topic
// @Description Submit a registration request for an approved topic. Fails when the period is closed, the topic is full, or the student already has an active registration.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 201 {object} models.TopicMemberResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id}/register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	studentID := c.MustGet("user_id").(string)
	topicID := c.Param("id")

	member, err := h.registrationService.Register(studentID, topicID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    member.ToResponse(),
		"message": "Registration request submitted",
	})
}

// Cancel godoc
// @Summary Cancel a pending registration
// @Description Withdraw the caller's own pending registration request. Approved memberships cannot be cancelled.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id}/register [delete]
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	studentID := c.MustGet("user_id").(string)
	topicID := c.Param("id")

	if err := h.registrationService.Cancel(studentID, topicID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration request cancelled"})
}

// Decide godoc
// @Summary Decide a registration request
// @Description Approve or reject a pending registration request on a topic the caller instructs. Approval fails when the topic is already full.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Param studentId path string true "Student ID"
// @Param request body models.DecideRegistrationRequest true "Decision (approve or reject) with optional feedback"
// @Success 200 {object} models.TopicMemberResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id}/members/{studentId}/decision [post]
func (h *RegistrationHandler) Decide(c *gin.Context) {
	teacherID := c.MustGet("user_id").(string)
	topicID := c.Param("id")
	studentID := c.Param("studentId")

	var req models.DecideRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	member, err := h.registrationService.Decide(teacherID, studentID, topicID, req.Action, req.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    member.ToResponse(),
		"message": "Decision applied",
	})
}

// Remove godoc
// @Summary Remove an approved member
// @Description Remove an approved student from a topic the caller instructs, freeing a capacity slot
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Param studentId path string true "Student ID"
// @Param request body models.RemoveMemberRequest false "Removal reason"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id}/members/{studentId} [delete]
func (h *RegistrationHandler) Remove(c *gin.Context) {
	teacherID := c.MustGet("user_id").(string)
	topicID := c.Param("id")
	studentID := c.Param("studentId")

	var req models.RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Reason = ""
	}

	if err := h.registrationService.Remove(teacherID, studentID, topicID, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}

// ListMembers godoc
// @Summary List topic members
// @Description List all membership records of a topic, including pending and rejected ones
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Success 200 {array} models.TopicMemberResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/topics/{id}/members [get]
func (h *RegistrationHandler) ListMembers(c *gin.Context) {
	topicID := c.Param("id")

	members, err := h.registrationService.ListTopicMembers(topicID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.TopicMemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, members[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"data": responses, "count": len(responses)})
}

// MyRegistrations godoc
// @Summary List own registrations
// @Description List the caller's membership records across all topics, including rejected ones with feedback
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RegistrationResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/registrations/me [get]
func (h *RegistrationHandler) MyRegistrations(c *gin.Context) {
	studentID := c.MustGet("user_id").(string)

	members, err := h.registrationService.ListStudentRegistrations(studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.RegistrationResponse, 0, len(members))
	for i := range members {
		resp := models.RegistrationResponse{Member: members[i].ToResponse()}
		if members[i].Topic != nil {
			resp.Topic = services.TopicToResponse(members[i].Topic)
		}
		responses = append(responses, resp)
	}

	c.JSON(http.StatusOK, gin.H{"data": responses, "count": len(responses)})
}
