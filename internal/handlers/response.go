package handlers

import (
	"errors"
	"net/http"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// statusForError maps service-level errors to HTTP status codes. Unknown
// errors fall through to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrTopicNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrSemesterNotFound),
		errors.Is(err, services.ErrPeriodNotFound),
		errors.Is(err, services.ErrCouncilNotFound),
		errors.Is(err, services.ErrRubricNotFound),
		errors.Is(err, services.ErrMajorNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrSettingNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotInstructor),
		errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrProposalsDisabled),
		errors.Is(err, services.ErrCouncilMemberIsUser):
		return http.StatusForbidden
	case errors.Is(err, services.ErrRegistrationClosed),
		errors.Is(err, services.ErrTopicNotApproved),
		errors.Is(err, services.ErrTopicFull),
		errors.Is(err, services.ErrAlreadyRegistered),
		errors.Is(err, services.ErrNoPendingRequest),
		errors.Is(err, services.ErrNoApprovedMember),
		errors.Is(err, services.ErrTopicHasMembers),
		errors.Is(err, services.ErrActiveSemesterExists),
		errors.Is(err, services.ErrCouncilSeatTaken),
		errors.Is(err, services.ErrUsernameExists),
		errors.Is(err, services.ErrMajorCodeExists),
		errors.Is(err, services.ErrTopicNotApprovedYet):
		return http.StatusConflict
	case errors.Is(err, services.ErrMaxBelowApproved),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidSemesterStatus),
		errors.Is(err, services.ErrInvalidPeriodStatus),
		errors.Is(err, services.ErrInvalidCouncilStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standard error envelope
func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"message": err.Error()})
}

// respondBadRequest writes a 400 with binding details
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "details": err.Error()})
}
