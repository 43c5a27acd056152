package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.ErrTopicNotFound, http.StatusNotFound},
		{services.ErrUserNotFound, http.StatusNotFound},
		{services.ErrSettingNotFound, http.StatusNotFound},
		{services.ErrNotInstructor, http.StatusForbidden},
		{services.ErrProposalsDisabled, http.StatusForbidden},
		{services.ErrRegistrationClosed, http.StatusConflict},
		{services.ErrTopicFull, http.StatusConflict},
		{services.ErrAlreadyRegistered, http.StatusConflict},
		{services.ErrNoPendingRequest, http.StatusConflict},
		{services.ErrTopicHasMembers, http.StatusConflict},
		{services.ErrUsernameExists, http.StatusConflict},
		{services.ErrMaxBelowApproved, http.StatusBadRequest},
		{services.ErrInvalidDateRange, http.StatusBadRequest},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, statusForError(tc.err), "error: %v", tc.err)
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", services.ErrTopicFull)
	assert.Equal(t, http.StatusConflict, statusForError(wrapped))
}
