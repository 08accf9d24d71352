package service

import (
	"context"
	"testing"

	"eduhub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressRejectsUnknownStatus(t *testing.T) {
	svc := NewEnrollmentService(nil)

	_, err := svc.UpdateProgress(context.Background(), "ENROLL_001", "paused", 50)

	var vErr *util.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "Status must be 'active', 'completed' or 'dropped'")
}
