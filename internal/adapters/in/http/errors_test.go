package http

import (
	"errors"
	"net/http"
	"testing"

	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "missing value maps to 400",
			err:      errs.NewValueIsRequiredError("quantity"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid value maps to 400",
			err:      errs.NewValueIsInvalidError("latitude"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "authorization failure maps to 403",
			err:      errs.NewNotAuthorizedError("order", "update status"),
			expected: http.StatusForbidden,
		},
		{
			name:     "missing object maps to 404",
			err:      errs.NewObjectNotFoundError("order", nil),
			expected: http.StatusNotFound,
		},
		{
			name:     "uniqueness conflict maps to 409",
			err:      errs.NewConflictError("order", "FC-20260829-0001"),
			expected: http.StatusConflict,
		},
		{
			name:     "rejected transition maps to 422",
			err:      errs.NewInvalidTransitionError("pending", "delivered"),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "unclassified error maps to 500",
			err:      errors.New("connection reset"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, statusFromError(test.err))
		})
	}
}
