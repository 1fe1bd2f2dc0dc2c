package cartrepo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("should match a pgx unique violation", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "idx_carts_customer_item"}

		assert.True(t, isUniqueViolation(err))
	})

	t.Run("should match a wrapped pgx unique violation", func(t *testing.T) {
		err := fmt.Errorf("save cart: %w", &pgconn.PgError{Code: "23505"})

		assert.True(t, isUniqueViolation(err))
	})

	t.Run("should not match other pg error codes", func(t *testing.T) {
		err := &pgconn.PgError{Code: "40001"}

		assert.False(t, isUniqueViolation(err))
	})

	t.Run("should not match plain errors", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection reset")))
	})
}
