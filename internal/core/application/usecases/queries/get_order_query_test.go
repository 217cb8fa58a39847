package queries_test

import (
	"testing"

	"barista/internal/core/application/usecases/queries"
	"barista/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		sessionID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(sessionID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.SessionID().IsEqual(sessionID))
	})

	t.Run("should fail with unconstructed session id", func(t *testing.T) {
		var sessionID kernel.UUID

		_, err := queries.NewGetOrderQuery(sessionID)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value query", func(t *testing.T) {
		var query queries.GetOrderQuery

		assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, query.Validate())
	})
}
