package queries_test

import (
	"testing"

	"medship/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUndeliveredShipmentsQuery_Valid(t *testing.T) {
	query := queries.NewGetUndeliveredShipmentsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUndeliveredShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUndeliveredShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUndeliveredShipmentsQueryIsNotConstructed)
}
