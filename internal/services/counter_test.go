package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCounterService(db)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.Increment()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.Increment()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.Clear())

	count, err = svc.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
