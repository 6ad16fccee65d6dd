package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusConfirmed))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.True(t, IsValidStatus(StatusCompleted))

	assert.False(t, IsValidStatus("ARCHIVED"))
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
	}
	for _, tr := range allowed {
		assert.NoError(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusCompleted},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusPending, StatusPending},
	}
	for _, tr := range denied {
		err := CanTransition(tr.from, tr.to)
		assert.Error(t, err, "%s -> %s", tr.from, tr.to)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	}
}

func TestBlocks(t *testing.T) {
	assert.True(t, Blocks(StatusPending))
	assert.True(t, Blocks(StatusConfirmed))
	assert.False(t, Blocks(StatusCancelled))
	assert.False(t, Blocks(StatusCompleted))
}
