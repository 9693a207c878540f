package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, OrderStatus("refunded").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())

	for _, s := range []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped} {
		assert.False(t, s.Terminal(), "expected %q to be non-terminal", s)
	}
}

func TestOrderStatus_Cancellable(t *testing.T) {
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusConfirmed.Cancellable())

	for _, s := range []OrderStatus{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.False(t, s.Cancellable(), "expected %q to not be cancellable", s)
	}
}

func TestOrderStatus_EditableMatchesCancellable(t *testing.T) {
	for _, s := range AllStatuses {
		assert.Equal(t, s.Cancellable(), s.Editable())
	}
}
