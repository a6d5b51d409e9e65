package bluez

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestWrapErrorMessage(t *testing.T) {
	cause := dbus.NewError("org.bluez.Error.NotReady", []any{"Resource Not Ready"})

	err := wrapError(ErrDiscoveryStart, cause, "Failed to start discovery", "error_at", "test")

	assert.True(t, errors.Is(err, ErrDiscoveryStart))
	assert.False(t, errors.Is(err, ErrDiscoveryStop))
	assert.Contains(t, err.Error(), "Resource Not Ready")
	assert.NotContains(t, err.Error(), ErrDiscoveryStart.Error())
}
