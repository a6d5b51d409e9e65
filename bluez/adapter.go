package bluez

import "github.com/godbus/dbus/v5"

// StartDiscovery will put the adapter into "discovering" mode.
func (s *Session) StartDiscovery() error {
	if err := s.callAdapter("StartDiscovery", 0).Store(); err != nil {
		return wrapError(ErrDiscoveryStart, err,
			"Failed to start discovery",
			"error_at", "adapter-start-discovery",
			"adapter", string(s.path),
		)
	}

	return nil
}

// StopDiscovery will stop the "discovering" mode of the adapter.
func (s *Session) StopDiscovery() error {
	if err := s.callAdapter("StopDiscovery", 0).Store(); err != nil {
		return wrapError(ErrDiscoveryStop, err,
			"Failed to stop discovery",
			"error_at", "adapter-stop-discovery",
			"adapter", string(s.path),
		)
	}

	return nil
}

// callAdapter is used to interact with the bluez Adapter dbus interface.
// https://git.kernel.org/pub/scm/bluetooth/bluez.git/tree/doc/adapter-api.txt
func (s *Session) callAdapter(method string, flags dbus.Flags, args ...any) *dbus.Call {
	return s.bus.Object(BluezBusName, s.path).
		Call(BluezAdapterIface+"."+method, flags, args...)
}
