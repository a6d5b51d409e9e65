package bluez

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// Bus describes the parts of a DBus connection that a Session uses.
// A *dbus.Conn satisfies this interface.
type Bus interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	Close() error
}

// Options describes the configuration of a Session.
type Options struct {
	// Adapter is the name of the adapter to scan with, for example "hci0".
	Adapter string

	// Waiter blocks for the scan duration. It defaults to time.Sleep.
	Waiter func(time.Duration)

	// Status receives progress messages, such as "Discovery started...".
	Status func(string)

	// Warn receives errors that do not abort a scan.
	Warn func(error)
}

// Session describes a Bluez DBus session bound to a single adapter.
type Session struct {
	bus  Bus
	path dbus.ObjectPath

	opts Options
}

// Open connects to the system bus and returns a new session.
// The returned session must be closed by the caller.
func Open(opts Options) (*Session, error) {
	systemBus, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, wrapError(ErrConnection, err,
			"Failed to connect to system bus",
			"error_at", "open-systembus",
		)
	}

	return NewSession(systemBus, opts), nil
}

// NewSession returns a new session that uses an already established bus.
func NewSession(bus Bus, opts Options) *Session {
	if opts.Adapter == "" {
		opts.Adapter = DefaultAdapter
	}
	if opts.Waiter == nil {
		opts.Waiter = time.Sleep
	}
	if opts.Status == nil {
		opts.Status = func(string) {}
	}
	if opts.Warn == nil {
		opts.Warn = func(error) {}
	}

	return &Session{
		bus:  bus,
		path: AdapterPath(opts.Adapter),
		opts: opts,
	}
}

// AdapterPath returns the DBus path of the session's adapter.
func (s *Session) AdapterPath() dbus.ObjectPath {
	return s.path
}

// Close releases the bus connection. It is safe to call more than once.
func (s *Session) Close() error {
	if s.bus == nil {
		return nil
	}

	bus := s.bus
	s.bus = nil

	return bus.Close()
}
