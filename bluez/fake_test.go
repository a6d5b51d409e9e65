package bluez

import (
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/mock"
)

// fakeBus is a bus whose method calls are answered by mock expectations.
// Expectations are registered on "Call" with the object path, the method
// name and the method arguments.
type fakeBus struct {
	mock.Mock

	closed int
}

type fakeObject struct {
	dbus.BusObject

	bus  *fakeBus
	path dbus.ObjectPath
}

func (b *fakeBus) Object(_ string, path dbus.ObjectPath) dbus.BusObject {
	return &fakeObject{bus: b, path: path}
}

func (b *fakeBus) Close() error {
	b.closed++

	return nil
}

func (o *fakeObject) Call(method string, _ dbus.Flags, args ...any) *dbus.Call {
	ret := o.bus.MethodCalled("Call", append([]any{o.path, method}, args...)...)

	return ret.Get(0).(*dbus.Call)
}

func reply(body ...any) *dbus.Call {
	return &dbus.Call{Body: body}
}

func failed(name, message string) *dbus.Call {
	return &dbus.Call{Err: dbus.NewError(name, []any{message})}
}

type managedObjects = map[dbus.ObjectPath]map[string]map[string]dbus.Variant

func deviceObject(name, address string) map[string]map[string]dbus.Variant {
	return map[string]map[string]dbus.Variant{
		BluezDeviceIface: {
			"Name":    dbus.MakeVariant(name),
			"Address": dbus.MakeVariant(address),
		},
	}
}
