package bluez

import "github.com/godbus/dbus/v5"

// The DBus specific bus and property names.
const (
	DbusGetPropertiesIface = "org.freedesktop.DBus.Properties.Get"
	DbusObjectManagerIface = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"

	BluezBusName      = "org.bluez"
	BluezAdapterIface = "org.bluez.Adapter1"
	BluezDeviceIface  = "org.bluez.Device1"

	BluezRootPath = dbus.ObjectPath("/")
	BluezBasePath = "/org/bluez"
)

// DefaultAdapter is the name of the adapter used when none is specified.
const DefaultAdapter = "hci0"

// Fallback values for device properties that cannot be read.
const (
	UnknownDevice  = "Unknown Device"
	UnknownAddress = "Unknown Address"
)

// AdapterPath returns the Bluez DBus path of the named adapter.
// For example, "hci0" maps to "/org/bluez/hci0".
func AdapterPath(adapter string) dbus.ObjectPath {
	return dbus.ObjectPath(BluezBasePath + "/" + adapter)
}
