package bluez

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/godbus/dbus/v5"
)

// DeviceRecord holds the resolved properties of a discovered device.
type DeviceRecord struct {
	Path    dbus.ObjectPath
	Name    string
	Address string
}

// Devices returns the DBus paths of all device objects that belong to the
// session's adapter, in lexical order.
//
// A device object is any object whose path starts with "<adapter path>/dev_".
// Entries of the reply that cannot be decoded are skipped.
func (s *Session) Devices() ([]dbus.ObjectPath, error) {
	call := s.bus.Object(BluezBusName, BluezRootPath).Call(DbusObjectManagerIface, 0)
	if call.Err != nil {
		return []dbus.ObjectPath{}, wrapError(ErrEnumeration, call.Err,
			"Failed to get managed objects",
			"error_at", "objectmanager-get-objects",
		)
	}

	objects, err := decodeManagedObjects(call.Body)
	if err != nil {
		return []dbus.ObjectPath{}, wrapError(ErrEnumeration, err,
			"Failed to get managed objects",
			"error_at", "objectmanager-decode-objects",
		)
	}

	prefix := string(s.path) + "/dev_"
	devices := make([]dbus.ObjectPath, 0, len(objects))

	for _, path := range objects {
		if strings.HasPrefix(string(path), prefix) {
			devices = append(devices, path)
		}
	}

	slices.Sort(devices)

	return devices, nil
}

// Property returns the string value of a property of the object at path.
// The fallback is returned if the property cannot be read for any reason.
func (s *Session) Property(path dbus.ObjectPath, iface, name, fallback string) string {
	value, err := s.property(path, iface, name)
	if err != nil {
		return fallback
	}

	return value
}

// Device resolves the name and address of the device object at path.
func (s *Session) Device(path dbus.ObjectPath) DeviceRecord {
	return DeviceRecord{
		Path:    path,
		Name:    s.Property(path, BluezDeviceIface, "Name", UnknownDevice),
		Address: s.Property(path, BluezDeviceIface, "Address", UnknownAddress),
	}
}

// property reads a single string property via the standard properties interface.
func (s *Session) property(path dbus.ObjectPath, iface, name string) (string, error) {
	var variant dbus.Variant

	if err := s.bus.Object(BluezBusName, path).
		Call(DbusGetPropertiesIface, 0, iface, name).
		Store(&variant); err != nil {
		return "", wrapError(ErrPropertyRead, err,
			"Failed to get device property",
			"error_at", "device-get-property",
			"path", string(path), "property", name,
		)
	}

	value, ok := variant.Value().(string)
	if !ok {
		return "", wrapError(ErrPropertyRead,
			fmt.Errorf("property %s has signature '%s'", name, variant.Signature()),
			"Failed to decode device property",
			"error_at", "device-decode-property",
			"path", string(path), "property", name,
		)
	}

	return value, nil
}

// decodeManagedObjects decodes the object paths from a reply of the
// object manager, which has the signature a{oa{sa{sv}}}.
// Entries with an invalid path or interface map are skipped.
func decodeManagedObjects(body []any) ([]dbus.ObjectPath, error) {
	if len(body) == 0 {
		return nil, errors.New("empty reply")
	}

	objects := reflect.ValueOf(body[0])
	if objects.Kind() != reflect.Map {
		return nil, fmt.Errorf("unexpected reply type %T", body[0])
	}

	paths := make([]dbus.ObjectPath, 0, objects.Len())

	iter := objects.MapRange()
	for iter.Next() {
		key, value := underlying(iter.Key()), underlying(iter.Value())
		if !key.IsValid() || !value.IsValid() {
			continue
		}

		path, ok := key.Interface().(dbus.ObjectPath)
		if !ok || !path.IsValid() {
			continue
		}

		var interfaces map[string]map[string]dbus.Variant
		if err := dbus.Store([]any{value.Interface()}, &interfaces); err != nil {
			continue
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// underlying returns the concrete value held by an interface value.
func underlying(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}

		return v.Elem()
	}

	return v
}
