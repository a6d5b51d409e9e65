/*
Package bluez drives a single Bluez adapter over the DBus system bus
to discover nearby devices.

A Session owns the bus connection and provides:
- Discovery start and stop calls on the adapter.
- Enumeration of the adapter's device objects from the object manager.
- Best-effort reads of string device properties.
- A Scan operation that combines the above into a list of device records.

Only the adapter's discovery start is fatal to a scan. Every other
failure degrades to a warning, an empty device list or a fallback value.
*/
package bluez
