package bluez

import (
	"errors"
	"fmt"
	"time"
)

// Scan discovers devices for the provided duration and returns their records,
// in the order returned by Devices.
//
// Only a failure to start discovery aborts the scan and is returned. In that case
// the session does not wait and does not stop discovery. Failures to stop discovery
// or to enumerate devices are sent to the Warn hook, and property read failures
// resolve to UnknownDevice and UnknownAddress.
func (s *Session) Scan(duration time.Duration) ([]DeviceRecord, error) {
	s.opts.Status(fmt.Sprintf("Starting Bluetooth device scan for %s...", formatDuration(duration)))

	if err := s.StartDiscovery(); err != nil {
		return nil, err
	}
	s.opts.Status("Discovery started...")

	s.opts.Waiter(duration)

	if err := s.StopDiscovery(); err != nil {
		s.opts.Warn(err)
	} else {
		s.opts.Status("Discovery stopped.")
	}

	paths, err := s.Devices()
	if err != nil {
		s.opts.Warn(err)
	}

	records := make([]DeviceRecord, 0, len(paths))
	for _, path := range paths {
		records = append(records, s.Device(path))
	}

	return records, nil
}

// IsScanAborted reports whether err was returned because discovery could not be started.
func IsScanAborted(err error) bool {
	return errors.Is(err, ErrDiscoveryStart)
}

// formatDuration formats whole-second durations as "N seconds", and all
// others using the default duration format.
func formatDuration(d time.Duration) string {
	if d%time.Second != 0 {
		return d.String()
	}

	seconds := int64(d / time.Second)
	if seconds == 1 {
		return "1 second"
	}

	return fmt.Sprintf("%d seconds", seconds)
}
