package catalog

import "github.com/expresslrs/devicecatalog/pkg/log"

// Service holds the validated catalog for the lifetime of the process.
// It has no mutation methods and is safe for concurrent readers.
type Service struct {
	devices []Device
}

// NewService loads raw with loader and returns a Service holding the result.
// It fails if any device is invalid.
func NewService(loader *Loader, raw []RawDevice) (*Service, error) {
	devices, err := loader.Load(raw)
	if err != nil {
		return nil, err
	}
	return &Service{devices: devices}, nil
}

// Open reads the catalog at path and returns a Service for it.
// An empty path opens the builtin catalog.
func Open(path string, logger log.Logger) (*Service, error) {
	raw, source, err := readSource(path)
	if err != nil {
		if logger != nil {
			logger.Error(err.Error())
		}
		return nil, err
	}
	return NewService(NewLoader(source, logger), raw)
}

// Devices returns the catalog in its original order.
// The returned slice is a copy; changing it does not affect the Service.
func (s *Service) Devices() []Device {
	out := make([]Device, len(s.devices))
	for i, d := range s.devices {
		out[i] = cloneDevice(d)
	}
	return out
}

// Len returns the number of devices.
func (s *Service) Len() int {
	return len(s.devices)
}

// Device returns the first device with the given ID.
func (s *Service) Device(id string) (Device, bool) {
	for _, d := range s.devices {
		if d.ID == id {
			return cloneDevice(d), true
		}
	}
	return Device{}, false
}

// Categories returns the distinct categories in order of first appearance.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, d := range s.devices {
		if seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		categories = append(categories, d.Category)
	}
	return categories
}

// ByCategory returns the devices in category, in catalog order.
func (s *Service) ByCategory(category string) []Device {
	var out []Device
	for _, d := range s.devices {
		if d.Category == category {
			out = append(out, cloneDevice(d))
		}
	}
	return out
}
