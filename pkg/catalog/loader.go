package catalog

import (
	"github.com/expresslrs/devicecatalog/pkg/enumkey"
	"github.com/expresslrs/devicecatalog/pkg/firmware"
	"github.com/expresslrs/devicecatalog/pkg/log"
)

// DefaultSource is the catalog name used in diagnostics when none is given.
const DefaultSource = "devices.json"

// Loader validates raw catalog entries into Devices.
// A Loader keeps no state between calls to Load.
type Loader struct {
	source string
	logger log.Logger
}

// NewLoader creates a Loader. source names the catalog in error messages;
// an empty source means DefaultSource. A nil logger discards reports.
func NewLoader(source string, logger log.Logger) *Loader {
	if source == "" {
		source = DefaultSource
	}
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Loader{source: source, logger: logger}
}

// Source returns the catalog name used in error messages.
func (l *Loader) Source() string {
	return l.source
}

// Load validates every raw device in order and returns the typed catalog.
// The first invalid device aborts the load: the failure is reported to the
// logger and returned as a *LoadError, and no devices are returned.
func (l *Loader) Load(raw []RawDevice) ([]Device, error) {
	methods := enumkey.New(firmware.FlashingMethodMembers())
	keys := enumkey.New(firmware.UserDefineKeyMembers())

	devices := make([]Device, 0, len(raw))
	for i, value := range raw {
		device, err := loadDevice(value, methods, keys)
		if err != nil {
			loadErr := &LoadError{
				Source: l.source,
				Device: value.Name,
				Index:  i,
				Cause:  err,
			}
			l.logger.Error(loadErr.Error())
			return nil, loadErr
		}
		devices = append(devices, device)
	}
	return devices, nil
}

func loadDevice(value RawDevice, methods enumkey.Index[firmware.FlashingMethod], keys enumkey.Index[firmware.UserDefineKey]) (Device, error) {
	if value.Name == "" {
		return Device{}, validationErrorf("all devices must have a name property!")
	}
	if value.Category == "" {
		return Device{}, validationErrorf("category property is required!")
	}
	if len(value.Targets) == 0 {
		return Device{}, validationErrorf("devices must have a list of targets defined!")
	}
	if len(value.UserDefines) == 0 {
		return Device{}, validationErrorf("devices must have a list of supported user defines!")
	}

	targets := make([]Target, 0, len(value.Targets))
	for _, item := range value.Targets {
		target, err := ValidateTarget(item, methods)
		if err != nil {
			return Device{}, err
		}
		targets = append(targets, target)
	}

	userDefines, err := ValidateUserDefines(value.UserDefines, keys)
	if err != nil {
		return Device{}, err
	}

	return Device{
		ID:          value.Name,
		Name:        value.Name,
		Category:    value.Category,
		Targets:     targets,
		UserDefines: userDefines,
		WikiURL:     value.WikiURL,
	}, nil
}
