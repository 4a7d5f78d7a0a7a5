package catalog

import (
	"github.com/expresslrs/devicecatalog/pkg/enumkey"
	"github.com/expresslrs/devicecatalog/pkg/firmware"
)

// ValidateTarget converts a raw target entry, resolving its flashing method
// through methods without regard to letter case.
func ValidateTarget(raw RawTarget, methods enumkey.Index[firmware.FlashingMethod]) (Target, error) {
	if raw.Name == "" {
		return Target{}, validationErrorf("target must have a name property")
	}

	method, ok := methods.Lookup(raw.FlashingMethod)
	if !ok {
		return Target{}, validationErrorf("error parsing target %q: %q is not a valid flashing method",
			raw.Name, raw.FlashingMethod)
	}

	return Target{
		Name:           raw.Name,
		FlashingMethod: method,
	}, nil
}
