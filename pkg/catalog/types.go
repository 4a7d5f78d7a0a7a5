package catalog

import "github.com/expresslrs/devicecatalog/pkg/firmware"

// RawDevice is one device entry as authored in the catalog file.
type RawDevice struct {
	Name        string      `json:"name" yaml:"name"`
	Category    string      `json:"category" yaml:"category"`
	Targets     []RawTarget `json:"targets" yaml:"targets"`
	UserDefines []string    `json:"userDefines" yaml:"userDefines"`
	WikiURL     string      `json:"wikiUrl,omitempty" yaml:"wikiUrl,omitempty"`
}

// RawTarget is one target entry as authored in the catalog file.
type RawTarget struct {
	Name           string `json:"name" yaml:"name"`
	FlashingMethod string `json:"flashingMethod" yaml:"flashingMethod"`
}

// rawCatalog is the top-level document shape.
type rawCatalog struct {
	Devices []RawDevice `json:"devices" yaml:"devices"`
}

// Device is a validated hardware product entry.
type Device struct {
	// ID identifies the device. It is taken from the raw name.
	ID string `cbor:"1,keyasint"`

	// Name is the display name.
	Name string `cbor:"2,keyasint"`

	// Category is the free-form classification (e.g. "Happymodel 2.4 GHz").
	Category string `cbor:"3,keyasint"`

	// Targets are the flashable board variants, in catalog order.
	Targets []Target `cbor:"4,keyasint"`

	// UserDefines are the build flags the firmware supports, in catalog order.
	UserDefines []firmware.UserDefineKey `cbor:"5,keyasint"`

	// WikiURL links to the device documentation. Empty when absent.
	WikiURL string `cbor:"6,keyasint,omitempty"`
}

// Target is a validated flashable board variant.
type Target struct {
	Name           string                  `cbor:"1,keyasint"`
	FlashingMethod firmware.FlashingMethod `cbor:"2,keyasint"`
}

func cloneDevice(d Device) Device {
	d.Targets = append([]Target(nil), d.Targets...)
	d.UserDefines = append([]firmware.UserDefineKey(nil), d.UserDefines...)
	return d
}
