package commands

import "github.com/expresslrs/devicecatalog/pkg/catalog"

// DeviceOutput is the JSON form of a validated device.
type DeviceOutput struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Targets     []TargetOutput `json:"targets"`
	UserDefines []string       `json:"userDefines"`
	WikiURL     string         `json:"wikiUrl,omitempty"`
}

// TargetOutput is the JSON form of a validated target.
type TargetOutput struct {
	Name           string `json:"name"`
	FlashingMethod string `json:"flashingMethod"`
}

func toDeviceOutput(d catalog.Device) DeviceOutput {
	out := DeviceOutput{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Targets:     make([]TargetOutput, 0, len(d.Targets)),
		UserDefines: make([]string, 0, len(d.UserDefines)),
		WikiURL:     d.WikiURL,
	}
	for _, t := range d.Targets {
		out.Targets = append(out.Targets, TargetOutput{
			Name:           t.Name,
			FlashingMethod: t.FlashingMethod.String(),
		})
	}
	for _, u := range d.UserDefines {
		out.UserDefines = append(out.UserDefines, u.String())
	}
	return out
}

func toDeviceOutputs(devices []catalog.Device) []DeviceOutput {
	out := make([]DeviceOutput, 0, len(devices))
	for _, d := range devices {
		out = append(out, toDeviceOutput(d))
	}
	return out
}
