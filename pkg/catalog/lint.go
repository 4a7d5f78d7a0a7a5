package catalog

import (
	"fmt"

	"github.com/expresslrs/devicecatalog/pkg/enumkey"
)

// Issue codes reported by Lint.
const (
	IssueDuplicateDevice     = "DUPLICATE_DEVICE"
	IssueDuplicateTarget     = "DUPLICATE_TARGET"
	IssueDuplicateUserDefine = "DUPLICATE_USER_DEFINE"
)

// Issue is a non-fatal finding about a raw catalog.
type Issue struct {
	Code    string
	Message string

	// Device is the raw name of the device the issue belongs to.
	Device string

	// Index is the position of the device in the catalog.
	Index int
}

// Lint reports duplicates that the loader accepts: repeated device names,
// repeated target names within a device and repeated user defines within a
// device. User defines are compared without regard to letter case.
func Lint(raw []RawDevice) []Issue {
	var issues []Issue

	firstDevice := make(map[string]int)
	for i, d := range raw {
		if d.Name != "" {
			if prev, ok := firstDevice[d.Name]; ok {
				issues = append(issues, Issue{
					Code:    IssueDuplicateDevice,
					Message: fmt.Sprintf("device %q is also defined at index %d", d.Name, prev),
					Device:  d.Name,
					Index:   i,
				})
			} else {
				firstDevice[d.Name] = i
			}
		}

		targets := make(map[string]bool)
		for _, t := range d.Targets {
			if t.Name == "" {
				continue
			}
			if targets[t.Name] {
				issues = append(issues, Issue{
					Code:    IssueDuplicateTarget,
					Message: fmt.Sprintf("target %q is listed more than once", t.Name),
					Device:  d.Name,
					Index:   i,
				})
				continue
			}
			targets[t.Name] = true
		}

		defines := make(map[string]bool)
		for _, u := range d.UserDefines {
			key := enumkey.Normalize(u)
			if defines[key] {
				issues = append(issues, Issue{
					Code:    IssueDuplicateUserDefine,
					Message: fmt.Sprintf("user define %q is listed more than once", u),
					Device:  d.Name,
					Index:   i,
				})
				continue
			}
			defines[key] = true
		}
	}

	return issues
}
