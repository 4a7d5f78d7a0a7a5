package catalog

import (
	"github.com/expresslrs/devicecatalog/pkg/enumkey"
	"github.com/expresslrs/devicecatalog/pkg/firmware"
)

// ValidateUserDefines converts raw user define names, in order, stopping at
// the first name that keys does not know.
func ValidateUserDefines(raw []string, keys enumkey.Index[firmware.UserDefineKey]) ([]firmware.UserDefineKey, error) {
	defines := make([]firmware.UserDefineKey, 0, len(raw))
	for _, item := range raw {
		key, ok := keys.Lookup(item)
		if !ok {
			return nil, validationErrorf("%q is not a valid User Define", item)
		}
		defines = append(defines, key)
	}
	return defines, nil
}
