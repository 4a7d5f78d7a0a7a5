// Package catalog loads and validates the hardware device catalog.
//
// The catalog is a list of devices, each with one or more flashable targets
// and the set of user defines its firmware supports. Raw entries come from
// devices.json (or a YAML file of the same shape) and are converted into
// typed Device values in a single fail-fast pass:
//
//	raw, err := catalog.LoadFile("devices.json")
//	if err != nil {
//	    return err
//	}
//	svc, err := catalog.NewService(catalog.NewLoader("devices.json", logger), raw)
//	if err != nil {
//	    return err // first invalid device aborts the whole load
//	}
//	for _, d := range svc.Devices() {
//	    fmt.Println(d.Name, d.Category)
//	}
//
// Enumerated fields (flashing methods, user defines) are matched without
// regard to letter case. A Service is read-only once constructed and may be
// shared between goroutines.
package catalog
