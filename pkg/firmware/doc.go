// Package firmware defines the closed enumerations shared by the device
// catalog and the firmware build pipeline.
//
// FlashingMethod lists the ways firmware can be written to a target board.
// UserDefineKey lists the build-time flags a device's firmware accepts.
// Both sets are fixed at build time; their canonical member names, as
// returned by String and the Members functions, are the keys catalog
// authors write in devices.json.
package firmware
