package firmware

// FlashingMethod is the mechanism used to write firmware onto a target board.
type FlashingMethod uint8

const (
	// FlashingMethodBetaflightPassthrough flashes a receiver through the flight controller.
	FlashingMethodBetaflightPassthrough FlashingMethod = 0x00

	// FlashingMethodDFU flashes over USB device firmware upgrade.
	FlashingMethodDFU FlashingMethod = 0x01

	// FlashingMethodEdgeTxPassthrough flashes a module through an EdgeTX radio.
	FlashingMethodEdgeTxPassthrough FlashingMethod = 0x02

	// FlashingMethodPassthrough flashes through a generic serial passthrough.
	FlashingMethodPassthrough FlashingMethod = 0x03

	// FlashingMethodRadio produces a file that is flashed from the radio handset.
	FlashingMethodRadio FlashingMethod = 0x04

	// FlashingMethodSTLink flashes with an ST-Link debug probe.
	FlashingMethodSTLink FlashingMethod = 0x05

	// FlashingMethodStockBL flashes through the vendor's stock bootloader.
	FlashingMethodStockBL FlashingMethod = 0x06

	// FlashingMethodUART flashes over a direct serial connection.
	FlashingMethodUART FlashingMethod = 0x07

	// FlashingMethodWIFI flashes over the device's Wi-Fi update page.
	FlashingMethodWIFI FlashingMethod = 0x08
)

// String returns the canonical member name.
func (m FlashingMethod) String() string {
	switch m {
	case FlashingMethodBetaflightPassthrough:
		return "BetaflightPassthrough"
	case FlashingMethodDFU:
		return "DFU"
	case FlashingMethodEdgeTxPassthrough:
		return "EdgeTxPassthrough"
	case FlashingMethodPassthrough:
		return "Passthrough"
	case FlashingMethodRadio:
		return "Radio"
	case FlashingMethodSTLink:
		return "STLink"
	case FlashingMethodStockBL:
		return "Stock_BL"
	case FlashingMethodUART:
		return "UART"
	case FlashingMethodWIFI:
		return "WIFI"
	default:
		return "UNKNOWN"
	}
}

var flashingMethods = []FlashingMethod{
	FlashingMethodBetaflightPassthrough,
	FlashingMethodDFU,
	FlashingMethodEdgeTxPassthrough,
	FlashingMethodPassthrough,
	FlashingMethodRadio,
	FlashingMethodSTLink,
	FlashingMethodStockBL,
	FlashingMethodUART,
	FlashingMethodWIFI,
}

// FlashingMethodMembers returns the canonical name → value table.
// Each call returns a new map.
func FlashingMethodMembers() map[string]FlashingMethod {
	members := make(map[string]FlashingMethod, len(flashingMethods))
	for _, m := range flashingMethods {
		members[m.String()] = m
	}
	return members
}
