package catalog

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	snapshotEncMode cbor.EncMode
	snapshotDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsEmpty,
	}
	snapshotEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	snapshotDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeSnapshot encodes a validated catalog to deterministic CBOR.
// Enum fields are written as their numeric values.
func EncodeSnapshot(devices []Device) ([]byte, error) {
	return snapshotEncMode.Marshal(devices)
}

// DecodeSnapshot decodes a catalog written by EncodeSnapshot.
func DecodeSnapshot(data []byte) ([]Device, error) {
	var devices []Device
	if err := snapshotDecMode.Unmarshal(data, &devices); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return devices, nil
}
