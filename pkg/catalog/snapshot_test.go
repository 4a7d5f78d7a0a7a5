package catalog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
)

func TestSnapshotRoundTrip(t *testing.T) {
	devices, err := catalog.NewLoader("", nil).Load(validRaw())
	require.NoError(t, err)

	data, err := catalog.EncodeSnapshot(devices)
	require.NoError(t, err)

	decoded, err := catalog.DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, devices, decoded)
}

func TestSnapshotDeterministic(t *testing.T) {
	devices, err := catalog.NewLoader("", nil).Load(validRaw())
	require.NoError(t, err)

	a, err := catalog.EncodeSnapshot(devices)
	require.NoError(t, err)
	b, err := catalog.EncodeSnapshot(devices)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b))
}

func TestDecodeSnapshotGarbage(t *testing.T) {
	_, err := catalog.DecodeSnapshot([]byte{0x01})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode snapshot")
}
