package catalog_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
	"github.com/expresslrs/devicecatalog/pkg/firmware"
)

func newTestService(t *testing.T) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(catalog.NewLoader("", nil), validRaw())
	require.NoError(t, err)
	return svc
}

func TestNewServiceFailsOnInvalidCatalog(t *testing.T) {
	raw := validRaw()
	raw[0].Targets = nil

	svc, err := catalog.NewService(catalog.NewLoader("", nil), raw)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestServiceDevices(t *testing.T) {
	svc := newTestService(t)

	devices := svc.Devices()
	require.Len(t, devices, 2)
	assert.Equal(t, 2, svc.Len())
	assert.Equal(t, "TargetX", devices[0].Name)
	assert.Equal(t, "TargetZ", devices[1].Name)
}

func TestServiceDevicesReturnsCopy(t *testing.T) {
	svc := newTestService(t)

	devices := svc.Devices()
	devices[0].Name = "changed"
	devices[0].Targets[0].Name = "changed"
	devices[0].UserDefines[0] = firmware.UserDefineDeviceName

	again := svc.Devices()
	assert.Equal(t, "TargetX", again[0].Name)
	assert.Equal(t, "T1", again[0].Targets[0].Name)
	assert.Equal(t, firmware.UserDefineBindingPhrase, again[0].UserDefines[0])
}

func TestServiceDeviceLookup(t *testing.T) {
	svc := newTestService(t)

	d, ok := svc.Device("TargetZ")
	require.True(t, ok)
	assert.Equal(t, "Plane", d.Category)

	_, ok = svc.Device("missing")
	assert.False(t, ok)
}

func TestServiceDeviceLookupFirstDuplicateWins(t *testing.T) {
	raw := validRaw()
	dup := raw[0]
	dup.Category = "Second"
	raw = append(raw, dup)

	svc, err := catalog.NewService(catalog.NewLoader("", nil), raw)
	require.NoError(t, err)

	d, ok := svc.Device("TargetX")
	require.True(t, ok)
	assert.Equal(t, "Quad", d.Category)
	assert.Equal(t, 3, svc.Len())
}

func TestServiceCategories(t *testing.T) {
	raw := validRaw()
	extra := raw[0]
	extra.Name = "TargetW"
	raw = append(raw, extra)

	svc, err := catalog.NewService(catalog.NewLoader("", nil), raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Quad", "Plane"}, svc.Categories())

	quads := svc.ByCategory("Quad")
	require.Len(t, quads, 2)
	assert.Equal(t, "TargetX", quads[0].Name)
	assert.Equal(t, "TargetW", quads[1].Name)

	assert.Empty(t, svc.ByCategory("Boat"))
}

func TestServiceConcurrentReaders(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Len(t, svc.Devices(), 2)
				_, _ = svc.Device("TargetZ")
			}
		}()
	}
	wg.Wait()
}

func TestOpenBuiltin(t *testing.T) {
	svc, err := catalog.Open("", nil)
	require.NoError(t, err)
	assert.NotZero(t, svc.Len())
}

func TestOpenFile(t *testing.T) {
	svc, err := catalog.Open(filepath.Join("testdata", "valid.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Len())
}

func TestOpenInvalidFileUsesBaseName(t *testing.T) {
	logger := &mockLogger{}
	logger.On("Error", mock.AnythingOfType("string")).Return().Once()

	_, err := catalog.Open(filepath.Join("testdata", "invalid_method.json"), logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in the device configuration file invalid_method.json:")
	logger.AssertExpectations(t)
}

func TestOpenReportsSourceErrors(t *testing.T) {
	logger := &mockLogger{}
	logger.On("Error", mock.AnythingOfType("string")).Return().Once()

	_, err := catalog.Open(filepath.Join("testdata", "devices.csv"), logger)
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnsupportedFormat))
	logger.AssertExpectations(t)
}
