package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expresslrs/devicecatalog/pkg/catalog"
)

func TestLintClean(t *testing.T) {
	assert.Empty(t, catalog.Lint(validRaw()))
}

func TestLintDuplicates(t *testing.T) {
	raw, err := catalog.LoadFile(filepath.Join("testdata", "duplicates.json"))
	require.NoError(t, err)

	issues := catalog.Lint(raw)
	require.Len(t, issues, 3)

	assert.Equal(t, catalog.IssueDuplicateTarget, issues[0].Code)
	assert.Equal(t, 0, issues[0].Index)
	assert.Contains(t, issues[0].Message, `"T1"`)

	assert.Equal(t, catalog.IssueDuplicateUserDefine, issues[1].Code)
	assert.Contains(t, issues[1].Message, `"binding_phrase"`)

	assert.Equal(t, catalog.IssueDuplicateDevice, issues[2].Code)
	assert.Equal(t, "Twin", issues[2].Device)
	assert.Equal(t, 1, issues[2].Index)
	assert.Contains(t, issues[2].Message, "index 0")
}

func TestLintDuplicatesStillLoad(t *testing.T) {
	raw, err := catalog.LoadFile(filepath.Join("testdata", "duplicates.json"))
	require.NoError(t, err)

	devices, err := catalog.NewLoader("duplicates.json", nil).Load(raw)
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestLintIgnoresUnnamedEntries(t *testing.T) {
	raw := []catalog.RawDevice{
		{Targets: []catalog.RawTarget{{}, {}}},
		{},
	}
	assert.Empty(t, catalog.Lint(raw))
}
