package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestLog writes one event per message, one second apart starting at base.
func writeTestLog(t *testing.T, path string, base time.Time, messages ...string) string {
	t.Helper()

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	next := base
	logger.now = func() time.Time {
		ts := next
		next = next.Add(time.Second)
		return ts
	}

	for _, m := range messages {
		logger.Error(m)
	}
	require.NoError(t, logger.Close())
	return logger.SessionID()
}

func TestReaderIteratesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")
	writeTestLog(t, path, time.Now(), "a", "b", "c")

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var read []string
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		read = append(read, event.Message)
	}

	assert.Equal(t, []string{"a", "b", "c"}, read)
}

func TestReaderFilterBySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")
	base := time.Now()
	writeTestLog(t, path, base, "first-1", "first-2")
	second := writeTestLog(t, path, base, "second-1")

	reader, err := NewFilteredReader(path, Filter{SessionID: second})
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "second-1", events[0].Message)
}

func TestReaderFilterByTimeRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeTestLog(t, path, base, "t0", "t1", "t2", "t3")

	start := base.Add(1 * time.Second)
	end := base.Add(3 * time.Second)

	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "t1", events[0].Message)
	assert.Equal(t, "t2", events[1].Message)
}

func TestReaderEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")
	writeTestLog(t, path, time.Now())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "nope.clog"))
	assert.Error(t, err)
}
