package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLoggerSessionIDIsUUID(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "errors.clog"))
	require.NoError(t, err)
	defer logger.Close()

	_, err = uuid.Parse(logger.SessionID())
	assert.NoError(t, err)
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	ts := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	logger.now = func() time.Time { return ts }

	logger.Error("category property is required!")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	event, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, "category property is required!", event.Message)
	assert.Equal(t, logger.SessionID(), event.SessionID)
	assert.True(t, ts.Equal(event.Timestamp), "timestamp %v != %v", event.Timestamp, ts)
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")

	first, err := NewFileLogger(path)
	require.NoError(t, err)
	first.Error("one")
	require.NoError(t, first.Close())

	second, err := NewFileLogger(path)
	require.NoError(t, err)
	second.Error("two")
	require.NoError(t, second.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "one", events[0].Message)
	assert.Equal(t, "two", events[1].Message)
	assert.NotEqual(t, events[0].SessionID, events[1].SessionID)
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	logger, err := NewFileLogger(filepath.Join(t.TempDir(), "errors.clog"))
	require.NoError(t, err)

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	// Ignored after close
	logger.Error("late")
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.clog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.Error("concurrent")
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, events, 100)
}

func TestNewFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "errors.clog"))
	assert.Error(t, err)
}
