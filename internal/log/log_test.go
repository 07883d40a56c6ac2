package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cleanup := InitWithWriter(&buf)
	t.Cleanup(cleanup)
	return &buf
}

func TestLog_DisabledByDefault(t *testing.T) {
	require.Nil(t, current())
	require.NotPanics(t, func() {
		Info(CatRegistry, "nobody is listening", "key", "value")
	})
}

func TestLog_Format(t *testing.T) {
	buf := captureLogs(t)

	Info(CatRegistry, "registered person", "id", "p-1", "name", "Vincent van Gogh")

	out := buf.String()
	require.Contains(t, out, "[INFO] [registry] registered person")
	require.Contains(t, out, "id=p-1")
	require.Contains(t, out, "name=Vincent van Gogh")
	require.True(t, out[len(out)-1] == '\n')
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := captureLogs(t)

	Warn(CatFilter, "orphan key", "pattern")

	require.Contains(t, buf.String(), "pattern=<missing>")
}

func TestLog_MinLevel(t *testing.T) {
	buf := captureLogs(t)

	Debug(CatCache, "hidden at info")
	require.Empty(t, buf.String())

	SetMinLevel(LevelDebug)
	Debug(CatCache, "visible at debug")
	require.Contains(t, buf.String(), "[DEBUG] [cache] visible at debug")

	SetMinLevel(LevelError)
	Warn(CatCache, "below error")
	require.NotContains(t, buf.String(), "below error")
}

func TestLog_SetEnabled(t *testing.T) {
	buf := captureLogs(t)

	SetEnabled(false)
	Error(CatApp, "muted")
	require.Empty(t, buf.String())

	SetEnabled(true)
	Error(CatApp, "unmuted")
	require.Contains(t, buf.String(), "unmuted")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := captureLogs(t)

	ErrorErr(CatFixture, "load failed", errors.New("boom"), "path", "book.yaml")
	ErrorErr(CatFixture, "nil error", nil)

	out := buf.String()
	require.Contains(t, out, "path=book.yaml error=boom")
	require.Contains(t, out, "error=<nil>")
}

func TestLog_CleanupDisables(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWithWriter(&buf)
	cleanup()

	Info(CatApp, "after cleanup")
	require.Empty(t, buf.String())
	require.Nil(t, current())
}

func TestLog_ReinitReplacesSink(t *testing.T) {
	var first, second bytes.Buffer
	cleanupFirst := InitWithWriter(&first)
	cleanupSecond := InitWithWriter(&second)
	t.Cleanup(cleanupSecond)

	Info(CatApp, "goes to second")
	require.Empty(t, first.String())
	require.Contains(t, second.String(), "goes to second")

	// A stale cleanup must not uninstall the newer logger.
	cleanupFirst()
	Info(CatApp, "still second")
	require.Contains(t, second.String(), "still second")
}

func TestLog_Init_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.log")

	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "loaded", "path", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded path=config.yaml")
}

func TestLog_Init_BadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.Error(t, err)
}

func TestLog_Subscribe(t *testing.T) {
	captureLogs(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := Subscribe(ctx)
	require.NotNil(t, ch)

	Info(CatMembership, "joined", "group", "painters")

	select {
	case ev := <-ch:
		require.Contains(t, ev.Payload, "[membership] joined group=painters")
	case <-time.After(time.Second):
		require.Fail(t, "timeout waiting for log event")
	}
}

func TestLog_SubscribeWithoutInit(t *testing.T) {
	require.Nil(t, Subscribe(context.Background()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
