package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/YuminosukeSato/perceptron/pkg/errors"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), "line: %s", line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.Info("incorrect points", IterationKey, 10, IncorrectKey, 3)
	logger.Warn("degenerate boundary")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "incorrect points", entries[0]["message"])
	assert.Equal(t, 10.0, entries[0][IterationKey])
	assert.Equal(t, 3.0, entries[0][IncorrectKey])
	assert.Equal(t, "warn", entries[1]["level"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug).With(ModelNameKey, "Perceptron")

	logger.Debug("step", IterationKey, 1)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "Perceptron", entries[0][ModelNameKey])
}

func TestZerologLogger_ErrorAttachesStructuredError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	err := perrors.NewEmptyClassError("SampleRandomPoint", "ClassA")
	logger.Error("training failed", err, OperationKey, OperationTrain)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["error"], "no points available for class ClassA")
	assert.Equal(t, OperationTrain, entry[OperationKey])

	detail, ok := entry["error.detail"].(map[string]interface{})
	require.True(t, ok, "expected structured error detail, got %v", entry["error.detail"])
	assert.Equal(t, "EmptyClassError", detail["type"])
}

func TestZerologLogger_Enabled(t *testing.T) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelWarn)
	ctx := context.Background()

	assert.False(t, logger.Enabled(ctx, LevelInfo))
	assert.True(t, logger.Enabled(ctx, LevelWarn))
	assert.True(t, logger.Enabled(ctx, LevelError))
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"", LevelInfo, false},
		{"WARN", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToLogLevel(tt.in)
			if tt.wantErr {
				var valErr *perrors.ValidationError
				assert.True(t, perrors.As(err, &valErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger_RoutesWarnings(t *testing.T) {
	prev := GetLogger()
	defer func() {
		SetLogger(prev)
		perrors.SetZerologWarnFunc(nil)
	}()

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, "info", FormatJSON))

	perrors.Warn(perrors.NewDegenerateBoundaryWarning("construction", 1))
	GetLogger().Info("after setup")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "DegenerateBoundaryWarning", entries[0]["type"])
	assert.Equal(t, "construction", entries[0]["phase"])
	assert.Equal(t, "after setup", entries[1]["message"])
}

func TestSetupLogger_RejectsUnknownFormat(t *testing.T) {
	err := SetupLogger(&bytes.Buffer{}, "info", "xml")
	require.Error(t, err)
}

func TestTestLogger(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	testLogger.Debug("dropped")
	testLogger.With(ModelNameKey, "Perceptron").Info("incorrect points",
		IterationKey, 20,
		IncorrectKey, 2,
		TotalKey, 100,
	)
	testLogger.Error("training failed", fmt.Errorf("boom"), OperationKey, OperationTrain)

	require.NotEmpty(t, buffer.String())
	assert.False(t, testLogger.ContainsMessage("dropped"))
	assert.True(t, testLogger.ContainsField(ModelNameKey, "Perceptron"))
	assert.True(t, testLogger.ContainsField(IterationKey, 20.0))
	assert.True(t, testLogger.ContainsField("error", "boom"))

	reports := testLogger.EntriesWithMessage("incorrect points")
	require.Len(t, reports, 1)
	assert.Equal(t, 100.0, reports[0][TotalKey])

	testLogger.Clear()
	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func BenchmarkZerologLogger(b *testing.B) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(ModelNameKey, "Perceptron")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		logger.Info("incorrect points", IterationKey, i, IncorrectKey, 3, TotalKey, 100)
	}
}
