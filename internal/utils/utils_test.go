package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/dirtree/internal/utils"
)

func TestDeduplicatePatterns(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "empty", input: nil, expected: []string{}},
		{name: "keeps first occurrence", input: []string{"vendor", "dist", "vendor"}, expected: []string{"vendor", "dist"}},
		{name: "unique input unchanged", input: []string{"a", "b"}, expected: []string{"a", "b"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, utils.DeduplicatePatterns(testCase.input))
		})
	}
}

func TestConsoleLoggerWritesBareMessages(t *testing.T) {
	var buffer bytes.Buffer
	logger := utils.NewConsoleLogger(zapcore.AddSync(&buffer))
	logger.Error("dirtree failed: reading directory /missing")
	require.NoError(t, logger.Sync())

	assert.Equal(t, "dirtree failed: reading directory /missing\n", buffer.String())
}

func TestGetApplicationVersionIsNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, utils.GetApplicationVersion())
}
