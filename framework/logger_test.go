package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerRecordsMessagesInOrder(t *testing.T) {
	var l CapturingLogger
	l.Printf("first %d", 1)
	l.Printf("second %d", 2)

	output := l.Output()
	require.Len(t, output, 2)
	assert.Equal(t, "first 1", output[0].Message)
	assert.Equal(t, "second 2", output[1].Message)
	assert.False(t, output[0].Time.IsZero())
}

func TestCapturedOutputDumpUsesPrefix(t *testing.T) {
	var l CapturingLogger
	l.Printf("hello")

	var buf bytes.Buffer
	l.Output().Dump(&buf, "DEBUG ")
	assert.Contains(t, buf.String(), "DEBUG [")
	assert.Contains(t, buf.String(), "] hello\n")
}

func TestLoggerWithPrefixPrependsPrefix(t *testing.T) {
	var l CapturingLogger
	prefixed := LoggerWithPrefix(&l, "[session] ")
	prefixed.Printf("console error: %s", "boom")

	output := l.Output()
	require.Len(t, output, 1)
	assert.Equal(t, "[session] console error: boom", output[0].Message)
}
