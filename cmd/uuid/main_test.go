package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stdlib/uuid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGeneratesV1ByDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	u, err := uuid.Parse(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, 1, u.Version())
}

func TestRunCountFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "5"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 5)
}

func TestRunV3RequiresTwoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "3"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "uuid:ERROR:")
}

func TestRunV3WithNamespaceAndName(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "3", "DNS", "www.widgets.com"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "3d813cbb-47fb-32ba-91df-831e1593ac29", strings.TrimSpace(stdout.String()))
}

func TestRunInvalidVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "2"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid version")
}

func TestRunDescribeMode(t *testing.T) {
	var genOut, genErr bytes.Buffer
	require.Equal(t, 0, run([]string{"-v", "4"}, &genOut, &genErr))
	generated := strings.TrimSpace(genOut.String())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", generated}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "version: 4")
}

func TestRunDescribeRejectsBadUUID(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", "not-a-uuid"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "uuid:ERROR:")
}

func TestRunRawOutputLength(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-r"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Len(t, stdout.Bytes(), 16)
}

func TestRunRejectsBadCount(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "0"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
}

func clockSeqOf(t *testing.T, s string) uint16 {
	t.Helper()
	u, err := uuid.Parse(s)
	require.NoError(t, err)
	b := uuid.Pack(u)
	return uint16(b[8]&0x3f)<<8 | uint16(b[9])
}

func TestRunIterateFlagResetsClockSequence(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-1", "-n", "2"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)

	seq1 := clockSeqOf(t, lines[0])
	seq2 := clockSeqOf(t, lines[1])
	assert.NotEqual(t, (seq1+1)&0x3fff, seq2, "-1 must re-randomize the clock sequence, not increment it")
}

func TestRunWithoutIterateIncrementsClockSequence(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "2"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)

	seq1 := clockSeqOf(t, lines[0])
	seq2 := clockSeqOf(t, lines[1])
	assert.Equal(t, (seq1+1)&0x3fff, seq2)
}
