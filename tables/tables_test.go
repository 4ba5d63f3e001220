package tables

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/astrodata/errs"
)

func TestReadZappedChannels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		channels int
		zapped   []int
	}{
		{name: "empty", input: "", channels: 4, zapped: nil},
		{name: "one per line", input: "0\n3\n", channels: 4, zapped: []int{0, 3}},
		{name: "mixed whitespace", input: " 1 2\t5\r\n7 ", channels: 8, zapped: []int{1, 2, 5, 7}},
		{name: "out of range ignored", input: "2 8 100", channels: 8, zapped: []int{2}},
		{name: "duplicates counted once", input: "3 3 1 3", channels: 4, zapped: []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := ReadZappedChannels(strings.NewReader(tt.input), tt.channels)
			require.NoError(t, err)
			require.Len(t, z.Mask, tt.channels)
			require.Equal(t, len(tt.zapped), z.Count)

			for channel := 0; channel < tt.channels; channel++ {
				require.Equal(t, contains(tt.zapped, channel), z.IsZapped(channel), "channel %d", channel)
			}
			require.False(t, z.IsZapped(-1))
			require.False(t, z.IsZapped(tt.channels))
		})
	}
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}

	return false
}

func TestReadZappedChannels_Malformed(t *testing.T) {
	for _, input := range []string{"1 two 3", "-1", "1.5", "99999999999999999999"} {
		_, err := ReadZappedChannels(strings.NewReader(input), 8)
		require.ErrorIs(t, err, errs.ErrInvalidTable, "input %q", input)
		require.ErrorIs(t, err, errs.ErrFormatViolation)
	}
}

func TestReadIntegrationSteps(t *testing.T) {
	steps, err := ReadIntegrationSteps(strings.NewReader("16 4 8\n4 1024 2 512\n"), 1024)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 8, 16, 512}, steps)

	steps, err = ReadIntegrationSteps(strings.NewReader(""), 1024)
	require.NoError(t, err)
	require.Empty(t, steps)

	_, err = ReadIntegrationSteps(strings.NewReader("4 x"), 1024)
	require.ErrorIs(t, err, errs.ErrInvalidTable)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()

	zapped := filepath.Join(dir, "zapped.conf")
	require.NoError(t, os.WriteFile(zapped, []byte("0 5 6\n"), 0o600))
	z, err := ReadZappedChannelsFile(zapped, 6)
	require.NoError(t, err)
	require.Equal(t, 2, z.Count)
	require.Equal(t, []bool{true, false, false, false, false, true}, z.Mask)

	steps := filepath.Join(dir, "integration.conf")
	require.NoError(t, os.WriteFile(steps, []byte("2 4 bad"), 0o600))
	_, err = ReadIntegrationStepsFile(steps, 100)
	require.ErrorIs(t, err, errs.ErrInvalidTable)
	require.Contains(t, err.Error(), steps)

	_, err = ReadZappedChannelsFile(filepath.Join(dir, "missing.conf"), 6)
	require.ErrorIs(t, err, errs.ErrOpenFile)

	_, err = ReadIntegrationStepsFile(filepath.Join(dir, "missing.conf"), 6)
	require.ErrorIs(t, err, errs.ErrOpenFile)
}
