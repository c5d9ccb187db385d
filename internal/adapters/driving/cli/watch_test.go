package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch [dir]", watchCmd.Use)
}

func TestWatchCmd_Short(t *testing.T) {
	assert.Equal(t, "Parse a directory, then keep parsing archives as they arrive", watchCmd.Short)
}

func TestWatchCmd_HasOutputFlag(t *testing.T) {
	flag := watchCmd.Flags().Lookup("output")
	require.NotNil(t, flag, "output flag should exist")
	assert.Equal(t, "o", flag.Shorthand)
}

func TestWatchCmd_HasJobsFlag(t *testing.T) {
	flag := watchCmd.Flags().Lookup("jobs")
	require.NotNil(t, flag, "jobs flag should exist")
	assert.Equal(t, "1", flag.DefValue)
}
