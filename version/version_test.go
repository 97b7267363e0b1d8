package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillFromBuild(t *testing.T) {
	info := Info{Version: "0.0.0", Branch: "unknown", Revision: "unknown", BuiltAt: "unknown"}
	fillFromBuild(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "0123456", info.Revision)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuiltAt)
	assert.True(t, info.Modified)
}

func TestFillFromBuildKeepsLinkedValues(t *testing.T) {
	info := Info{Version: "v9.0.0", Revision: "abc", BuiltAt: "yesterday"}
	fillFromBuild(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}},
	})

	assert.Equal(t, "v9.0.0", info.Version)
	assert.Equal(t, "abc", info.Revision)
	assert.Equal(t, "yesterday", info.BuiltAt)
}

func TestInfoJSON(t *testing.T) {
	s, err := Info{Version: "v1", GoVersion: "go1.24"}.JSON()
	require.NoError(t, err)
	assert.Contains(t, s, `"version": "v1"`)
	assert.NotContains(t, s, "modified")
}
