package provenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExtract(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		path  string
		app   *string
		scope *string
		layer *string
	}{
		{
			name:  "app local",
			path:  "/opt/splunk/etc/apps/search/local/inputs.conf",
			app:   strPtr("search"),
			scope: strPtr("local"),
			layer: strPtr("app"),
		},
		{
			name:  "app default",
			path:  "etc/apps/Splunk_TA_nix/default/inputs.conf",
			app:   strPtr("Splunk_TA_nix"),
			scope: strPtr("default"),
			layer: strPtr("app"),
		},
		{
			name:  "system local",
			path:  "/opt/splunk/etc/system/local/outputs.conf",
			scope: strPtr("local"),
			layer: strPtr("system"),
		},
		{
			name:  "system wins over app",
			path:  "etc/system/apps/search/local/props.conf",
			app:   strPtr("search"),
			scope: strPtr("local"),
			layer: strPtr("system"),
		},
		{
			name: "bare filename",
			path: "inputs.conf",
		},
		{
			name: "unrecognized shape",
			path: "/tmp/uploads/a8f3/file.conf",
		},
		{
			name:  "windows separators",
			path:  `C:\Splunk\etc\apps\search\local\inputs.conf`,
			app:   strPtr("search"),
			scope: strPtr("local"),
			layer: strPtr("app"),
		},
		{
			name: "apps as last segment has no app",
			path: "etc/apps",
		},
		{
			name:  "first apps segment wins",
			path:  "etc/apps/one/apps/two/local/inputs.conf",
			app:   strPtr("one"),
			scope: strPtr("local"),
			layer: strPtr("app"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := Extract(tc.path)

			assert.Equal(t, tc.path, p.SourcePath)
			assert.Equal(t, tc.app, p.App)
			assert.Equal(t, tc.scope, p.Scope)
			assert.Equal(t, tc.layer, p.Layer)
		})
	}
}

func TestExtract_IsPure(t *testing.T) {
	t.Parallel()

	path := "etc/apps/search/local/inputs.conf"
	first := Extract(path)
	second := Extract(path)

	require.Equal(t, first, second)
}
