package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "overrides from flags",
			args: []string{"cmd", "-a", ":9090", "-d", "postgres://u:p@localhost/w", "-b", "imgs"},
			expected: &Config{
				EndpointAddr: ":9090",
				DatabaseDSN:  "postgres://u:p@localhost/w",
				S3Bucket:     "imgs",
			},
		},
		{
			name:     "no flags keeps current values",
			args:     []string{"cmd"},
			expected: &Config{EndpointAddr: "x", DatabaseDSN: "y", S3Bucket: "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{EndpointAddr: "x", DatabaseDSN: "y", S3Bucket: "z"}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
