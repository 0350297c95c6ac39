package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-a", "http://localhost:3001"},
			names: []string{"c", "config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "double dash with equals",
			args:  []string{"--config=alt.json", "-a", "x"},
			names: []string{"c", "config"},
			want:  []string{"--config=alt.json"},
		},
		{
			name:  "single dash with equals",
			args:  []string{"-d=board.db"},
			names: []string{"d"},
			want:  []string{"-d=board.db"},
		},
		{
			name:  "order preserved across forms",
			args:  []string{"--config=first.json", "-c", "second.json", "-x", "1"},
			names: []string{"c", "config"},
			want:  []string{"--config=first.json", "-c", "second.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "positional", "-", "--"},
			names: []string{"c"},
			want:  []string{},
		},
		{
			name:  "flag without value at end",
			args:  []string{"-c"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
		{
			name:  "flag followed by another flag",
			args:  []string{"-c", "-l", "debug"},
			names: []string{"c"},
			want:  []string{"-c"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.names...)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.json", ConfigPath([]string{"-a", "http://x", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigPath([]string{"--config=b.json", "-l", "debug"}))
	assert.Equal(t, "", ConfigPath([]string{"-l", "debug"}))
	assert.Equal(t, "", ConfigPath(nil))
}
