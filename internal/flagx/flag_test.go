package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	client := []string{"-a", "-t", "-d", "-l"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "config flag dropped, client flags kept",
			args: []string{"-c", "blogify.json", "-a", "http://127.0.0.1:8080/api", "-t", "5"},
			want: []string{"-a", "http://127.0.0.1:8080/api", "-t", "5"},
		},
		{
			name: "equals form",
			args: []string{"-l=debug", "--config=alt.json"},
			want: []string{"-l=debug"},
		},
		{
			name: "flag at end without value",
			args: []string{"-d"},
			want: []string{"-d"},
		},
		{
			name: "next dash token is not a value",
			args: []string{"-a", "-l", "info"},
			want: []string{"-a", "-l", "info"},
		},
		{
			name: "positional and unknown ignored",
			args: []string{"positional", "-x", "1"},
			want: []string{},
		},
		{
			name: "repeated flag kept in order",
			args: []string{"-l", "warn", "-l", "error"},
			want: []string{"-l", "warn", "-l", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, client))
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("short -c with value", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config with value", func(t *testing.T) {
		assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json"}))
	})

	t.Run("equals form mixed with other flags", func(t *testing.T) {
		assert.Equal(t, "/p.json", ConfigPath([]string{"-a", "http://x", "--config=/p.json", "-l", "debug"}))
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		assert.Empty(t, ConfigPath([]string{"-x", "1", "-y", "2"}))
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	})
}
