package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: home},
		{in: "~/pics/me.png", want: filepath.Join(home, "pics", "me.png")},
		{in: "/tmp/../tmp/me.png", want: "/tmp/me.png"},
		{in: "~bob/me.png", want: "~bob/me.png"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLimited(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o600))

	t.Run("within limit", func(t *testing.T) {
		data, err := ReadLimited(path, 5)
		require.NoError(t, err)
		assert.Equal(t, []byte("12345"), data)
	})

	t.Run("over limit", func(t *testing.T) {
		_, err := ReadLimited(path, 4)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ReadLimited(filepath.Join(dir, "nope.png"), 5)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("home relative", func(t *testing.T) {
		t.Setenv("HOME", dir)
		data, err := ReadLimited("~/avatar.png", 10)
		require.NoError(t, err)
		assert.Equal(t, []byte("12345"), data)
	})
}
