package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifier(t *testing.T) {
	var out bytes.Buffer
	n := notifier{w: &out}

	n.Success("Login successful")
	n.Error("Invalid credentials")
	n.Success("")

	assert.Equal(t, "[ok] Login successful\n[error] Invalid credentials\n", out.String())
}
