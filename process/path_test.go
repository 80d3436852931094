package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromCommand(t *testing.T) {
	tests := []struct {
		command  string
		expected string
		desc     string
	}{
		{command: "/usr/bin/code", expected: "code", desc: "executable path"},
		{command: "code", expected: "code", desc: "bare name"},
		{command: "/usr/lib/code/code --type=renderer", expected: "--type=renderer", desc: "last segment includes arguments"},
		{command: "/Applications/Code Helper", expected: "Helper", desc: "spaces split segments"},
		{command: "/usr/bin/", expected: "/usr/bin/", desc: "trailing separator falls back to command"},
		{command: "[kthreadd]", expected: "[kthreadd]", desc: "kernel thread"},
		{command: "", expected: "", desc: "empty command"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, NameFromCommand(test.command), test.desc)
	}
}
