package report

import (
	"bytes"
	"testing"

	"github.com/gouline/sumem/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNoMatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNoMatches(&buf, "code"))
	assert.Equal(t, "No processes found matching \"code\"\n", buf.String())
}

func TestWriteList(t *testing.T) {
	processes := []process.ProcessInfo{
		{PID: 1, Name: "code", Command: "/usr/bin/code", Memory: 1024},
		{PID: 12345, Name: "Helper", Command: "/Apps/Code Helper", Memory: 1536 * 1024},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, "code", processes))

	expected := "Found 2 process(es) matching \"code\":\n" +
		"\n" +
		"     PID        MEMORY  NAME    COMMAND\n" +
		"  ------  ------------  ------  -----------------\n" +
		"   12345       1.50 MB  Helper  /Apps/Code Helper\n" +
		"       1       1.00 KB  code    /usr/bin/code\n" +
		"\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTotal(t *testing.T) {
	tests := []struct {
		processes []process.ProcessInfo
		expected  string
		desc      string
	}{
		{
			processes: []process.ProcessInfo{{Memory: 1024}, {Memory: 2048}, {Memory: 512}},
			expected:  "Total memory used by 3 process(es): 3.50 KB\n",
			desc:      "several processes",
		},
		{
			processes: []process.ProcessInfo{{Memory: 1 << 30}},
			expected:  "Total memory used by 1 process(es): 1.00 GB\n",
			desc:      "single process",
		},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteTotal(&buf, test.processes), test.desc)
		assert.Equal(t, test.expected, buf.String(), test.desc)
	}
}
