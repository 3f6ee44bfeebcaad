package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase y", "Y\n", true},
		{"yes", "yes\n", true},
		{"yes uppercase", "YES\n", true},
		{"padded yes", "  y  \n", true},
		{"n", "n\n", false},
		{"empty line", "\n", false},
		{"eof", "", false},
		{"word answer", "sure\n", false},
		{"yeah is not yes", "yeah\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := New(strings.NewReader(tt.input), &out)
			got := c.Confirm("proceed?")
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "proceed? [y/N]")
		})
	}
}

func TestConfirmConsumesOneLinePerPrompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("y\nn\n"), &out)
	assert.True(t, c.Confirm("first?"))
	assert.False(t, c.Confirm("second?"))
	// A third prompt hits EOF and declines.
	assert.False(t, c.Confirm("third?"))
}

func TestSeverityOutput(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Successf("done %d", 3)
	c.Warnf("careful")
	c.Errorf("broken")
	c.Infof("note")

	s := out.String()
	assert.Contains(t, s, IconOK+" done 3")
	assert.Contains(t, s, IconWarning+" careful")
	assert.Contains(t, s, IconError+" broken")
	assert.Contains(t, s, IconBullet+" note")
}

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("hello\n"), &out)

	line, ok := c.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "hello", line)

	_, ok = c.ReadLine()
	assert.False(t, ok)
}
