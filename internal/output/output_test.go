package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_Warn(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Warn("ignoring %s", ".autolink.yaml")

	assert.Equal(t, "Warning: ignoring .autolink.yaml\n", buf.String())
}

func TestPrinter_SectionAndKeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	printer.Section("Stats")
	printer.KeyValue("lines", "3")

	assert.Equal(t, "Stats\n─────\nlines: 3\n", buf.String())
}

func TestPrinter_Success(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Success("already linked")
	assert.Equal(t, "already linked\n", buf.String())
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Print("base url: %s\n", "https://x")
	assert.Equal(t, "base url: https://x\n", buf.String())
}

func TestPrinter_Muted(t *testing.T) {
	assert.Equal(t, "hint", NewPrinter(&bytes.Buffer{}, false).Muted("hint"))
}

func TestPrinter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, false).WriteJSON(struct {
		BaseURL string `json:"base_url"`
	}{BaseURL: "https://github.com/o/r"}))

	assert.JSONEq(t, `{"base_url":"https://github.com/o/r"}`, buf.String())
}

func TestPrinter_WriteJSON_Unsupported(t *testing.T) {
	err := NewPrinter(&bytes.Buffer{}, false).WriteJSON(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding JSON")
}
