package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/daulet/tasklog/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixedWriterPartialLines(t *testing.T) {
	var out bytes.Buffer
	w := ui.NewPrefixedWriter("a", &out)

	for _, chunk := range []string{"bc\ndef", "ghi\n", "jkl\nmno\n"} {
		n, err := w.Write([]byte(chunk))
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}

	assert.Equal(t, "abc\nadefghi\najkl\namno\n", out.String())
}

func TestPrefixedWriterEmptyLines(t *testing.T) {
	var out bytes.Buffer
	w := ui.NewPrefixedWriter("> ", &out)

	_, err := w.Write([]byte("\n\nvisible\n"))
	require.NoError(t, err)
	assert.Equal(t, "> \n> \n> visible\n", out.String())
}

type flushRecorder struct {
	bytes.Buffer
	flushed int
}

func (f *flushRecorder) Flush() error {
	f.flushed++
	return nil
}

func TestPrefixedWriterFlush(t *testing.T) {
	rec := &flushRecorder{}
	w := ui.NewPrefixedWriter(">", rec)
	require.NoError(t, w.Flush())
	assert.Equal(t, 1, rec.flushed)

	// plain writers have nothing to flush
	plain := ui.NewPrefixedWriter(">", &bytes.Buffer{})
	assert.NoError(t, plain.Flush())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrefixedWriterError(t *testing.T) {
	w := ui.NewPrefixedWriter(">", failWriter{})
	_, err := w.Write([]byte("line\n"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	colored := ui.New(true)
	assert.Equal(t, "\x1b[36m>\x1b[0m", colored.Apply(ui.Cyan, ">"))
	assert.Equal(t, "\x1b[1m>!\x1b[0m", colored.Apply(ui.Bold, ">!"))

	plain := ui.New(false)
	assert.Equal(t, ">", plain.Apply(ui.Cyan, ">"))
	assert.Equal(t, ">!", plain.Apply(ui.Bold, ">!"))
}

func TestPrefixedUI(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrefixedUI("> ", ">! ", &out)

	p.Output("building")
	p.Output("")
	p.Warn("cache miss")

	assert.Equal(t, "> building\n> \n>! cache miss\n", out.String())
}
