package ui

import (
	"bytes"
	"io"

	"go.uber.org/zap"
)

type flusher interface {
	Flush() error
}

// PrefixedWriter inserts a pre-bound prefix at the start of every line
// written through it. The newline state carries across Write calls, so
// a line split over multiple writes is prefixed exactly once.
type PrefixedWriter struct {
	prefix  string
	out     io.Writer
	newline bool
}

var _ io.Writer = (*PrefixedWriter)(nil)

func NewPrefixedWriter(prefix string, out io.Writer) *PrefixedWriter {
	return &PrefixedWriter{
		prefix:  prefix,
		out:     out,
		newline: true,
	}
}

func (w *PrefixedWriter) Write(p []byte) (int, error) {
	var buf bytes.Buffer
	for _, b := range p {
		if w.newline {
			buf.WriteString(w.prefix)
			w.newline = false
		}
		buf.WriteByte(b)
		if b == '\n' {
			w.newline = true
		}
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush forwards to the underlying writer when it supports flushing.
func (w *PrefixedWriter) Flush() error {
	if f, ok := w.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// PrefixedUI emits whole lines, each prefixed and newline-terminated.
// Output and Warn carry separate prefixes (say, a cyan ">" and a bold
// ">!"). Write failures are logged, not returned: rendering is best
// effort by contract.
type PrefixedUI struct {
	outPrefix  string
	warnPrefix string
	out        io.Writer

	log *zap.Logger
}

type PrefixedUIOption func(*PrefixedUI)

func WithLogger(log *zap.Logger) PrefixedUIOption {
	return func(p *PrefixedUI) {
		p.log = log
	}
}

func NewPrefixedUI(outPrefix, warnPrefix string, out io.Writer, opts ...PrefixedUIOption) *PrefixedUI {
	p := &PrefixedUI{
		outPrefix:  outPrefix,
		warnPrefix: warnPrefix,
		out:        out,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PrefixedUI) Output(line string) {
	p.emit(p.outPrefix, line)
}

func (p *PrefixedUI) Warn(line string) {
	p.emit(p.warnPrefix, line)
}

func (p *PrefixedUI) emit(prefix, line string) {
	if _, err := io.WriteString(p.out, prefix+line+"\n"); err != nil {
		p.log.Warn("error writing prefixed line", zap.Error(err))
	}
}
