package tasklog

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Sink is the capability set of the terminal-facing destination:
// a byte writer that can be asked to flush.
type Sink interface {
	io.Writer
	Flush() error
}

type options struct {
	log *zap.Logger
}

type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// LogWriter receives task output and multiplexes it to a log file
// and/or a prefixed terminal writer. Both sinks are optional; a writer
// with neither configured swallows writes.
//
// Not safe for concurrent use: one instance per task output stream.
type LogWriter struct {
	logFile  *bufio.Writer
	file     *os.File
	prefixed Sink

	log *zap.Logger
}

var _ io.Writer = (*LogWriter)(nil)

func NewLogWriter(opts ...Option) *LogWriter {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return &LogWriter{log: o.log}
}

// WithLogFile creates (or truncates) the log file at path, making
// parent directories as needed, and buffers writes to it. Calling it
// again replaces the previous file sink without closing it.
func (w *LogWriter) WithLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		w.log.Warn("error creating log file directory", zap.Error(err))
		return &CannotWriteLogsError{Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		w.log.Warn("error creating log file", zap.Error(err))
		return &CannotWriteLogsError{Err: err}
	}
	w.file = f
	w.logFile = bufio.NewWriter(f)
	return nil
}

// WithPrefixedWriter attaches the terminal-facing sink.
func (w *LogWriter) WithPrefixedWriter(prefixed Sink) {
	w.prefixed = prefixed
}

// Write fans p out to whichever sinks are configured. With both, the
// prefixed writer goes first so interactive output isn't held up behind
// file buffering, and the returned count is the file sink's: persistence
// is the caller's correctness concern, terminal rendering is best effort.
func (w *LogWriter) Write(p []byte) (int, error) {
	switch {
	case w.logFile != nil && w.prefixed != nil:
		if _, err := w.prefixed.Write(p); err != nil {
			return 0, err
		}
		n, err := w.logFile.Write(p)
		if err != nil {
			w.log.Warn("error writing to log file", zap.Error(err))
			return n, &CannotWriteLogsError{Err: err}
		}
		return n, nil
	case w.logFile != nil:
		n, err := w.logFile.Write(p)
		if err != nil {
			w.log.Warn("error writing to log file", zap.Error(err))
			return n, &CannotWriteLogsError{Err: err}
		}
		return n, nil
	case w.prefixed != nil:
		return w.prefixed.Write(p)
	default:
		// Deliberately a no-op rather than an error: a sink-less writer
		// is valid, though it is indistinguishable from a misconfigured
		// one. Callers that care should check their configuration.
		w.log.Debug("no log file or prefixed writer")
		return 0, nil
	}
}

// Flush drains the file sink, then the prefixed writer. A file sink
// failure aborts before the prefixed writer is reached.
func (w *LogWriter) Flush() error {
	if w.logFile != nil {
		if err := w.logFile.Flush(); err != nil {
			w.log.Warn("error flushing log file", zap.Error(err))
			return &CannotWriteLogsError{Err: err}
		}
	}
	if w.prefixed != nil {
		return w.prefixed.Flush()
	}
	return nil
}

// Close flushes both sinks and releases the log file handle. The
// prefixed writer's destination is not owned here and stays open.
// Callers must Close (or at least Flush) before reading the file back.
func (w *LogWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.logFile = nil
	if err != nil {
		w.log.Warn("error closing log file", zap.Error(err))
		return &CannotWriteLogsError{Err: err}
	}
	return nil
}

// PrefixedOutput renders a single line with a pre-bound prefix.
// *ui.PrefixedUI satisfies it.
type PrefixedOutput interface {
	Output(line string)
}

// ReplayLogs reads a previously captured log file and emits each line,
// in file order and with its terminator stripped, through output.
// Lines emitted before a mid-stream read failure stay emitted.
func ReplayLogs(output PrefixedOutput, filename string, opts ...Option) error {
	o := &options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	o.log.Debug("start replaying logs", zap.String("file", filename))

	f, err := os.Open(filename)
	if err != nil {
		o.log.Warn("error opening log file", zap.Error(err))
		return &CannotReadLogsError{Err: err}
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			o.log.Warn("error reading log file", zap.Error(err))
			return &CannotReadLogsError{Err: err}
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			output.Output(line)
		}
		if err == io.EOF {
			break
		}
	}

	o.log.Debug("finish replaying logs", zap.String("file", filename))
	return nil
}
