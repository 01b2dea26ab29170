package cat

import (
	"errors"
	"io"
	"os"
	"time"

	"gocat/pkg/config"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// StdinPath is the file argument that selects standard input.
const StdinPath = "-"

// Cat streams sources to a single output according to resolved options.
type Cat struct {
	opts   config.Options
	stdin  io.Reader
	stdout io.Writer
	logger *zap.Logger
}

// New returns a Cat reading standard input from stdin and writing to stdout.
func New(opts config.Options, stdin io.Reader, stdout io.Writer, logger *zap.Logger) *Cat {
	if logger == nil {
		logger = zap.NewNop() // Use no-op logger if none is provided
	}
	return &Cat{
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
		logger: logger,
	}
}

// Run processes every configured source in order and stops at the first
// failure. With no files it reads standard input.
func (c *Cat) Run() error {
	startTime := time.Now()
	files := c.opts.Files()
	if len(files) == 0 {
		files = []string{StdinPath}
	}

	c.logger.Debug("Starting concatenation",
		zap.Strings("sources", files),
		zap.Bool("fastPath", c.opts.FastPathEligible()),
		zap.Stringer("numbering", c.opts.Numbering()))

	for _, path := range files {
		if err := c.runSource(path); err != nil {
			c.logger.Debug("Source failed", zap.String("source", path), zap.Error(err))
			return err
		}
	}

	c.logger.Debug("Concatenation completed",
		zap.Int("sources", len(files)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

func (c *Cat) runSource(path string) error {
	switch {
	case path == StdinPath:
		return c.TransformStdin()
	case c.opts.FastPathEligible():
		return c.CopyFile(path)
	default:
		return c.TransformFile(path)
	}
}

// CopyFile copies the file at path verbatim.
func (c *Cat) CopyFile(path string) error {
	c.logger.Debug("Copying source", zap.String("source", path), zap.String("mode", "fast"))
	n, err := FastCopy(path, c.stdout)
	if err != nil {
		return err
	}
	c.logger.Debug("Copied source", zap.String("source", path), zap.Int64("bytesWritten", n))
	return nil
}

// TransformFile runs the file at path through the line rules with fresh state.
func (c *Cat) TransformFile(path string) (err error) {
	f, err := openSource(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, &SourceError{Op: OpClose, Path: path, Err: cerr})
		}
	}()

	return c.TransformReader(f, path)
}

// TransformStdin runs standard input through the line rules until end of file.
func (c *Cat) TransformStdin() error {
	if f, ok := c.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.logger.Debug("Reading from a terminal, end input with an end-of-file keystroke")
	}
	return c.TransformReader(c.stdin, StdinPath)
}

// TransformReader runs r through the line rules with fresh state. name
// identifies the source in errors and logs.
func (c *Cat) TransformReader(r io.Reader, name string) error {
	if r == nil {
		return &SourceError{Op: OpRead, Path: name, Err: errors.New("no reader")}
	}
	c.logger.Debug("Transforming source", zap.String("source", name), zap.String("mode", "transform"))

	stats, err := transform(r, c.stdout, name, NewState(c.opts), isRegularFile(r), c.logger)
	if err != nil {
		return err
	}

	c.logger.Debug("Transformed source",
		zap.String("source", name),
		zap.Int("linesRead", stats.Lines),
		zap.Int64("bytesWritten", stats.Bytes))
	return nil
}

// isRegularFile reports whether r is an *os.File backed by a regular file,
// which can be read ahead without waiting on a producer.
func isRegularFile(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}
