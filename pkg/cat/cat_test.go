package cat

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"gocat/pkg/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// writeFiles creates the named files under a temporary directory and
// returns their paths in the given order.
func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for i, content := range contents {
		path := filepath.Join(dir, "file"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		paths = append(paths, path)
	}
	return paths
}

func TestFastPathEquivalence(t *testing.T) {
	t.Parallel()

	inputs := map[string]string{
		"empty":           "",
		"no trailing eol": "last line",
		"blank lines":     "\n\n\n",
		"mixed":           "a\n\tb\n\n  c  \r\nd",
		"invalid utf8":    "\xff\xfe\x00\n\x80",
		"long line":       strings.Repeat("x", 70000) + "\n",
	}

	for name, input := range inputs {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeFiles(t, input)[0]

			fast := &bytes.Buffer{}
			n, err := FastCopy(path, fast)
			require.NoError(t, err)
			require.Equal(t, int64(len(input)), n)

			slow := &bytes.Buffer{}
			c := New(config.Options{}, nil, slow, nil)
			require.NoError(t, c.TransformFile(path))

			// An empty source leaves one buffer nil and the other empty.
			require.Equal(t, input, fast.String())
			require.Equal(t, fast.String(), slow.String())
		})
	}
}

func TestRunConcatenatesInOrder(t *testing.T) {
	t.Parallel()

	paths := writeFiles(t, "one\n", "two\n")
	stdin := strings.NewReader("from stdin\n")

	testCases := []struct {
		name  string
		flags config.Flags
		files []string
		want  string
	}{
		{
			name:  "fast path",
			files: paths,
			want:  "one\ntwo\n",
		},
		{
			name:  "stdin between files",
			files: []string{paths[0], StdinPath, paths[1]},
			want:  "one\nfrom stdin\ntwo\n",
		},
		{
			name:  "numbering restarts per source",
			flags: config.Flags{Number: true},
			files: paths,
			want:  "    1  one\n    1  two\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flags := tc.flags
			flags.Files = tc.files

			out := &bytes.Buffer{}
			_, err := stdin.Seek(0, io.SeekStart)
			require.NoError(t, err)

			c := New(config.Resolve(flags), stdin, out, nil)
			require.NoError(t, c.Run())
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestRunStdinTwice(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	flags := config.Flags{Number: true, Files: []string{StdinPath, StdinPath}}
	c := New(config.Resolve(flags), strings.NewReader("a\nb\n"), out, nil)

	require.NoError(t, c.Run())
	require.Equal(t, "    1  a\n    2  b\n", out.String())
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	paths := writeFiles(t, "before\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	for _, flags := range []config.Flags{{}, {Number: true}} {
		flags.Files = []string{paths[0], missing, paths[0]}

		out := &bytes.Buffer{}
		err := New(config.Resolve(flags), nil, out, nil).Run()

		require.Error(t, err)
		require.Contains(t, err.Error(), "not a file")
		require.Contains(t, err.Error(), missing)

		var srcErr *SourceError
		require.True(t, errors.As(err, &srcErr))
		require.Equal(t, OpOpen, srcErr.Op)
		require.True(t, errors.Is(err, os.ErrNotExist))

		require.Equal(t, "before\n", strings.TrimPrefix(out.String(), "    1  "))
	}
}

func TestRunRejectsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, flags := range []config.Flags{{}, {ShowEnds: true}} {
		flags.Files = []string{dir}

		out := &bytes.Buffer{}
		err := New(config.Resolve(flags), nil, out, nil).Run()

		require.Error(t, err)
		require.Contains(t, err.Error(), "not a file")
		require.Empty(t, out.String())
	}
}

func TestTransformReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("a\nb\nc\n"), iotest.ErrReader(boom))

	out := &bytes.Buffer{}
	c := New(config.Resolve(config.Flags{ShowEnds: true}), nil, out, nil)
	err := c.TransformReader(r, "./notes.txt")

	require.Error(t, err)
	require.Equal(t, "could not read line 4 from ./notes.txt: boom", err.Error())
	require.True(t, errors.Is(err, boom))
	require.Equal(t, "a$\nb$\nc$\n", out.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestTransformWriteError(t *testing.T) {
	t.Parallel()

	broken := errors.New("broken pipe")
	c := New(config.Resolve(config.Flags{Number: true}), strings.NewReader("a\nb\n"), failingWriter{broken}, nil)
	err := c.Run()

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	require.Equal(t, OpWrite, srcErr.Op)
	require.Equal(t, 1, srcErr.Line)
	require.Equal(t, StdinPath, srcErr.Path)
	require.True(t, errors.Is(err, broken))
}

func TestFastCopyWriteError(t *testing.T) {
	t.Parallel()

	path := writeFiles(t, "data\n")[0]
	broken := errors.New("closed")

	_, err := FastCopy(path, failingWriter{broken})
	require.Error(t, err)
	require.True(t, errors.Is(err, broken))
	require.Contains(t, err.Error(), path)
}

func TestTransformReaderNil(t *testing.T) {
	t.Parallel()

	err := New(config.Options{}, nil, io.Discard, nil).TransformStdin()
	require.Error(t, err)
}

func TestBinarySourceIsReported(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	out := &bytes.Buffer{}
	c := New(config.Resolve(config.Flags{ShowEnds: true}), nil, out, zap.New(core))

	require.NoError(t, c.TransformReader(strings.NewReader("\x00\x01\x02\n"), "blob.bin"))
	require.Equal(t, 1, logs.FilterMessageSnippet("binary").Len())
	require.Equal(t, "\x00\x01\x02$\n", out.String())

	require.NoError(t, c.TransformReader(strings.NewReader("plain text\n"), "notes.txt"))
	require.Equal(t, 1, logs.Len())
}

func TestBinaryContentAfterFirstLineIsReported(t *testing.T) {
	t.Parallel()

	path := writeFiles(t, "header\n\x00\x00\x00\x00\n")[0]
	core, logs := observer.New(zap.WarnLevel)
	out := &bytes.Buffer{}
	c := New(config.Resolve(config.Flags{ShowEnds: true}), nil, out, zap.New(core))

	require.NoError(t, c.TransformFile(path))
	require.Equal(t, 1, logs.FilterMessageSnippet("binary").Len())
	require.Equal(t, "header$\n\x00\x00\x00\x00$\n", out.String())
}

func TestShortTextFileIsNotReportedAsBinary(t *testing.T) {
	t.Parallel()

	path := writeFiles(t, "short\n")[0]
	core, logs := observer.New(zap.WarnLevel)
	c := New(config.Resolve(config.Flags{Number: true}), nil, io.Discard, zap.New(core))

	require.NoError(t, c.TransformFile(path))
	require.Equal(t, 0, logs.Len())
}
