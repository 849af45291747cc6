package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoProcessor struct {
	queries []string
}

func (e *echoProcessor) ProcessQuery(text string) string {
	e.queries = append(e.queries, text)
	return "answer to " + text
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleRun(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantQueries []string
	}{
		{
			name:        "quit stops the loop",
			input:       "first\nquit\nnever read\n",
			wantQueries: []string{"first"},
		},
		{
			name:        "quit is case insensitive",
			input:       "QuIt\n",
			wantQueries: nil,
		},
		{
			name:        "quit must be exact",
			input:       "quit now\n quit\nquit\n",
			wantQueries: []string{"quit now", " quit"},
		},
		{
			name:        "end of input",
			input:       "one\ntwo",
			wantQueries: []string{"one", "two"},
		},
		{
			name:        "windows line endings",
			input:       "one\r\nQUIT\r\n",
			wantQueries: []string{"one"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			proc := &echoProcessor{}
			var out bytes.Buffer
			c := New(proc, strings.NewReader(tt.input), &out, "You: ", zap.NewNop())

			err := c.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantQueries, proc.queries)
			assert.True(t, strings.HasPrefix(out.String(), banner))
			for _, q := range tt.wantQueries {
				assert.Contains(t, out.String(), "\nAssistant: answer to "+q+"\n")
			}
		})
	}
}

func TestConsoleRunTranscript(t *testing.T) {
	proc := &echoProcessor{}
	var out bytes.Buffer
	c := New(proc, strings.NewReader("hello\nquit\n"), &out, "You: ", zap.NewNop())

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, banner+"\nYou: \nAssistant: answer to hello\n\nYou: ", out.String())
}

func TestConsoleRunLongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	proc := &echoProcessor{}
	c := New(proc, strings.NewReader(long+"\nhello\nquit\n"), io.Discard, "You: ", zap.NewNop())

	require.NoError(t, c.Run(context.Background()))
	require.Len(t, proc.queries, 2)
	assert.Equal(t, long, proc.queries[0])
	assert.Equal(t, "hello", proc.queries[1])
}

func TestConsoleRunClosesInputOnQuit(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		_, _ = pw.Write([]byte("hello\nquit\n"))
	}()

	proc := &echoProcessor{}
	c := New(proc, pr, io.Discard, "You: ", zap.NewNop())
	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []string{"hello"}, proc.queries)

	_, err := pw.Write([]byte("late\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestConsoleRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(&echoProcessor{}, pr, io.Discard, "You: ", zap.NewNop())
	err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = pw.Write([]byte("late\n"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestConsoleRunReadError(t *testing.T) {
	c := New(&echoProcessor{}, failingReader{}, io.Discard, "You: ", zap.NewNop())
	err := c.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
