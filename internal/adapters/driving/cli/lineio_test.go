package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
)

// failingReader returns err on every read.
type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestNewQueryReader_NonTerminalUsesScanner(t *testing.T) {
	r := newQueryReader(strings.NewReader(""), io.Discard, io.Discard)

	_, ok := r.(*scannerReader)
	assert.True(t, ok)
}

func TestScannerReader_ReadsLines(t *testing.T) {
	r := newScannerReader(strings.NewReader("first\r\n\nthird"), io.Discard)
	ctx := context.Background()

	for _, want := range []string{"first", "", "third"} {
		got, err := r.ReadQuery(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadQuery(ctx)
	assert.ErrorIs(t, err, domain.ErrInterrupted)
}

func TestScannerReader_CancelledContextInterrupts(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := newScannerReader(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReadQuery(ctx)
	assert.ErrorIs(t, err, domain.ErrInterrupted)
}

func TestScannerReader_PendingLineSurvivesCancel(t *testing.T) {
	pr, pw := io.Pipe()
	r := newScannerReader(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.ReadQuery(ctx)
	require.ErrorIs(t, err, domain.ErrInterrupted)

	go func() {
		_, _ = pw.Write([]byte("later\n"))
		pw.Close()
	}()

	got, err := r.ReadQuery(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "later", got)
}

func TestScannerReader_ReadFailure(t *testing.T) {
	fault := errors.New("device gone")
	r := newScannerReader(failingReader{err: fault}, io.Discard)

	_, err := r.ReadQuery(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, fault)
	assert.NotErrorIs(t, err, domain.ErrInterrupted)
}

func TestScannerReader_Notify(t *testing.T) {
	var buf bytes.Buffer
	r := newScannerReader(strings.NewReader(""), &buf)

	r.Notify(staleIndexNotice)

	assert.Equal(t, "\nindex file changed on disk; restart to reload\n", buf.String())
	assert.NoError(t, r.Close())
}
