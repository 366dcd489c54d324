package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/custodia-labs/shotsearch/internal/core/domain"
	"github.com/custodia-labs/shotsearch/internal/core/ports/driven"
)

// queryPrompt is shown before each query on a terminal.
const queryPrompt = ">> "

// staleIndexNotice is printed when the index file changes during a session.
const staleIndexNotice = "index file changed on disk; restart to reload"

// lineResult is one read from a background reader goroutine.
type lineResult struct {
	line string
	err  error
}

// queryReader is a QueryReader that can also print out-of-band notices.
type queryReader interface {
	driven.QueryReader
	Notify(msg string)
	Close() error
}

// newQueryReader picks a raw-mode line editor when in is a terminal and a
// buffered scanner otherwise. Scanner notices go to errOut.
func newQueryReader(in io.Reader, out, errOut io.Writer) queryReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newTerminalReader(f, out)
	}
	return newScannerReader(in, errOut)
}

// scannerReader reads newline-terminated queries from a non-terminal input.
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	mu      sync.Mutex
	pending chan lineResult
}

func newScannerReader(in io.Reader, out io.Writer) *scannerReader {
	return &scannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadQuery returns the next line. EOF and cancellation are interrupts.
func (r *scannerReader) ReadQuery(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.pending == nil {
		ch := make(chan lineResult, 1)
		r.pending = ch
		go func() {
			if r.scanner.Scan() {
				ch <- lineResult{line: strings.TrimRight(r.scanner.Text(), "\r")}
				return
			}
			err := r.scanner.Err()
			if err == nil {
				err = io.EOF
			}
			ch <- lineResult{err: err}
		}()
	}
	ch := r.pending
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", domain.ErrInterrupted
	case res := <-ch:
		r.mu.Lock()
		r.pending = nil
		r.mu.Unlock()
		if errors.Is(res.err, io.EOF) {
			return "", domain.ErrInterrupted
		}
		return res.line, res.err
	}
}

// Notify prints msg on its own line.
func (r *scannerReader) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "\n%s\n", msg)
}

// Close is a no-op; the input belongs to the caller.
func (r *scannerReader) Close() error {
	return nil
}

// terminalReader edits lines in raw mode with per-session history.
type terminalReader struct {
	fd       int
	terminal *term.Terminal
	mu       sync.Mutex
	state    *term.State
	pending  chan lineResult
}

func newTerminalReader(in *os.File, out io.Writer) *terminalReader {
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &terminalReader{
		fd:       int(in.Fd()),
		terminal: term.NewTerminal(rw, queryPrompt),
	}
}

// ReadQuery switches the terminal to raw mode for one line.
// Ctrl-C, Ctrl-D on an empty line and cancellation are interrupts.
func (r *terminalReader) ReadQuery(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.pending == nil {
		state, err := term.MakeRaw(r.fd)
		if err != nil {
			r.mu.Unlock()
			return "", fmt.Errorf("enable raw mode: %w", err)
		}
		r.state = state

		ch := make(chan lineResult, 1)
		r.pending = ch
		go func() {
			line, err := r.terminal.ReadLine()
			ch <- lineResult{line: line, err: err}
		}()
	}
	ch := r.pending
	r.mu.Unlock()

	select {
	case <-ctx.Done():
		r.restore()
		return "", domain.ErrInterrupted
	case res := <-ch:
		r.mu.Lock()
		r.pending = nil
		r.mu.Unlock()
		r.restore()
		if errors.Is(res.err, io.EOF) {
			return "", domain.ErrInterrupted
		}
		return res.line, res.err
	}
}

func (r *terminalReader) restore() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == nil {
		return
	}
	term.Restore(r.fd, r.state) //nolint:errcheck
	r.state = nil
}

// Notify prints msg above the line being edited.
func (r *terminalReader) Notify(msg string) {
	r.terminal.Write([]byte(msg + "\n")) //nolint:errcheck
}

// Close restores the terminal if a read is still in progress.
func (r *terminalReader) Close() error {
	r.restore()
	return nil
}
