package linker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for the two ways a run can fail.
var (
	ErrRead  = errors.New("reading input")
	ErrWrite = errors.New("writing output")
)

// Run streams r through the Linker into w, then appends the missing link
// definitions. Every output line ends in "\n", including a final input line
// that had none. Errors wrap ErrRead or ErrWrite; lines already written are
// left in place, and a partial line read before a read error is discarded.
func (l *Linker) Run(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			// A line cut short by the failure is dropped; earlier lines are kept.
			_ = bw.Flush()
			return fmt.Errorf("%w: %w", ErrRead, readErr)
		}
		if line != "" {
			if err := writeLine(bw, l.Line(strings.TrimSuffix(line, "\n"))); err != nil {
				return err
			}
		}
		if readErr != nil {
			break
		}
	}

	for _, def := range l.Definitions() {
		if err := writeLine(bw, def.String()); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func writeLine(w *bufio.Writer, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Result is the outcome of linking an in-memory document.
type Result struct {
	Text        string
	BaseURL     string // with any trailing slash removed
	Definitions []Definition
	Stats       Stats
}

// Text links a whole document held in memory using a fresh Linker.
func Text(text, baseURL string) (Result, error) {
	l := New(baseURL)

	var out strings.Builder
	if err := l.Run(strings.NewReader(text), &out); err != nil {
		return Result{}, err
	}

	return Result{
		Text:        out.String(),
		BaseURL:     l.BaseURL(),
		Definitions: l.Definitions(),
		Stats:       l.Stats(),
	}, nil
}
