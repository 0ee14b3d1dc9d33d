package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"parley/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// It abstracts the interaction surface so the loop can drive a terminal,
// a test buffer, or any other line-oriented frontend.
type IOHandler interface {
	// Output presents an engine result to the user.
	Output(ctx context.Context, res domain.Result) error

	// Input reads the user's next utterance.
	Input(ctx context.Context) (string, error)
}

// ContentRenderer transforms result text before output, e.g. markdown to
// ANSI for terminals. Render errors fall back to the raw text.
type ContentRenderer func(string) (string, error)

// TextHandler implements line-oriented text IO.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
}

// NewTextHandler creates a handler for standard text IO.
// Nil reader or writer fall back to stdin/stdout.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (h *TextHandler) Output(ctx context.Context, res domain.Result) error {
	text := res.Text
	if text == "" {
		return nil
	}
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			text = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(text))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	fmt.Fprint(h.Writer, "> ")

	text, err := h.Reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
