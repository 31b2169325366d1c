// Package notify prints styled status lines for the user: a symbol prefix and
// a colour per message kind. Colour is disabled automatically when the output
// is not a terminal.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
)

// Kind selects the symbol and colour of a message.
type Kind int

const (
	ErrorKind Kind = iota
	WarningKind
	GenerateKind
	SuccessKind
	InfoKind
)

type style struct {
	symbol string
	color  *fcolor.Color
}

func styleFor(kind Kind) style {
	switch kind {
	case ErrorKind:
		return style{"✗ ", fcolor.New(fcolor.FgRed)}
	case WarningKind:
		return style{"⚠ ", fcolor.New(fcolor.FgYellow)}
	case GenerateKind:
		return style{"✚ ", fcolor.New(fcolor.Reset)}
	case SuccessKind:
		return style{"✔ ", fcolor.New(fcolor.FgGreen)}
	case InfoKind:
		return style{"ℹ ", fcolor.New(fcolor.FgBlue)}
	default:
		return style{"", fcolor.New(fcolor.Reset)}
	}
}

// Write prints one message of the given kind. A nil writer means stdout.
// Continuation lines are indented to line up under the first.
func Write(w io.Writer, kind Kind, format string, args ...any) {
	if w == nil {
		w = os.Stdout
	}
	content := format
	if len(args) > 0 {
		content = fmt.Sprintf(format, args...)
	}

	s := styleFor(kind)
	if s.symbol != "" && strings.Contains(content, "\n") {
		pad := strings.Repeat(" ", len([]rune(s.symbol)))
		content = strings.ReplaceAll(content, "\n", "\n"+pad)
	}

	if _, err := s.color.Fprintf(w, "%s%s\n", s.symbol, content); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

// Errorf writes an error message.
func Errorf(w io.Writer, format string, args ...any) { Write(w, ErrorKind, format, args...) }

// Warningf writes a warning message.
func Warningf(w io.Writer, format string, args ...any) { Write(w, WarningKind, format, args...) }

// Generatef writes a file generation message.
func Generatef(w io.Writer, format string, args ...any) { Write(w, GenerateKind, format, args...) }

// Successf writes a success message.
func Successf(w io.Writer, format string, args ...any) { Write(w, SuccessKind, format, args...) }

// Infof writes an informational message.
func Infof(w io.Writer, format string, args ...any) { Write(w, InfoKind, format, args...) }
