package prompt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/testswitch/internal/logging"
)

// Notifier writes informational messages, in colour on a terminal.
type Notifier struct {
	w     io.Writer
	color *color.Color
}

// NewNotifier creates a Notifier for w.
func NewNotifier(w io.Writer) *Notifier {
	n := &Notifier{w: w}
	if logging.SupportsColor(w) {
		n.color = color.New(color.FgCyan)
		n.color.EnableColor()
	}
	return n
}

// Notify writes msg followed by a newline.
func (n *Notifier) Notify(msg string) {
	Notify(n.w, n.color, msg)
}

// Notify writes msg to w, coloured with c when c is non-nil.
func Notify(w io.Writer, c *color.Color, msg string) {
	if c != nil {
		msg = c.Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}
