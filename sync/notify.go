// ABOUTME: User-facing notification surface for sync outcomes
// ABOUTME: Console implementation prints toast-style one-liners
package sync

import (
	"fmt"
	"io"
	"os"
)

// Notifier receives coarse-grained, user-facing sync status messages. No
// structured error detail crosses this boundary; failures are logged where
// they happen.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

// ConsoleNotifier writes toast-style messages to a writer.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

func (n *ConsoleNotifier) Info(msg string) {
	fmt.Fprintf(n.Out, "… %s\n", msg)
}

func (n *ConsoleNotifier) Success(msg string) {
	fmt.Fprintf(n.Out, "✓ %s\n", msg)
}

func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintf(n.Out, "✗ %s\n", msg)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Info(string)    {}
func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
