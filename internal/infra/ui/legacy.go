// Where: internal/infra/ui/legacy.go
// What: UserInterface port and its console-backed implementations.
// Why: Give the check one output surface that can run with or without emoji.
package ui

import (
	"fmt"
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by the check.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewLegacyUI returns a UserInterface that prints messages without decoration,
// matching the plain output of the original script.
func NewLegacyUI(out io.Writer) UserInterface {
	return legacyUI{
		out:     out,
		console: NewWithEmoji(out, false),
	}
}

// NewCheckUI returns a UserInterface that decorates warnings and success lines.
func NewCheckUI(out io.Writer, emojiEnabled bool) UserInterface {
	return checkUI{console: NewWithEmoji(out, emojiEnabled)}
}

type legacyUI struct {
	out     io.Writer
	console *Console
}

func (l legacyUI) Info(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l legacyUI) Warn(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l legacyUI) Success(msg string) {
	fmt.Fprintln(l.out, msg)
}

func (l legacyUI) Block(emoji, title string, rows []KeyValue) {
	renderBlock(l.console, emoji, title, rows)
}

type checkUI struct {
	console *Console
}

func (c checkUI) Info(msg string) {
	c.console.Info(msg)
}

func (c checkUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c checkUI) Success(msg string) {
	c.console.Success(msg)
}

func (c checkUI) Block(emoji, title string, rows []KeyValue) {
	renderBlock(c.console, emoji, title, rows)
}

func renderBlock(console *Console, emoji, title string, rows []KeyValue) {
	console.BlockStart(emoji, title)
	for _, kv := range rows {
		console.Item(kv.Key, kv.Value)
	}
	console.BlockEnd()
}
