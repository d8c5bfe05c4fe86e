package mython

import (
	"fmt"
	"strconv"
	"strings"
)

// LexerError reports a fatal tokenization failure: an odd leading-space
// count, an unterminated string literal, or a lone '!'. Lexing has no
// recovery.
type LexerError struct {
	Message string
	Pos     Position
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error at line %d: %s", e.Pos.Line, e.Message)
}

// ParseError reports a failure to build an AST node from the token
// stream. The parser is a thin, non-core collaborator (see SPEC_FULL.md
// §4); its errors are reported the same way lexer/runtime errors are.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Frame is one entry of a RuntimeError's call stack, identifying the
// method being executed and the position of the call site.
type Frame struct {
	Method string
	Pos    Position
}

const (
	runtimeErrorFrameHead = 8
	runtimeErrorFrameTail = 8
)

// RuntimeError reports a failure raised while executing an AST: an
// unresolved name, a missing field, a missing or arity-mismatched
// method, non-convertible truthiness, non-comparable types, unsupported
// operator operands, division by zero, or a missing string
// representation (spec.md §7).
type RuntimeError struct {
	Kind    string
	Message string
	Frames  []Frame
}

func newRuntimeError(kind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind)
	b.WriteString(": ")
	b.WriteString(e.Message)

	render := func(f Frame) {
		if f.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (line %d)", f.Method, f.Pos.Line)
		} else {
			fmt.Fprintf(&b, "\n  at %s", f.Method)
		}
	}

	if len(e.Frames) <= runtimeErrorFrameHead+runtimeErrorFrameTail {
		for _, f := range e.Frames {
			render(f)
		}
		return b.String()
	}

	for _, f := range e.Frames[:runtimeErrorFrameHead] {
		render(f)
	}
	omitted := len(e.Frames) - (runtimeErrorFrameHead + runtimeErrorFrameTail)
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", omitted)
	for _, f := range e.Frames[len(e.Frames)-runtimeErrorFrameTail:] {
		render(f)
	}
	return b.String()
}

// withFrames returns a copy of e with the given call stack attached. It
// is a no-op if e already carries frames: the first Call frame the
// error unwinds through is the one closest to the actual failure, and
// every frame above it has already been popped off ctx.frames by its
// own deferred leaveMethod by the time it would otherwise re-stamp the
// error, which would silently replace the deep frames with a shorter,
// shallower slice at each level.
func (e *RuntimeError) withFrames(frames []Frame) *RuntimeError {
	if e.Frames != nil {
		return e
	}
	cp := *e
	cp.Frames = append([]Frame(nil), frames...)
	return &cp
}

// FormatCodeFrame renders a source line with a caret under the failing
// column, used by the cmd/mython CLI when printing a fatal error.
func FormatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	lineText := lines[pos.Line-1]
	lineRunes := []rune(lineText)

	column := pos.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line, column, lineLabel, lineText, gutterPad, caretPad,
	)
}
