package mython

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Config controls the execution bounds an Engine enforces (SPEC_FULL.md
// §2). Both fields are additive safety around the core evaluator, not
// language features: zero means unlimited, matching spec.md §5's
// documented behavior that unbounded recursion exhausts the host stack.
type Config struct {
	StepQuota      int
	RecursionLimit int
}

// Engine runs MiniLang programs under a fixed Config, mirroring the
// teacher's Engine/Config pairing (vibes.NewEngine/vibes.Engine.Execute).
type Engine struct {
	config Config
}

// NewEngine constructs an Engine with the given Config. There is no
// validation to do beyond what Config itself expresses — negative
// limits are treated the same as zero (unlimited) by Context.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg}
}

// Compile lexes and parses source into a runnable *Compound, surfacing
// any LexerError or ParseError without running anything.
func (e *Engine) Compile(source string) (*Compound, error) {
	lex, err := NewLexer(strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	return ParseProgram(lex)
}

// Run compiles and executes source, writing Print/Stringify output to
// out. It returns any LexerError, ParseError, or RuntimeError unchanged;
// the Config bounds apply to the run's Context. ctx.Done() is checked once before
// execution begins, matching the teacher's Engine.Execute contract of
// honoring cancellation without instrumenting every evaluator step.
func (e *Engine) Run(ctx context.Context, source string, out io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	program, err := e.Compile(source)
	if err != nil {
		return err
	}

	execCtx := NewContext(out)
	execCtx.RecursionLimit = e.config.RecursionLimit
	execCtx.StepQuota = e.config.StepQuota

	closure := NewClosure()
	_, err = program.Execute(closure, execCtx)
	return err
}

// ConfigSummary renders the Engine's active bounds, used by the
// cmd/mython CLI's -verbose flag.
func (e *Engine) ConfigSummary() string {
	return fmt.Sprintf("step_quota=%d recursion_limit=%d", e.config.StepQuota, e.config.RecursionLimit)
}
