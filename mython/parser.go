package mython

import "fmt"

// Parser is the thin, non-core collaborator spec.md §1 and §6 describe:
// it consumes tokens from a Lexer using only CurrentToken/NextToken and
// builds the AST the evaluator executes. spec.md treats the parser's
// internals as out of scope ("only its contract to the evaluator is
// given"); this file and its parser_*.go siblings exist so the module
// is runnable end-to-end (SPEC_FULL.md §4), implementing exactly the
// grammar spec.md's AST node list implies and nothing more.
//
// Structurally this mirrors the teacher's cur/peek-token precedence
// parser (parser.go in the VibeScript package), adapted to MiniLang's
// explicit Newline/Indent/Dedent tokens in place of VibeScript's
// `end`-delimited blocks.
type Parser struct {
	lex *Lexer

	cur  Token
	peek Token
}

// NewParser wraps lex, which must be freshly constructed (cursor at
// token 0), and primes the cur/peek lookahead.
func NewParser(lex *Lexer) *Parser {
	p := &Parser{lex: lex}
	p.cur = lex.CurrentToken()
	p.peek = lex.NextToken()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) atKind(k TokenKind) bool {
	return p.cur.Kind == k
}

func (p *Parser) atChar(b byte) bool {
	return p.cur.Kind == TokenChar && p.cur.Char == b
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: p.cur.Pos}
}

func (p *Parser) expectKind(k TokenKind) error {
	if !p.atKind(k) {
		return p.errorf("expected %s, got %s", k, p.cur.Kind)
	}
	p.advance()
	return nil
}

func (p *Parser) expectChar(b byte) error {
	if !p.atChar(b) {
		return p.errorf("expected %q, got %s", string(b), p.cur)
	}
	p.advance()
	return nil
}

// skipNewlines consumes zero or more Newline tokens, letting callers
// tolerate blank statement separators without special-casing them
// everywhere.
func (p *Parser) skipNewlines() {
	for p.atKind(TokenNewline) {
		p.advance()
	}
}

// ParseProgram parses an entire token stream into a Compound root
// owning every descendant statement, matching the root node contract
// spec.md §6 names.
func ParseProgram(lex *Lexer) (*Compound, error) {
	p := NewParser(lex)
	p.skipNewlines()
	var stmts []Node
	for !p.atKind(TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	if err := resolveClassParents(stmts); err != nil {
		return nil, err
	}
	return &Compound{Statements: stmts}, nil
}

// resolveClassParents fixes up the placeholder parent Class values
// parseClassDefinition installs when a class header names a base class
// (spec.md §4.3): at parse time the base's real *Class may not exist
// yet, so the placeholder carries only its name until every ClassDefinition
// reachable from the program has been parsed and can be looked up by
// name. Class definitions are collected from the top level and from
// if/else blocks (see collectClassDefinitions); those inside method
// bodies are not collected.
func resolveClassParents(stmts []Node) error {
	defs := collectClassDefinitions(stmts)

	byName := make(map[string]*Class, len(defs))
	for _, def := range defs {
		byName[def.Class.Name] = def.Class
	}
	for _, def := range defs {
		if def.Class.Parent == nil {
			continue
		}
		real, found := byName[def.Class.Parent.Name]
		if !found {
			return &ParseError{Message: "unknown base class " + def.Class.Parent.Name}
		}
		def.Class.Parent = real
	}
	return nil
}

// collectClassDefinitions walks every statement reachable from stmts,
// descending into IfElse branches, and returns every ClassDefinition
// found. MethodBody is not descended into, so a class defined inside a
// method body is neither resolved nor usable as a base: if it names a
// base class, its Parent stays the name-only placeholder, which has no
// methods.
func collectClassDefinitions(stmts []Node) []*ClassDefinition {
	var defs []*ClassDefinition
	for _, stmt := range stmts {
		switch n := stmt.(type) {
		case *ClassDefinition:
			defs = append(defs, n)
		case *IfElse:
			if body, ok := n.IfBody.(*Compound); ok {
				defs = append(defs, collectClassDefinitions(body.Statements)...)
			}
			if body, ok := n.ElseBody.(*Compound); ok {
				defs = append(defs, collectClassDefinitions(body.Statements)...)
			}
		}
	}
	return defs
}

// parseBlock parses an indented block: the caller has already consumed
// the ':' introducing it. A block is one or more statements between a
// matched Indent/Dedent pair.
func (p *Parser) parseBlock() (*Compound, error) {
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if err := p.expectKind(TokenIndent); err != nil {
		return nil, err
	}
	var stmts []Node
	for !p.atKind(TokenDedent) && !p.atKind(TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	if err := p.expectKind(TokenDedent); err != nil {
		return nil, err
	}
	return &Compound{Statements: stmts}, nil
}
