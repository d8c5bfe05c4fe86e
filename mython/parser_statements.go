package mython

// parseStatement dispatches on the current token to one of the
// statement forms spec.md §4.4 names. A statement is one source line
// (possibly followed by an indented block); simple statements consume
// their own trailing Newline.
func (p *Parser) parseStatement() (Node, error) {
	switch p.cur.Kind {
	case TokenClass:
		return p.parseClassDefinition()
	case TokenIf:
		return p.parseIfElse()
	case TokenPrint:
		return p.parsePrint()
	case TokenReturn:
		return p.parseReturn()
	default:
		return p.parseAssignmentOrExpr()
	}
}

// parsePrint parses `print expr (',' expr)*` followed by a Newline.
// A bare `print` with no arguments prints an empty line.
func (p *Parser) parsePrint() (Node, error) {
	if err := p.expectKind(TokenPrint); err != nil {
		return nil, err
	}
	var args []Node
	if !p.atKind(TokenNewline) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.atChar(',') {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	return &Print{Args: args}, nil
}

// parseReturn parses `return expr` followed by a Newline.
func (p *Parser) parseReturn() (Node, error) {
	if err := p.expectKind(TokenReturn); err != nil {
		return nil, err
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	return &Return{Argument: arg}, nil
}

// parseIfElse parses `if expr:` BLOCK [`else:` BLOCK].
func (p *Parser) parseIfElse() (Node, error) {
	if err := p.expectKind(TokenIf); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	ifBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &IfElse{Condition: cond, IfBody: ifBody}

	if p.atKind(TokenElse) {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.ElseBody = elseBody
	}
	return node, nil
}

// parseAssignmentOrExpr handles every statement that starts with an
// identifier: a plain assignment (`name = expr`), a field assignment
// (`obj.field = expr`), or a bare expression statement such as a
// method call invoked for effect (`obj.method(args)`).
func (p *Parser) parseAssignmentOrExpr() (Node, error) {
	pos := p.cur.Pos
	if !p.atKind(TokenID) {
		return nil, p.errorf("expected a statement, got %s", p.cur)
	}
	firstID := p.cur.Str
	p.advance()

	var ids []string
	ids = append(ids, firstID)
	for p.atChar('.') {
		p.advance()
		field := p.cur.Str
		if err := p.expectKind(TokenID); err != nil {
			return nil, err
		}
		ids = append(ids, field)
	}

	switch {
	case p.atChar('='):
		p.advance()
		rv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(TokenNewline); err != nil {
			return nil, err
		}
		if len(ids) == 1 {
			return &Assignment{Name: ids[0], Rv: rv}, nil
		}
		return &FieldAssignment{
			Object: &VariableValue{Ids: ids[:len(ids)-1], Pos: pos},
			Field:  ids[len(ids)-1],
			Rv:     rv,
		}, nil

	case p.atChar('('):
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(TokenNewline); err != nil {
			return nil, err
		}
		if len(ids) == 1 && ids[0] == "str" {
			if len(args) != 1 {
				return nil, &ParseError{Message: "str() takes exactly one argument", Pos: pos}
			}
			return &StringifyExpr{Argument: args[0]}, nil
		}
		if len(ids) == 1 {
			return &NewInstance{
				ClassExpr: &VariableValue{Ids: ids, Pos: pos},
				Args:      args,
				HasArgs:   true,
				Pos:       pos,
			}, nil
		}
		return &MethodCall{
			Object: &VariableValue{Ids: ids[:len(ids)-1], Pos: pos},
			Method: ids[len(ids)-1],
			Args:   args,
			Pos:    pos,
		}, nil

	default:
		if err := p.expectKind(TokenNewline); err != nil {
			return nil, err
		}
		return &VariableValue{Ids: ids, Pos: pos}, nil
	}
}

// parseClassDefinition parses `class Name [ '(' Base ')' ] ':'` followed
// by an indented block of `def` method definitions (spec.md §4.3, §4.4).
func (p *Parser) parseClassDefinition() (Node, error) {
	if err := p.expectKind(TokenClass); err != nil {
		return nil, err
	}
	name := p.cur.Str
	if err := p.expectKind(TokenID); err != nil {
		return nil, err
	}

	var parentName string
	hasParent := false
	if p.atChar('(') {
		p.advance()
		parentName = p.cur.Str
		if err := p.expectKind(TokenID); err != nil {
			return nil, err
		}
		hasParent = true
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.expectKind(TokenNewline); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if err := p.expectKind(TokenIndent); err != nil {
		return nil, err
	}

	var methods []*Method
	for !p.atKind(TokenDedent) && !p.atKind(TokenEOF) {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		p.skipNewlines()
	}
	if err := p.expectKind(TokenDedent); err != nil {
		return nil, err
	}

	var parent *Class
	if hasParent {
		parent = &Class{Name: parentName} // resolved by resolveClassParents before execution
	}
	return &ClassDefinition{Class: NewClass(name, methods, parent)}, nil
}

// parseMethodDef parses `def name '(' params ')' ':'` followed by an
// indented statement block, wrapped in a MethodBody so Return unwinds
// no further than this method (spec.md §4.4).
func (p *Parser) parseMethodDef() (*Method, error) {
	if err := p.expectKind(TokenDef); err != nil {
		return nil, err
	}
	name := p.cur.Str
	if err := p.expectKind(TokenID); err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	if !p.atChar(')') {
		for {
			params = append(params, p.cur.Str)
			if err := p.expectKind(TokenID); err != nil {
				return nil, err
			}
			if p.atChar(',') {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Method{Name: name, FormalParams: params, Body: &MethodBody{Body: body}}, nil
}
