package interp

import (
	"strconv"

	"torshi/pkg/lexer"
)

// parser walks a token slice by index, evaluating as it parses. Each
// function call gets its own parser over the body tokens, so there is no
// cursor state to save or restore around calls.
type parser struct {
	it   *Interpreter
	toks []lexer.Token
	pos  int
}

// cur returns the current token. Tokenize terminates every stream with
// EOF, so the index never runs past the slice.
func (p *parser) cur() lexer.Token {
	return p.toks[p.pos]
}

// next advances past the current token, stopping at EOF
func (p *parser) next() {
	if p.toks[p.pos].Type != lexer.EOF {
		p.pos++
	}
}

// expect consumes a token of the given type or fails with a syntax error
func (p *parser) expect(t lexer.TokenType, what string) (lexer.Token, error) {
	tok := p.cur()
	if tok.Type != t {
		return tok, errSyntax(tok.Pos, "expected "+what)
	}

	p.next()
	return tok, nil
}

// program executes statements until EOF, each terminated by ';' unless the
// input is exhausted
func (p *parser) program() error {
	for p.cur().Type != lexer.EOF {
		if err := p.statement(); err != nil {
			return err
		}

		switch p.cur().Type {
		case lexer.SEMICOLON:
			p.next()
		case lexer.EOF:
		default:
			return errSyntax(p.cur().Pos, "expected ';' after statement")
		}
	}

	return nil
}

// statement dispatches on the leading token: assignment, call for effect,
// array element write, function declaration, or array declaration
func (p *parser) statement() error {
	tok := p.cur()

	switch tok.Type {
	case lexer.FUNCTION:
		return p.functionDecl()

	case lexer.ARRAY:
		return p.arrayDecl()

	case lexer.ID:
		p.next()

		switch p.cur().Type {
		case lexer.ASSIGN:
			p.next()
			value, err := p.expr()
			if err != nil {
				return err
			}
			p.it.env.Set(tok.Lexeme, value)
			return nil

		case lexer.LPAREN:
			_, err := p.callFunction(tok.Lexeme, tok.Pos)
			return err

		case lexer.LSBRACE:
			return p.arrayWrite(tok.Lexeme, tok.Pos)

		default:
			return errSyntax(p.cur().Pos, "invalid statement")
		}

	default:
		return errSyntax(tok.Pos, "unknown statement")
	}
}

// arrayWrite handles `id[expr] = expr`, bounds-checked like a read
func (p *parser) arrayWrite(name string, pos lexer.Position) error {
	p.next() // consume '['

	index, err := p.expr()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.RSBRACE, "']' for array assignment"); err != nil {
		return err
	}
	if _, err := p.expect(lexer.ASSIGN, "'=' for array assignment"); err != nil {
		return err
	}

	value, err := p.expr()
	if err != nil {
		return err
	}

	arr, ok := p.it.arrays[name]
	if !ok {
		return errUndefined(pos, "undefined array", name)
	}
	if index < 0 || index >= len(arr) {
		return errBounds(pos, name, index, len(arr))
	}

	arr[index] = value
	return nil
}

// functionDecl handles `function id(params) { body }`. The body is kept
// as a token slice, matching braces so a nested pair inside the body does
// not end the capture early.
func (p *parser) functionDecl() error {
	p.next() // consume 'function'

	name, err := p.expect(lexer.ID, "function name")
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LPAREN, "'(' for function declaration"); err != nil {
		return err
	}

	var params []string
	if p.cur().Type != lexer.RPAREN {
		for {
			param, err := p.expect(lexer.ID, "parameter name")
			if err != nil {
				return err
			}
			params = append(params, param.Lexeme)

			if p.cur().Type != lexer.COMMA {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(lexer.RPAREN, "')' after parameters"); err != nil {
		return err
	}

	lbrace, err := p.expect(lexer.LBRACE, "'{' for function body")
	if err != nil {
		return err
	}

	start := p.pos
	depth := 1
	for {
		switch p.cur().Type {
		case lexer.EOF:
			return errSyntax(lbrace.Pos, "expected '}' to end function body")
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			depth--
		}
		if depth == 0 {
			break
		}
		p.next()
	}

	body := make([]lexer.Token, 0, p.pos-start+1)
	body = append(body, p.toks[start:p.pos]...)
	body = append(body, lexer.NewToken(lexer.EOF, "", p.cur().Pos))
	p.next() // consume '}'

	p.it.functions[name.Lexeme] = Function{Params: params, Body: body}
	return nil
}

// arrayDecl handles `array id[expr]`, zero-initializing the elements
func (p *parser) arrayDecl() error {
	p.next() // consume 'array'

	name, err := p.expect(lexer.ID, "array name")
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LSBRACE, "'[' for array declaration"); err != nil {
		return err
	}

	size, err := p.expr()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.RSBRACE, "']' after array size"); err != nil {
		return err
	}

	if size < 0 {
		return errSyntax(name.Pos, "negative array size")
	}

	p.it.arrays[name.Lexeme] = make([]int, size)
	return nil
}

// expr := term (('+'|'-') term)*
func (p *parser) expr() (int, error) {
	result, err := p.term()
	if err != nil {
		return 0, err
	}

	for {
		switch p.cur().Type {
		case lexer.PLUS:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			result += rhs

		case lexer.MINUS:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return 0, err
			}
			result -= rhs

		default:
			return result, nil
		}
	}
}

// term := factor (('*'|'/') factor)*
func (p *parser) term() (int, error) {
	result, err := p.factor()
	if err != nil {
		return 0, err
	}

	for {
		switch op := p.cur(); op.Type {
		case lexer.MULT:
			p.next()
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			result *= rhs

		case lexer.DIV:
			p.next()
			rhs, err := p.factor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errArithmetic(op.Pos, "division by zero")
			}
			result /= rhs

		default:
			return result, nil
		}
	}
}

// factor := NUM | ID arrayAccess? | ID '(' args ')' | '(' expr ')'
// An identifier resolves as array read when followed by '[', then as a
// variable, then as a function call.
func (p *parser) factor() (int, error) {
	tok := p.cur()

	switch tok.Type {
	case lexer.NUM:
		p.next()
		value, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return 0, errSyntax(tok.Pos, "integer literal out of range")
		}
		return value, nil

	case lexer.ID:
		p.next()

		if p.cur().Type == lexer.LSBRACE {
			return p.arrayRead(tok.Lexeme, tok.Pos)
		}
		if value, ok := p.it.env.Lookup(tok.Lexeme); ok {
			return value, nil
		}
		if _, ok := p.it.functions[tok.Lexeme]; ok {
			return p.callFunction(tok.Lexeme, tok.Pos)
		}
		return 0, errUndefined(tok.Pos, "undefined variable or function", tok.Lexeme)

	case lexer.LPAREN:
		p.next()
		value, err := p.expr()
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return 0, err
		}
		return value, nil

	default:
		return 0, errSyntax(tok.Pos, "invalid factor")
	}
}

// arrayRead handles `id[expr]` in factor position
func (p *parser) arrayRead(name string, pos lexer.Position) (int, error) {
	p.next() // consume '['

	index, err := p.expr()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(lexer.RSBRACE, "']' for array access"); err != nil {
		return 0, err
	}

	arr, ok := p.it.arrays[name]
	if !ok {
		return 0, errUndefined(pos, "undefined array", name)
	}
	if index < 0 || index >= len(arr) {
		return 0, errBounds(pos, name, index, len(arr))
	}

	return arr[index], nil
}

// callFunction evaluates `(args)` at the cursor and applies the named
// function. Arguments are evaluated left-to-right in the caller's scope;
// the body runs under a parameter overlay that is popped on every exit
// path, so a failing call leaves no residue in the caller's environment.
func (p *parser) callFunction(name string, pos lexer.Position) (int, error) {
	fn, ok := p.it.functions[name]
	if !ok {
		return 0, errUndefined(pos, "undefined function", name)
	}

	if _, err := p.expect(lexer.LPAREN, "'(' for function call"); err != nil {
		return 0, err
	}

	args := make([]int, 0, len(fn.Params))
	for i := range fn.Params {
		if i > 0 {
			if _, err := p.expect(lexer.COMMA, "',' between function arguments"); err != nil {
				return 0, err
			}
		}

		arg, err := p.expr()
		if err != nil {
			return 0, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(lexer.RPAREN, "')' after function arguments"); err != nil {
		return 0, err
	}

	bindings := make(map[string]int, len(fn.Params))
	for i, param := range fn.Params {
		bindings[param] = args[i]
	}

	p.it.env.Push(bindings)
	defer p.it.env.Pop()

	// The body is a single expression, evaluated by a fresh parser over
	// the captured tokens.
	body := &parser{it: p.it, toks: fn.Body}
	return body.expr()
}
