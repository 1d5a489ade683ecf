package formula

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/statline/statline/internal/fieldpath"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokOp
)

type token struct {
	kind tokKind
	text string
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '[' || r == ']'
}

func scan(src string) []token {
	var toks []token
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r):
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			toks = append(toks, token{tokNumber, string(runes[i:j])})
			i = j
		case unicode.IsLetter(r) || r == '_':
			j := i
			for j < len(runes) && isIdentRune(runes[j]) {
				j++
			}
			toks = append(toks, token{tokIdent, string(runes[i:j])})
			i = j
		case r == '&' || r == '|' || r == '=':
			if i+1 < len(runes) && runes[i+1] == r {
				toks = append(toks, token{tokOp, string([]rune{r, r})})
				i += 2
			} else {
				toks = append(toks, token{tokOp, string(r)})
				i++
			}
		case r == '!' || r == '<' || r == '>':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{tokOp, string(r) + "="})
				i += 2
			} else {
				toks = append(toks, token{tokOp, string(r)})
				i++
			}
		default:
			toks = append(toks, token{tokOp, string(r)})
			i++
		}
	}
	return toks
}

type parser struct {
	toks []token
	pos  int
	src  string
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) eof() bool { return p.peek().kind == tokEOF }

func (p *parser) acceptOp(op string) bool {
	t := p.peek()
	if t.kind == tokOp && t.text == op {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectOp(op string) error {
	if !p.acceptOp(op) {
		return fmt.Errorf("formula %q: expected %q, got %q", p.src, op, p.peek().text)
	}
	return nil
}

// arithmetic: term { (+|-) term }
func (p *parser) parseArith() (Expr, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("+"):
			r, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			l = binaryExpr{'+', l, r}
		case p.acceptOp("-"):
			r, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			l = binaryExpr{'-', l, r}
		default:
			return l, nil
		}
	}
}

// term: factor { (*|/) factor }
func (p *parser) parseTerm() (Expr, error) {
	l, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("*"):
			r, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			l = binaryExpr{'*', l, r}
		case p.acceptOp("/"):
			r, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			l = binaryExpr{'/', l, r}
		default:
			return l, nil
		}
	}
}

func (p *parser) parseFactor() (Expr, error) {
	t := p.peek()
	switch {
	case p.acceptOp("-"):
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return unaryExpr{x}, nil
	case p.acceptOp("("):
		e, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		return e, nil
	case t.kind == tokNumber:
		p.next()
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return nil, fmt.Errorf("formula %q: bad number %q", p.src, t.text)
		}
		return literal(f), nil
	case t.kind == tokIdent:
		p.next()
		if p.acceptOp("(") {
			return p.parseFuncTail(t.text)
		}
		path, err := fieldpath.Parse(t.text)
		if err != nil {
			return nil, fmt.Errorf("formula %q: %v", p.src, err)
		}
		return pathExpr{path}, nil
	default:
		return nil, fmt.Errorf("formula %q: unexpected %q", p.src, t.text)
	}
}

func (p *parser) parseFuncTail(name string) (Expr, error) {
	arg := p.next()
	if arg.kind != tokIdent {
		return nil, fmt.Errorf("formula %q: %s() takes a field path", p.src, name)
	}
	path, err := fieldpath.Parse(arg.text)
	if err != nil {
		return nil, fmt.Errorf("formula %q: %v", p.src, err)
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	switch name {
	case "sum":
		return sumExpr{path}, nil
	case "len", "count":
		return lenExpr{path}, nil
	default:
		return nil, fmt.Errorf("formula %q: unknown function %q", p.src, name)
	}
}

// boolean: or { "||" and }
func (p *parser) parseOr() (Check, error) {
	l, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.acceptOp("||") {
		r, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		l = orCheck{l, r}
	}
	return l, nil
}

func (p *parser) parseAnd() (Check, error) {
	l, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.acceptOp("&&") {
		r, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		l = andCheck{l, r}
	}
	return l, nil
}

func (p *parser) parseNot() (Check, error) {
	if p.acceptOp("!") {
		x, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return notCheck{x}, nil
	}

	// a parenthesized boolean group, backtracking to arithmetic on failure
	if p.peek().kind == tokOp && p.peek().text == "(" {
		save := p.pos
		p.pos++
		if c, err := p.parseOr(); err == nil && p.acceptOp(")") {
			// only a group if no comparison follows the close paren
			if !p.cmpAhead() {
				return c, nil
			}
		}
		p.pos = save
	}

	return p.parseCmp()
}

func (p *parser) cmpAhead() bool {
	t := p.peek()
	if t.kind != tokOp {
		return false
	}
	switch t.text {
	case "==", "!=", ">", ">=", "<", "<=", "+", "-", "*", "/":
		return true
	}
	return false
}

func (p *parser) parseCmp() (Check, error) {
	// exists(path) stands alone as a boolean
	if t := p.peek(); t.kind == tokIdent && t.text == "exists" {
		p.next()
		if err := p.expectOp("("); err != nil {
			return nil, err
		}
		arg := p.next()
		if arg.kind != tokIdent {
			return nil, fmt.Errorf("check %q: exists() takes a field path", p.src)
		}
		path, err := fieldpath.Parse(arg.text)
		if err != nil {
			return nil, fmt.Errorf("check %q: %v", p.src, err)
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		return existsCheck{path}, nil
	}

	l, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind != tokOp {
		return nil, fmt.Errorf("check %q: expected comparison, got %q", p.src, t.text)
	}
	switch t.text {
	case "==", "!=", ">", ">=", "<", "<=":
		p.next()
	default:
		return nil, fmt.Errorf("check %q: expected comparison, got %q", p.src, t.text)
	}
	r, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	return cmpCheck{t.text, l, r}, nil
}
