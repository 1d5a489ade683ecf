// Package formula parses the small expression language used by processor
// calculations and validation checks. Expressions are parsed once into an
// AST when a processor is loaded; execution never re-parses rule text.
//
// Arithmetic: numeric literals, field paths, sum(path[].field),
// len(path[]), + - * /, parentheses, unary minus.
// Checks: comparisons over arithmetic, exists(path), ! && ||.
package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/statline/statline/internal/fieldpath"
)

// Env is one evaluation over an extraction output tree. Missing paths,
// non-numeric values, and division by zero degrade to zero and are
// recorded as warnings rather than failing the evaluation.
type Env struct {
	Data     map[string]any
	Warnings []string
}

func (e *Env) warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}

// Expr is a parsed arithmetic expression.
type Expr interface {
	Eval(env *Env) float64
}

// Check is a parsed boolean expression.
type Check interface {
	Eval(env *Env) bool
}

type literal float64

func (l literal) Eval(*Env) float64 { return float64(l) }

type pathExpr struct {
	path fieldpath.Path
}

func (p pathExpr) Eval(env *Env) float64 {
	v, ok := fieldpath.Get(env.Data, p.path)
	if !ok || v == nil {
		env.warnf("field %s is missing, treated as 0", p.path)
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		env.warnf("field %s is not numeric (%v), treated as 0", p.path, v)
		return 0
	}
	return f
}

type sumExpr struct {
	path fieldpath.Path
}

func (s sumExpr) Eval(env *Env) float64 {
	vals, ok := fieldpath.Values(env.Data, s.path)
	if !ok {
		env.warnf("sum(%s): array is missing, treated as 0", s.path)
		return 0
	}
	var total float64
	for _, v := range vals {
		if v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			env.warnf("sum(%s): non-numeric element %v counted as 0", s.path, v)
			continue
		}
		total += f
	}
	return total
}

type lenExpr struct {
	path fieldpath.Path
}

func (l lenExpr) Eval(env *Env) float64 {
	vals, ok := fieldpath.Values(env.Data, l.path)
	if !ok {
		return 0
	}
	return float64(len(vals))
}

type unaryExpr struct {
	x Expr
}

func (u unaryExpr) Eval(env *Env) float64 { return -u.x.Eval(env) }

type binaryExpr struct {
	op   byte
	l, r Expr
}

func (b binaryExpr) Eval(env *Env) float64 {
	lv, rv := b.l.Eval(env), b.r.Eval(env)
	switch b.op {
	case '+':
		return lv + rv
	case '-':
		return lv - rv
	case '*':
		return lv * rv
	case '/':
		if rv == 0 {
			env.warnf("division by zero, treated as 0")
			return 0
		}
		return lv / rv
	}
	return 0
}

type cmpCheck struct {
	op   string
	l, r Expr
}

func (c cmpCheck) Eval(env *Env) bool {
	lv, rv := c.l.Eval(env), c.r.Eval(env)
	switch c.op {
	case "==":
		return lv == rv
	case "!=":
		return lv != rv
	case ">":
		return lv > rv
	case ">=":
		return lv >= rv
	case "<":
		return lv < rv
	case "<=":
		return lv <= rv
	}
	return false
}

type existsCheck struct {
	path fieldpath.Path
}

func (e existsCheck) Eval(env *Env) bool {
	if e.path.HasArray() {
		vals, ok := fieldpath.Values(env.Data, e.path)
		return ok && len(vals) > 0
	}
	v, ok := fieldpath.Get(env.Data, e.path)
	return ok && v != nil
}

type notCheck struct {
	x Check
}

func (n notCheck) Eval(env *Env) bool { return !n.x.Eval(env) }

type andCheck struct {
	l, r Check
}

func (a andCheck) Eval(env *Env) bool { return a.l.Eval(env) && a.r.Eval(env) }

type orCheck struct {
	l, r Check
}

func (o orCheck) Eval(env *Env) bool { return o.l.Eval(env) || o.r.Eval(env) }

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Parse compiles an arithmetic formula such as
// "sum(players[].oreb) + sum(players[].dreb)".
func Parse(src string) (Expr, error) {
	p := &parser{toks: scan(src), src: src}
	e, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, fmt.Errorf("formula %q: unexpected %q", src, p.peek().text)
	}
	return e, nil
}

// ParseCheck compiles a boolean validation check such as
// "sum(players[].points) == teams.home.score".
func ParseCheck(src string) (Check, error) {
	p := &parser{toks: scan(src), src: src}
	c, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, fmt.Errorf("check %q: unexpected %q", src, p.peek().text)
	}
	return c, nil
}
