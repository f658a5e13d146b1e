// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/minij"

// expr parses a complete expression.
//
//	Expr := Assign
func (p *parser) expr() Expr { return p.assignExpr() }

// assignExpr parses an assignment or a binary expression. Assignment is right
// associative. An assignment to something other than a variable, element, or
// member is reported but still returned.
//
//	Assign := Binary (AssignOp Assign)?
func (p *parser) assignExpr() Expr {
	p.enter()
	defer p.leave()

	x := p.binaryExpr(1)
	if !p.tok().IsAssign() {
		return x
	}
	op := p.next()
	if !isAssignable(x) {
		p.report(minij.InvalidAssignmentTarget, x.Location(), "cannot assign to %s", describe(x))
	}
	v := p.assignExpr()
	return &AssignExpr{
		node:   at(x.Location().Through(v.Location())),
		Target: x,
		Op:     op.Token,
		Value:  v,
	}
}

// precedence gives the binding strength of binary operators. Operators not
// listed here are not binary.
var precedence = map[minij.Token]int{
	minij.OrOr:   1,
	minij.AndAnd: 2,
	minij.Eq:     3, minij.Ne: 3,
	minij.Lt: 4, minij.Le: 4, minij.Gt: 4, minij.Ge: 4,
	minij.Plus: 5, minij.Minus: 5,
	minij.Star: 6, minij.Slash: 6, minij.Percent: 6,
}

// binaryExpr parses a sequence of left-associative binary operators whose
// precedence is at least prec.
func (p *parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()
	for {
		op := p.tok()
		q, ok := precedence[op]
		if !ok || q < prec {
			return x
		}
		p.next()
		y := p.binaryExpr(q + 1)
		x = &BinaryExpr{node: at(x.Location().Through(y.Location())), Op: op, X: x, Y: y}
	}
}

// unaryExpr parses a prefix operator expression.
//
//	Unary := ('!' | '-' | '+' | '++' | '--') Unary | Postfix
func (p *parser) unaryExpr() Expr {
	switch p.tok() {
	case minij.Not, minij.Minus, minij.Plus, minij.Inc, minij.Dec:
		p.enter()
		defer p.leave()

		op := p.next()
		x := p.unaryExpr()
		return &UnaryExpr{
			node:   at(op.Location.Through(x.Location())),
			Op:     op.Token,
			X:      x,
			Prefix: true,
		}
	}
	return p.postfix(p.primary())
}

// postfix parses the selectors, indices, calls, and increments applied to x.
// A postfix increment or decrement ends the chain.
//
//	Postfix := Primary ( '[' Expr ']' | '(' Args ')' | '.' IDENT )* ('++' | '--')?
func (p *parser) postfix(x Expr) Expr {
	for {
		switch p.tok() {
		case minij.LSquare:
			p.next()
			idx := p.expr()
			close := p.want(minij.RSquare)
			x = &IndexExpr{node: at(x.Location().Through(close.Location)), X: x, Index: idx}

		case minij.LParen:
			args, close := p.args()
			x = &CallExpr{node: at(x.Location().Through(close.Location)), Fun: x, Args: args}

		case minij.Dot:
			p.next()
			sel := p.ident()
			x = &SelectorExpr{node: at(x.Location().Through(sel.loc)), X: x, Sel: sel}

		case minij.Inc, minij.Dec:
			op := p.next()
			return &UnaryExpr{node: at(x.Location().Through(op.Location)), Op: op.Token, X: x}

		default:
			return x
		}
	}
}

// args parses a parenthesized argument list and returns the arguments along
// with the closing parenthesis.
func (p *parser) args() ([]Expr, minij.Lexeme) {
	p.want(minij.LParen)
	var args []Expr
	if p.tok() != minij.RParen {
		for {
			args = append(args, p.expr())
			if !p.got(minij.Comma) {
				break
			}
		}
	}
	return args, p.want(minij.RParen)
}

// primary parses an operand.
//
//	Primary := Literal | IDENT | '(' Expr ')' | ArrayLit | New
func (p *parser) primary() Expr {
	switch p.tok() {
	case minij.Integer, minij.Float, minij.String, minij.True, minij.False, minij.Null:
		lit := p.next()
		return &Literal{node: at(lit.Location), Kind: lit.Token, Text: lit.Text}

	case minij.Ident:
		return p.ident()

	case minij.LParen:
		p.enter()
		defer p.leave()

		open := p.next()
		x := p.expr()
		close := p.want(minij.RParen)
		return &ParenExpr{node: at(open.Location.Through(close.Location)), X: x}

	case minij.LBrace:
		return p.arrayLit()

	case minij.New:
		return p.newExpr()

	case minij.Invalid:
		// The scanner has already reported the problem.
		bad := p.next()
		return &BadExpr{node: at(bad.Location)}
	}
	p.failf(minij.UnexpectedToken, "expected expression, got %v", p.peek(0))
	panic("unreachable")
}

// arrayLit parses an array initializer. A trailing comma is permitted.
//
//	ArrayLit := '{' (Expr (',' Expr)* ','?)? '}'
func (p *parser) arrayLit() *ArrayLit {
	p.enter()
	defer p.leave()

	open := p.want(minij.LBrace)
	a := new(ArrayLit)
	for p.tok() != minij.RBrace {
		a.Elems = append(a.Elems, p.expr())
		if !p.got(minij.Comma) {
			break
		}
	}
	close := p.want(minij.RBrace)
	a.loc = open.Location.Through(close.Location)
	return a
}

// newExpr parses an allocation.
//
//	New := 'new' QualName ( '(' Args ')' | '[' Expr ']' ('[' ']')* | ('[' ']')+ ArrayLit )
func (p *parser) newExpr() Expr {
	kw := p.want(minij.New)
	n := &NewExpr{Type: p.qualName()}
	switch p.tok() {
	case minij.LParen:
		n.Args, _ = p.args()

	case minij.LSquare:
		if p.peek(1).Token == minij.RSquare {
			n.Type = p.typeDims(n.Type, true)
			n.Elems = p.arrayLit()
			break
		}
		p.next()
		n.Len = p.expr()
		p.want(minij.RSquare)
		n.Type = p.typeDims(n.Type, false)
		n.Type.Dims++

	default:
		p.failf(minij.UnexpectedToken, "%s", tokLabel([]minij.Token{minij.LParen, minij.LSquare}, p.peek(0)))
	}
	n.loc = p.spanFrom(kw.Location)
	return n
}

// typeDims consumes empty bracket pairs following a type name and adds them
// to the dimensions of t. If extend is true, the location of t is extended to
// cover them.
func (p *parser) typeDims(t *TypeName, extend bool) *TypeName {
	for p.tok() == minij.LSquare && p.peek(1).Token == minij.RSquare {
		p.next()
		close := p.next()
		t.Dims++
		if extend {
			t.loc = t.loc.Through(close.Location)
		}
	}
	return t
}

// parenExpr parses a parenthesized condition. A malformed condition is
// replaced by a *BadExpr and the parse continues after the closing
// parenthesis.
func (p *parser) parenExpr() Expr {
	p.want(minij.LParen)
	x := p.recoverExpr(minij.RParen)
	p.want(minij.RParen)
	return x
}

// isAssignable reports whether x may appear on the left of an assignment.
func isAssignable(x Expr) bool {
	switch t := x.(type) {
	case *Ident, *IndexExpr, *SelectorExpr, *BadExpr:
		return true
	case *ParenExpr:
		return isAssignable(t.X)
	}
	return false
}

// describe returns a short noun phrase for the kind of x.
func describe(x Expr) string {
	switch t := x.(type) {
	case *Literal:
		return t.Kind.String() + " literal"
	case *CallExpr:
		return "call result"
	case *UnaryExpr:
		return t.Op.String() + " expression"
	case *BinaryExpr:
		return t.Op.String() + " expression"
	case *AssignExpr:
		return "assignment"
	case *NewExpr:
		return "new expression"
	case *ArrayLit:
		return "array initializer"
	}
	return "expression"
}
