// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/minij"
)

// Format renders a canonical source representation of n to w. Statements are
// placed one per line with two-space indentation. Comments are not rendered.
//
// Parsing the output of Format reproduces the structure of n.  Format reports
// an error if n contains a BadStmt or BadExpr, which have no source form.
func Format(w io.Writer, n Node) error {
	p := &printer{w: w}
	switch t := n.(type) {
	case *Program:
		for _, s := range t.Body {
			p.stmt(s, "")
		}
	case Stmt:
		p.stmt(t, "")
	case Expr:
		p.write(p.expr(t))
	default:
		p.fail(n)
	}
	return p.err
}

// FormatToString formats n to a string.
// In case of error in formatting, it returns an empty string.
func FormatToString(n Node) string {
	var buf bytes.Buffer
	if Format(&buf, n) != nil {
		return ""
	}
	return buf.String()
}

// A FormatError is reported by Format for a node that has no source form.
type FormatError struct {
	Node Node
}

func (f *FormatError) Error() string {
	return fmt.Sprintf("cannot format %T at %v", f.Node, f.Node.Location())
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(ss ...string) {
	for _, s := range ss {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) fail(n Node) {
	if p.err == nil {
		p.err = &FormatError{Node: n}
	}
}

func (p *printer) indent(indent string) string { return indent + "  " }

// stmt writes s on its own line(s) at the given indentation.
func (p *printer) stmt(s Stmt, indent string) {
	p.write(indent)
	p.stmtText(s, indent)
	p.write("\n")
}

// stmtText writes s without leading indentation or a trailing newline.
func (p *printer) stmtText(s Stmt, indent string) {
	switch t := s.(type) {
	case *Block:
		p.block(t, indent)
	case *VarDecl:
		p.write(p.varDecl(t), ";")
	case *ExprStmt:
		p.write(p.expr(t.X), ";")
	case *IfStmt:
		p.write("if (", p.expr(t.Cond), ") ")
		p.block(t.Then, indent)
		for _, arm := range t.ElseIfs {
			p.write(" else if (", p.expr(arm.Cond), ") ")
			p.block(arm.Body, indent)
		}
		if t.Else != nil {
			p.write(" else ")
			p.block(t.Else, indent)
		}
	case *WhileStmt:
		p.write("while (", p.expr(t.Cond), ") ")
		p.block(t.Body, indent)
	case *DoWhileStmt:
		p.write("do ")
		p.block(t.Body, indent)
		p.write(" while (", p.expr(t.Cond), ");")
	case *ForStmt:
		p.write("for (")
		switch init := t.Init.(type) {
		case nil:
		case *VarDecl:
			p.write(p.varDecl(init))
		case *ExprStmt:
			p.write(p.expr(init.X))
		default:
			p.fail(init)
		}
		p.write(";")
		if t.Cond != nil {
			p.write(" ", p.expr(t.Cond))
		}
		p.write(";")
		if t.Update != nil {
			p.write(" ", p.expr(t.Update))
		}
		p.write(") ")
		p.block(t.Body, indent)
	case *TryStmt:
		p.write("try ")
		p.block(t.Body, indent)
		for _, c := range t.Catches {
			p.write(" catch (", c.Type.String(), " ", c.Name.Name, ") ")
			p.block(c.Body, indent)
		}
		if t.Finally != nil {
			p.write(" finally ")
			p.block(t.Finally, indent)
		}
	case *ReturnStmt:
		if t.Result == nil {
			p.write("return;")
		} else {
			p.write("return ", p.expr(t.Result), ";")
		}
	case *EmptyStmt:
		p.write(";")
	case *ClassDecl:
		p.write(modifiers(t.Modifiers), "class ", t.Name.Name, " {\n")
		mdent := p.indent(indent)
		for _, m := range t.Members {
			p.stmt(m, mdent)
		}
		p.write(indent, "}")
	case *MethodDecl:
		params := make([]string, len(t.Params))
		for i, prm := range t.Params {
			params[i] = prm.Type.String() + " " + prm.Name.Name
		}
		p.write(modifiers(t.Modifiers), t.Result.String(), " ", t.Name.Name,
			"(", strings.Join(params, ", "), ") ")
		p.block(t.Body, indent)
	default:
		p.fail(s)
	}
}

func (p *printer) block(b *Block, indent string) {
	if len(b.Stmts) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	bdent := p.indent(indent)
	for _, s := range b.Stmts {
		p.stmt(s, bdent)
	}
	p.write(indent, "}")
}

func (p *printer) varDecl(d *VarDecl) string {
	s := modifiers(d.Modifiers) + d.Type.String() + " " + d.Name.Name
	if d.Init != nil {
		s += " = " + p.expr(d.Init)
	}
	return s
}

func modifiers(mods []minij.Token) string {
	var sb strings.Builder
	for _, m := range mods {
		sb.WriteString(strings.Trim(m.String(), `"`))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// expr renders x as a string. The printer does not insert parentheses; the
// grouping of the input is preserved by ParenExpr nodes.
func (p *printer) expr(x Expr) string {
	switch t := x.(type) {
	case *Literal:
		return t.Text
	case *Ident:
		return t.Name
	case *ArrayLit:
		return "{" + p.exprList(t.Elems) + "}"
	case *IndexExpr:
		return p.expr(t.X) + "[" + p.expr(t.Index) + "]"
	case *SelectorExpr:
		return p.expr(t.X) + "." + t.Sel.Name
	case *CallExpr:
		return p.expr(t.Fun) + "(" + p.exprList(t.Args) + ")"
	case *NewExpr:
		s := "new " + t.Type.Name
		switch {
		case t.Len != nil:
			s += "[" + p.expr(t.Len) + "]" + strings.Repeat("[]", max(t.Type.Dims-1, 0))
		case t.Elems != nil:
			s += strings.Repeat("[]", t.Type.Dims) + p.expr(t.Elems)
		default:
			s += "(" + p.exprList(t.Args) + ")"
		}
		return s
	case *ParenExpr:
		return "(" + p.expr(t.X) + ")"
	case *UnaryExpr:
		op, arg := t.Op.Op(), p.expr(t.X)
		if !t.Prefix {
			return arg + op
		}
		if arg != "" && arg[0] == op[len(op)-1] && (arg[0] == '-' || arg[0] == '+') {
			return op + " " + arg // e.g., "- -x" is not "--x"
		}
		return op + arg
	case *BinaryExpr:
		return p.expr(t.X) + " " + t.Op.Op() + " " + p.expr(t.Y)
	case *AssignExpr:
		return p.expr(t.Target) + " " + t.Op.Op() + " " + p.expr(t.Value)
	default:
		p.fail(x)
		return ""
	}
}

func (p *printer) exprList(xs []Expr) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = p.expr(x)
	}
	return strings.Join(ss, ", ")
}
