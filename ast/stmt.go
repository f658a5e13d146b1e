// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "github.com/creachadair/minij"

// program parses a complete input.
//
//	Program := TopStmt*
func (p *parser) program() *Program {
	prog := &Program{node: at(p.src.Location(minij.Span{Pos: 0, End: p.src.Len()}))}
	for p.tok() != minij.EOF {
		prog.Body = append(prog.Body, p.recoverStmt(p.topStmt))
	}
	prog.Comments = p.comments
	return prog
}

// topStmt parses a top-level statement. In addition to ordinary statements,
// the top level admits class declarations and methods.
func (p *parser) topStmt() Stmt {
	if isModifier(p.tok()) || p.tok() == minij.Class || p.isMethodDecl() {
		start := p.cur()
		mods := p.modifiers()
		if p.tok() == minij.Class {
			return p.classDecl(start, mods)
		} else if p.isMethodDecl() {
			return p.methodDecl(start, mods)
		}
		p.failf(minij.UnexpectedToken, "%s", tokLabel([]minij.Token{minij.Class, minij.Ident}, p.peek(0)))
	}
	return p.stmt()
}

// stmt parses a single statement.
//
//	Statement := Block | VarDecl | If | While | DoWhile | For | Try | Return | ';' | ExprStmt
func (p *parser) stmt() Stmt {
	switch p.tok() {
	case minij.LBrace:
		return p.block()
	case minij.Semi:
		semi := p.next()
		return &EmptyStmt{node: at(semi.Location)}
	case minij.If:
		return p.ifStmt()
	case minij.While:
		return p.whileStmt()
	case minij.Do:
		return p.doWhileStmt()
	case minij.For:
		return p.forStmt()
	case minij.Try:
		return p.tryStmt()
	case minij.Return:
		return p.returnStmt()
	}
	if p.isVarDecl() {
		d := p.varDecl(p.cur(), nil)
		semi := p.want(minij.Semi)
		d.loc = d.loc.Through(semi.Location)
		return d
	}
	x := p.expr()
	semi := p.want(minij.Semi)
	return &ExprStmt{node: at(x.Location().Through(semi.Location)), X: x}
}

// block parses a brace-delimited statement list. A block that is still open at
// the end of the input is reported, and returned as it stands.
//
//	Block := '{' Statement* '}'
func (p *parser) block() *Block {
	p.enter()
	defer p.leave()

	open := p.want(minij.LBrace)
	b := new(Block)
	for p.tok() != minij.RBrace && p.tok() != minij.EOF {
		b.Stmts = append(b.Stmts, p.recoverStmt(p.stmt))
	}
	b.loc = p.closeBrace(open)
	return b
}

// closeBrace consumes the "}" matching open and returns the location of the
// complete braced region. At the end of input it reports UnterminatedBlock.
func (p *parser) closeBrace(open minij.Lexeme) minij.Location {
	if p.tok() == minij.EOF {
		p.report(minij.UnterminatedBlock, p.cur(), `missing "}" for "{" at %v`, open.Location.First)
		return p.spanFrom(open.Location)
	}
	close := p.want(minij.RBrace)
	return open.Location.Through(close.Location)
}

// isVarDecl reports whether the input begins a variable declaration, either
// "Type name" or "Type[]... name".
func (p *parser) isVarDecl() bool {
	if p.tok() != minij.Ident {
		return false
	}
	i := p.skipTypeName()
	return i > 0 && p.peek(i).Token == minij.Ident
}

// isMethodDecl reports whether the input begins a method declaration,
// "Type name (".
func (p *parser) isMethodDecl() bool {
	if p.tok() != minij.Ident {
		return false
	}
	i := p.skipTypeName()
	return i > 0 && p.peek(i).Token == minij.Ident && p.peek(i+1).Token == minij.LParen
}

// skipTypeName returns the number of tokens of lookahead that match a type
// name, or 0 if the input does not begin with a type name.
func (p *parser) skipTypeName() int {
	if p.tok() != minij.Ident {
		return 0
	}
	i := 1
	for p.peek(i).Token == minij.Dot && p.peek(i+1).Token == minij.Ident {
		i += 2
	}
	for p.peek(i).Token == minij.LSquare && p.peek(i+1).Token == minij.RSquare {
		i += 2
	}
	return i
}

// typeName parses a possibly-qualified type name with array dimensions.
//
//	Type := IDENT ('.' IDENT)* ('[' ']')*
func (p *parser) typeName() *TypeName { return p.typeDims(p.qualName(), true) }

// qualName parses a dotted name as a type name with no dimensions.
func (p *parser) qualName() *TypeName {
	id := p.want(minij.Ident)
	t := &TypeName{node: at(id.Location), Name: id.Text}
	for p.tok() == minij.Dot && p.peek(1).Token == minij.Ident {
		p.next()
		id := p.next()
		t.Name += "." + id.Text
		t.loc = t.loc.Through(id.Location)
	}
	return t
}

func (p *parser) ident() *Ident {
	id := p.want(minij.Ident)
	return &Ident{node: at(id.Location), Name: id.Text}
}

// varDecl parses a declaration without its terminating semicolon.
//
//	VarDeclNoSemi := Type IDENT ('=' Expr)?
func (p *parser) varDecl(start minij.Location, mods []minij.Token) *VarDecl {
	d := &VarDecl{Modifiers: mods, Type: p.typeName()}
	d.Name = p.ident()
	if p.got(minij.Assign) {
		d.Init = p.expr()
	}
	d.loc = p.spanFrom(start)
	return d
}

// ifStmt parses a conditional. An "else" followed directly by "if" is folded
// into the ElseIfs of the statement rather than nested.
//
//	If := 'if' '(' Expr ')' Block ('else' 'if' '(' Expr ')' Block)* ('else' Block)?
func (p *parser) ifStmt() Stmt {
	kw := p.want(minij.If)
	s := &IfStmt{Cond: p.parenExpr(), Then: p.block()}
	for p.tok() == minij.Else {
		els := p.next()
		if p.tok() != minij.If {
			s.Else = p.block()
			break
		}
		p.next()
		arm := &ElseIf{Cond: p.parenExpr(), Body: p.block()}
		arm.loc = els.Location.Through(arm.Body.loc)
		s.ElseIfs = append(s.ElseIfs, arm)
	}
	s.loc = p.spanFrom(kw.Location)
	return s
}

// whileStmt parses a pre-condition loop.
//
//	While := 'while' '(' Expr ')' Block
func (p *parser) whileStmt() Stmt {
	kw := p.want(minij.While)
	s := &WhileStmt{Cond: p.parenExpr(), Body: p.block()}
	s.loc = p.spanFrom(kw.Location)
	return s
}

// doWhileStmt parses a post-condition loop. The condition may be any
// expression; whether it is Boolean is not a syntactic question.
//
//	DoWhile := 'do' Block 'while' '(' Expr ')' ';'
func (p *parser) doWhileStmt() Stmt {
	kw := p.want(minij.Do)
	s := &DoWhileStmt{Body: p.block()}
	p.want(minij.While)
	s.Cond = p.parenExpr()
	p.want(minij.Semi)
	s.loc = p.spanFrom(kw.Location)
	return s
}

// forStmt parses a counted loop. Each clause is optional.
//
//	For := 'for' '(' (VarDeclNoSemi | Expr)? ';' Expr? ';' Expr? ')' Block
func (p *parser) forStmt() Stmt {
	kw := p.want(minij.For)
	s := new(ForStmt)
	p.want(minij.LParen)
	if p.isVarDecl() {
		s.Init = p.varDecl(p.cur(), nil)
	} else if p.tok() != minij.Semi {
		x := p.expr()
		s.Init = &ExprStmt{node: at(x.Location()), X: x}
	}
	p.want(minij.Semi)
	if p.tok() != minij.Semi {
		s.Cond = p.expr()
	}
	p.want(minij.Semi)
	if p.tok() != minij.RParen {
		s.Update = p.expr()
	}
	p.want(minij.RParen)
	s.Body = p.block()
	s.loc = p.spanFrom(kw.Location)
	return s
}

// tryStmt parses a protected block. A try with neither catch nor finally is
// reported, but the statement is still returned.
//
//	Try   := 'try' Block Catch* ('finally' Block)?
//	Catch := 'catch' '(' Type IDENT ')' Block
func (p *parser) tryStmt() Stmt {
	kw := p.want(minij.Try)
	s := &TryStmt{Body: p.block()}
	for p.tok() == minij.Catch {
		c := p.next()
		p.want(minij.LParen)
		cc := &CatchClause{Type: p.typeName()}
		cc.Name = p.ident()
		p.want(minij.RParen)
		cc.Body = p.block()
		cc.loc = c.Location.Through(cc.Body.loc)
		s.Catches = append(s.Catches, cc)
	}
	if p.got(minij.Finally) {
		s.Finally = p.block()
	}
	s.loc = p.spanFrom(kw.Location)
	if len(s.Catches) == 0 && s.Finally == nil {
		p.report(minij.TryRequiresCatchOrFinally, s.loc, `"try" requires a "catch" or "finally" clause`)
	}
	return s
}

// returnStmt parses a return statement.
//
//	Return := 'return' Expr? ';'
func (p *parser) returnStmt() Stmt {
	kw := p.want(minij.Return)
	s := new(ReturnStmt)
	if p.tok() != minij.Semi {
		s.Result = p.expr()
	}
	p.want(minij.Semi)
	s.loc = p.spanFrom(kw.Location)
	return s
}

func isModifier(tok minij.Token) bool {
	switch tok {
	case minij.Public, minij.Private, minij.Protected, minij.Static:
		return true
	}
	return false
}

// modifiers parses a possibly-empty sequence of access and storage modifiers.
func (p *parser) modifiers() []minij.Token {
	var mods []minij.Token
	for isModifier(p.tok()) {
		mods = append(mods, p.next().Token)
	}
	return mods
}

// classDecl parses a class declaration after its modifiers.
//
//	Class := Modifier* 'class' IDENT '{' Member* '}'
func (p *parser) classDecl(start minij.Location, mods []minij.Token) Stmt {
	p.want(minij.Class)
	c := &ClassDecl{Modifiers: mods, Name: p.ident()}

	p.enter()
	defer p.leave()
	open := p.want(minij.LBrace)
	for p.tok() != minij.RBrace && p.tok() != minij.EOF {
		c.Members = append(c.Members, p.recoverStmt(p.member))
	}
	end := p.closeBrace(open)
	c.loc = start.Through(end)
	return c
}

// member parses a method or field of a class.
//
//	Member := Modifier* Type IDENT ( Params Block | ('=' Expr)? ';' )
func (p *parser) member() Stmt {
	start := p.cur()
	mods := p.modifiers()
	if p.isMethodDecl() {
		return p.methodDecl(start, mods)
	}
	d := p.varDecl(start, mods)
	p.want(minij.Semi)
	d.loc = p.spanFrom(start)
	return d
}

// methodDecl parses a method declaration after its modifiers.
//
//	Method := Modifier* Type IDENT '(' (Param (',' Param)*)? ')' Block
//	Param  := Type IDENT
func (p *parser) methodDecl(start minij.Location, mods []minij.Token) Stmt {
	m := &MethodDecl{Modifiers: mods, Result: p.typeName()}
	m.Name = p.ident()
	p.want(minij.LParen)
	if p.tok() != minij.RParen {
		for {
			pstart := p.cur()
			prm := &Param{Type: p.typeName()}
			prm.Name = p.ident()
			prm.loc = p.spanFrom(pstart)
			m.Params = append(m.Params, prm)
			if !p.got(minij.Comma) {
				break
			}
		}
	}
	p.want(minij.RParen)
	m.Body = p.block()
	m.loc = p.spanFrom(start)
	return m
}
