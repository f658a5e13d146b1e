// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for programs in the minij
// language, and a parser that constructs syntax trees from source.
//
// Every node records the location of the source text it was parsed from.
// The location of a node encloses the locations of all its children, and the
// locations of sibling nodes do not overlap.
//
// The node types form two closed families: statements (Stmt) and expressions
// (Expr). Malformed input is represented by BadStmt and BadExpr nodes, so the
// tree always has a complete shape even when the parse reported errors.
package ast

import (
	"strconv"

	"github.com/creachadair/minij"
)

// A Node is an element of the syntax tree.
type Node interface {
	Location() minij.Location
}

// A Stmt is a statement or declaration.
// The concrete type is one of *Block, *VarDecl, *ExprStmt, *IfStmt,
// *WhileStmt, *DoWhileStmt, *ForStmt, *TryStmt, *ReturnStmt, *EmptyStmt,
// *ClassDecl, *MethodDecl, or *BadStmt.
type Stmt interface {
	Node
	stmtNode()
}

// An Expr is an expression.
// The concrete type is one of *Literal, *Ident, *ArrayLit, *IndexExpr,
// *SelectorExpr, *CallExpr, *NewExpr, *ParenExpr, *UnaryExpr, *BinaryExpr,
// *AssignExpr, or *BadExpr.
type Expr interface {
	Node
	exprNode()
}

// node carries the location shared by all node types.
type node struct{ loc minij.Location }

// Location satisfies the Node interface.
func (n node) Location() minij.Location { return n.loc }

func at(loc minij.Location) node { return node{loc: loc} }

// A Program is the root of a syntax tree.
type Program struct {
	node
	Body []Stmt

	// Comments holds the comments of the input in source order, if the parser
	// was configured to keep them; otherwise it is empty.
	Comments []*Comment
}

// A Comment is a line or block comment. Text includes the comment markers.
type Comment struct {
	node
	Text string
}

// Block reports whether c is a block comment.
func (c *Comment) Block() bool { return len(c.Text) >= 2 && c.Text[1] == '*' }

// A TypeName names a type, optionally with array dimensions, e.g., "int[]".
type TypeName struct {
	node
	Name string // the element type name, possibly qualified ("a.b.C")
	Dims int    // the number of array dimensions
}

// String returns the type name in source form.
func (t *TypeName) String() string {
	s := t.Name
	for range t.Dims {
		s += "[]"
	}
	return s
}

// A Param is a method parameter.
type Param struct {
	node
	Type *TypeName
	Name *Ident
}

// An ElseIf is one "else if (cond) { ... }" arm of an IfStmt.
type ElseIf struct {
	node
	Cond Expr
	Body *Block
}

// A CatchClause is one "catch (Type name) { ... }" arm of a TryStmt.
type CatchClause struct {
	node
	Type *TypeName
	Name *Ident
	Body *Block
}

// Statements

// A Block is a brace-delimited sequence of statements.
type Block struct {
	node
	Stmts []Stmt
}

// A VarDecl declares a variable with an optional initializer.
type VarDecl struct {
	node
	Modifiers []minij.Token // only for fields of a class
	Type      *TypeName
	Name      *Ident
	Init      Expr // nil if there is no initializer
}

// An ExprStmt is an expression evaluated for effect.
type ExprStmt struct {
	node
	X Expr
}

// An IfStmt is a conditional with zero or more else-if arms and an optional
// else block. The arms are tried in order and the first true one wins.
type IfStmt struct {
	node
	Cond    Expr
	Then    *Block
	ElseIfs []*ElseIf
	Else    *Block // nil if there is no else block
}

// A WhileStmt is a pre-condition loop.
type WhileStmt struct {
	node
	Cond Expr
	Body *Block
}

// A DoWhileStmt is a post-condition loop.
type DoWhileStmt struct {
	node
	Body *Block
	Cond Expr
}

// A ForStmt is a counted loop. Any of the three clauses may be absent.
type ForStmt struct {
	node
	Init   Stmt // *VarDecl or *ExprStmt, or nil
	Cond   Expr // or nil
	Update Expr // or nil
	Body   *Block
}

// A TryStmt is a protected block with recovery and cleanup clauses.
type TryStmt struct {
	node
	Body    *Block
	Catches []*CatchClause
	Finally *Block // nil if there is no finally block
}

// A ReturnStmt returns from a method.
type ReturnStmt struct {
	node
	Result Expr // nil if no value is returned
}

// An EmptyStmt is a lone semicolon.
type EmptyStmt struct{ node }

// A ClassDecl declares a class.
type ClassDecl struct {
	node
	Modifiers []minij.Token
	Name      *Ident
	Members   []Stmt // *MethodDecl, *VarDecl, or *BadStmt
}

// A MethodDecl declares a method of a class.
type MethodDecl struct {
	node
	Modifiers []minij.Token
	Result    *TypeName
	Name      *Ident
	Params    []*Param
	Body      *Block
}

// A BadStmt is a placeholder for a statement that could not be parsed.
type BadStmt struct{ node }

// Expressions

// A Literal is a constant value: an integer, a float, a string, a Boolean,
// or null.
type Literal struct {
	node
	Kind minij.Token // Integer, Float, String, True, False, or Null
	Text string      // as written in the source
}

// Int64 returns the value of an integer literal.  It panics if z is not a
// valid integer literal.
func (z *Literal) Int64() int64 {
	v, err := strconv.ParseInt(z.Text, 10, 64)
	if err != nil || z.Kind != minij.Integer {
		panic("not an integer literal: " + z.Text)
	}
	return v
}

// Float64 returns the value of a numeric literal. It panics if z is not a
// valid numeric literal.
func (z *Literal) Float64() float64 {
	v, err := strconv.ParseFloat(z.Text, 64)
	if err != nil || (z.Kind != minij.Float && z.Kind != minij.Integer) {
		panic("not a numeric literal: " + z.Text)
	}
	return v
}

// Bool returns the value of a Boolean literal. It panics if z is not a
// Boolean literal.
func (z *Literal) Bool() bool {
	switch z.Kind {
	case minij.True:
		return true
	case minij.False:
		return false
	}
	panic("not a Boolean literal: " + z.Text)
}

// Unquote returns the decoded value of a string literal. It panics if z is
// not a valid string literal.
func (z *Literal) Unquote() string {
	s, err := minij.Unquote(z.Text)
	if err != nil || z.Kind != minij.String {
		panic("not a string literal: " + z.Text)
	}
	return s
}

// An Ident is a name.
type Ident struct {
	node
	Name string
}

// An ArrayLit is a brace-delimited array initializer. The number of elements
// is fixed when it is parsed.
type ArrayLit struct {
	node
	Elems []Expr
}

// An IndexExpr is an array element reference, X[Index].
type IndexExpr struct {
	node
	X     Expr
	Index Expr
}

// A SelectorExpr is a member reference, X.Sel.
type SelectorExpr struct {
	node
	X   Expr
	Sel *Ident
}

// A CallExpr is a call, Fun(Args...).
type CallExpr struct {
	node
	Fun  Expr
	Args []Expr
}

// A NewExpr allocates an object or an array:
//
//	new T(args)         Args
//	new T[n]            Len
//	new T[]{elems}      Elems
type NewExpr struct {
	node
	Type  *TypeName // for arrays, Dims counts the brackets
	Args  []Expr    // constructor arguments
	Len   Expr      // array length, or nil
	Elems *ArrayLit // array initializer, or nil
}

// A ParenExpr is a parenthesized expression.
type ParenExpr struct {
	node
	X Expr
}

// A UnaryExpr is a prefix or postfix operator applied to an operand.
type UnaryExpr struct {
	node
	Op     minij.Token // Not, Minus, Plus, Inc, or Dec
	X      Expr
	Prefix bool // false only for postfix Inc and Dec
}

// A BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	node
	Op minij.Token
	X  Expr
	Y  Expr
}

// An AssignExpr is a simple or compound assignment. Assignment is right
// associative, so Value may itself be an *AssignExpr.
type AssignExpr struct {
	node
	Target Expr        // *Ident, *IndexExpr, *SelectorExpr, or *BadExpr
	Op     minij.Token // Assign, AddAssign, SubAssign, MulAssign, or DivAssign
	Value  Expr
}

// A BadExpr is a placeholder for an expression that could not be parsed.
type BadExpr struct{ node }

func (*Block) stmtNode()       {}
func (*VarDecl) stmtNode()     {}
func (*ExprStmt) stmtNode()    {}
func (*IfStmt) stmtNode()      {}
func (*WhileStmt) stmtNode()   {}
func (*DoWhileStmt) stmtNode() {}
func (*ForStmt) stmtNode()     {}
func (*TryStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()  {}
func (*EmptyStmt) stmtNode()   {}
func (*ClassDecl) stmtNode()   {}
func (*MethodDecl) stmtNode()  {}
func (*BadStmt) stmtNode()     {}

func (*Literal) exprNode()      {}
func (*Ident) exprNode()        {}
func (*ArrayLit) exprNode()     {}
func (*IndexExpr) exprNode()    {}
func (*SelectorExpr) exprNode() {}
func (*CallExpr) exprNode()     {}
func (*NewExpr) exprNode()      {}
func (*ParenExpr) exprNode()    {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*AssignExpr) exprNode()   {}
func (*BadExpr) exprNode()      {}
