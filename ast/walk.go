// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// A Visitor is called by Walk for each node of a tree. If Visit returns a
// non-nil visitor w, Walk visits each child of the node with w, and then
// calls w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first order, in the order the
// nodes appear in the source.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range Children(n) {
		Walk(v, c.Node)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at n in depth-first order. It calls f(n)
// for each node; if f returns true, Inspect visits the children of n and then
// calls f(nil).
func Inspect(n Node, f func(Node) bool) { Walk(inspector(f), n) }

// A Child is a child node and the field of its parent that holds it.
type Child struct {
	Name  string // the field name, e.g., "cond"
	Index int    // the offset within a list field, or -1
	Node  Node
}

// Children returns the children of n in source order. Absent optional
// children are omitted. Comments are not children of any node.
func Children(n Node) []Child {
	var cs children
	switch t := n.(type) {
	case *Program:
		addList(&cs, "body", t.Body)
	case *Block:
		addList(&cs, "stmts", t.Stmts)
	case *VarDecl:
		cs.add("type", t.Type)
		cs.add("name", t.Name)
		cs.addExpr("init", t.Init)
	case *ExprStmt:
		cs.addExpr("x", t.X)
	case *IfStmt:
		cs.addExpr("cond", t.Cond)
		cs.add("then", t.Then)
		addList(&cs, "elseIfs", t.ElseIfs)
		if t.Else != nil {
			cs.add("else", t.Else)
		}
	case *ElseIf:
		cs.addExpr("cond", t.Cond)
		cs.add("body", t.Body)
	case *WhileStmt:
		cs.addExpr("cond", t.Cond)
		cs.add("body", t.Body)
	case *DoWhileStmt:
		cs.add("body", t.Body)
		cs.addExpr("cond", t.Cond)
	case *ForStmt:
		if t.Init != nil {
			cs.add("init", t.Init)
		}
		cs.addExpr("cond", t.Cond)
		cs.addExpr("update", t.Update)
		cs.add("body", t.Body)
	case *TryStmt:
		cs.add("body", t.Body)
		addList(&cs, "catches", t.Catches)
		if t.Finally != nil {
			cs.add("finally", t.Finally)
		}
	case *CatchClause:
		cs.add("type", t.Type)
		cs.add("name", t.Name)
		cs.add("body", t.Body)
	case *ReturnStmt:
		cs.addExpr("result", t.Result)
	case *ClassDecl:
		cs.add("name", t.Name)
		addList(&cs, "members", t.Members)
	case *MethodDecl:
		cs.add("result", t.Result)
		cs.add("name", t.Name)
		addList(&cs, "params", t.Params)
		cs.add("body", t.Body)
	case *Param:
		cs.add("type", t.Type)
		cs.add("name", t.Name)

	case *ArrayLit:
		addList(&cs, "elems", t.Elems)
	case *IndexExpr:
		cs.addExpr("x", t.X)
		cs.addExpr("index", t.Index)
	case *SelectorExpr:
		cs.addExpr("x", t.X)
		cs.add("sel", t.Sel)
	case *CallExpr:
		cs.addExpr("fun", t.Fun)
		addList(&cs, "args", t.Args)
	case *NewExpr:
		cs.add("type", t.Type)
		addList(&cs, "args", t.Args)
		cs.addExpr("len", t.Len)
		if t.Elems != nil {
			cs.add("elems", t.Elems)
		}
	case *ParenExpr:
		cs.addExpr("x", t.X)
	case *UnaryExpr:
		cs.addExpr("x", t.X)
	case *BinaryExpr:
		cs.addExpr("x", t.X)
		cs.addExpr("y", t.Y)
	case *AssignExpr:
		cs.addExpr("target", t.Target)
		cs.addExpr("value", t.Value)

	case *Literal, *Ident, *TypeName, *Comment, *EmptyStmt, *BadStmt, *BadExpr:
		// leaves

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
	return cs
}

type children []Child

func (cs *children) add(name string, n Node) {
	*cs = append(*cs, Child{Name: name, Index: -1, Node: n})
}

func (cs *children) addExpr(name string, x Expr) {
	if x != nil {
		cs.add(name, x)
	}
}

func addList[T Node](cs *children, name string, ns []T) {
	for i, n := range ns {
		*cs = append(*cs, Child{Name: name, Index: i, Node: n})
	}
}
