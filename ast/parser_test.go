// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/creachadair/minij"
	"github.com/creachadair/minij/ast"
	"github.com/creachadair/minij/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	input := testutil.MainJava

	start := time.Now()
	prog, diags, err := ast.ParseString(input, &ast.Options{Name: "Main.java"})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("Parse: unexpected diagnostics:\n%v", diags.Err())
	}
	t.Logf("Parsed %d bytes into %d statements [%v elapsed]", len(input), len(prog.Body), elapsed)

	// Inspect some of the structure of the program to make sure we got
	// something approximating sense.
	//
	// If the testdata file changes, this may need to be updated.
	//
	// public class Main {
	//   public static void main(String[] args) {
	//     int counter = 0;
	//     ...
	//   }
	// }
	if len(prog.Body) != 1 {
		t.Fatalf("Got %d top-level statements, want 1", len(prog.Body))
	}
	cls, ok := prog.Body[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("Top level is %T, not class", prog.Body[0])
	}
	if cls.Name.Name != "Main" || len(cls.Members) != 1 {
		t.Fatalf("Class: got %q with %d members, want Main with 1", cls.Name.Name, len(cls.Members))
	}
	m, ok := cls.Members[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("Member is %T, not method", cls.Members[0])
	}
	if got := m.Params[0].Type.String(); got != "String[]" {
		t.Errorf("Param type: got %q, want String[]", got)
	}

	// Count the statement kinds in the method body.
	kinds := make(map[string]int)
	for _, s := range m.Body.Stmts {
		kinds[strings.TrimPrefix(fmt.Sprintf("%T", s), "*ast.")]++
	}
	if diff := cmp.Diff(map[string]int{
		"VarDecl":     6,
		"ExprStmt":    3,
		"IfStmt":      1,
		"DoWhileStmt": 1,
		"ForStmt":     2,
		"TryStmt":     1,
	}, kinds); diff != "" {
		t.Errorf("Statement kinds (-want, +got):\n%s", diff)
	}

	src, err := minij.NewSource("Main.java", []byte(input))
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}
	testutil.CheckSpans(t, src, prog)
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		testutil.MainJava,
		`x = y = 3 + 4 * (5 - 6);`,
		`a = - -b; c = +(+d); e = !!f; g = - --h; i = +++j;`,
		`int[][] grid = new int[3][]; Object o = new Object(1, "two"); int[] z = new int[]{1, 2,};`,
		`while (i < n && !done || flag) { i += 2; } return;`,
		`void f() {} static int g(int a, String[] b) { return a.b.c(d)[e]; }`,
		`for (;;) {} for (i = 0; ; i--) { ; } { { } }`,
		`a.b.C[] x = null; boolean t = true != false; double d = 1.5 % 2;`,
		`if (a) {} else if (b) {} else if (c) { d(); } else { e(); }`,
		`try {} catch (a.B e) {} catch (C f) {}`,
		`private class Q { protected static int n = 0; public Q q() { return this; } }`,
	}
	for _, input := range tests {
		prog := testutil.MustParse(t, input)
		text := ast.FormatToString(prog)
		if text == "" {
			t.Fatalf("Format %q failed", input)
		}
		reprog := testutil.MustParse(t, text)
		if diff := cmp.Diff(prog, reprog, testutil.IgnoreLocations); diff != "" {
			t.Errorf("Round trip (-orig, +reparsed):\n%s\nFormatted:\n%s", diff, text)
		}
		if again := ast.FormatToString(reprog); again != text {
			t.Errorf("Format is not stable:\n-- first:\n%s\n-- second:\n%s", text, again)
		}
		testutil.CheckSpans(t, nil, prog)
	}
}

func TestFormat(t *testing.T) {
	prog := testutil.MustParse(t, `class A { int f(int x) { if (x>0) { return -x; } else { return x++; } } }`)
	const want = `class A {
  int f(int x) {
    if (x > 0) {
      return -x;
    } else {
      return x++;
    }
  }
}
`
	if diff := cmp.Diff(want, ast.FormatToString(prog)); diff != "" {
		t.Errorf("Format (-want, +got):\n%s", diff)
	}

	bad, _, err := ast.ParseString(`x = ;`, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := ast.Format(&buf, bad); err == nil {
		t.Error("Format of a bad statement: got nil error")
	} else if _, ok := err.(*ast.FormatError); !ok {
		t.Errorf("Format error: got %T, want *ast.FormatError", err)
	}
}

func TestStatements(t *testing.T) {
	id := func(name string) *ast.Ident { return &ast.Ident{Name: name} }
	num := func(text string) *ast.Literal { return &ast.Literal{Kind: minij.Integer, Text: text} }
	str := func(text string) *ast.Literal { return &ast.Literal{Kind: minij.String, Text: text} }
	typ := func(name string, dims int) *ast.TypeName { return &ast.TypeName{Name: name, Dims: dims} }

	tests := []struct {
		name  string
		input string
		want  []ast.Stmt
	}{
		{"IfElseIfElse", `if(x>=8){}else if(x==5){}else{}`, []ast.Stmt{
			&ast.IfStmt{
				Cond: &ast.BinaryExpr{Op: minij.Ge, X: id("x"), Y: num("8")},
				Then: &ast.Block{},
				ElseIfs: []*ast.ElseIf{{
					Cond: &ast.BinaryExpr{Op: minij.Eq, X: id("x"), Y: num("5")},
					Body: &ast.Block{},
				}},
				Else: &ast.Block{},
			},
		}},
		{"DoWhile", `do { x++; } while (x);`, []ast.Stmt{
			&ast.DoWhileStmt{
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{X: &ast.UnaryExpr{Op: minij.Inc, X: id("x"), Prefix: false}},
				}},
				Cond: id("x"),
			},
		}},
		{"TryCatchFinally", `try { x = 1/0; } catch (Exception e) { } finally { }`, []ast.Stmt{
			&ast.TryStmt{
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{X: &ast.AssignExpr{
						Target: id("x"),
						Op:     minij.Assign,
						Value:  &ast.BinaryExpr{Op: minij.Slash, X: num("1"), Y: num("0")},
					}},
				}},
				Catches: []*ast.CatchClause{{Type: typ("Exception", 0), Name: id("e"), Body: &ast.Block{}}},
				Finally: &ast.Block{},
			},
		}},
		{"ArrayLiteral", `int[] arr = {1, 2, 3};`, []ast.Stmt{
			&ast.VarDecl{
				Type: typ("int", 1),
				Name: id("arr"),
				Init: &ast.ArrayLit{Elems: []ast.Expr{num("1"), num("2"), num("3")}},
			},
		}},
		{"Index", `System.out.println(arr[0]);`, []ast.Stmt{
			&ast.ExprStmt{X: &ast.CallExpr{
				Fun: &ast.SelectorExpr{
					X:   &ast.SelectorExpr{X: id("System"), Sel: id("out")},
					Sel: id("println"),
				},
				Args: []ast.Expr{&ast.IndexExpr{X: id("arr"), Index: num("0")}},
			}},
		}},
		{"Precedence", `a = b || c && d == e + f * -g;`, []ast.Stmt{
			&ast.ExprStmt{X: &ast.AssignExpr{
				Target: id("a"),
				Op:     minij.Assign,
				Value: &ast.BinaryExpr{Op: minij.OrOr, X: id("b"), Y: &ast.BinaryExpr{
					Op: minij.AndAnd, X: id("c"), Y: &ast.BinaryExpr{
						Op: minij.Eq, X: id("d"), Y: &ast.BinaryExpr{
							Op: minij.Plus, X: id("e"), Y: &ast.BinaryExpr{
								Op: minij.Star, X: id("f"), Y: &ast.UnaryExpr{Op: minij.Minus, X: id("g"), Prefix: true},
							},
						},
					},
				}},
			}},
		}},
		{"LeftAssoc", `x = a - b - c;`, []ast.Stmt{
			&ast.ExprStmt{X: &ast.AssignExpr{
				Target: id("x"),
				Op:     minij.Assign,
				Value: &ast.BinaryExpr{
					Op: minij.Minus,
					X:  &ast.BinaryExpr{Op: minij.Minus, X: id("a"), Y: id("b")},
					Y:  id("c"),
				},
			}},
		}},
		{"RightAssoc", `a += b = c;`, []ast.Stmt{
			&ast.ExprStmt{X: &ast.AssignExpr{
				Target: id("a"),
				Op:     minij.AddAssign,
				Value:  &ast.AssignExpr{Target: id("b"), Op: minij.Assign, Value: id("c")},
			}},
		}},
		{"For", `for (int i = 0; i < 10; i += 2) { print(i); }`, []ast.Stmt{
			&ast.ForStmt{
				Init:   &ast.VarDecl{Type: typ("int", 0), Name: id("i"), Init: num("0")},
				Cond:   &ast.BinaryExpr{Op: minij.Lt, X: id("i"), Y: num("10")},
				Update: &ast.AssignExpr{Target: id("i"), Op: minij.AddAssign, Value: num("2")},
				Body: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{X: &ast.CallExpr{Fun: id("print"), Args: []ast.Expr{id("i")}}},
				}},
			},
		}},
		{"EmptyFor", `for (;;) {}`, []ast.Stmt{
			&ast.ForStmt{Body: &ast.Block{}},
		}},
		{"WhileReturn", `while (true) { return "done"; }`, []ast.Stmt{
			&ast.WhileStmt{
				Cond: &ast.Literal{Kind: minij.True, Text: "true"},
				Body: &ast.Block{Stmts: []ast.Stmt{&ast.ReturnStmt{Result: str(`"done"`)}}},
			},
		}},
		{"New", `a = new int[n][]; b = new Foo(); c = new int[]{};`, []ast.Stmt{
			&ast.ExprStmt{X: &ast.AssignExpr{Target: id("a"), Op: minij.Assign,
				Value: &ast.NewExpr{Type: typ("int", 2), Len: id("n")}}},
			&ast.ExprStmt{X: &ast.AssignExpr{Target: id("b"), Op: minij.Assign,
				Value: &ast.NewExpr{Type: typ("Foo", 0)}}},
			&ast.ExprStmt{X: &ast.AssignExpr{Target: id("c"), Op: minij.Assign,
				Value: &ast.NewExpr{Type: typ("int", 1), Elems: &ast.ArrayLit{}}}},
		}},
		{"ClassMembers", `public class C { private int n = 1; static void run(int a, b.C c) { } }`, []ast.Stmt{
			&ast.ClassDecl{
				Modifiers: []minij.Token{minij.Public},
				Name:      id("C"),
				Members: []ast.Stmt{
					&ast.VarDecl{Modifiers: []minij.Token{minij.Private}, Type: typ("int", 0), Name: id("n"), Init: num("1")},
					&ast.MethodDecl{
						Modifiers: []minij.Token{minij.Static},
						Result:    typ("void", 0),
						Name:      id("run"),
						Params: []*ast.Param{
							{Type: typ("int", 0), Name: id("a")},
							{Type: typ("b.C", 0), Name: id("c")},
						},
						Body: &ast.Block{},
					},
				},
			},
		}},
		{"Empty", `;;`, []ast.Stmt{&ast.EmptyStmt{}, &ast.EmptyStmt{}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog := testutil.MustParse(t, tc.input)
			if diff := cmp.Diff(tc.want, prog.Body, testutil.IgnoreLocations); diff != "" {
				t.Errorf("Parse %q (-want, +got):\n%s", tc.input, diff)
			}
			testutil.CheckSpans(t, nil, prog)
		})
	}
}

func TestLocations(t *testing.T) {
	const input = "int x = 1;\nif (x > 0) {\n  x--;\n}\n"
	prog := testutil.MustParse(t, input)

	tests := []struct {
		node ast.Node
		want string
	}{
		{prog, "1:1-5:1"},
		{prog.Body[0], "1:1-1:11"},
		{prog.Body[0].(*ast.VarDecl).Init, "1:9-1:10"},
		{prog.Body[1], "2:1-4:2"},
		{prog.Body[1].(*ast.IfStmt).Cond, "2:5-2:10"},
		{prog.Body[1].(*ast.IfStmt).Then, "2:12-4:2"},
		{prog.Body[1].(*ast.IfStmt).Then.Stmts[0], "3:3-3:7"},
	}
	for _, tc := range tests {
		if got := tc.node.Location().String(); got != tc.want {
			t.Errorf("Location of %T: got %q, want %q", tc.node, got, tc.want)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	type diag struct {
		Code minij.Code
		Loc  string
	}
	tests := []struct {
		name  string
		input string
		want  []diag
		nstmt int // number of top-level statements
	}{
		{"TryAlone", `try { }`, []diag{
			{minij.TryRequiresCatchOrFinally, "1:1-1:8"},
		}, 1},
		{"UnterminatedString", "String s = \"abc\nint x = 1;\n", []diag{
			{minij.UnterminatedString, "1:12-1:16"},
		}, 2},
		{"UnterminatedStringInCall", "f(\"abc\n);\ng();\n", []diag{
			{minij.UnterminatedString, "1:3-1:7"},
		}, 2},
		{"UnterminatedComment", `int x = 1; /* y = 2;`, []diag{
			{minij.UnterminatedComment, "1:12-1:14"},
		}, 1},
		{"UnexpectedCharacter", `x = 1 # 2;`, []diag{
			{minij.UnexpectedCharacter, "1:7-1:8"},
			{minij.UnexpectedToken, "1:9-1:10"},
		}, 1},
		{"MalformedNumber", `int x = 12abc;`, []diag{
			{minij.MalformedNumber, "1:9-1:14"},
		}, 1},
		{"MissingExpr", `x = ; y = 1;`, []diag{
			{minij.UnexpectedToken, "1:5-1:6"},
		}, 2},
		{"MissingSemi", "x = 1\ny = 2;", []diag{
			{minij.UnexpectedToken, "2:1-2:2"},
		}, 2},
		{"BadCondition", `if (x +) { y; } z;`, []diag{
			{minij.UnexpectedToken, "1:8-1:9"},
		}, 2},
		{"InvalidTarget", `1 = x; f() += 2;`, []diag{
			{minij.InvalidAssignmentTarget, "1:1-1:2"},
			{minij.InvalidAssignmentTarget, "1:8-1:11"},
		}, 2},
		{"UnterminatedBlock", `{ x = 1;`, []diag{
			{minij.UnterminatedBlock, "1:9-1:9"},
		}, 1},
		{"UnterminatedClass", `class A { void f() { } `, []diag{
			{minij.UnterminatedBlock, "1:24-1:24"},
		}, 1},
		{"DoWhileNoSemi", `do { } while (x)`, []diag{
			{minij.UnexpectedToken, "1:17-1:17"},
		}, 1},
		{"MultipleErrors", "a + ;\nint x 3;\nb = 1;\n", []diag{
			{minij.UnexpectedToken, "1:5-1:6"},
			{minij.UnexpectedToken, "2:7-2:8"},
		}, 3},
		{"StrayClose", `} x = 1;`, []diag{
			{minij.UnexpectedToken, "1:1-1:2"},
		}, 2},
		{"LeadingOperator", "%\ny = 2;", []diag{
			{minij.UnexpectedToken, "1:1-1:2"},
		}, 2},
		{"LeadingElse", `else { x = 1; }`, []diag{
			{minij.UnexpectedToken, "1:1-1:5"},
		}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog, diags, err := ast.ParseString(tc.input, nil)
			if err != nil {
				t.Fatalf("Parse: unexpected error: %v", err)
			}
			var got []diag
			for _, d := range diags {
				got = append(got, diag{d.Code, d.Location.String()})
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Diagnostics (-want, +got):\n%s", diff)
			}
			if len(prog.Body) != tc.nstmt {
				t.Errorf("Got %d statements, want %d", len(prog.Body), tc.nstmt)
			}
			testutil.CheckSpans(t, nil, prog)
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Run("ResumeAfterString", func(t *testing.T) {
		prog, diags, err := ast.ParseString("String s = \"abc\nint x = 1;\n", nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if n := diags.Count(minij.UnterminatedString); n != 1 || len(diags) != 1 {
			t.Errorf("Diagnostics: got %v, want one UnterminatedString", diags)
		}
		if d, ok := prog.Body[1].(*ast.VarDecl); !ok || d.Name.Name != "x" {
			t.Errorf("Statement 2: got %#v, want declaration of x", prog.Body[1])
		}
	})

	t.Run("BadTry", func(t *testing.T) {
		prog, diags, err := ast.ParseString(`try { }`, nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if n := diags.Count(minij.TryRequiresCatchOrFinally); n != 1 {
			t.Errorf("Got %d TryRequiresCatchOrFinally, want 1", n)
		}
		ts, ok := prog.Body[0].(*ast.TryStmt)
		if !ok {
			t.Fatalf("Statement is %T, want *ast.TryStmt", prog.Body[0])
		}
		if len(ts.Catches) != 0 || ts.Finally != nil {
			t.Errorf("Try: got %d catches, finally %v; want none", len(ts.Catches), ts.Finally)
		}
	})

	t.Run("BadCondition", func(t *testing.T) {
		prog, _, err := ast.ParseString(`while (a b) { c; }`, nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		ws, ok := prog.Body[0].(*ast.WhileStmt)
		if !ok {
			t.Fatalf("Statement is %T, want *ast.WhileStmt", prog.Body[0])
		}
		if _, ok := ws.Cond.(*ast.BadExpr); !ok {
			t.Errorf("Condition is %T, want *ast.BadExpr", ws.Cond)
		}
		if len(ws.Body.Stmts) != 1 {
			t.Errorf("Body: got %d statements, want 1", len(ws.Body.Stmts))
		}
	})

	t.Run("BadStmt", func(t *testing.T) {
		prog, _, err := ast.ParseString("x = = 1;\ny = 2;", nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if _, ok := prog.Body[0].(*ast.BadStmt); !ok {
			t.Errorf("Statement 1 is %T, want *ast.BadStmt", prog.Body[0])
		}
		if got := prog.Body[0].Location().String(); got != "1:1-1:9" {
			t.Errorf("Bad statement location: got %q, want 1:1-1:9", got)
		}
		if _, ok := prog.Body[1].(*ast.ExprStmt); !ok {
			t.Errorf("Statement 2 is %T, want *ast.ExprStmt", prog.Body[1])
		}
	})
}

func TestResync(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // statement types
	}{
		{"DeclOnNextLine", "x = 1 + )\nint y = 2;", []string{"BadStmt", "VarDecl"}},
		{"AssignOnNextLine", "f(a b\ny = 2;", []string{"BadStmt", "ExprStmt"}},
		{"UpdateOnNextLine", "% %\ni++;", []string{"BadStmt", "ExprStmt"}},
		{"CallOnNextLine", "x = 1 +\n%\nSystem.out.println(x);", []string{"BadStmt", "ExprStmt"}},
		{"SameLine", "x = 1 + % y = 2;", []string{"BadStmt"}},
		{"Continuation", "f(a b,\n  c);", []string{"BadStmt"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prog, diags, err := ast.ParseString(tc.input, nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(diags) != 1 {
				t.Errorf("Got %d diagnostics, want 1: %v", len(diags), diags.Err())
			}
			var got []string
			for _, s := range prog.Body {
				got = append(got, strings.TrimPrefix(fmt.Sprintf("%T", s), "*ast."))
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Statements (-want, +got):\n%s", diff)
			}
			testutil.CheckSpans(t, nil, prog)
		})
	}
}

func TestLimits(t *testing.T) {
	t.Run("DeepParens", func(t *testing.T) {
		input := "x = " + strings.Repeat("(", 1000) + "1" + strings.Repeat(")", 1000) + ";\ny = 2;"
		prog, diags, err := ast.ParseString(input, nil)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(diags) != 1 || diags[0].Code != minij.MaxNestingDepthExceeded {
			t.Errorf("Diagnostics: got %v, want one MaxNestingDepthExceeded", diags)
		}
		if prog == nil || len(prog.Body) != 1 {
			t.Errorf("Want a partial program with one statement, got %+v", prog)
		}
		testutil.CheckSpans(t, nil, prog)
	})

	t.Run("DeepBlocks", func(t *testing.T) {
		input := strings.Repeat("{", 20) + strings.Repeat("}", 20)
		_, diags, err := ast.ParseString(input, &ast.Options{MaxDepth: 10})
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if len(diags) != 1 || diags[0].Code != minij.MaxNestingDepthExceeded {
			t.Errorf("Diagnostics: got %v, want one MaxNestingDepthExceeded", diags)
		}

		// The same input is fine with the default limit.
		testutil.MustParse(t, input)
	})

	t.Run("MaxErrors", func(t *testing.T) {
		input := strings.Repeat("x = ;\n", 5)
		_, diags, err := ast.ParseString(input, &ast.Options{MaxErrors: 2})
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		var got []minij.Code
		for _, d := range diags {
			got = append(got, d.Code)
		}
		want := []minij.Code{minij.UnexpectedToken, minij.UnexpectedToken, minij.TooManyErrors}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Diagnostics (-want, +got):\n%s", diff)
		}
	})
}

func TestComments(t *testing.T) {
	const input = "// one\nint x; /* two */ x = 1; // three"
	prog, diags, err := ast.ParseString(input, &ast.Options{KeepComments: true})
	if err != nil || len(diags) != 0 {
		t.Fatalf("Parse: %v, %v", err, diags)
	}
	var got []string
	for _, c := range prog.Comments {
		got = append(got, c.Text)
	}
	if diff := cmp.Diff([]string{"// one", "/* two */", "// three"}, got); diff != "" {
		t.Errorf("Comments (-want, +got):\n%s", diff)
	}
	if !prog.Comments[1].Block() || prog.Comments[0].Block() {
		t.Error("Block: wrong classification of comments")
	}

	// Without KeepComments, the program records no comments.
	if prog := testutil.MustParse(t, input); len(prog.Comments) != 0 {
		t.Errorf("Got %d comments, want none", len(prog.Comments))
	}
}

func TestParseErrors(t *testing.T) {
	_, _, err := ast.Parse(bytes.NewReader([]byte("x = \"\xff\";")), &ast.Options{Name: "bad.java"})
	var eerr *minij.EncodingError
	if err == nil {
		t.Fatal("Parse: got nil error for invalid UTF-8")
	} else if !errors.As(err, &eerr) || eerr.Offset != 5 || eerr.Name != "bad.java" {
		t.Errorf("Parse: got %v, want encoding error at offset 5", err)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, _, err := ast.ParseString("x = ;\ny = 1;", &ast.Options{Logger: log}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(buf.String(), "resynchronized") {
		t.Errorf("Log output does not mention recovery:\n%s", buf.String())
	}
}

func TestLoadOptions(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		opts, err := ast.LoadOptions(strings.NewReader(`{
  // Stop early.
  "name": "input.java",
  "maxErrors": 10,
  "maxDepth": 64,
  "keepComments": true,
}`))
		if err != nil {
			t.Fatalf("LoadOptions: unexpected error: %v", err)
		}
		want := &ast.Options{Name: "input.java", MaxErrors: 10, MaxDepth: 64, KeepComments: true}
		if diff := cmp.Diff(want, opts); diff != "" {
			t.Errorf("Options (-want, +got):\n%s", diff)
		}
	})

	for _, bad := range []string{
		`{"maxErrors": "ten"}`,
		`{"unknown": 1}`,
		`{"maxDepth": -1}`,
		`{`,
	} {
		if opts, err := ast.LoadOptions(strings.NewReader(bad)); err == nil {
			t.Errorf("LoadOptions(%q): got %+v, want error", bad, opts)
		}
	}
}
