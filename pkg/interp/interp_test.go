package interp

import (
	"io"
	"strings"
	"testing"

	"hex/pkg/object"
	"hex/pkg/stdlib"
)

func newSession() (*object.Environment, *stdlib.Registry) {
	return object.NewEnvironment(), stdlib.New(io.Discard, strings.NewReader(""))
}

func TestRunProgram(t *testing.T) {
	env, reg := newSession()

	result, err := RunProgram("val x = 2\nval y = 3\nx * y + 1", env, reg)
	if err != nil {
		t.Fatalf("RunProgram failed: %v", err)
	}
	num, ok := result.(*object.Number)
	if !ok || num.Value != 7 {
		t.Fatalf("expected=7, got=%s", result.Inspect())
	}
}

func TestRunStatementPersistence(t *testing.T) {
	env, reg := newSession()

	// Bindings made in one separately-parsed statement survive into the
	// next, which is the whole REPL contract.
	if _, err := RunStatement("val a = 1", env, reg); err != nil {
		t.Fatalf("first statement failed: %v", err)
	}
	result, err := RunStatement("a + 1", env, reg)
	if err != nil {
		t.Fatalf("second statement failed: %v", err)
	}
	num, ok := result.(*object.Number)
	if !ok || num.Value != 2 {
		t.Fatalf("expected=2, got=%s", result.Inspect())
	}
}

func TestErrorsLeaveBindingsIntact(t *testing.T) {
	env, reg := newSession()

	if _, err := RunStatement("val a = 1", env, reg); err != nil {
		t.Fatalf("binding failed: %v", err)
	}

	_, err := RunStatement("ghost", env, reg)
	if err == nil {
		t.Fatalf("expected an error for an undeclared name")
	}
	evalErr, ok := err.(*object.Error)
	if !ok {
		t.Fatalf("error is not *object.Error. got=%T", err)
	}
	if evalErr.ErrKind != object.UnresolvedIdentifier {
		t.Fatalf("error kind wrong. got=%s", evalErr.ErrKind)
	}

	result, err := RunStatement("a", env, reg)
	if err != nil {
		t.Fatalf("lookup after error failed: %v", err)
	}
	if num := result.(*object.Number); num.Value != 1 {
		t.Fatalf("binding lost after error, got=%s", result.Inspect())
	}
}

func TestIncludePersistsAcrossStatements(t *testing.T) {
	env, reg := newSession()

	if _, err := RunStatement("include json", env, reg); err != nil {
		t.Fatalf("include failed: %v", err)
	}
	result, err := RunStatement(`json::parse("[1]")`, env, reg)
	if err != nil {
		t.Fatalf("json::parse after include failed: %v", err)
	}
	if result.Kind() != object.KindCollection {
		t.Fatalf("expected a collection, got=%s", result.Inspect())
	}
}

func TestParseErrorsAreReturned(t *testing.T) {
	env, reg := newSession()

	_, err := RunProgram("val = 5", env, reg)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	parseErr, ok := err.(*object.Error)
	if !ok || parseErr.ErrKind != object.ParseError {
		t.Fatalf("expected ParseError, got=%v", err)
	}

	_, err = RunProgram("val x = $", env, reg)
	if err == nil {
		t.Fatalf("expected a lex error")
	}
	if lexErr := err.(*object.Error); lexErr.ErrKind != object.LexError {
		t.Fatalf("expected LexError, got=%s", lexErr.ErrKind)
	}
}

func BenchmarkRunProgram(b *testing.B) {
	src := `val v0 = 20
val theta = 45
val g = 9.81
val pi = 3.14159
val theta_rad = theta * pi / 180
val v0_y = v0 * math::sin(theta_rad)
math::pow(v0_y, 2) / (2 * g)`

	reg := stdlib.New(io.Discard, strings.NewReader(""))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		env := object.NewEnvironment()
		if _, err := RunProgram(src, env, reg); err != nil {
			b.Fatal(err)
		}
	}
}
