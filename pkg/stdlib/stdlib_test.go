package stdlib

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hex/pkg/object"
)

func newTestRegistry() (*Registry, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out, strings.NewReader("")), &out
}

func TestResolve(t *testing.T) {
	r, _ := newTestRegistry()

	if _, err := r.Resolve("math", "pow"); err != nil {
		t.Fatalf("math::pow should resolve, got error: %s", err.Message)
	}
	if _, err := r.Resolve("io", "println"); err != nil {
		t.Fatalf("io::println should resolve, got error: %s", err.Message)
	}
	if _, err := r.Resolve("string", "len"); err != nil {
		t.Fatalf("string::len should resolve, got error: %s", err.Message)
	}

	_, err := r.Resolve("foo", "bar")
	if err == nil || err.ErrKind != object.UnknownModule {
		t.Fatalf("foo::bar should fail with UnknownModule, got=%v", err)
	}

	_, err = r.Resolve("io", "doesNotExist")
	if err == nil || err.ErrKind != object.UnknownFunction {
		t.Fatalf("io::doesNotExist should fail with UnknownFunction, got=%v", err)
	}
}

func TestEnableOptionalModules(t *testing.T) {
	r, _ := newTestRegistry()

	// Optional modules are invisible before include.
	if _, err := r.Resolve("fs", "read"); err == nil || err.ErrKind != object.UnknownModule {
		t.Fatalf("fs should be unknown before Enable, got=%v", err)
	}

	if err := r.Enable("fs"); err != nil {
		t.Fatalf("Enable(fs) failed: %s", err.Message)
	}
	if !r.Enabled("fs") {
		t.Fatalf("Enabled(fs) should report true")
	}
	if _, err := r.Resolve("fs", "read"); err != nil {
		t.Fatalf("fs::read should resolve after Enable, got error: %s", err.Message)
	}

	// Enabling twice is a no-op.
	if err := r.Enable("fs"); err != nil {
		t.Fatalf("second Enable(fs) failed: %s", err.Message)
	}

	err := r.Enable("nope")
	if err == nil || err.ErrKind != object.UnknownModule {
		t.Fatalf("Enable of unknown module should fail with UnknownModule, got=%v", err)
	}
	if err.Message != "module 'nope' not found" {
		t.Errorf("message wrong. got=%q", err.Message)
	}
}

func TestIoPrint(t *testing.T) {
	r, out := newTestRegistry()

	result := r.ioPrint(&object.Number{Value: 1}, &object.String{Value: "a"})
	if result != object.NIL {
		t.Fatalf("io::print should return nil, got=%s", result.Inspect())
	}
	if out.String() != "1 a" {
		t.Errorf("io::print output expected=%q, got=%q", "1 a", out.String())
	}

	out.Reset()
	r.ioPrintln(&object.Number{Value: 14})
	if out.String() != "14\n" {
		t.Errorf("io::println output expected=%q, got=%q", "14\n", out.String())
	}

	out.Reset()
	r.ioPrintln()
	if out.String() != "\n" {
		t.Errorf("empty io::println expected newline only, got=%q", out.String())
	}
}

func TestIoInput(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, strings.NewReader("alice\r\nbob\n"))

	result := r.ioInput(&object.String{Value: "name? "})
	s, ok := result.(*object.String)
	if !ok {
		t.Fatalf("io::input should return a string, got=%T", result)
	}
	if s.Value != "alice" {
		t.Errorf("io::input expected=%q, got=%q", "alice", s.Value)
	}
	if out.String() != "name? " {
		t.Errorf("prompt output expected=%q, got=%q", "name? ", out.String())
	}

	result = r.ioInput()
	if s := result.(*object.String); s.Value != "bob" {
		t.Errorf("second io::input expected=%q, got=%q", "bob", s.Value)
	}

	// EOF without a newline still yields what was read.
	r = New(io.Discard, strings.NewReader("tail"))
	if s := r.ioInput().(*object.String); s.Value != "tail" {
		t.Errorf("io::input at EOF expected=%q, got=%q", "tail", s.Value)
	}

	if err, ok := r.ioInput(&object.Number{Value: 1}).(*object.Error); !ok || err.ErrKind != object.TypeError {
		t.Errorf("non-string prompt should be a TypeError")
	}
}

func TestMathFunctions(t *testing.T) {
	r, _ := newTestRegistry()

	tests := []struct {
		fn       string
		args     []object.Object
		expected float64
	}{
		{"pow", []object.Object{&object.Number{Value: 2}, &object.Number{Value: 10}}, 1024},
		{"sqrt", []object.Object{&object.Number{Value: 9}}, 3},
		{"abs", []object.Object{&object.Number{Value: -3.5}}, 3.5},
		{"floor", []object.Object{&object.Number{Value: 2.9}}, 2},
		{"ceil", []object.Object{&object.Number{Value: 2.1}}, 3},
		{"sin", []object.Object{&object.Number{Value: 0}}, 0},
		{"cos", []object.Object{&object.Number{Value: 0}}, 1},
		{"max", []object.Object{&object.Number{Value: 2}, &object.Number{Value: 7}}, 7},
		{"min", []object.Object{&object.Number{Value: 2}, &object.Number{Value: 7}}, 2},
	}

	for _, tt := range tests {
		fn, err := r.Resolve("math", tt.fn)
		if err != nil {
			t.Fatalf("math::%s did not resolve: %s", tt.fn, err.Message)
		}
		result := fn(tt.args...)
		num, ok := result.(*object.Number)
		if !ok {
			t.Fatalf("math::%s did not return a number, got=%s", tt.fn, result.Inspect())
		}
		if math.Abs(num.Value-tt.expected) > 1e-12 {
			t.Errorf("math::%s expected=%v, got=%v", tt.fn, tt.expected, num.Value)
		}
	}
}

func TestMathErrors(t *testing.T) {
	r, _ := newTestRegistry()

	pow, _ := r.Resolve("math", "pow")
	if err, ok := pow(&object.Number{Value: 2}).(*object.Error); !ok || err.ErrKind != object.ArityError {
		t.Errorf("math::pow with one argument should be an ArityError")
	}

	sqrt, _ := r.Resolve("math", "sqrt")
	err, ok := sqrt(&object.String{Value: "x"}).(*object.Error)
	if !ok || err.ErrKind != object.TypeError {
		t.Fatalf("math::sqrt on a string should be a TypeError")
	}
	if err.Message != "math::sqrt expects a number, got STRING" {
		t.Errorf("message wrong. got=%q", err.Message)
	}
}

func TestStringLen(t *testing.T) {
	r, _ := newTestRegistry()

	fn, _ := r.Resolve("string", "len")
	result := fn(&object.String{Value: "hello"})
	if num := result.(*object.Number); num.Value != 5 {
		t.Errorf("string::len expected=5, got=%s", result.Inspect())
	}

	if err, ok := fn(&object.Number{Value: 1}).(*object.Error); !ok || err.ErrKind != object.TypeError {
		t.Errorf("string::len on a number should be a TypeError")
	}
}

func TestFsReadWrite(t *testing.T) {
	r, _ := newTestRegistry()
	if err := r.Enable("fs"); err != nil {
		t.Fatalf("Enable(fs) failed: %s", err.Message)
	}

	path := filepath.Join(t.TempDir(), "note.txt")

	write, _ := r.Resolve("fs", "write")
	result := write(&object.String{Value: path}, &object.String{Value: "hello hex"})
	if result != object.TRUE {
		t.Fatalf("fs::write should return true, got=%s", result.Inspect())
	}

	read, _ := r.Resolve("fs", "read")
	result = read(&object.String{Value: path})
	if s := result.(*object.String); s.Value != "hello hex" {
		t.Errorf("fs::read expected=%q, got=%q", "hello hex", s.Value)
	}

	missing := filepath.Join(t.TempDir(), "missing.txt")
	if err, ok := read(&object.String{Value: missing}).(*object.Error); !ok || err.ErrKind != object.RuntimeError {
		t.Errorf("fs::read of a missing file should be a RuntimeError")
	}

	data, osErr := os.ReadFile(path)
	if osErr != nil || string(data) != "hello hex" {
		t.Errorf("file content on disk wrong: %q, %v", data, osErr)
	}
}

func TestJsonParse(t *testing.T) {
	r, _ := newTestRegistry()
	if err := r.Enable("json"); err != nil {
		t.Fatalf("Enable(json) failed: %s", err.Message)
	}

	parse, _ := r.Resolve("json", "parse")

	result := parse(&object.String{Value: `{"name": "hex", "tags": [1, 2], "ok": true, "none": null}`})
	c, ok := result.(*object.Collection)
	if !ok {
		t.Fatalf("json::parse should return a collection, got=%s", result.Inspect())
	}

	name, _ := c.GetByString("name")
	if s := name.(*object.String); s.Value != "hex" {
		t.Errorf("name expected=hex, got=%s", name.Inspect())
	}

	tags, _ := c.GetByString("tags")
	arr := tags.(*object.Collection)
	if arr.Len() != 2 {
		t.Errorf("tags length expected=2, got=%d", arr.Len())
	}
	first, _ := arr.GetByIndex(0)
	if num := first.(*object.Number); num.Value != 1 {
		t.Errorf("tags[0] expected=1, got=%s", first.Inspect())
	}

	okVal, _ := c.GetByString("ok")
	if okVal != object.TRUE {
		t.Errorf("ok expected=true, got=%s", okVal.Inspect())
	}
	noneVal, _ := c.GetByString("none")
	if noneVal != object.NIL {
		t.Errorf("none expected=nil, got=%s", noneVal.Inspect())
	}

	if err, ok := parse(&object.String{Value: "{not json"}).(*object.Error); !ok || err.ErrKind != object.RuntimeError {
		t.Errorf("bad input should be a RuntimeError")
	}
}
