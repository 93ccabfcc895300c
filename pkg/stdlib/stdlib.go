// Package stdlib is the module registry behind the :: operator. The
// standard modules (io, math, string) are resolvable from the start;
// optional modules (fs, json) are registered up front but stay invisible
// until an include statement enables them.
package stdlib

import (
	"bufio"
	"io"

	"hex/pkg/object"
)

// NativeFn is a built-in implemented outside the language's grammar. It
// receives already-evaluated arguments and returns a value or an error
// object.
type NativeFn func(args ...object.Object) object.Object

type module map[string]NativeFn

// Registry maps module names to their native functions. The standard set
// never changes after construction; Enable only widens the resolvable set
// with pre-registered optional modules. Print output and input prompts go
// through the injected sink and source, so natives are testable without a
// terminal.
type Registry struct {
	out io.Writer
	in  *bufio.Reader

	std      map[string]module
	optional map[string]module
	enabled  map[string]bool
}

func New(out io.Writer, in io.Reader) *Registry {
	r := &Registry{
		out:     out,
		in:      bufio.NewReader(in),
		enabled: make(map[string]bool),
	}
	r.std = map[string]module{
		"io":     r.ioModule(),
		"math":   r.mathModule(),
		"string": r.stringModule(),
	}
	r.optional = map[string]module{
		"fs":   r.fsModule(),
		"json": r.jsonModule(),
	}
	return r
}

// Resolve returns the native for module::function, or an UnknownModule /
// UnknownFunction error. Resolution happens once per call site evaluation;
// nothing is cached.
func (r *Registry) Resolve(moduleName, functionName string) (NativeFn, *object.Error) {
	mod, ok := r.std[moduleName]
	if !ok && r.enabled[moduleName] {
		mod, ok = r.optional[moduleName]
	}
	if !ok {
		return nil, object.NewError(object.UnknownModule, "unknown module '%s'", moduleName)
	}

	fn, ok := mod[functionName]
	if !ok {
		return nil, object.NewError(object.UnknownFunction, "module '%s' has no function '%s'", moduleName, functionName)
	}
	return fn, nil
}

// Enable makes an optional module resolvable. Enabling twice is a no-op,
// matching include's idempotence.
func (r *Registry) Enable(moduleName string) *object.Error {
	if r.enabled[moduleName] {
		return nil
	}
	if _, ok := r.optional[moduleName]; !ok {
		return object.NewError(object.UnknownModule, "module '%s' not found", moduleName)
	}
	r.enabled[moduleName] = true
	return nil
}

// Enabled reports whether an optional module has been included.
func (r *Registry) Enabled(moduleName string) bool {
	return r.enabled[moduleName]
}

func arityError(module, fn string, want, got int) *object.Error {
	return object.NewError(object.ArityError,
		"%s::%s expects %d argument(s), got %d", module, fn, want, got)
}

func typeError(module, fn, want string, got object.Object) *object.Error {
	return object.NewError(object.TypeError,
		"%s::%s expects %s, got %s", module, fn, want, got.Kind())
}

func numberArg(module, fn string, arg object.Object) (float64, *object.Error) {
	n, ok := arg.(*object.Number)
	if !ok {
		return 0, typeError(module, fn, "a number", arg)
	}
	return n.Value, nil
}

func stringArg(module, fn string, arg object.Object) (string, *object.Error) {
	s, ok := arg.(*object.String)
	if !ok {
		return "", typeError(module, fn, "a string", arg)
	}
	return s.Value, nil
}
