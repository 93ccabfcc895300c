package eval

import (
	"hex/pkg/ast"
	"hex/pkg/object"
	"hex/pkg/token"
)

// evalMethodCall dispatches obj.method(args). Collections expose push,
// pop, size, get and insert; strings expose len. Collections mutate in
// place, so a method on a bound name updates the binding's value directly.
func evalMethodCall(member *ast.MemberExpression, receiver object.Object, args []object.Object) object.Object {
	method := member.Property.Value

	switch receiver := receiver.(type) {
	case *object.Collection:
		return evalCollectionMethod(member.Token, receiver, method, args)
	case *object.String:
		return evalStringMethod(member.Token, receiver, method, args)
	}

	return errorAt(member.Token, object.TypeError,
		"cannot call method '%s' on %s", method, receiver.Kind())
}

func evalCollectionMethod(tok token.Token, c *object.Collection, method string, args []object.Object) object.Object {
	switch method {
	case "push":
		if len(args) != 1 {
			return methodArityError(tok, method, 1, len(args))
		}
		c.Push(args[0])
		return object.NIL

	case "pop":
		if len(args) != 0 {
			return methodArityError(tok, method, 0, len(args))
		}
		if val, ok := c.Pop(); ok {
			return val
		}
		return object.NIL

	case "size":
		if len(args) != 0 {
			return methodArityError(tok, method, 0, len(args))
		}
		return &object.Number{Value: float64(c.Len())}

	case "get":
		if len(args) != 1 {
			return methodArityError(tok, method, 1, len(args))
		}
		key, err := collectionKeyFor(tok, args[0])
		if err != nil {
			return err
		}
		if val, ok := c.Get(key); ok {
			return val
		}
		return object.NIL

	case "insert":
		if len(args) != 2 {
			return methodArityError(tok, method, 2, len(args))
		}
		key, err := collectionKeyFor(tok, args[0])
		if err != nil {
			return err
		}
		c.Insert(key, args[1])
		return object.NIL
	}

	return errorAt(tok, object.UnknownFunction,
		"unknown method '%s' for collection", method)
}

func evalStringMethod(tok token.Token, s *object.String, method string, args []object.Object) object.Object {
	switch method {
	case "len":
		if len(args) != 0 {
			return methodArityError(tok, method, 0, len(args))
		}
		return &object.Number{Value: float64(len(s.Value))}
	}

	return errorAt(tok, object.UnknownFunction,
		"unknown method '%s' for string", method)
}

func methodArityError(tok token.Token, method string, want, got int) *object.Error {
	return errorAt(tok, object.ArityError,
		"method '%s' expects %d argument(s), got %d", method, want, got)
}

func errorAt(tok token.Token, kind object.ErrorKind, format string, a ...interface{}) *object.Error {
	return object.NewErrorAt(kind, tok.Line, tok.Column, format, a...)
}
