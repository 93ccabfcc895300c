package eval

import (
	"math"

	"hex/pkg/ast"
	"hex/pkg/object"
	"hex/pkg/stdlib"
	"hex/pkg/token"
)

// Eval walks the AST against an environment and a module registry,
// producing a value or an error object. Error objects short-circuit: the
// first one produced propagates out unchanged.
func Eval(node ast.Node, env *object.Environment, reg *stdlib.Registry) object.Object {
	switch node := node.(type) {
	case *ast.Program:
		return evalProgram(node, env, reg)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env, reg)

	case *ast.BlockStatement:
		return evalBlockStatement(node, env, reg)

	case *ast.ValStatement:
		val := Eval(node.Value, env, reg)
		if object.IsError(val) {
			return val
		}
		// Last write wins: redeclaring a name rebinds it.
		env.Set(node.Name.Value, val)
		return object.NIL

	case *ast.AssignmentStatement:
		val := Eval(node.Value, env, reg)
		if object.IsError(val) {
			return val
		}
		if !env.Assign(node.Name.Value, val) {
			return errorAt(node.Token, object.UnresolvedIdentifier,
				"variable '%s' not defined", node.Name.Value)
		}
		return object.NIL

	case *ast.IncludeStatement:
		if err := reg.Enable(node.Module.Value); err != nil {
			err.Line = node.Token.Line
			err.Column = node.Token.Column
			return err
		}
		return object.NIL

	case *ast.Identifier:
		val, ok := env.Get(node.Value)
		if !ok {
			return errorAt(node.Token, object.UnresolvedIdentifier,
				"undefined variable or reference '%s'", node.Value)
		}
		return val

	case *ast.NumberLiteral:
		return &object.Number{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return object.BooleanFor(node.Value)

	case *ast.NilLiteral:
		return object.NIL

	case *ast.PrefixExpression:
		right := Eval(node.Right, env, reg)
		if object.IsError(right) {
			return right
		}
		return evalPrefixExpression(node, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env, reg)
		if object.IsError(left) {
			return left
		}
		right := Eval(node.Right, env, reg)
		if object.IsError(right) {
			return right
		}
		return evalInfixExpression(node, left, right)

	case *ast.IfExpression:
		return evalIfExpression(node, env, reg)

	case *ast.CollectionLiteral:
		return evalCollectionLiteral(node, env, reg)

	case *ast.IndexExpression:
		return evalIndexExpression(node, env, reg)

	case *ast.MemberExpression:
		return evalMemberExpression(node, env, reg)

	case *ast.ModuleCallExpression:
		return evalModuleCall(node, env, reg)

	case *ast.CallExpression:
		return evalCallExpression(node, env, reg)
	}

	return object.NewError(object.RuntimeError, "unhandled node %T", node)
}

func evalProgram(program *ast.Program, env *object.Environment, reg *stdlib.Registry) object.Object {
	var result object.Object = object.NIL

	for _, statement := range program.Statements {
		result = Eval(statement, env, reg)
		if object.IsError(result) {
			return result
		}
	}

	return result
}

// evalBlockStatement runs a block in the enclosing scope and yields the
// last statement's value. Bindings made inside a block stay visible after
// it, matching the flat top-level scope model.
func evalBlockStatement(block *ast.BlockStatement, env *object.Environment, reg *stdlib.Registry) object.Object {
	var result object.Object = object.NIL

	for _, statement := range block.Statements {
		result = Eval(statement, env, reg)
		if object.IsError(result) {
			return result
		}
	}

	return result
}

func evalPrefixExpression(node *ast.PrefixExpression, right object.Object) object.Object {
	switch node.Operator {
	case "-":
		num, ok := right.(*object.Number)
		if !ok {
			return errorAt(node.Token, object.TypeError,
				"unary - only supported on numbers, got %s", right.Kind())
		}
		return &object.Number{Value: -num.Value}
	default:
		return errorAt(node.Token, object.TypeError,
			"unsupported prefix operator %s", node.Operator)
	}
}

func evalInfixExpression(node *ast.InfixExpression, left, right object.Object) object.Object {
	switch node.Operator {
	case "==":
		return object.BooleanFor(object.Equals(left, right))
	case "!=":
		return object.BooleanFor(!object.Equals(left, right))
	case "<", ">", "<=", ">=":
		// Mismatched operand kinds are unordered; every ordering test on
		// them is false.
		ord, ok := object.Compare(left, right)
		if !ok {
			return object.FALSE
		}
		switch node.Operator {
		case "<":
			return object.BooleanFor(ord < 0)
		case ">":
			return object.BooleanFor(ord > 0)
		case "<=":
			return object.BooleanFor(ord <= 0)
		default:
			return object.BooleanFor(ord >= 0)
		}
	case "+", "-", "*", "/", "%":
		l, lok := left.(*object.Number)
		r, rok := right.(*object.Number)
		if !lok || !rok {
			return errorAt(node.Token, object.TypeError,
				"arithmetic operations can only be performed on numbers, got %s and %s",
				left.Kind(), right.Kind())
		}
		switch node.Operator {
		case "+":
			return &object.Number{Value: l.Value + r.Value}
		case "-":
			return &object.Number{Value: l.Value - r.Value}
		case "*":
			return &object.Number{Value: l.Value * r.Value}
		case "/":
			// Division by zero is a defined floating-point result
			// (inf/-inf/NaN), not a failure.
			return &object.Number{Value: l.Value / r.Value}
		default:
			return &object.Number{Value: math.Mod(l.Value, r.Value)}
		}
	}

	return errorAt(node.Token, object.TypeError,
		"unsupported operator %s", node.Operator)
}

func evalIfExpression(node *ast.IfExpression, env *object.Environment, reg *stdlib.Registry) object.Object {
	condition := Eval(node.Condition, env, reg)
	if object.IsError(condition) {
		return condition
	}

	if object.IsTruthy(condition) {
		return Eval(node.Consequence, env, reg)
	}
	if node.Alternative != nil {
		return Eval(node.Alternative, env, reg)
	}
	return object.NIL
}

func evalCollectionLiteral(node *ast.CollectionLiteral, env *object.Environment, reg *stdlib.Registry) object.Object {
	c := object.NewCollection()

	for _, entry := range node.Entries {
		val := Eval(entry.Value, env, reg)
		if object.IsError(val) {
			return val
		}

		switch key := entry.Key.(type) {
		case nil:
			c.Push(val)
		case *ast.Identifier:
			c.Insert(object.StringKey(key.Value), val)
		case *ast.NumberLiteral:
			c.Insert(object.NumberKey(key.Value), val)
		default:
			return object.NewError(object.TypeError,
				"collection key must be a name or number")
		}
	}

	return c
}

func evalIndexExpression(node *ast.IndexExpression, env *object.Environment, reg *stdlib.Registry) object.Object {
	left := Eval(node.Left, env, reg)
	if object.IsError(left) {
		return left
	}
	index := Eval(node.Index, env, reg)
	if object.IsError(index) {
		return index
	}

	c, ok := left.(*object.Collection)
	if !ok {
		return errorAt(node.Token, object.TypeError,
			"cannot index into %s", left.Kind())
	}

	key, err := collectionKeyFor(node.Token, index)
	if err != nil {
		return err
	}
	if val, found := c.Get(key); found {
		return val
	}
	return object.NIL
}

func collectionKeyFor(tok token.Token, index object.Object) (object.CollectionKey, *object.Error) {
	switch index := index.(type) {
	case *object.Number:
		return object.IndexKey(int(index.Value)), nil
	case *object.String:
		return object.StringKey(index.Value), nil
	}
	return object.CollectionKey{}, errorAt(tok, object.TypeError,
		"collection index must be a number or string, got %s", index.Kind())
}

// evalMemberExpression is field access on a collection: c.name.
func evalMemberExpression(node *ast.MemberExpression, env *object.Environment, reg *stdlib.Registry) object.Object {
	obj := Eval(node.Object, env, reg)
	if object.IsError(obj) {
		return obj
	}

	c, ok := obj.(*object.Collection)
	if !ok {
		return errorAt(node.Token, object.TypeError,
			"cannot access field '%s' on %s", node.Property.Value, obj.Kind())
	}

	if val, found := c.GetByString(node.Property.Value); found {
		return val
	}
	return errorAt(node.Token, object.UnresolvedIdentifier,
		"undefined field '%s'", node.Property.Value)
}

func evalModuleCall(node *ast.ModuleCallExpression, env *object.Environment, reg *stdlib.Registry) object.Object {
	args, errObj := evalExpressions(node.Arguments, env, reg)
	if errObj != nil {
		return errObj
	}

	fn, err := reg.Resolve(node.Module.Value, node.Function.Value)
	if err != nil {
		err.Line = node.Token.Line
		err.Column = node.Token.Column
		return err
	}

	return fn(args...)
}

// evalCallExpression handles method calls obj.m(args) and bare calls
// name(args). Bare calls are reserved for user-defined functions, which do
// not exist yet, so they always fail.
func evalCallExpression(node *ast.CallExpression, env *object.Environment, reg *stdlib.Registry) object.Object {
	if member, ok := node.Function.(*ast.MemberExpression); ok {
		// Arguments evaluate before the receiver.
		args, errObj := evalExpressions(node.Arguments, env, reg)
		if errObj != nil {
			return errObj
		}
		receiver := Eval(member.Object, env, reg)
		if object.IsError(receiver) {
			return receiver
		}
		return evalMethodCall(member, receiver, args)
	}

	if _, errObj := evalExpressions(node.Arguments, env, reg); errObj != nil {
		return errObj
	}

	if ident, ok := node.Function.(*ast.Identifier); ok {
		return errorAt(node.Token, object.UnknownFunction,
			"undefined function '%s'", ident.Value)
	}
	return errorAt(node.Token, object.TypeError, "expression is not callable")
}

// evalExpressions evaluates left to right, stopping at the first error.
func evalExpressions(exps []ast.Expression, env *object.Environment, reg *stdlib.Registry) ([]object.Object, object.Object) {
	result := make([]object.Object, 0, len(exps))

	for _, e := range exps {
		evaluated := Eval(e, env, reg)
		if object.IsError(evaluated) {
			return nil, evaluated
		}
		result = append(result, evaluated)
	}

	return result, nil
}
