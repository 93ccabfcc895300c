package stdlib

import (
	"math"

	"hex/pkg/object"
)

func (r *Registry) mathModule() module {
	return module{
		"abs":   mathUnary("abs", math.Abs),
		"sqrt":  mathUnary("sqrt", math.Sqrt),
		"floor": mathUnary("floor", math.Floor),
		"ceil":  mathUnary("ceil", math.Ceil),
		"sin":   mathUnary("sin", math.Sin),
		"cos":   mathUnary("cos", math.Cos),
		"pow":   mathBinary("pow", math.Pow),
		"max":   mathBinary("max", math.Max),
		"min":   mathBinary("min", math.Min),
	}
}

func mathUnary(name string, fn func(float64) float64) NativeFn {
	return func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return arityError("math", name, 1, len(args))
		}
		n, err := numberArg("math", name, args[0])
		if err != nil {
			return err
		}
		return &object.Number{Value: fn(n)}
	}
}

func mathBinary(name string, fn func(float64, float64) float64) NativeFn {
	return func(args ...object.Object) object.Object {
		if len(args) != 2 {
			return arityError("math", name, 2, len(args))
		}
		a, err := numberArg("math", name, args[0])
		if err != nil {
			return err
		}
		b, err := numberArg("math", name, args[1])
		if err != nil {
			return err
		}
		return &object.Number{Value: fn(a, b)}
	}
}
