package stdlib

import "hex/pkg/object"

// The string namespace is an extension point; len is its only documented
// member.
func (r *Registry) stringModule() module {
	return module{
		"len": stringLen,
	}
}

func stringLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return arityError("string", "len", 1, len(args))
	}
	s, err := stringArg("string", "len", args[0])
	if err != nil {
		return err
	}
	return &object.Number{Value: float64(len(s))}
}
