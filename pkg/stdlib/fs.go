package stdlib

import (
	"os"

	"hex/pkg/object"
)

// fs is an optional module; scripts opt in with `include fs`.
func (r *Registry) fsModule() module {
	return module{
		"read":  fsRead,
		"write": fsWrite,
	}
}

func fsRead(args ...object.Object) object.Object {
	if len(args) != 1 {
		return arityError("fs", "read", 1, len(args))
	}
	path, err := stringArg("fs", "read", args[0])
	if err != nil {
		return err
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return object.NewError(object.RuntimeError, "fs::read failed: %s", readErr)
	}
	return &object.String{Value: string(data)}
}

func fsWrite(args ...object.Object) object.Object {
	if len(args) != 2 {
		return arityError("fs", "write", 2, len(args))
	}
	path, err := stringArg("fs", "write", args[0])
	if err != nil {
		return err
	}
	content, err := stringArg("fs", "write", args[1])
	if err != nil {
		return err
	}

	if writeErr := os.WriteFile(path, []byte(content), 0o644); writeErr != nil {
		return object.NewError(object.RuntimeError, "fs::write failed: %s", writeErr)
	}
	return object.TRUE
}
