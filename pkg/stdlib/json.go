package stdlib

import (
	"encoding/json"

	"hex/pkg/object"
)

// json is an optional module; scripts opt in with `include json`.
func (r *Registry) jsonModule() module {
	return module{
		"parse": jsonParse,
	}
}

func jsonParse(args ...object.Object) object.Object {
	if len(args) != 1 {
		return arityError("json", "parse", 1, len(args))
	}
	text, err := stringArg("json", "parse", args[0])
	if err != nil {
		return err
	}

	var decoded interface{}
	if parseErr := json.Unmarshal([]byte(text), &decoded); parseErr != nil {
		return object.NewError(object.RuntimeError, "json::parse failed: %s", parseErr)
	}
	return jsonToObject(decoded)
}

// jsonToObject maps decoded JSON onto runtime values: objects and arrays
// become collections, numbers become Number, null becomes nil.
func jsonToObject(v interface{}) object.Object {
	switch v := v.(type) {
	case map[string]interface{}:
		c := object.NewCollection()
		for key, val := range v {
			c.Insert(object.StringKey(key), jsonToObject(val))
		}
		return c
	case []interface{}:
		c := object.NewCollection()
		for _, val := range v {
			c.Push(jsonToObject(val))
		}
		return c
	case string:
		return &object.String{Value: v}
	case float64:
		return &object.Number{Value: v}
	case bool:
		return object.BooleanFor(v)
	case nil:
		return object.NIL
	}
	return object.NewError(object.RuntimeError, "json::parse produced an unsupported value")
}
