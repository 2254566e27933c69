package evaluator

import "gopkg.in/yaml.v3"

func init() {
	builtins["encodeYAML"] = &Builtin{Fn: encodeYAML}
	builtins["decodeYAML"] = &Builtin{Fn: decodeYAML}
}

// encodeYAML converts a value to a YAML document string.
func encodeYAML(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}

	goValue := objectToGo(args[0])
	out, err := yaml.Marshal(goValue)
	if err != nil {
		return &Error{Message: "encodeYAML: " + err.Error()}
	}
	return &String{Value: string(out)}
}

func decodeYAML(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	text, ok := args[0].(*String)
	if !ok {
		return newError("argument to 'decodeYAML' not supported, got %s", args[0].Type())
	}

	var decoded any
	if err := yaml.Unmarshal([]byte(text.Value), &decoded); err != nil {
		return &Error{Message: "decodeYAML: " + err.Error()}
	}
	return goToObject(decoded)
}

// objectToGo converts a runtime Object to a plain Go value suitable for
// yaml.Marshal.
func objectToGo(obj Object) any {
	switch v := obj.(type) {
	case *Null:
		return nil
	case *Boolean:
		return v.Value
	case *Integer:
		return v.Value
	case *String:
		return v.Value
	case *Array:
		result := make([]any, len(v.Elements))
		for i, elem := range v.Elements {
			result[i] = objectToGo(elem)
		}
		return result
	case *Hash:
		result := make(map[string]any, len(v.Pairs))
		for _, pair := range v.Pairs {
			result[pair.Key.Inspect()] = objectToGo(pair.Value)
		}
		return result
	default:
		return obj.Inspect()
	}
}

func goToObject(v any) Object {
	switch v := v.(type) {
	case nil:
		return NULL
	case bool:
		return nativeBoolToBooleanObject(v)
	case int:
		return &Integer{Value: int64(v)}
	case int64:
		return &Integer{Value: v}
	case float64:
		return &Integer{Value: int64(v)}
	case string:
		return &String{Value: v}
	case []any:
		elements := make([]Object, len(v))
		for i, elem := range v {
			elements[i] = goToObject(elem)
			if isError(elements[i]) {
				return elements[i]
			}
		}
		return &Array{Elements: elements}
	case map[string]any:
		pairs := make(map[HashKey]HashPair, len(v))
		for key, val := range v {
			k := &String{Value: key}
			obj := goToObject(val)
			if isError(obj) {
				return obj
			}
			pairs[k.HashKey()] = HashPair{Key: k, Value: obj}
		}
		return &Hash{Pairs: pairs}
	case map[any]any:
		pairs := make(map[HashKey]HashPair, len(v))
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				return newError("decodeYAML: unsupported key")
			}
			k := &String{Value: keyStr}
			obj := goToObject(val)
			if isError(obj) {
				return obj
			}
			pairs[k.HashKey()] = HashPair{Key: k, Value: obj}
		}
		return &Hash{Pairs: pairs}
	default:
		return newError("decodeYAML: unsupported key")
	}
}
