package documents

import (
	"fmt"
	"math"
	"sort"

	"go.starlark.net/starlark"
)

func errorf(format string, args ...any) error {
	return fmt.Errorf("font: "+format, args...)
}

func toNumber(f float64) starlark.Value {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return starlark.MakeInt64(int64(f))
	}
	return starlark.Float(f)
}

func stringList(strs []string) *starlark.List {
	elems := make([]starlark.Value, 0, len(strs))
	for _, s := range strs {
		elems = append(elems, starlark.String(s))
	}
	return starlark.NewList(elems)
}

// toStarlark converts decoded YAML data
func toStarlark(value any) (starlark.Value, error) {
	switch value := value.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(value), nil
	case string:
		return starlark.String(value), nil
	case int:
		return starlark.MakeInt(value), nil
	case int64:
		return starlark.MakeInt64(value), nil
	case uint64:
		return starlark.MakeUint64(value), nil
	case float64:
		return starlark.Float(value), nil
	case []string:
		return stringList(value), nil
	case []any:
		elems := make([]starlark.Value, 0, len(value))
		for _, elem := range value {
			v, err := toStarlark(elem)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return starlark.NewList(elems), nil
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		dict := starlark.NewDict(len(value))
		for _, key := range keys {
			v, err := toStarlark(value[key])
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(key), v); err != nil {
				return nil, err
			}
		}
		return dict, nil
	}
	return nil, errorf("unsupported value %T", value)
}

// fromStarlark converts script values back to data YAML can encode
func fromStarlark(value starlark.Value) (any, error) {
	switch value := value.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(value), nil
	case starlark.String:
		return string(value), nil
	case starlark.Int:
		if i, ok := value.Int64(); ok {
			return i, nil
		}
		return nil, errorf("integer out of range: %s", value.String())
	case starlark.Float:
		return float64(value), nil
	case *starlark.List:
		return fromIterable(value)
	case starlark.Tuple:
		return fromIterable(value)
	case *starlark.Dict:
		ret := make(map[string]any, value.Len())
		for _, item := range value.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				return nil, errorf("dict key must be string, got %s", item[0].Type())
			}
			v, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			ret[key] = v
		}
		return ret, nil
	}
	return nil, errorf("unsupported value %s", value.Type())
}

func fromIterable(value starlark.Iterable) ([]any, error) {
	ret := []any{}
	iter := value.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		v, err := fromStarlark(elem)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}
