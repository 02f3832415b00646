package parse

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/signadot/jpatch/ir"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res, err := FromYAMLAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

// FromYAMLAny converts a value decoded by goccy/go-yaml into IR.
func FromYAMLAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%v has no JSON representation", x)
		}
		return ir.FromFloat(x), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromYAMLAny(x[i])
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		res := ir.FromKeyVals(nil)
		for _, item := range x {
			val, err := FromYAMLAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(yamlKey(item.Key), val)
		}
		return res, nil
	case map[string]any:
		res := ir.FromKeyVals(nil)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			val, err := FromYAMLAny(x[k])
			if err != nil {
				return nil, err
			}
			res.SetField(k, val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
