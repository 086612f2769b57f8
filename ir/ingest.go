package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// controlUnescaper decodes literal backslash escape sequences left over in
// interchange data into actual control characters. Applied to string
// scalars at ingestion only, never to template source text.
var controlUnescaper = strings.NewReplacer(
	`\n`, "\n",
	`\r`, "\r",
	`\t`, "\t",
)

// FromAny converts a generic interchange tree into the value model. The
// conversion is total: nil and absent map to null, booleans, numbers and
// strings map to canonical scalars, slices map element-wise to sequences,
// and maps map key-wise to mappings. Unordered Go maps ingest with sorted
// keys; yaml.MapSlice preserves source order.
func FromAny(v any) *Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case *Node:
		return t
	case bool:
		return FromBool(t)
	case string:
		return FromString(controlUnescaper.Replace(t))
	case int:
		return FromInt(int64(t))
	case int64:
		return FromInt(t)
	case uint64:
		return FromString(strconv.FormatUint(t, 10))
	case float64:
		return FromFloat(t)
	case json.Number:
		return fromNumber(t)
	case []any:
		vs := make([]*Node, len(t))
		for i, e := range t {
			vs[i] = FromAny(e)
		}
		return FromSlice(vs)
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return FromMap(m)
	case yaml.MapSlice:
		kvs := make([]KeyVal, len(t))
		for i, item := range t {
			kvs[i] = KeyVal{Key: scalarKey(item.Key), Val: FromAny(item.Value)}
		}
		return FromKeyVals(kvs)
	default:
		return FromString(fmt.Sprintf("%v", t))
	}
}

func fromNumber(n json.Number) *Node {
	if i, err := n.Int64(); err == nil {
		return FromInt(i)
	}
	if f, err := n.Float64(); err == nil {
		return FromFloat(f)
	}
	return FromString(n.String())
}

// scalarKey renders a mapping key as its canonical text.
func scalarKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
