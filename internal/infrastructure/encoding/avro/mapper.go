package avro

import "fmt"

// ToWorkOrderNative converts a decoded JSON map to the structure goavro
// expects: every union value wrapped as map[string]interface{}{"type": value}.
func ToWorkOrderNative(data map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{})

	setString := func(key string) {
		if v, ok := data[key]; ok && v != nil {
			out[key] = map[string]interface{}{"string": fmt.Sprintf("%v", v)}
		} else {
			out[key] = nil
		}
	}

	setLong := func(dst map[string]interface{}, src map[string]interface{}, key string) {
		if v, ok := src[key]; ok && v != nil {
			dst[key] = map[string]interface{}{"long": toInt64(v)}
		} else {
			dst[key] = nil
		}
	}

	setDouble := func(dst map[string]interface{}, src map[string]interface{}, key string) {
		if v, ok := src[key]; ok && v != nil {
			dst[key] = map[string]interface{}{"double": toFloat64(v)}
		} else {
			dst[key] = nil
		}
	}

	setString("id")
	setString("client_id")
	setString("vehicle_id")
	setString("observations")
	setString("status")
	setString("created_at")
	setString("updated_at")

	setDouble(out, data, "labor_cost")
	setDouble(out, data, "discount")
	setDouble(out, data, "total")

	mapLines := func(key, idField string, withCeiling bool) error {
		raw, ok := data[key]
		if !ok || raw == nil {
			out[key] = nil
			return nil
		}
		items, ok := raw.([]interface{})
		if !ok {
			return fmt.Errorf("%s is not an array", key)
		}
		mapped := make([]interface{}, 0, len(items))
		for _, item := range items {
			line, ok := item.(map[string]interface{})
			if !ok {
				return fmt.Errorf("%s item is not an object", key)
			}
			rec := make(map[string]interface{})
			if v, ok := line[idField]; ok && v != nil {
				rec[idField] = map[string]interface{}{"string": fmt.Sprintf("%v", v)}
			} else {
				rec[idField] = nil
			}
			if v, ok := line["name"]; ok && v != nil {
				rec["name"] = map[string]interface{}{"string": fmt.Sprintf("%v", v)}
			} else {
				rec["name"] = nil
			}
			setLong(rec, line, "quantity")
			setDouble(rec, line, "unit_price")
			if withCeiling {
				setLong(rec, line, "stock_ceiling")
			}
			mapped = append(mapped, rec)
		}
		out[key] = map[string]interface{}{"array": mapped}
		return nil
	}

	if err := mapLines("services", "service_id", false); err != nil {
		return nil, err
	}
	if err := mapLines("parts", "part_id", true); err != nil {
		return nil, err
	}

	return out, nil
}

// FromNative recursively unwraps goavro's union wrapping so the result can
// be marshalled back to plain JSON.
func FromNative(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		// a single-key map whose key names an avro type is a union wrapper
		if len(t) == 1 {
			for k, inner := range t {
				switch k {
				case "string", "long", "double", "boolean", "int", "float", "array":
					return FromNative(inner)
				}
			}
		}
		out := make(map[string]interface{}, len(t))
		for k, inner := range t {
			out[k] = FromNative(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, inner := range t {
			out[i] = FromNative(inner)
		}
		return out
	default:
		return v
	}
}

func toInt64(v interface{}) int64 {
	switch t := v.(type) {
	case float64:
		return int64(t)
	case float32:
		return int64(t)
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	}
	return 0
}

func toFloat64(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	}
	return 0
}
