package dxfmap

import "math"

func toFloat(code int, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	return 0, valueError(code, "double", v)
}

func toInt64(code int, v any) (int64, error) {
	switch x := v.(type) {
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case float64:
		// 部分导出程序把整数写成 "1.0"
		if x == math.Trunc(x) {
			return int64(x), nil
		}
	}
	return 0, valueError(code, "integer", v)
}

func toShort(code int, v any) (int16, error) {
	i, err := toInt64(code, v)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt16 || i > math.MaxInt16 {
		return 0, valueError(code, "int16", v)
	}
	return int16(i), nil
}

func toInt32(code int, v any) (int32, error) {
	i, err := toInt64(code, v)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, valueError(code, "int32", v)
	}
	return int32(i), nil
}

func toBool(code int, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	i, err := toInt64(code, v)
	if err != nil {
		return false, valueError(code, "bool", v)
	}
	return i != 0, nil
}

func toString(code int, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", valueError(code, "string", v)
}
