package core

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	s := strings.TrimSpace(t.Value)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// 部分导出程序会把整数写成 "1.0"
	f, _ := strconv.ParseFloat(s, 64)
	return int(f)
}

// AsShort 将值转换为 int16
func (t Tag) AsShort() int16 {
	return int16(t.AsInt())
}

// AsLong 将值转换为 int64
func (t Tag) AsLong() int64 {
	i, _ := strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
	return i
}

// AsBool 非零即真
func (t Tag) AsBool() bool {
	s := strings.TrimSpace(t.Value)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return t.AsInt() != 0
}

// AsHandle 将十六进制值转换为句柄
func (t Tag) AsHandle() Handle {
	h, _ := ParseHandle(t.Value)
	return h
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Typed 按组码的值类型返回解析后的值。
// 数值解析失败时返回原始字符串，由调用方决定如何处理。
func (t Tag) Typed() any {
	s := strings.TrimSpace(t.Value)

	switch ValueTypeOf(t.Code) {
	case ValueDouble, ValuePoint3D:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return s
		}
		return f
	case ValueInt16:
		i, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return s
		}
		return int16(i)
	case ValueInt32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return s
		}
		return int32(i)
	case ValueInt64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return s
		}
		return i
	case ValueBool:
		i, err := strconv.Atoi(s)
		if err != nil {
			return s
		}
		return i != 0
	case ValueHandle, ValueObjectID:
		h, err := ParseHandle(s)
		if err != nil {
			return s
		}
		return h
	case ValueChunk:
		b, err := hex.DecodeString(s)
		if err != nil {
			return s
		}
		return b
	default:
		return s
	}
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// XY 代表二维平面中的一个点
type XY struct {
	X, Y float64
}
