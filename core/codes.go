package core

import "math"

// 结构性组码
const (
	CodeStart              = 0    // 记录开始，如 "0 LINE"
	CodeSubclass           = 100  // 子类标记，如 "100 AcDbLine"
	CodeControlString      = 102  // 应用程序定义组 "{ACAD_REACTORS" ... "}"
	CodeComment            = 999  // 注释
	CodeExtendedDataString = 1000 // 扩展数据起始阈值，>= 1000 均为扩展数据
	CodeExtendedDataRegApp = 1001 // 扩展数据应用名
)

// DegToRad 角度转弧度
const DegToRad = math.Pi / 180.0

// GroupCodeValueType 组码声明的值类型
type GroupCodeValueType int

const (
	ValueNone GroupCodeValueType = iota
	ValueString
	ValuePoint3D
	ValueDouble
	ValueInt16
	ValueInt32
	ValueInt64
	ValueHandle
	ValueObjectID
	ValueBool
	ValueChunk
	ValueComment
)

var valueTypeNames = [...]string{
	ValueNone:     "None",
	ValueString:   "String",
	ValuePoint3D:  "Point3D",
	ValueDouble:   "Double",
	ValueInt16:    "Int16",
	ValueInt32:    "Int32",
	ValueInt64:    "Int64",
	ValueHandle:   "Handle",
	ValueObjectID: "ObjectId",
	ValueBool:     "Bool",
	ValueChunk:    "Chunk",
	ValueComment:  "Comment",
}

func (t GroupCodeValueType) String() string {
	if t < 0 || int(t) >= len(valueTypeNames) {
		return "None"
	}
	return valueTypeNames[t]
}

// ValueTypeOf 按 DXF 组码范围返回值类型
func ValueTypeOf(code int) GroupCodeValueType {
	switch {
	case code < 0:
		return ValueNone
	case code == 5, code == 105:
		return ValueHandle
	case code <= 9:
		return ValueString
	case code <= 39:
		return ValuePoint3D
	case code <= 59:
		return ValueDouble
	case code <= 79:
		return ValueInt16
	case code <= 89:
		return ValueNone
	case code <= 99:
		return ValueInt32
	case code <= 102:
		return ValueString
	case code <= 109:
		return ValueNone
	case code <= 139:
		return ValuePoint3D
	case code <= 149:
		return ValueDouble
	case code <= 159:
		return ValueNone
	case code <= 169:
		return ValueInt64
	case code <= 179:
		return ValueInt16
	case code <= 209:
		return ValueNone
	case code <= 239:
		return ValuePoint3D
	case code <= 269:
		return ValueNone
	case code <= 289:
		return ValueInt16
	case code <= 299:
		return ValueBool
	case code <= 309:
		return ValueString
	case code <= 319:
		return ValueChunk
	case code <= 329:
		return ValueHandle
	case code <= 369:
		return ValueObjectID
	case code <= 389:
		return ValueInt16
	case code <= 399:
		return ValueHandle
	case code <= 409:
		return ValueInt16
	case code <= 419:
		return ValueString
	case code <= 429:
		return ValueInt32
	case code <= 439:
		return ValueString
	case code <= 459:
		return ValueInt32
	case code <= 469:
		return ValueDouble
	case code <= 479:
		return ValueString
	case code <= 481:
		return ValueHandle
	case code == CodeComment:
		return ValueComment
	case code <= 999:
		return ValueNone
	case code <= 1003:
		return ValueString
	case code == 1004:
		return ValueChunk
	case code == 1005:
		return ValueHandle
	case code <= 1009:
		return ValueString
	case code <= 1059:
		return ValueDouble
	case code <= 1070:
		return ValueInt16
	case code == 1071:
		return ValueInt32
	default:
		return ValueNone
	}
}
