package entities

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color AutoCAD 颜色：索引色 (ACI) 或真彩色
type Color struct {
	Index  int16 // 组码 62，0 随块，256 随层
	RGB    int32 // 组码 420，0x00RRGGBB
	HasRGB bool
}

var (
	ByBlock = Color{Index: 0}
	ByLayer = Color{Index: 256}
)

// 标准颜色 1-7
var standardColors = [...]colorful.Color{
	1: {R: 1},
	2: {R: 1, G: 1},
	3: {G: 1},
	4: {G: 1, B: 1},
	5: {B: 1},
	6: {R: 1, B: 1},
	7: {R: 1, G: 1, B: 1},
}

// FromTrueColor 由 420 组码的打包值创建颜色
func FromTrueColor(rgb int32) Color {
	return Color{Index: 256, RGB: rgb & 0xFFFFFF, HasRGB: true}
}

// Hex 返回 #rrggbb，随层、随块和非标准索引色返回空串
func (c Color) Hex() string {
	if c.HasRGB {
		return colorful.Color{
			R: float64(c.RGB>>16&0xFF) / 255,
			G: float64(c.RGB>>8&0xFF) / 255,
			B: float64(c.RGB&0xFF) / 255,
		}.Hex()
	}

	if c.Index > 0 && int(c.Index) < len(standardColors) {
		return standardColors[c.Index].Hex()
	}

	return ""
}
