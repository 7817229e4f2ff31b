package utils

import (
	"math"
	"strings"

	"github.com/zooyer/dxfreader"
	"github.com/zooyer/dxfreader/templates"
)

// GetDimValue 标注显示的数值，按标注样式的小数位数 (DIMDEC) 取整
func GetDimValue(doc *dxf.Document, tpl *templates.DimensionTemplate) float64 {
	dim := tpl.Dimension().Dim()

	// 1. 有手动文字覆盖时，直接按文字提取数字
	if dim.Text != "" && !strings.Contains(dim.Text, "<>") {
		return dim.CleanValue()
	}

	// 2. 标注样式名称来自组码 3，找不到样式时取整
	precision := 0
	if style := doc.DimStyle(tpl.StyleName()); style != nil {
		precision = int(style.Precision)
	}

	// 3. 根据精度进行四舍五入
	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p
}
