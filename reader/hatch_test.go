package reader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/templates"
	"github.com/zooyer/golib/xmath"
)

var hatchHeader = []string{
	"0", "HATCH",
	"5", "40",
	"330", "1F",
	"100", "AcDbEntity",
	"8", "填充",
	"100", "AcDbHatch",
	"10", "0.0",
	"20", "0.0",
	"30", "0.0",
	"210", "0.0",
	"220", "0.0",
	"230", "1.0",
	"2", "ANSI31",
	"70", "0",
	"71", "1",
}

func readHatchTags(t *testing.T, body ...string) (*templates.HatchTemplate, *core.Scanner, *notify.Collector) {
	t.Helper()

	tags := append(append([]string{}, hatchHeader...), body...)
	r, scanner, sink := newReader(t, append(tags, "0", "ENDSEC"))

	tpl, err := r.ReadEntity()
	require.NoError(t, err)
	hatch, ok := tpl.(*templates.HatchTemplate)
	require.True(t, ok)
	return hatch, scanner, sink
}

func TestReadHatch_Boundaries(t *testing.T) {
	tpl, scanner, sink := readHatchTags(t,
		"91", "2",
		// 直线和圆弧组成的边界
		"92", "1",
		"93", "2",
		"72", "1",
		"10", "0.0", "20", "0.0",
		"11", "10.0", "21", "0.0",
		"72", "2",
		"10", "5.0", "20", "5.0",
		"40", "2.5",
		"50", "0.0",
		"51", "180.0",
		"73", "1",
		"97", "1",
		"330", "2A",
		// 多段线边界
		"92", "2",
		"72", "0",
		"73", "1",
		"93", "2",
		"10", "0.0", "20", "0.0",
		"10", "1.0", "20", "1.0",
		"97", "0",
		"75", "1",
		"76", "1",
		"52", "45",
		"41", "2.0",
		"77", "0",
		"78", "1",
		"53", "45.0",
		"43", "0.0",
		"44", "0.0",
		"45", "-0.1",
		"46", "0.1",
		"79", "2",
		"49", "0.5",
		"49", "-0.25",
		"98", "1",
		"10", "3.0",
		"20", "4.0",
		"1001", "ACAD",
		"1000", "hello",
	)

	assert.Equal(t, "ANSI31", tpl.PatternName)
	assert.Equal(t, "填充", tpl.LayerName())

	hatch := tpl.Hatch()
	assert.True(t, hatch.IsAssociative)
	assert.False(t, hatch.IsSolid)
	assert.Equal(t, core.Point{Z: 1}, hatch.Normal)
	assert.Equal(t, int16(1), hatch.Style)
	assert.Equal(t, 2.0, hatch.PatternScale)
	assert.True(t, xmath.Equal(hatch.PatternAngle, math.Pi/4, epsilon))

	// 标高点之前的 10 / 20 不是种子点
	assert.Equal(t, []core.XY{{X: 3, Y: 4}}, hatch.SeedPoints)

	require.Len(t, tpl.Paths, 1)
	path := tpl.Paths[0]
	assert.True(t, path.Path.Flags.Has(entities.BoundaryExternal))
	assert.Equal(t, []core.Handle{0x2A}, path.Handles)
	require.Len(t, path.Path.Edges, 2)

	line, ok := path.Path.Edges[0].(*entities.LineEdge)
	require.True(t, ok)
	assert.Equal(t, core.XY{X: 10}, line.End)

	arc, ok := path.Path.Edges[1].(*entities.ArcEdge)
	require.True(t, ok)
	assert.Equal(t, core.XY{X: 5, Y: 5}, arc.Center)
	assert.Equal(t, 2.5, arc.Radius)
	assert.Equal(t, 180.0, arc.EndAngle)
	assert.True(t, arc.CounterClockWise)

	require.Len(t, hatch.PatternLines, 1)
	assert.Equal(t, entities.PatternLine{
		Angle:       45,
		Offset:      core.XY{X: -0.1, Y: 0.1},
		DashLengths: []float64{0.5, -0.25},
	}, hatch.PatternLines[0])

	require.Contains(t, tpl.EData, "ACAD")
	assert.Equal(t, []templates.ExtendedDataRecord{{Code: 1000, Value: "hello"}}, tpl.EData["ACAD"].Records)

	assert.Equal(t, 1, sink.Count(notify.NotImplemented))
	assert.Equal(t, "ENDSEC", scanner.ValueAsString())
}

func TestReadHatch_EllipseAndSplineEdges(t *testing.T) {
	tpl, _, _ := readHatchTags(t,
		"91", "1",
		"92", "0",
		"93", "2",
		"72", "3",
		"10", "1.0", "20", "2.0",
		"11", "3.0", "21", "4.0",
		"40", "0.5",
		"50", "0.0",
		"51", "360.0",
		"73", "1",
		"72", "4",
		"94", "3",
		"73", "1",
		"74", "0",
		"95", "2",
		"96", "2",
		"40", "0.0",
		"40", "1.0",
		"10", "0.0", "20", "0.0", "42", "0.5",
		"10", "1.0", "20", "1.0",
		"97", "0",
		"75", "0",
	)

	require.Len(t, tpl.Paths, 1)
	edges := tpl.Paths[0].Path.Edges
	require.Len(t, edges, 2)

	ellipse, ok := edges[0].(*entities.EllipseEdge)
	require.True(t, ok)
	assert.Equal(t, core.XY{X: 1, Y: 2}, ellipse.Center)
	assert.Equal(t, core.XY{X: 3, Y: 4}, ellipse.MajorAxisEndPoint)
	assert.Equal(t, 0.5, ellipse.RadiusRatio)

	spline, ok := edges[1].(*entities.SplineEdge)
	require.True(t, ok)
	assert.Equal(t, 3, spline.Degree)
	assert.True(t, spline.Rational)
	assert.Equal(t, []float64{0, 1}, spline.Knots)
	assert.Equal(t, []core.Point{{Z: 0.5}, {X: 1, Y: 1, Z: 1}}, spline.ControlPoints)
}

func TestReadHatch_Gradient(t *testing.T) {
	tpl, _, _ := readHatchTags(t,
		"91", "0",
		"75", "0",
		"76", "1",
		"98", "0",
		"450", "1",
		"451", "0",
		"452", "0",
		"453", "2",
		"460", "0.0",
		"461", "0.5",
		"462", "1.0",
		"463", "0.0",
		"63", "5",
		"421", "255",
		"463", "1.0",
		"63", "2",
		"470", "LINEAR",
	)

	gradient := tpl.Hatch().GradientColor
	assert.True(t, gradient.Enabled)
	assert.False(t, gradient.SingleColor)
	assert.Equal(t, 0.5, gradient.Shift)
	assert.Equal(t, "LINEAR", gradient.Name)
	require.Len(t, gradient.Stops, 2)
	assert.Equal(t, int16(5), gradient.Stops[0].Color.Index)
	assert.Equal(t, "#0000ff", gradient.Stops[0].Color.Hex())
	assert.Equal(t, 1.0, gradient.Stops[1].Value)
	assert.Equal(t, int16(2), gradient.Stops[1].Color.Index)
}

func TestReadHatch_BadBoundary(t *testing.T) {
	tpl, scanner, sink := readHatchTags(t,
		"91", "2",
		"92", "1",
		"93", "1",
		"72", "7",
		"75", "0",
	)

	// 不认识的边类型使整条路径只保留已读的边
	require.Len(t, tpl.Paths, 1)
	assert.Empty(t, tpl.Paths[0].Path.Edges)
	assert.Equal(t, 1, sink.Count(notify.NotImplemented))
	// 第二条路径没有以 92 开始
	assert.GreaterOrEqual(t, sink.Count(notify.None), 1)
	assert.Equal(t, "ENDSEC", scanner.ValueAsString())
}

func TestReadHatch_UnknownEdgeSkipsEdgeData(t *testing.T) {
	tpl, scanner, sink := readHatchTags(t,
		"91", "1",
		"92", "1",
		"93", "2",
		"72", "7",
		"10", "1.0", "20", "2.0",
		"72", "1",
		"10", "0.0", "20", "0.0",
		"11", "1.0", "21", "0.0",
		"97", "0",
		"98", "0",
	)

	// 读不了的边数据既不是种子点，也不逐个报告
	assert.Empty(t, tpl.Hatch().SeedPoints)
	require.Len(t, tpl.Paths, 1)
	assert.Empty(t, tpl.Paths[0].Path.Edges)
	assert.Equal(t, 1, sink.Count(notify.NotImplemented))
	assert.Zero(t, sink.Count(notify.None))
	assert.Equal(t, "ENDSEC", scanner.ValueAsString())
}

func TestReadHatch_SplineEdgeCountMismatch(t *testing.T) {
	tpl, _, sink := readHatchTags(t,
		"91", "2",
		"92", "0",
		"93", "1",
		"72", "4",
		"94", "3",
		"73", "0",
		"74", "0",
		"95", "5",
		"96", "4",
		"40", "0.0",
		"40", "1.0",
		"10", "2.0", "20", "3.0",
		"97", "0",
		"92", "0",
		"93", "1",
		"72", "1",
		"10", "0.0", "20", "0.0",
		"11", "1.0", "21", "0.0",
		"97", "0",
		"75", "1",
	)

	// 声明的数量只作参考
	require.Len(t, tpl.Paths, 2)
	spline, ok := tpl.Paths[0].Path.Edges[0].(*entities.SplineEdge)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, spline.Knots)
	assert.Equal(t, []core.Point{{X: 2, Y: 3, Z: 1}}, spline.ControlPoints)

	require.Len(t, tpl.Paths[1].Path.Edges, 1)
	assert.IsType(t, &entities.LineEdge{}, tpl.Paths[1].Path.Edges[0])
	assert.Equal(t, int16(1), tpl.Hatch().Style)
	assert.Zero(t, sink.Count(notify.Error))
}

func TestReadHatch_SplineEdgeIncompleteControlPoint(t *testing.T) {
	tpl, _, _ := readHatchTags(t,
		"91", "1",
		"92", "0",
		"93", "1",
		"72", "4",
		"94", "3",
		"10", "1.0", "20", "1.0",
		"10", "5.0",
		"97", "0",
	)

	spline := tpl.Paths[0].Path.Edges[0].(*entities.SplineEdge)
	// 只有 10 没有 20 的控制点不加入
	assert.Equal(t, []core.Point{{X: 1, Y: 1, Z: 1}}, spline.ControlPoints)
}
