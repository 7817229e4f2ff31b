package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

func TestEntityTemplate_References(t *testing.T) {
	tpl := NewEntityTemplate(entities.NewLine())

	assert.True(t, tpl.AddName(8, "墙"))
	assert.True(t, tpl.AddName(6, "DASHED"))
	assert.False(t, tpl.AddName(7, "Standard"))
	assert.True(t, tpl.AddHandle(347, 0x1F))
	assert.False(t, tpl.AddHandle(340, 0x20))

	assert.Equal(t, "墙", tpl.LayerName())
	assert.Equal(t, "DASHED", tpl.LineTypeName())
	assert.Equal(t, core.Handle(0x1F), tpl.Handles[347])
	assert.NotContains(t, tpl.Handles, 340)
}

func TestTextTemplate_StyleName(t *testing.T) {
	tpl := NewTextTemplate(entities.NewText())

	assert.True(t, tpl.AddName(7, "仿宋"))
	assert.True(t, tpl.AddName(8, "文字"))
	assert.Equal(t, "仿宋", tpl.StyleName())
	assert.Equal(t, "文字", tpl.LayerName())
}

func TestDimensionTemplate_SetDimension(t *testing.T) {
	placeholder := entities.NewDimensionPlaceholder()
	placeholder.SetHandle(0xA1)
	placeholder.Text = "<>"
	placeholder.DefPoint = core.Point{X: 1, Y: 2}

	tpl := NewDimensionTemplate(placeholder)
	require.True(t, tpl.AddName(3, "ISO-25"))

	tpl.SetDimension(entities.NewDimensionAligned())
	aligned, ok := tpl.Dimension().(*entities.DimensionAligned)
	require.True(t, ok)
	aligned.FirstPoint = core.Point{X: 10}

	tpl.SetDimension(entities.NewDimensionLinear())
	linear, ok := tpl.Dimension().(*entities.DimensionLinear)
	require.True(t, ok)

	assert.Equal(t, core.Handle(0xA1), linear.Handle())
	assert.Equal(t, "<>", linear.Text)
	assert.Equal(t, core.Point{X: 1, Y: 2}, linear.DefPoint)
	assert.Equal(t, core.Point{X: 10}, linear.FirstPoint)
	assert.Equal(t, "ISO-25", tpl.StyleName())
}

func TestPolylineTemplate_SetPolyline(t *testing.T) {
	tpl := NewPolylineTemplate(entities.CreateEntity(entities.TokenPolyline).(entities.Polyline))
	tpl.Polyline().Poly().Flags = 1
	tpl.Polyline().Poly().SetHandle(0x30)

	tpl.SetPolyline(entities.NewPolyline3D())
	p, ok := tpl.Object.(*entities.Polyline3D)
	require.True(t, ok)
	assert.Equal(t, int16(1), p.Flags)
	assert.Equal(t, core.Handle(0x30), p.Handle())
}

func TestVertexTemplate_SetVertex(t *testing.T) {
	tpl := NewVertexTemplate(entities.CreateEntity(entities.TokenVertex).(entities.Vertex))
	tpl.Vertex().AsVertex().SetHandle(0x31)

	tpl.SetVertex(entities.NewVertex2D())
	_, ok := tpl.Object.(*entities.Vertex2D)
	require.True(t, ok)
	assert.Equal(t, core.Handle(0x31), tpl.Handle())
}

func TestLwPolylineTemplate_CheckCode(t *testing.T) {
	pl := entities.CreateEntity(entities.TokenLwPolyline).(*entities.LWPolyline)
	tpl := NewLwPolylineTemplate(pl)

	// 没有顶点时不接受顶点数据
	assert.False(t, tpl.CheckCode(20, 1.0))

	for _, tag := range []struct {
		code  int
		value any
	}{
		{10, 0.0}, {20, 0.0}, {42, 1.0},
		{10, 5.0}, {20, 6.0}, {40, 0.5}, {41, 0.25}, {91, int32(7)},
	} {
		require.True(t, tpl.CheckCode(tag.code, tag.value), tag.code)
	}

	require.Len(t, pl.Vertices, 2)
	assert.Equal(t, 1.0, pl.Vertices[0].Bulge)
	assert.Equal(t, core.XY{X: 5, Y: 6}, pl.Vertices[1].Location)
	assert.Equal(t, 0.5, pl.Vertices[1].StartWidth)
	assert.Equal(t, 0.25, pl.Vertices[1].EndWidth)
	assert.Equal(t, int32(7), pl.Vertices[1].ID)

	assert.False(t, tpl.CheckCode(99, 1.0))
}

func TestSplineTemplate_CheckCode(t *testing.T) {
	spline := entities.CreateEntity(entities.TokenSpline).(*entities.Spline)
	tpl := NewSplineTemplate(spline)

	for _, tag := range []struct {
		code  int
		value any
	}{
		{40, 0.0}, {40, 1.0},
		{10, 1.0}, {20, 2.0}, {30, 3.0},
		{41, 0.5},
		{11, 4.0}, {21, 5.0},
	} {
		require.True(t, tpl.CheckCode(tag.code, tag.value), tag.code)
	}

	assert.Equal(t, []float64{0, 1}, spline.Knots)
	assert.Equal(t, []core.Point{{X: 1, Y: 2, Z: 3}}, spline.ControlPoints)
	assert.Equal(t, []float64{0.5}, spline.Weights)
	assert.Equal(t, []core.Point{{X: 4, Y: 5}}, spline.FitPoints)
	assert.False(t, tpl.CheckCode(10, "x"))
}

func TestMLineTemplate_CheckCode(t *testing.T) {
	mline := entities.CreateEntity(entities.TokenMLine).(*entities.MLine)
	tpl := NewMLineTemplate(mline)

	assert.True(t, tpl.AddName(2, "STANDARD"))
	assert.True(t, tpl.AddHandle(340, 0x18))

	for _, tag := range []struct {
		code  int
		value any
	}{
		{11, 1.0}, {21, 2.0}, {31, 0.0},
		{12, 1.0}, {22, 0.0}, {32, 0.0},
		{13, 0.0}, {23, 1.0}, {33, 0.0},
		{74, int16(2)}, {41, 0.0}, {41, 0.0}, {75, int16(0)},
		{74, int16(2)}, {41, -0.5}, {42, 1.0},
	} {
		require.True(t, tpl.CheckCode(tag.code, tag.value), tag.code)
	}

	require.Len(t, mline.Vertices, 1)
	v := mline.Vertices[0]
	assert.Equal(t, core.Point{X: 1, Y: 2}, v.Position)
	assert.Equal(t, core.Point{X: 1}, v.Direction)
	assert.Equal(t, core.Point{Y: 1}, v.Miter)
	require.Len(t, v.Segments, 2)
	assert.Equal(t, []float64{-0.5}, v.Segments[1].Parameters)
	assert.Equal(t, []float64{1}, v.Segments[1].AreaFillParameters)
	assert.Equal(t, "STANDARD", tpl.StyleName())
}

func TestViewportTemplate_Handles(t *testing.T) {
	tpl := NewViewportTemplate(entities.CreateEntity(entities.TokenViewport).(*entities.Viewport))

	assert.True(t, tpl.AddHandle(331, 0x10))
	assert.True(t, tpl.AddHandle(331, 0x11))
	assert.True(t, tpl.AddHandle(340, 0x12))
	assert.True(t, tpl.AddHandle(390, 0x13))
	assert.False(t, tpl.AddHandle(5, 0x14))

	assert.Equal(t, []core.Handle{0x10, 0x11}, tpl.FrozenLayerHandles)
	assert.Equal(t, core.Handle(0x12), tpl.Handles[340])
}

func TestCadTemplate_ExtendedDataOverwrites(t *testing.T) {
	tpl := NewCadTemplate(entities.NewLine())

	first := NewExtendedData("ACAD")
	first.Add(1000, "a")
	tpl.SetExtendedData(first)

	second := NewExtendedData("ACAD")
	second.Add(1070, int16(1))
	tpl.SetExtendedData(second)

	require.Len(t, tpl.EData, 1)
	assert.Equal(t, []ExtendedDataRecord{{Code: 1070, Value: int16(1)}}, tpl.EData["ACAD"].Records)
}

func TestTableEntryTemplate_References(t *testing.T) {
	tpl := NewTableEntryTemplate(entities.CreateTableEntry(entities.TokenDimStyle))

	assert.True(t, tpl.AddHandle(340, 0x11))
	assert.True(t, tpl.AddName(6, "CONTINUOUS"))
	assert.False(t, tpl.AddName(8, "0"))
	assert.Equal(t, entities.TokenDimStyle, tpl.Record().ObjectName())
}
