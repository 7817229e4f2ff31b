package dxfmap

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

var classes = map[string]*ClassMap{}

func class(name string) *ClassMap {
	m := NewClassMap(name)
	classes[name] = m
	return m
}

func init() {
	buildEntity()
	buildCurves()
	buildText()
	buildDimensions()
	buildPolylines()
	buildComplex()
	buildTables()
}

func buildEntity() {
	on(class(entities.SubclassEntity), entity).
		name(8, 6).
		colorIndex(62, func(e *entities.BaseEntity) *entities.Color { return &e.Color }).
		trueColor(420, func(e *entities.BaseEntity) *entities.Color { return &e.Color }).
		short(370, func(e *entities.BaseEntity) *int16 { return &e.LineWeight }).
		float(48, func(e *entities.BaseEntity) *float64 { return &e.LineTypeScale }).
		boolean(60, func(e *entities.BaseEntity) *bool { return &e.Invisible }).
		integer(440, func(e *entities.BaseEntity) *int32 { return &e.Transparency }).
		boolean(67, func(e *entities.BaseEntity) *bool { return &e.PaperSpace }).
		short(284, func(e *entities.BaseEntity) *int16 { return &e.ShadowMode }).
		handle(347, 390).
		ignored(410, 92, 310)
}

func buildCurves() {
	on(class(entities.SubclassCircle), circle).
		point(10, func(c *entities.Circle) *core.Point { return &c.Center }).
		float(40, func(c *entities.Circle) *float64 { return &c.Radius }).
		float(39, func(c *entities.Circle) *float64 { return &c.Thickness }).
		point(210, func(c *entities.Circle) *core.Point { return &c.Normal })

	on(class(entities.SubclassArc), is[*entities.Arc]).
		angle(50, func(a *entities.Arc) *float64 { return &a.StartAngle }).
		angle(51, func(a *entities.Arc) *float64 { return &a.EndAngle })

	on(class(entities.SubclassLine), is[*entities.Line]).
		point(10, func(l *entities.Line) *core.Point { return &l.Start }).
		point(11, func(l *entities.Line) *core.Point { return &l.End }).
		float(39, func(l *entities.Line) *float64 { return &l.Thickness }).
		point(210, func(l *entities.Line) *core.Point { return &l.Normal })

	on(class(entities.SubclassEllipse), is[*entities.Ellipse]).
		point(10, func(e *entities.Ellipse) *core.Point { return &e.Center }).
		point(11, func(e *entities.Ellipse) *core.Point { return &e.MajorAxisEndPoint }).
		point(210, func(e *entities.Ellipse) *core.Point { return &e.Normal }).
		float(40, func(e *entities.Ellipse) *float64 { return &e.RadiusRatio }).
		float(41, func(e *entities.Ellipse) *float64 { return &e.StartParameter }).
		float(42, func(e *entities.Ellipse) *float64 { return &e.EndParameter })

	on(class(entities.SubclassPoint), is[*entities.Point]).
		point(10, func(p *entities.Point) *core.Point { return &p.Location }).
		float(39, func(p *entities.Point) *float64 { return &p.Thickness }).
		point(210, func(p *entities.Point) *core.Point { return &p.Normal }).
		angle(50, func(p *entities.Point) *float64 { return &p.Rotation })

	on(class(entities.SubclassFace3D), is[*entities.Face3D]).
		point(10, func(f *entities.Face3D) *core.Point { return &f.FirstCorner }).
		point(11, func(f *entities.Face3D) *core.Point { return &f.SecondCorner }).
		point(12, func(f *entities.Face3D) *core.Point { return &f.ThirdCorner }).
		point(13, func(f *entities.Face3D) *core.Point { return &f.FourthCorner }).
		short(70, func(f *entities.Face3D) *int16 { return &f.Flags })

	on(class(entities.SubclassTrace), is[*entities.Solid]).
		point(10, func(s *entities.Solid) *core.Point { return &s.FirstCorner }).
		point(11, func(s *entities.Solid) *core.Point { return &s.SecondCorner }).
		point(12, func(s *entities.Solid) *core.Point { return &s.ThirdCorner }).
		point(13, func(s *entities.Solid) *core.Point { return &s.FourthCorner }).
		float(39, func(s *entities.Solid) *float64 { return &s.Thickness }).
		point(210, func(s *entities.Solid) *core.Point { return &s.Normal })

	on(class(entities.SubclassRay), is[*entities.Ray]).
		point(10, func(r *entities.Ray) *core.Point { return &r.StartPoint }).
		point(11, func(r *entities.Ray) *core.Point { return &r.Direction })

	on(class(entities.SubclassXLine), is[*entities.XLine]).
		point(10, func(x *entities.XLine) *core.Point { return &x.FirstPoint }).
		point(11, func(x *entities.XLine) *core.Point { return &x.Direction })

	on(class(entities.SubclassSpline), is[*entities.Spline]).
		point(210, func(s *entities.Spline) *core.Point { return &s.Normal }).
		short(70, func(s *entities.Spline) *int16 { return &s.Flags }).
		short(71, func(s *entities.Spline) *int16 { return &s.Degree }).
		count(72, 73, 74).
		float(42, func(s *entities.Spline) *float64 { return &s.KnotTolerance }).
		float(43, func(s *entities.Spline) *float64 { return &s.ControlPointTolerance }).
		float(44, func(s *entities.Spline) *float64 { return &s.FitTolerance }).
		point(12, func(s *entities.Spline) *core.Point { return &s.StartTangent }).
		point(13, func(s *entities.Spline) *core.Point { return &s.EndTangent })
}

// textCodes AcDbText 与 AcDbAttribute 共用的文字字段
func textCodes(b *builder[*entities.TextEntity]) *builder[*entities.TextEntity] {
	return b.
		point(10, func(t *entities.TextEntity) *core.Point { return &t.InsertPoint }).
		point(11, func(t *entities.TextEntity) *core.Point { return &t.AlignmentPoint }).
		float(40, func(t *entities.TextEntity) *float64 { return &t.Height }).
		float(41, func(t *entities.TextEntity) *float64 { return &t.WidthFactor }).
		angle(50, func(t *entities.TextEntity) *float64 { return &t.Rotation }).
		angle(51, func(t *entities.TextEntity) *float64 { return &t.ObliqueAngle }).
		short(71, func(t *entities.TextEntity) *int16 { return &t.Mirror }).
		short(72, func(t *entities.TextEntity) *int16 { return &t.HorizontalAlignment }).
		float(39, func(t *entities.TextEntity) *float64 { return &t.Thickness }).
		point(210, func(t *entities.TextEntity) *core.Point { return &t.Normal }).
		name(7)
}

// attributeCodes ATTRIB 与 ATTDEF 共用的属性字段
func attributeCodes(m *ClassMap) {
	textCodes(on(m, text)).
		text(1, func(t *entities.TextEntity) *string { return &t.Value }).
		short(74, func(t *entities.TextEntity) *int16 { return &t.VerticalAlignment })

	on(m, attribute).
		text(2, func(a *entities.AttributeBase) *string { return &a.Tag }).
		short(70, func(a *entities.AttributeBase) *int16 { return &a.Flags }).
		short(73, func(a *entities.AttributeBase) *int16 { return &a.FieldLength }).
		short(280, func(a *entities.AttributeBase) *int16 { return &a.Version }).
		ignored(340)
}

func buildText() {
	textCodes(on(class(entities.SubclassText), text)).
		text(1, func(t *entities.TextEntity) *string { return &t.Value }).
		short(73, func(t *entities.TextEntity) *int16 { return &t.VerticalAlignment })

	attributeCodes(class(entities.SubclassAttribute))

	attdef := class(entities.SubclassAttributeDefinition)
	attributeCodes(attdef)
	on(attdef, is[*entities.AttributeDefinition]).
		text(3, func(a *entities.AttributeDefinition) *string { return &a.Prompt })

	on(class(entities.SubclassMText), is[*entities.MText]).
		appendText(1, func(m *entities.MText) *string { return &m.Value }).
		appendText(3, func(m *entities.MText) *string { return &m.Value }).
		name(7).
		point(10, func(m *entities.MText) *core.Point { return &m.InsertPoint }).
		point(11, func(m *entities.MText) *core.Point { return &m.Direction }).
		float(40, func(m *entities.MText) *float64 { return &m.Height }).
		float(41, func(m *entities.MText) *float64 { return &m.RectangleWidth }).
		float(46, func(m *entities.MText) *float64 { return &m.RectangleHeight }).
		angle(50, func(m *entities.MText) *float64 { return &m.Rotation }).
		short(71, func(m *entities.MText) *int16 { return &m.AttachmentPoint }).
		short(72, func(m *entities.MText) *int16 { return &m.DrawingDirection }).
		short(73, func(m *entities.MText) *int16 { return &m.LineSpacingStyle }).
		float(44, func(m *entities.MText) *float64 { return &m.LineSpacing }).
		integer(90, func(m *entities.MText) *int32 { return &m.BackgroundFillFlags }).
		float(45, func(m *entities.MText) *float64 { return &m.BackgroundScale }).
		colorIndex(63, func(m *entities.MText) *entities.Color { return &m.BackgroundColor }).
		trueColor(421, func(m *entities.MText) *entities.Color { return &m.BackgroundColor }).
		integer(441, func(m *entities.MText) *int32 { return &m.BackgroundTransparency }).
		point(210, func(m *entities.MText) *core.Point { return &m.Normal }).
		ignored(42, 43)
}

func buildDimensions() {
	on(class(entities.SubclassDimension), dimension).
		short(280, func(d *entities.DimensionBase) *int16 { return &d.Version }).
		name(2, 3).
		point(10, func(d *entities.DimensionBase) *core.Point { return &d.DefPoint }).
		point(11, func(d *entities.DimensionBase) *core.Point { return &d.TextMidPoint }).
		point(12, func(d *entities.DimensionBase) *core.Point { return &d.InsertionPoint }).
		short(70, func(d *entities.DimensionBase) *int16 { return &d.Flags }).
		short(71, func(d *entities.DimensionBase) *int16 { return &d.AttachmentPoint }).
		short(72, func(d *entities.DimensionBase) *int16 { return &d.LineSpacingStyle }).
		float(41, func(d *entities.DimensionBase) *float64 { return &d.LineSpacingFactor }).
		float(42, func(d *entities.DimensionBase) *float64 { return &d.ActualMeasurement }).
		text(1, func(d *entities.DimensionBase) *string { return &d.Text }).
		angle(53, func(d *entities.DimensionBase) *float64 { return &d.TextRotation }).
		angle(51, func(d *entities.DimensionBase) *float64 { return &d.HorizontalDirection }).
		point(210, func(d *entities.DimensionBase) *core.Point { return &d.Normal })

	on(class(entities.SubclassAlignedDimension), aligned).
		point(13, func(d *entities.DimensionAligned) *core.Point { return &d.FirstPoint }).
		point(14, func(d *entities.DimensionAligned) *core.Point { return &d.SecondPoint })

	on(class(entities.SubclassLinearDimension), is[*entities.DimensionLinear]).
		angle(50, func(d *entities.DimensionLinear) *float64 { return &d.Rotation }).
		angle(52, func(d *entities.DimensionLinear) *float64 { return &d.ExtLineRotation })

	on(class(entities.SubclassRadialDimension), is[*entities.DimensionRadius]).
		point(15, func(d *entities.DimensionRadius) *core.Point { return &d.AngleVertex }).
		float(40, func(d *entities.DimensionRadius) *float64 { return &d.LeaderLength })

	on(class(entities.SubclassDiametricDimension), is[*entities.DimensionDiameter]).
		point(15, func(d *entities.DimensionDiameter) *core.Point { return &d.AngleVertex }).
		float(40, func(d *entities.DimensionDiameter) *float64 { return &d.LeaderLength })

	on(class(entities.SubclassAngular3PointDimension), is[*entities.DimensionAngular3Pt]).
		point(13, func(d *entities.DimensionAngular3Pt) *core.Point { return &d.FirstPoint }).
		point(14, func(d *entities.DimensionAngular3Pt) *core.Point { return &d.SecondPoint }).
		point(15, func(d *entities.DimensionAngular3Pt) *core.Point { return &d.AngleVertex })

	on(class(entities.SubclassAngular2LineDimension), is[*entities.DimensionAngular2Line]).
		point(13, func(d *entities.DimensionAngular2Line) *core.Point { return &d.FirstPoint }).
		point(14, func(d *entities.DimensionAngular2Line) *core.Point { return &d.SecondPoint }).
		point(15, func(d *entities.DimensionAngular2Line) *core.Point { return &d.AngleVertex }).
		point(16, func(d *entities.DimensionAngular2Line) *core.Point { return &d.DimensionArc })

	on(class(entities.SubclassOrdinateDimension), is[*entities.DimensionOrdinate]).
		point(13, func(d *entities.DimensionOrdinate) *core.Point { return &d.FeatureLocation }).
		point(14, func(d *entities.DimensionOrdinate) *core.Point { return &d.LeaderEndpoint })
}

// polylineCodes AcDb2dPolyline 与 AcDb3dPolyline 共用，10 / 20 恒为 0
func polylineCodes(m *ClassMap) {
	on(m, polyline).
		ignored(10, 20, 66).
		float(30, func(p *entities.PolylineBase) *float64 { return &p.Elevation }).
		float(39, func(p *entities.PolylineBase) *float64 { return &p.Thickness }).
		short(70, func(p *entities.PolylineBase) *int16 { return &p.Flags }).
		float(40, func(p *entities.PolylineBase) *float64 { return &p.StartWidth }).
		float(41, func(p *entities.PolylineBase) *float64 { return &p.EndWidth }).
		short(71, func(p *entities.PolylineBase) *int16 { return &p.MeshMCount }).
		short(72, func(p *entities.PolylineBase) *int16 { return &p.MeshNCount }).
		short(73, func(p *entities.PolylineBase) *int16 { return &p.SmoothMDensity }).
		short(74, func(p *entities.PolylineBase) *int16 { return &p.SmoothNDensity }).
		short(75, func(p *entities.PolylineBase) *int16 { return &p.SmoothSurface }).
		point(210, func(p *entities.PolylineBase) *core.Point { return &p.Normal })
}

func buildPolylines() {
	polylineCodes(class(entities.SubclassPolyline))
	polylineCodes(class(entities.SubclassPolyline3D))

	class(entities.SubclassVertex)

	on(class(entities.SubclassPolylineVertex), vertex).
		point(10, func(v *entities.VertexBase) *core.Point { return &v.Location }).
		float(40, func(v *entities.VertexBase) *float64 { return &v.StartWidth }).
		float(41, func(v *entities.VertexBase) *float64 { return &v.EndWidth }).
		float(42, func(v *entities.VertexBase) *float64 { return &v.Bulge }).
		short(70, func(v *entities.VertexBase) *int16 { return &v.Flags }).
		angle(50, func(v *entities.VertexBase) *float64 { return &v.CurveTangent }).
		integer(91, func(v *entities.VertexBase) *int32 { return &v.ID })

	on(class(entities.SubclassPolyline3DVertex), vertex).
		point(10, func(v *entities.VertexBase) *core.Point { return &v.Location }).
		short(70, func(v *entities.VertexBase) *int16 { return &v.Flags }).
		integer(91, func(v *entities.VertexBase) *int32 { return &v.ID })

	on(class(entities.SubclassLwPolyline), is[*entities.LWPolyline]).
		count(90).
		short(70, func(l *entities.LWPolyline) *int16 { return &l.Flags }).
		float(43, func(l *entities.LWPolyline) *float64 { return &l.ConstantWidth }).
		float(38, func(l *entities.LWPolyline) *float64 { return &l.Elevation }).
		float(39, func(l *entities.LWPolyline) *float64 { return &l.Thickness }).
		point(210, func(l *entities.LWPolyline) *core.Point { return &l.Normal })
}

func buildComplex() {
	on(class(entities.SubclassInsert), is[*entities.Insert]).
		boolean(66, func(i *entities.Insert) *bool { return &i.HasAttributes }).
		name(2).
		point(10, func(i *entities.Insert) *core.Point { return &i.InsertionPoint }).
		float(41, func(i *entities.Insert) *float64 { return &i.Scale.X }).
		float(42, func(i *entities.Insert) *float64 { return &i.Scale.Y }).
		float(43, func(i *entities.Insert) *float64 { return &i.Scale.Z }).
		angle(50, func(i *entities.Insert) *float64 { return &i.Rotation }).
		short(70, func(i *entities.Insert) *int16 { return &i.ColumnCount }).
		short(71, func(i *entities.Insert) *int16 { return &i.RowCount }).
		float(44, func(i *entities.Insert) *float64 { return &i.ColumnSpacing }).
		float(45, func(i *entities.Insert) *float64 { return &i.RowSpacing }).
		point(210, func(i *entities.Insert) *core.Point { return &i.Normal })

	on(class(entities.SubclassMLine), is[*entities.MLine]).
		name(2).
		handle(340).
		float(40, func(m *entities.MLine) *float64 { return &m.Scale }).
		short(70, func(m *entities.MLine) *int16 { return &m.Justification }).
		short(71, func(m *entities.MLine) *int16 { return &m.Flags }).
		count(72, 73).
		point(10, func(m *entities.MLine) *core.Point { return &m.StartPoint }).
		point(210, func(m *entities.MLine) *core.Point { return &m.Normal })

	// 10 / 20 / 30、2 以及边界、图案、渐变由填充读取器处理
	on(class(entities.SubclassHatch), is[*entities.Hatch]).
		point(210, func(h *entities.Hatch) *core.Point { return &h.Normal }).
		boolean(70, func(h *entities.Hatch) *bool { return &h.IsSolid }).
		boolean(71, func(h *entities.Hatch) *bool { return &h.IsAssociative }).
		short(75, func(h *entities.Hatch) *int16 { return &h.Style }).
		short(76, func(h *entities.Hatch) *int16 { return &h.PatternType }).
		angle(52, func(h *entities.Hatch) *float64 { return &h.PatternAngle }).
		float(41, func(h *entities.Hatch) *float64 { return &h.PatternScale }).
		boolean(77, func(h *entities.Hatch) *bool { return &h.IsDouble }).
		float(47, func(h *entities.Hatch) *float64 { return &h.PixelSize })

	on(class(entities.SubclassViewport), is[*entities.Viewport]).
		point(10, func(v *entities.Viewport) *core.Point { return &v.Center }).
		float(40, func(v *entities.Viewport) *float64 { return &v.Width }).
		float(41, func(v *entities.Viewport) *float64 { return &v.Height }).
		xy(12, func(v *entities.Viewport) *core.XY { return &v.ViewCenter }).
		xy(13, func(v *entities.Viewport) *core.XY { return &v.SnapBase }).
		xy(14, func(v *entities.Viewport) *core.XY { return &v.SnapSpacing }).
		xy(15, func(v *entities.Viewport) *core.XY { return &v.GridSpacing }).
		point(16, func(v *entities.Viewport) *core.Point { return &v.ViewDirection }).
		point(17, func(v *entities.Viewport) *core.Point { return &v.ViewTarget }).
		float(42, func(v *entities.Viewport) *float64 { return &v.LensLength }).
		float(43, func(v *entities.Viewport) *float64 { return &v.FrontClipPlane }).
		float(44, func(v *entities.Viewport) *float64 { return &v.BackClipPlane }).
		float(45, func(v *entities.Viewport) *float64 { return &v.ViewHeight }).
		angle(50, func(v *entities.Viewport) *float64 { return &v.SnapAngle }).
		angle(51, func(v *entities.Viewport) *float64 { return &v.TwistAngle }).
		short(72, func(v *entities.Viewport) *int16 { return &v.CircleSides }).
		integer(90, func(v *entities.Viewport) *int32 { return &v.StatusFlags }).
		text(1, func(v *entities.Viewport) *string { return &v.StyleSheetName }).
		short(281, func(v *entities.Viewport) *int16 { return &v.RenderMode }).
		boolean(71, func(v *entities.Viewport) *bool { return &v.UcsPerViewport }).
		boolean(74, func(v *entities.Viewport) *bool { return &v.DisplayUcsIcon }).
		point(110, func(v *entities.Viewport) *core.Point { return &v.UcsOrigin }).
		point(111, func(v *entities.Viewport) *core.Point { return &v.UcsXAxis }).
		point(112, func(v *entities.Viewport) *core.Point { return &v.UcsYAxis }).
		short(79, func(v *entities.Viewport) *int16 { return &v.OrthographicType }).
		float(146, func(v *entities.Viewport) *float64 { return &v.Elevation }).
		short(170, func(v *entities.Viewport) *int16 { return &v.ShadePlotMode }).
		short(61, func(v *entities.Viewport) *int16 { return &v.MajorGridLines }).
		boolean(292, func(v *entities.Viewport) *bool { return &v.DefaultLightingOn }).
		short(282, func(v *entities.Viewport) *int16 { return &v.DefaultLightingType }).
		float(141, func(v *entities.Viewport) *float64 { return &v.Brightness }).
		float(142, func(v *entities.Viewport) *float64 { return &v.Contrast }).
		colorIndex(63, func(v *entities.Viewport) *entities.Color { return &v.AmbientColor }).
		trueColor(421, func(v *entities.Viewport) *entities.Color { return &v.AmbientColor }).
		handle(331, 340, 332, 333, 345, 346, 361)

	on(class(entities.SubclassBlockBegin), is[*entities.BlockBegin]).
		text(2, func(b *entities.BlockBegin) *string { return &b.Name }).
		short(70, func(b *entities.BlockBegin) *int16 { return &b.Flags }).
		point(10, func(b *entities.BlockBegin) *core.Point { return &b.BasePoint }).
		ignored(3).
		text(1, func(b *entities.BlockBegin) *string { return &b.XrefPath }).
		text(4, func(b *entities.BlockBegin) *string { return &b.Description })

	class(entities.SubclassBlockEnd)
}

// entryCodes 名称和标志通常出现在具体的表记录子类中
func entryCodes(m *ClassMap) {
	on(m, tableEntry).
		text(2, func(e *entities.TableEntry) *string { return &e.Name }).
		short(70, func(e *entities.TableEntry) *int16 { return &e.Flags })
}

func buildTables() {
	entryCodes(class(entities.SubclassTableRecord))

	layer := class(entities.SubclassLayerRecord)
	entryCodes(layer)
	on(layer, is[*entities.Layer]).
		colorIndex(62, func(l *entities.Layer) *entities.Color { return &l.Color }).
		trueColor(420, func(l *entities.Layer) *entities.Color { return &l.Color }).
		boolean(290, func(l *entities.Layer) *bool { return &l.Plot }).
		short(370, func(l *entities.Layer) *int16 { return &l.LineWeight }).
		name(6).
		handle(390, 347)

	style := class(entities.SubclassTextStyleRecord)
	entryCodes(style)
	on(style, is[*entities.TextStyle]).
		float(40, func(s *entities.TextStyle) *float64 { return &s.Height }).
		float(41, func(s *entities.TextStyle) *float64 { return &s.Width }).
		angle(50, func(s *entities.TextStyle) *float64 { return &s.ObliqueAngle }).
		short(71, func(s *entities.TextStyle) *int16 { return &s.GenerationFlags }).
		float(42, func(s *entities.TextStyle) *float64 { return &s.LastHeight }).
		text(3, func(s *entities.TextStyle) *string { return &s.FontFile }).
		text(4, func(s *entities.TextStyle) *string { return &s.BigFontFile })

	dimStyle := class(entities.SubclassDimStyleRecord)
	entryCodes(dimStyle)
	on(dimStyle, is[*entities.DimStyle]).
		float(40, func(d *entities.DimStyle) *float64 { return &d.Scale }).
		float(41, func(d *entities.DimStyle) *float64 { return &d.ArrowSize }).
		float(42, func(d *entities.DimStyle) *float64 { return &d.ExtOffset }).
		float(44, func(d *entities.DimStyle) *float64 { return &d.ExLimit }).
		float(140, func(d *entities.DimStyle) *float64 { return &d.TextHeight }).
		float(147, func(d *entities.DimStyle) *float64 { return &d.TextGap }).
		text(3, func(d *entities.DimStyle) *string { return &d.PostFix }).
		short(77, func(d *entities.DimStyle) *int16 { return &d.TextAbove }).
		short(271, func(d *entities.DimStyle) *int16 { return &d.Precision }).
		short(277, func(d *entities.DimStyle) *int16 { return &d.LinearUnits }).
		handle(340)
}
