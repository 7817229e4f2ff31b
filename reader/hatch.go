package reader

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/dxfmap"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/templates"
)

// readHatch 读取 AcDbHatch 子类段直到记录结束。
// 种子点、边界路径、图案定义线和渐变色都是重复组码，不走映射表。
func (r *Reader) readHatch(tpl *templates.HatchTemplate) error {
	hatch := tpl.Hatch()
	m, _ := dxfmap.For(hatch).Class(entities.SubclassHatch)

	// 30 之前的 10 / 20 是标高点，不是种子点
	firstSeed := true
	var seed core.XY

	r.cursor.ReadNext()

	for r.cursor.Code() != core.CodeStart {
		switch code := r.cursor.Code(); code {
		case 2:
			tpl.PatternName = r.cursor.ValueAsString()
		case 10:
			seed.X = r.cursor.ValueAsDouble()
		case 20:
			if !firstSeed {
				seed.Y = r.cursor.ValueAsDouble()
				hatch.SeedPoints = append(hatch.SeedPoints, seed)
			}
		case 30:
			hatch.Elevation = r.cursor.ValueAsDouble()
			firstSeed = false
		case 91:
			r.readLoops(tpl, r.cursor.ValueAsInt())
			continue
		case 78, 79, 90, 98, 453:
			// 数量
		case 53:
			hatch.PatternLines = append(hatch.PatternLines, entities.PatternLine{Angle: r.cursor.ValueAsDouble()})
		case 43, 44, 45, 46, 49:
			r.readPatternLine(hatch, code)
		case 450:
			hatch.GradientColor.Enabled = r.cursor.ValueAsBool()
		case 451:
			hatch.GradientColor.Reserved = r.cursor.ValueAsInt()
		case 452:
			hatch.GradientColor.SingleColor = r.cursor.ValueAsBool()
		case 460:
			hatch.GradientColor.Angle = r.cursor.ValueAsDouble()
		case 461:
			hatch.GradientColor.Shift = r.cursor.ValueAsDouble()
		case 462:
			hatch.GradientColor.Tint = r.cursor.ValueAsDouble()
		case 463:
			hatch.GradientColor.Stops = append(hatch.GradientColor.Stops, entities.GradientStop{Value: r.cursor.ValueAsDouble()})
		case 63:
			if stop := hatch.GradientColor.LastStop(); stop != nil {
				stop.Color.Index = r.cursor.ValueAsShort()
			}
		case 421:
			if stop := hatch.GradientColor.LastStop(); stop != nil {
				stop.Color.RGB = int32(r.cursor.ValueAsInt() & 0xFFFFFF)
				stop.Color.HasRGB = true
			}
		case 470:
			hatch.GradientColor.Name = r.cursor.ValueAsString()
		case core.CodeExtendedDataRegApp:
			r.readExtendedData(tpl.SetExtendedData)
			continue
		default:
			b, ok := m.Lookup(code)
			if ok && b.Settable() {
				if err := r.assignValue(tpl, b, entities.SubclassHatch); err != nil {
					return err
				}
				break
			}
			r.notify(notify.None, nil, "unhandled dxf code %d with value %s for subclass %s",
				code, r.cursor.ValueAsString(), entities.SubclassHatch)
		}

		r.cursor.ReadNext()
	}

	return nil
}

// readPatternLine 43 / 44 基点，45 / 46 偏移，49 虚线长度，写入最后一条定义线
func (r *Reader) readPatternLine(hatch *entities.Hatch, code int) {
	if len(hatch.PatternLines) == 0 {
		r.notify(notify.None, nil, "pattern line code %d before code 53", code)
		return
	}

	line := &hatch.PatternLines[len(hatch.PatternLines)-1]
	v := r.cursor.ValueAsDouble()
	switch code {
	case 43:
		line.BasePoint.X = v
	case 44:
		line.BasePoint.Y = v
	case 45:
		line.Offset.X = v
	case 46:
		line.Offset.Y = v
	case 49:
		line.DashLengths = append(line.DashLengths, v)
	}
}

// readLoops 读取 count 条边界路径，结束时游标位于最后一条路径之后
func (r *Reader) readLoops(tpl *templates.HatchTemplate, count int) {
	if r.cursor.Code() == 91 {
		r.cursor.ReadNext()
	}

	for i := 0; i < count; i++ {
		if r.cursor.Code() != 92 {
			r.notify(notify.None, nil, "boundary path should start with code 92 but was %d", r.cursor.Code())
			break
		}

		if path := r.readLoop(); path != nil {
			tpl.Paths = append(tpl.Paths, path)
		}
	}
}

// readLoop 读取一条边界路径，多段线路径跳过后返回 nil
func (r *Reader) readLoop() *templates.BoundaryPathTemplate {
	path := &templates.BoundaryPathTemplate{
		Path: &entities.BoundaryPath{Flags: entities.BoundaryPathFlags(r.cursor.ValueAsInt())},
	}

	if path.Path.Flags.Has(entities.BoundaryPolyline) {
		r.notify(notify.NotImplemented, nil, "hatch polyline boundary path not implemented")
		r.skipPolylineBoundary()
		r.readSourceHandles(path)
		return nil
	}

	r.cursor.ReadNext()
	if r.cursor.Code() != 93 {
		r.notify(notify.None, nil, "edge boundary path should start with code 93 but was %d", r.cursor.Code())
		return nil
	}

	edges := r.cursor.ValueAsInt()
	r.cursor.ReadNext()

	for i := 0; i < edges; i++ {
		edge := r.readEdge()
		if edge == nil {
			// 剩下的边数据不能被当成种子点
			r.skipEdges()
			break
		}
		path.Path.Edges = append(path.Path.Edges, edge)
	}

	r.readSourceHandles(path)
	return path
}

// skipPolylineBoundary 跳过多段线路径的顶点，避免被当成种子点
func (r *Reader) skipPolylineBoundary() {
	r.cursor.ReadNext()
	for {
		switch r.cursor.Code() {
		case 72, 73, 93, 10, 20, 42:
			r.cursor.ReadNext()
		default:
			return
		}
	}
}

// skipEdges 跳过读不了的边，停在关联对象、下一条路径或填充本身的组码上
func (r *Reader) skipEdges() {
	for {
		switch r.cursor.Code() {
		case 10, 20, 11, 21, 12, 22, 13, 23, 40, 42, 50, 51, 72, 73, 74, 94, 95, 96:
			r.cursor.ReadNext()
		default:
			return
		}
	}
}

// readSourceHandles 97 关联对象数量，330 关联对象句柄
func (r *Reader) readSourceHandles(path *templates.BoundaryPathTemplate) {
	for {
		switch r.cursor.Code() {
		case 97:
		case 330:
			path.Handles = append(path.Handles, r.cursor.ValueAsHandle())
		default:
			return
		}
		r.cursor.ReadNext()
	}
}

// readEdge 读取一条边，游标位于边类型 (组码 72) 上
func (r *Reader) readEdge() entities.Edge {
	if r.cursor.Code() != 72 {
		r.notify(notify.None, nil, "edge boundary path should define the type with code 72 but was %d", r.cursor.Code())
		return nil
	}

	typ := entities.EdgeType(r.cursor.ValueAsInt())
	r.cursor.ReadNext()

	switch typ {
	case entities.EdgeLine:
		return r.readLineEdge()
	case entities.EdgeCircularArc:
		return r.readArcEdge()
	case entities.EdgeEllipticArc:
		return r.readEllipseEdge()
	case entities.EdgeSpline:
		return r.readSplineEdge()
	}

	r.notify(notify.NotImplemented, nil, "hatch edge type %d not implemented", typ)
	return nil
}

func (r *Reader) readLineEdge() *entities.LineEdge {
	edge := new(entities.LineEdge)
	for {
		switch r.cursor.Code() {
		case 10:
			edge.Start.X = r.cursor.ValueAsDouble()
		case 20:
			edge.Start.Y = r.cursor.ValueAsDouble()
		case 11:
			edge.End.X = r.cursor.ValueAsDouble()
		case 21:
			edge.End.Y = r.cursor.ValueAsDouble()
		default:
			return edge
		}
		r.cursor.ReadNext()
	}
}

func (r *Reader) readArcEdge() *entities.ArcEdge {
	edge := new(entities.ArcEdge)
	for {
		switch r.cursor.Code() {
		case 10:
			edge.Center.X = r.cursor.ValueAsDouble()
		case 20:
			edge.Center.Y = r.cursor.ValueAsDouble()
		case 40:
			edge.Radius = r.cursor.ValueAsDouble()
		case 50:
			edge.StartAngle = r.cursor.ValueAsDouble()
		case 51:
			edge.EndAngle = r.cursor.ValueAsDouble()
		case 73:
			edge.CounterClockWise = r.cursor.ValueAsBool()
		default:
			return edge
		}
		r.cursor.ReadNext()
	}
}

func (r *Reader) readEllipseEdge() *entities.EllipseEdge {
	edge := new(entities.EllipseEdge)
	for {
		switch r.cursor.Code() {
		case 10:
			edge.Center.X = r.cursor.ValueAsDouble()
		case 20:
			edge.Center.Y = r.cursor.ValueAsDouble()
		case 11:
			edge.MajorAxisEndPoint.X = r.cursor.ValueAsDouble()
		case 21:
			edge.MajorAxisEndPoint.Y = r.cursor.ValueAsDouble()
		case 40:
			edge.RadiusRatio = r.cursor.ValueAsDouble()
		case 50:
			edge.StartAngle = r.cursor.ValueAsDouble()
		case 51:
			edge.EndAngle = r.cursor.ValueAsDouble()
		case 73:
			edge.CounterClockWise = r.cursor.ValueAsBool()
		default:
			return edge
		}
		r.cursor.ReadNext()
	}
}

// readSplineEdge 控制点在 20 时加入，默认权重为 1，42 修改最后一个控制点的权重。
// 95 / 96 / 97 的数量只作参考，按实际读到的值保存。
func (r *Reader) readSplineEdge() *entities.SplineEdge {
	edge := new(entities.SplineEdge)
	var (
		control core.Point
		fit     core.XY
	)

	for {
		switch r.cursor.Code() {
		case 10:
			control = core.Point{X: r.cursor.ValueAsDouble(), Z: 1}
		case 20:
			control.Y = r.cursor.ValueAsDouble()
			edge.ControlPoints = append(edge.ControlPoints, control)
		case 42:
			if n := len(edge.ControlPoints); n > 0 {
				edge.ControlPoints[n-1].Z = r.cursor.ValueAsDouble()
			} else {
				r.notify(notify.None, nil, "spline edge weight without control point")
			}
		case 11:
			fit = core.XY{X: r.cursor.ValueAsDouble()}
		case 21:
			fit.Y = r.cursor.ValueAsDouble()
			edge.FitPoints = append(edge.FitPoints, fit)
		case 12:
			edge.StartTangent.X = r.cursor.ValueAsDouble()
		case 22:
			edge.StartTangent.Y = r.cursor.ValueAsDouble()
		case 13:
			edge.EndTangent.X = r.cursor.ValueAsDouble()
		case 23:
			edge.EndTangent.Y = r.cursor.ValueAsDouble()
		case 94:
			edge.Degree = r.cursor.ValueAsInt()
		case 73:
			edge.Rational = r.cursor.ValueAsBool()
		case 74:
			edge.Periodic = r.cursor.ValueAsBool()
		case 95, 96, 97:
			// 节点、控制点、拟合点数量
		case 40:
			edge.Knots = append(edge.Knots, r.cursor.ValueAsDouble())
		default:
			return edge
		}
		r.cursor.ReadNext()
	}
}
