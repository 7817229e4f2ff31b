package templates

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// LwPolylineTemplate 顶点数据 (10 / 20 / 40 / 41 / 42 / 91) 以组码 10 开始新顶点
type LwPolylineTemplate struct {
	EntityTemplate
}

func NewLwPolylineTemplate(e *entities.LWPolyline) *LwPolylineTemplate {
	return &LwPolylineTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *LwPolylineTemplate) CheckCode(code int, value any) bool {
	pl, ok := t.Object.(*entities.LWPolyline)
	if !ok {
		return false
	}

	if code == 10 {
		x, ok := toFloat(value)
		if !ok {
			return false
		}
		pl.Vertices = append(pl.Vertices, entities.LwVertex{Location: core.XY{X: x}})
		return true
	}

	last := pl.LastVertex()
	if last == nil {
		return false
	}

	if code == 91 {
		id, ok := toInt(value)
		if !ok {
			return false
		}
		last.ID = int32(id)
		return true
	}

	f, ok := toFloat(value)
	if !ok {
		return false
	}

	switch code {
	case 20:
		last.Location.Y = f
	case 40:
		last.StartWidth = f
	case 41:
		last.EndWidth = f
	case 42:
		last.Bulge = f
	default:
		return false
	}
	return true
}

// SplineTemplate 控制点、拟合点、节点、权重按出现顺序追加
type SplineTemplate struct {
	EntityTemplate
}

func NewSplineTemplate(e *entities.Spline) *SplineTemplate {
	return &SplineTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *SplineTemplate) CheckCode(code int, value any) bool {
	spline, ok := t.Object.(*entities.Spline)
	if !ok {
		return false
	}

	f, ok := toFloat(value)
	if !ok {
		return false
	}

	switch code {
	case 10:
		spline.ControlPoints = append(spline.ControlPoints, core.Point{X: f})
	case 20, 30:
		return setLast(spline.ControlPoints, code, f)
	case 11:
		spline.FitPoints = append(spline.FitPoints, core.Point{X: f})
	case 21, 31:
		return setLast(spline.FitPoints, code, f)
	case 40:
		spline.Knots = append(spline.Knots, f)
	case 41:
		spline.Weights = append(spline.Weights, f)
	default:
		return false
	}
	return true
}

// setLast 按组码的十位设置最后一个点的 Y (2x) 或 Z (3x)
func setLast(points []core.Point, code int, f float64) bool {
	if len(points) == 0 {
		return false
	}

	last := &points[len(points)-1]
	switch code / 10 {
	case 2:
		last.Y = f
	case 3:
		last.Z = f
	default:
		return false
	}
	return true
}

// MLineTemplate 多线，记录样式名 (2) 和样式句柄 (340)
type MLineTemplate struct {
	EntityTemplate
}

func NewMLineTemplate(e *entities.MLine) *MLineTemplate {
	return &MLineTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *MLineTemplate) StyleName() string { return t.Names[2] }

func (t *MLineTemplate) AddName(code int, name string) bool {
	if code == 2 {
		return t.setName(code, name)
	}
	return t.EntityTemplate.AddName(code, name)
}

func (t *MLineTemplate) AddHandle(code int, h core.Handle) bool {
	if code == 340 {
		return t.setHandle(code, h)
	}
	return t.EntityTemplate.AddHandle(code, h)
}

// CheckCode 顶点以 11 开始，每个样式元素以 74 开始一段
func (t *MLineTemplate) CheckCode(code int, value any) bool {
	mline, ok := t.Object.(*entities.MLine)
	if !ok {
		return false
	}

	if code == 11 {
		x, ok := toFloat(value)
		if !ok {
			return false
		}
		mline.Vertices = append(mline.Vertices, entities.MLineVertex{Position: core.Point{X: x}})
		return true
	}

	vertex := mline.LastVertex()
	if vertex == nil {
		return false
	}

	switch code {
	case 74:
		vertex.Segments = append(vertex.Segments, entities.MLineSegment{})
		return true
	case 75:
		// 区域填充参数个数
		return true
	}

	f, ok := toFloat(value)
	if !ok {
		return false
	}

	switch code {
	case 21:
		vertex.Position.Y = f
	case 31:
		vertex.Position.Z = f
	case 12:
		vertex.Direction.X = f
	case 22:
		vertex.Direction.Y = f
	case 32:
		vertex.Direction.Z = f
	case 13:
		vertex.Miter.X = f
	case 23:
		vertex.Miter.Y = f
	case 33:
		vertex.Miter.Z = f
	case 41, 42:
		segment := vertex.LastSegment()
		if segment == nil {
			return false
		}
		if code == 41 {
			segment.Parameters = append(segment.Parameters, f)
		} else {
			segment.AreaFillParameters = append(segment.AreaFillParameters, f)
		}
	default:
		return false
	}
	return true
}
