package entities

import "github.com/zooyer/dxfreader/core"

type Hatch struct {
	BaseEntity
	Elevation     float64    // 组码 30
	Normal        core.Point // 组码 210
	IsSolid       bool       // 组码 70
	IsAssociative bool       // 组码 71
	Style         int16      // 组码 75
	PatternType   int16      // 组码 76
	PatternAngle  float64    // 组码 52
	PatternScale  float64    // 组码 41
	IsDouble      bool       // 组码 77
	PixelSize     float64    // 组码 47
	SeedPoints    []core.XY  // 组码 98 之后的 10 / 20
	PatternLines  []PatternLine
	GradientColor GradientColor
}

func init() {
	Register(TokenHatch, func() Entity {
		return &Hatch{BaseEntity: newBaseEntity(), Normal: DefaultNormal, PatternScale: 1}
	})
}

func (*Hatch) ObjectName() string     { return TokenHatch }
func (*Hatch) SubclassMarker() string { return SubclassHatch }
func (*Hatch) Subclasses() []string   { return []string{SubclassEntity, SubclassHatch} }

// PatternLine 图案定义线，以组码 53 开始
type PatternLine struct {
	Angle       float64   // 组码 53，保持文件中的角度值
	BasePoint   core.XY   // 组码 43 / 44
	Offset      core.XY   // 组码 45 / 46
	DashLengths []float64 // 组码 49
}

// GradientColor 渐变填充 (组码 450-470)
type GradientColor struct {
	Enabled     bool    // 组码 450
	Reserved    int     // 组码 451
	SingleColor bool    // 组码 452
	Angle       float64 // 组码 460
	Shift       float64 // 组码 461
	Tint        float64 // 组码 462
	Name        string  // 组码 470
	Stops       []GradientStop
}

// GradientStop 每个 463 组码追加一个，随后的 63 / 421 修改最后一个
type GradientStop struct {
	Value float64
	Color Color
}

// LastStop 最后一个渐变色，没有时返回 nil
func (g *GradientColor) LastStop() *GradientStop {
	if len(g.Stops) == 0 {
		return nil
	}
	return &g.Stops[len(g.Stops)-1]
}

// BoundaryPathFlags 边界路径标志 (组码 92)
type BoundaryPathFlags int

const (
	BoundaryDefault          BoundaryPathFlags = 0
	BoundaryExternal         BoundaryPathFlags = 1
	BoundaryPolyline         BoundaryPathFlags = 2
	BoundaryDerived          BoundaryPathFlags = 4
	BoundaryTextbox          BoundaryPathFlags = 8
	BoundaryOutermost        BoundaryPathFlags = 16
	BoundaryNotClosed        BoundaryPathFlags = 32
	BoundarySelfIntersecting BoundaryPathFlags = 64
	BoundaryTextIsland       BoundaryPathFlags = 128
	BoundaryDuplicate        BoundaryPathFlags = 256
)

func (f BoundaryPathFlags) Has(flag BoundaryPathFlags) bool {
	return f&flag == flag
}

// BoundaryPath 填充边界
type BoundaryPath struct {
	Flags BoundaryPathFlags
	Edges []Edge
}

// EdgeType 边类型 (组码 72)
type EdgeType int

const (
	EdgePolyline EdgeType = iota
	EdgeLine
	EdgeCircularArc
	EdgeEllipticArc
	EdgeSpline
)

// Edge 边界边：直线、圆弧、椭圆弧或样条
type Edge interface {
	Type() EdgeType
}

type LineEdge struct {
	Start core.XY // 组码 10 / 20
	End   core.XY // 组码 11 / 21
}

// ArcEdge 角度保持文件中的角度值
type ArcEdge struct {
	Center           core.XY // 组码 10 / 20
	Radius           float64 // 组码 40
	StartAngle       float64 // 组码 50
	EndAngle         float64 // 组码 51
	CounterClockWise bool    // 组码 73
}

type EllipseEdge struct {
	Center            core.XY // 组码 10 / 20
	MajorAxisEndPoint core.XY // 组码 11 / 21
	RadiusRatio       float64 // 组码 40
	StartAngle        float64 // 组码 50
	EndAngle          float64 // 组码 51
	CounterClockWise  bool    // 组码 73
}

// SplineEdge 控制点的 Z 存放权重
type SplineEdge struct {
	Degree        int          // 组码 94
	Rational      bool         // 组码 73
	Periodic      bool         // 组码 74
	Knots         []float64    // 组码 40
	ControlPoints []core.Point // 组码 10 / 20 / 42
	FitPoints     []core.XY    // 组码 11 / 21
	StartTangent  core.XY      // 组码 12 / 22
	EndTangent    core.XY      // 组码 13 / 23
}

func (*LineEdge) Type() EdgeType    { return EdgeLine }
func (*ArcEdge) Type() EdgeType     { return EdgeCircularArc }
func (*EllipseEdge) Type() EdgeType { return EdgeEllipticArc }
func (*SplineEdge) Type() EdgeType  { return EdgeSpline }
