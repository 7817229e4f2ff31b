package entities

import (
	"math"

	"github.com/zooyer/dxfreader/core"
)

type Circle struct {
	BaseEntity
	Center    core.Point // 组码 10
	Radius    float64    // 组码 40
	Thickness float64    // 组码 39
	Normal    core.Point // 组码 210
}

// Arc 在圆的基础上扩展起止角（弧度）
type Arc struct {
	Circle
	StartAngle float64 // 组码 50
	EndAngle   float64 // 组码 51
}

// Ellipse 椭圆或椭圆弧
type Ellipse struct {
	BaseEntity
	Center            core.Point // 组码 10
	MajorAxisEndPoint core.Point // 组码 11，相对圆心
	Normal            core.Point // 组码 210
	RadiusRatio       float64    // 组码 40
	StartParameter    float64    // 组码 41
	EndParameter      float64    // 组码 42
}

func init() {
	Register(TokenCircle, func() Entity { return NewCircle() })
	Register(TokenArc, func() Entity { return NewArc() })
	Register(TokenEllipse, func() Entity { return NewEllipse() })
}

func NewCircle() *Circle {
	return &Circle{BaseEntity: newBaseEntity(), Normal: DefaultNormal}
}

func NewArc() *Arc {
	return &Arc{Circle: *NewCircle()}
}

func NewEllipse() *Ellipse {
	return &Ellipse{
		BaseEntity:   newBaseEntity(),
		Normal:       DefaultNormal,
		RadiusRatio:  1,
		EndParameter: 2 * math.Pi,
	}
}

// AsCircle 让圆弧也能使用 AcDbCircle 的映射
func (c *Circle) AsCircle() *Circle { return c }

func (*Circle) ObjectName() string     { return TokenCircle }
func (*Circle) SubclassMarker() string { return SubclassCircle }
func (*Circle) Subclasses() []string   { return []string{SubclassEntity, SubclassCircle} }

func (*Arc) ObjectName() string     { return TokenArc }
func (*Arc) SubclassMarker() string { return SubclassArc }
func (*Arc) Subclasses() []string   { return []string{SubclassEntity, SubclassCircle, SubclassArc} }

func (*Ellipse) ObjectName() string     { return TokenEllipse }
func (*Ellipse) SubclassMarker() string { return SubclassEllipse }
func (*Ellipse) Subclasses() []string   { return []string{SubclassEntity, SubclassEllipse} }
