package entities

import "github.com/zooyer/dxfreader/core"

type LWPolyline struct {
	BaseEntity
	Flags         int16      // 组码 70
	ConstantWidth float64    // 组码 43
	Elevation     float64    // 组码 38
	Thickness     float64    // 组码 39
	Normal        core.Point // 组码 210
	Vertices      []LwVertex
}

// LwVertex 轻量多段线顶点，以组码 10 开始
type LwVertex struct {
	Location   core.XY // 组码 10 / 20
	StartWidth float64 // 组码 40
	EndWidth   float64 // 组码 41
	Bulge      float64 // 组码 42
	ID         int32   // 组码 91
}

func init() {
	Register(TokenLwPolyline, func() Entity {
		return &LWPolyline{BaseEntity: newBaseEntity(), Normal: DefaultNormal}
	})
}

// LastVertex 返回最后一个顶点，没有顶点时返回 nil
func (l *LWPolyline) LastVertex() *LwVertex {
	if len(l.Vertices) == 0 {
		return nil
	}
	return &l.Vertices[len(l.Vertices)-1]
}

func (*LWPolyline) ObjectName() string     { return TokenLwPolyline }
func (*LWPolyline) SubclassMarker() string { return SubclassLwPolyline }
func (*LWPolyline) Subclasses() []string   { return []string{SubclassEntity, SubclassLwPolyline} }
