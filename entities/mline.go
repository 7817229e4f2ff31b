package entities

import "github.com/zooyer/dxfreader/core"

type MLine struct {
	BaseEntity
	Scale         float64    // 组码 40
	Justification int16      // 组码 70
	Flags         int16      // 组码 71
	StartPoint    core.Point // 组码 10
	Normal        core.Point // 组码 210
	Vertices      []MLineVertex
}

// MLineVertex 多线顶点，以组码 11 开始
type MLineVertex struct {
	Position  core.Point // 组码 11
	Direction core.Point // 组码 12
	Miter     core.Point // 组码 13
	Segments  []MLineSegment
}

// MLineSegment 每个样式元素一段，以组码 74 开始
type MLineSegment struct {
	Parameters         []float64 // 组码 41
	AreaFillParameters []float64 // 组码 42
}

func init() {
	Register(TokenMLine, func() Entity {
		return &MLine{BaseEntity: newBaseEntity(), Scale: 1, Normal: DefaultNormal}
	})
}

// LastVertex 返回最后一个顶点，没有顶点时返回 nil
func (m *MLine) LastVertex() *MLineVertex {
	if len(m.Vertices) == 0 {
		return nil
	}
	return &m.Vertices[len(m.Vertices)-1]
}

// LastSegment 返回最后一个顶点的最后一段
func (v *MLineVertex) LastSegment() *MLineSegment {
	if len(v.Segments) == 0 {
		return nil
	}
	return &v.Segments[len(v.Segments)-1]
}

func (*MLine) ObjectName() string     { return TokenMLine }
func (*MLine) SubclassMarker() string { return SubclassMLine }
func (*MLine) Subclasses() []string   { return []string{SubclassEntity, SubclassMLine} }
