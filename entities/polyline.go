package entities

import "github.com/zooyer/dxfreader/core"

// Polyline 二维、三维多段线的接口
type Polyline interface {
	Entity
	Poly() *PolylineBase
}

type PolylineBase struct {
	BaseEntity
	Elevation      float64    // 组码 30 (10 / 20 恒为 0)
	Thickness      float64    // 组码 39
	Flags          int16      // 组码 70
	StartWidth     float64    // 组码 40
	EndWidth       float64    // 组码 41
	MeshMCount     int16      // 组码 71
	MeshNCount     int16      // 组码 72
	SmoothMDensity int16      // 组码 73
	SmoothNDensity int16      // 组码 74
	SmoothSurface  int16      // 组码 75
	Normal         core.Point // 组码 210
}

func (p *PolylineBase) Poly() *PolylineBase { return p }

func (*PolylineBase) ObjectName() string { return TokenPolyline }

// PolylinePlaceholder 读到 AcDb2dPolyline / AcDb3dPolyline 之前的多段线
type PolylinePlaceholder struct{ PolylineBase }

type Polyline2D struct{ PolylineBase }

type Polyline3D struct{ PolylineBase }

// Vertex 顶点接口
type Vertex interface {
	Entity
	AsVertex() *VertexBase
}

type VertexBase struct {
	BaseEntity
	Location     core.Point // 组码 10
	StartWidth   float64    // 组码 40
	EndWidth     float64    // 组码 41
	Bulge        float64    // 组码 42
	Flags        int16      // 组码 70
	CurveTangent float64    // 组码 50
	ID           int32      // 组码 91
}

func (v *VertexBase) AsVertex() *VertexBase { return v }

func (*VertexBase) ObjectName() string { return TokenVertex }

type VertexPlaceholder struct{ VertexBase }

type Vertex2D struct{ VertexBase }

type Vertex3D struct{ VertexBase }

// Seqend 顶点、属性序列的结束标记
type Seqend struct {
	BaseEntity
}

func init() {
	Register(TokenPolyline, func() Entity { return &PolylinePlaceholder{PolylineBase: newPolylineBase()} })
	Register(TokenVertex, func() Entity { return &VertexPlaceholder{VertexBase: VertexBase{BaseEntity: newBaseEntity()}} })
	Register(TokenSeqend, func() Entity { return &Seqend{BaseEntity: newBaseEntity()} })
}

func newPolylineBase() PolylineBase {
	return PolylineBase{BaseEntity: newBaseEntity(), Normal: DefaultNormal}
}

func NewPolyline2D() *Polyline2D { return &Polyline2D{PolylineBase: newPolylineBase()} }

func NewPolyline3D() *Polyline3D { return &Polyline3D{PolylineBase: newPolylineBase()} }

func NewVertex2D() *Vertex2D { return &Vertex2D{VertexBase{BaseEntity: newBaseEntity()}} }

func NewVertex3D() *Vertex3D { return &Vertex3D{VertexBase{BaseEntity: newBaseEntity()}} }

func (*PolylinePlaceholder) SubclassMarker() string { return SubclassEntity }
func (*PolylinePlaceholder) Subclasses() []string   { return []string{SubclassEntity} }

func (*Polyline2D) SubclassMarker() string { return SubclassPolyline }
func (*Polyline2D) Subclasses() []string   { return []string{SubclassEntity, SubclassPolyline} }

func (*Polyline3D) SubclassMarker() string { return SubclassPolyline3D }
func (*Polyline3D) Subclasses() []string   { return []string{SubclassEntity, SubclassPolyline3D} }

func (*VertexPlaceholder) SubclassMarker() string { return SubclassVertex }
func (*VertexPlaceholder) Subclasses() []string   { return []string{SubclassEntity, SubclassVertex} }

func (*Vertex2D) SubclassMarker() string { return SubclassPolylineVertex }
func (*Vertex2D) Subclasses() []string {
	return []string{SubclassEntity, SubclassVertex, SubclassPolylineVertex}
}

func (*Vertex3D) SubclassMarker() string { return SubclassPolyline3DVertex }
func (*Vertex3D) Subclasses() []string {
	return []string{SubclassEntity, SubclassVertex, SubclassPolyline3DVertex}
}

func (*Seqend) ObjectName() string     { return TokenSeqend }
func (*Seqend) SubclassMarker() string { return SubclassEntity }
func (*Seqend) Subclasses() []string   { return []string{SubclassEntity} }
