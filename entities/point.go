package entities

import "github.com/zooyer/dxfreader/core"

type Point struct {
	BaseEntity
	Location  core.Point // 组码 10
	Thickness float64    // 组码 39
	Normal    core.Point // 组码 210
	Rotation  float64    // 组码 50，X 轴角度
}

// Face3D 三维面
type Face3D struct {
	BaseEntity
	FirstCorner  core.Point // 组码 10
	SecondCorner core.Point // 组码 11
	ThirdCorner  core.Point // 组码 12
	FourthCorner core.Point // 组码 13
	Flags        int16      // 组码 70，不可见边
}

// Solid 二维填充 (AcDbTrace)
type Solid struct {
	BaseEntity
	FirstCorner  core.Point // 组码 10
	SecondCorner core.Point // 组码 11
	ThirdCorner  core.Point // 组码 12
	FourthCorner core.Point // 组码 13
	Thickness    float64    // 组码 39
	Normal       core.Point // 组码 210
}

func init() {
	Register(TokenPoint, func() Entity {
		return &Point{BaseEntity: newBaseEntity(), Normal: DefaultNormal}
	})
	Register(Token3DFace, func() Entity { return &Face3D{BaseEntity: newBaseEntity()} })
	Register(TokenSolid, func() Entity {
		return &Solid{BaseEntity: newBaseEntity(), Normal: DefaultNormal}
	})
}

func (*Point) ObjectName() string     { return TokenPoint }
func (*Point) SubclassMarker() string { return SubclassPoint }
func (*Point) Subclasses() []string   { return []string{SubclassEntity, SubclassPoint} }

func (*Face3D) ObjectName() string     { return Token3DFace }
func (*Face3D) SubclassMarker() string { return SubclassFace3D }
func (*Face3D) Subclasses() []string   { return []string{SubclassEntity, SubclassFace3D} }

func (*Solid) ObjectName() string     { return TokenSolid }
func (*Solid) SubclassMarker() string { return SubclassTrace }
func (*Solid) Subclasses() []string   { return []string{SubclassEntity, SubclassTrace} }
