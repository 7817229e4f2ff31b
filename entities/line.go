package entities

import "github.com/zooyer/dxfreader/core"

type Line struct {
	BaseEntity
	Start, End core.Point // 组码 10 / 11
	Thickness  float64    // 组码 39
	Normal     core.Point // 组码 210
}

func init() {
	Register(TokenLine, func() Entity { return NewLine() })
	Register(TokenRay, func() Entity { return &Ray{BaseEntity: newBaseEntity()} })
	Register(TokenXLine, func() Entity { return &XLine{BaseEntity: newBaseEntity()} })
}

func NewLine() *Line {
	return &Line{BaseEntity: newBaseEntity(), Normal: DefaultNormal}
}

func (*Line) ObjectName() string     { return TokenLine }
func (*Line) SubclassMarker() string { return SubclassLine }
func (*Line) Subclasses() []string   { return []string{SubclassEntity, SubclassLine} }

// Ray 单向射线
type Ray struct {
	BaseEntity
	StartPoint core.Point // 组码 10
	Direction  core.Point // 组码 11
}

func (*Ray) ObjectName() string     { return TokenRay }
func (*Ray) SubclassMarker() string { return SubclassRay }
func (*Ray) Subclasses() []string   { return []string{SubclassEntity, SubclassRay} }

// XLine 双向构造线
type XLine struct {
	BaseEntity
	FirstPoint core.Point // 组码 10
	Direction  core.Point // 组码 11
}

func (*XLine) ObjectName() string     { return TokenXLine }
func (*XLine) SubclassMarker() string { return SubclassXLine }
func (*XLine) Subclasses() []string   { return []string{SubclassEntity, SubclassXLine} }
