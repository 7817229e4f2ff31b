package entities

import "github.com/zooyer/dxfreader/core"

type Insert struct {
	BaseEntity
	HasAttributes  bool       // 组码 66，之后跟随 ATTRIB 直到 SEQEND
	InsertionPoint core.Point // 组码 10
	Scale          core.Point // 组码 41 / 42 / 43
	Rotation       float64    // 组码 50
	ColumnCount    int16      // 组码 70
	RowCount       int16      // 组码 71
	ColumnSpacing  float64    // 组码 44
	RowSpacing     float64    // 组码 45
	Normal         core.Point // 组码 210
}

func init() {
	Register(TokenInsert, func() Entity {
		return &Insert{
			BaseEntity:  newBaseEntity(),
			Scale:       core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
			ColumnCount: 1,
			RowCount:    1,
			Normal:      DefaultNormal,
		}
	})
}

func (*Insert) ObjectName() string     { return TokenInsert }
func (*Insert) SubclassMarker() string { return SubclassInsert }
func (*Insert) Subclasses() []string   { return []string{SubclassEntity, SubclassInsert} }
