package entities

import "github.com/zooyer/dxfreader/core"

// TextEntity 单行文字
type TextEntity struct {
	BaseEntity
	Value               string     // 组码 1
	InsertPoint         core.Point // 组码 10
	AlignmentPoint      core.Point // 组码 11
	Height              float64    // 组码 40
	WidthFactor         float64    // 组码 41
	Rotation            float64    // 组码 50
	ObliqueAngle        float64    // 组码 51
	Mirror              int16      // 组码 71
	HorizontalAlignment int16      // 组码 72
	VerticalAlignment   int16      // 组码 73 (属性中为 74)
	Thickness           float64    // 组码 39
	Normal              core.Point // 组码 210
}

// MText 多行文字
type MText struct {
	BaseEntity
	Value                  string     // 组码 3 + 1，按顺序拼接
	InsertPoint            core.Point // 组码 10
	Direction              core.Point // 组码 11
	Height                 float64    // 组码 40
	RectangleWidth         float64    // 组码 41
	RectangleHeight        float64    // 组码 46
	Rotation               float64    // 组码 50
	AttachmentPoint        int16      // 组码 71
	DrawingDirection       int16      // 组码 72
	LineSpacingStyle       int16      // 组码 73
	LineSpacing            float64    // 组码 44
	BackgroundFillFlags    int32      // 组码 90
	BackgroundScale        float64    // 组码 45
	BackgroundColor        Color      // 组码 63
	BackgroundTransparency int32      // 组码 441
	Normal                 core.Point // 组码 210
}

func init() {
	Register(TokenText, func() Entity { return NewText() })
	Register(TokenMText, func() Entity {
		return &MText{
			BaseEntity:  newBaseEntity(),
			Normal:      DefaultNormal,
			Direction:   core.Point{X: 1},
			LineSpacing: 1,
		}
	})
}

func NewText() *TextEntity {
	return &TextEntity{BaseEntity: newBaseEntity(), WidthFactor: 1, Normal: DefaultNormal}
}

// AsText 让属性、属性定义复用 AcDbText 的映射
func (t *TextEntity) AsText() *TextEntity { return t }

func (*TextEntity) ObjectName() string     { return TokenText }
func (*TextEntity) SubclassMarker() string { return SubclassText }
func (*TextEntity) Subclasses() []string   { return []string{SubclassEntity, SubclassText} }

func (*MText) ObjectName() string     { return TokenMText }
func (*MText) SubclassMarker() string { return SubclassMText }
func (*MText) Subclasses() []string   { return []string{SubclassEntity, SubclassMText} }
