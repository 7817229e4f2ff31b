package entities

import (
	"regexp"
	"strconv"

	"github.com/zooyer/dxfreader/core"
)

// Dimension 所有标注类型的接口
type Dimension interface {
	Entity
	Dim() *DimensionBase
}

// DimensionBase AcDbDimension 子类的公共数据
type DimensionBase struct {
	BaseEntity
	Version             int16      // 组码 280
	DefPoint            core.Point // 组码 10 (标注线起点)
	TextMidPoint        core.Point // 组码 11 (中间的点)
	InsertionPoint      core.Point // 组码 12
	Flags               int16      // 组码 70 (关键：区分标注类型)
	AttachmentPoint     int16      // 组码 71
	LineSpacingStyle    int16      // 组码 72
	LineSpacingFactor   float64    // 组码 41
	ActualMeasurement   float64    // 组码 42
	Text                string     // 组码 1
	TextRotation        float64    // 组码 53
	HorizontalDirection float64    // 组码 51
	Normal              core.Point // 组码 210
}

func (d *DimensionBase) Dim() *DimensionBase { return d }

// DimType 组码 70 的低 3 位是标注类型
func (d *DimensionBase) DimType() int {
	return int(d.Flags & 0x07)
}

var (
	reFormat = regexp.MustCompile(`\\[A-Z].*?;`)
	reNum    = regexp.MustCompile(`[0-9.]+`)
)

// CleanValue 测量值为空时，从替代文字中提取数值
func (d *DimensionBase) CleanValue() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}

// DimensionPlaceholder 读到具体子类标记之前的通用标注
type DimensionPlaceholder struct {
	DimensionBase
}

// DimensionAligned 对齐标注
type DimensionAligned struct {
	DimensionBase
	FirstPoint  core.Point // 组码 13 (被测量的起点)
	SecondPoint core.Point // 组码 14 (被测量的终点)
}

func (d *DimensionAligned) AsAligned() *DimensionAligned { return d }

// DimensionLinear 转角标注，在对齐标注之后追加 AcDbRotatedDimension
type DimensionLinear struct {
	DimensionAligned
	Rotation        float64 // 组码 50
	ExtLineRotation float64 // 组码 52
}

// DimensionRadius 半径标注
type DimensionRadius struct {
	DimensionBase
	AngleVertex  core.Point // 组码 15
	LeaderLength float64    // 组码 40
}

// DimensionDiameter 直径标注
type DimensionDiameter struct {
	DimensionBase
	AngleVertex  core.Point // 组码 15
	LeaderLength float64    // 组码 40
}

// DimensionAngular3Pt 三点角度标注
type DimensionAngular3Pt struct {
	DimensionBase
	FirstPoint  core.Point // 组码 13
	SecondPoint core.Point // 组码 14
	AngleVertex core.Point // 组码 15
}

// DimensionAngular2Line 两线角度标注
type DimensionAngular2Line struct {
	DimensionBase
	FirstPoint   core.Point // 组码 13
	SecondPoint  core.Point // 组码 14
	AngleVertex  core.Point // 组码 15
	DimensionArc core.Point // 组码 16
}

// DimensionOrdinate 坐标标注
type DimensionOrdinate struct {
	DimensionBase
	FeatureLocation core.Point // 组码 13
	LeaderEndpoint  core.Point // 组码 14
}

func init() {
	Register(TokenDimension, func() Entity { return NewDimensionPlaceholder() })
}

func newDimensionBase() DimensionBase {
	return DimensionBase{BaseEntity: newBaseEntity(), LineSpacingFactor: 1, Normal: DefaultNormal}
}

func NewDimensionPlaceholder() *DimensionPlaceholder {
	return &DimensionPlaceholder{DimensionBase: newDimensionBase()}
}

func NewDimensionAligned() *DimensionAligned {
	return &DimensionAligned{DimensionBase: newDimensionBase()}
}

func NewDimensionLinear() *DimensionLinear {
	return &DimensionLinear{DimensionAligned: *NewDimensionAligned()}
}

func NewDimensionRadius() *DimensionRadius {
	return &DimensionRadius{DimensionBase: newDimensionBase()}
}

func NewDimensionDiameter() *DimensionDiameter {
	return &DimensionDiameter{DimensionBase: newDimensionBase()}
}

func NewDimensionAngular3Pt() *DimensionAngular3Pt {
	return &DimensionAngular3Pt{DimensionBase: newDimensionBase()}
}

func NewDimensionAngular2Line() *DimensionAngular2Line {
	return &DimensionAngular2Line{DimensionBase: newDimensionBase()}
}

func NewDimensionOrdinate() *DimensionOrdinate {
	return &DimensionOrdinate{DimensionBase: newDimensionBase()}
}

func (*DimensionBase) ObjectName() string { return TokenDimension }

func (*DimensionPlaceholder) SubclassMarker() string { return SubclassDimension }
func (*DimensionPlaceholder) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension}
}

func (*DimensionAligned) SubclassMarker() string { return SubclassAlignedDimension }
func (*DimensionAligned) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassAlignedDimension}
}

func (*DimensionLinear) SubclassMarker() string { return SubclassLinearDimension }
func (*DimensionLinear) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassAlignedDimension, SubclassLinearDimension}
}

func (*DimensionRadius) SubclassMarker() string { return SubclassRadialDimension }
func (*DimensionRadius) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassRadialDimension}
}

func (*DimensionDiameter) SubclassMarker() string { return SubclassDiametricDimension }
func (*DimensionDiameter) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassDiametricDimension}
}

func (*DimensionAngular3Pt) SubclassMarker() string { return SubclassAngular3PointDimension }
func (*DimensionAngular3Pt) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassAngular3PointDimension}
}

func (*DimensionAngular2Line) SubclassMarker() string { return SubclassAngular2LineDimension }
func (*DimensionAngular2Line) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassAngular2LineDimension}
}

func (*DimensionOrdinate) SubclassMarker() string { return SubclassOrdinateDimension }
func (*DimensionOrdinate) Subclasses() []string {
	return []string{SubclassEntity, SubclassDimension, SubclassOrdinateDimension}
}
