package entities

// TableRecord 符号表记录（图层、文字样式、标注样式）
type TableRecord interface {
	Object
	Entry() *TableEntry
}

// TableEntry 所有表记录通用的属性（AcDbSymbolTableRecord 子类）
type TableEntry struct {
	CadObject
	Name  string // 组码 2
	Flags int16  // 组码 70
}

func (e *TableEntry) Entry() *TableEntry { return e }

type Layer struct {
	TableEntry
	Color      Color // 组码 62 / 420，负值表示图层关闭
	Plot       bool  // 组码 290
	LineWeight int16 // 组码 370
}

// IsOn 颜色号为负时图层关闭
func (l *Layer) IsOn() bool { return l.Color.Index >= 0 }

type TextStyle struct {
	TableEntry
	Height          float64 // 组码 40
	Width           float64 // 组码 41
	ObliqueAngle    float64 // 组码 50
	GenerationFlags int16   // 组码 71
	LastHeight      float64 // 组码 42
	FontFile        string  // 组码 3
	BigFontFile     string  // 组码 4
}

// DimStyle 只读取常用的标注变量
type DimStyle struct {
	TableEntry
	Scale       float64 // 组码 40 DIMSCALE
	ArrowSize   float64 // 组码 41 DIMASZ
	ExtOffset   float64 // 组码 42 DIMEXO
	ExLimit     float64 // 组码 44 DIMEXE
	TextHeight  float64 // 组码 140 DIMTXT
	TextGap     float64 // 组码 147 DIMGAP
	PostFix     string  // 组码 3 DIMPOST
	TextAbove   int16   // 组码 77 DIMTAD
	Precision   int16   // 组码 271 DIMDEC
	LinearUnits int16   // 组码 277 DIMLUNIT
}

// TableFactory 定义了如何创建一个空表记录
type TableFactory func() TableRecord

var tableRegistry = map[string]TableFactory{
	TokenLayer:     func() TableRecord { return &Layer{Color: Color{Index: 7}, Plot: true, LineWeight: -3} },
	TokenTextStyle: func() TableRecord { return &TextStyle{Width: 1} },
	TokenDimStyle:  func() TableRecord { return &DimStyle{Scale: 1, ArrowSize: 0.18, TextHeight: 0.18, TextGap: 0.09, Precision: 4} },
}

// CreateTableEntry 根据表名称生产对应的表记录
func CreateTableEntry(typeName string) TableRecord {
	if factory, ok := tableRegistry[typeName]; ok {
		return factory()
	}
	return nil
}

func (*Layer) ObjectName() string     { return TokenLayer }
func (*Layer) SubclassMarker() string { return SubclassLayerRecord }
func (*Layer) Subclasses() []string   { return []string{SubclassTableRecord, SubclassLayerRecord} }

func (*TextStyle) ObjectName() string     { return TokenTextStyle }
func (*TextStyle) SubclassMarker() string { return SubclassTextStyleRecord }
func (*TextStyle) Subclasses() []string {
	return []string{SubclassTableRecord, SubclassTextStyleRecord}
}

func (*DimStyle) ObjectName() string     { return TokenDimStyle }
func (*DimStyle) SubclassMarker() string { return SubclassDimStyleRecord }
func (*DimStyle) Subclasses() []string   { return []string{SubclassTableRecord, SubclassDimStyleRecord} }
