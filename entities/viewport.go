package entities

import "github.com/zooyer/dxfreader/core"

type Viewport struct {
	BaseEntity
	Center              core.Point // 组码 10
	Width               float64    // 组码 40
	Height              float64    // 组码 41
	ViewCenter          core.XY    // 组码 12
	SnapBase            core.XY    // 组码 13
	SnapSpacing         core.XY    // 组码 14
	GridSpacing         core.XY    // 组码 15
	ViewDirection       core.Point // 组码 16
	ViewTarget          core.Point // 组码 17
	LensLength          float64    // 组码 42
	FrontClipPlane      float64    // 组码 43
	BackClipPlane       float64    // 组码 44
	ViewHeight          float64    // 组码 45
	SnapAngle           float64    // 组码 50
	TwistAngle          float64    // 组码 51
	CircleSides         int16      // 组码 72
	StatusFlags         int32      // 组码 90
	StyleSheetName      string     // 组码 1
	RenderMode          int16      // 组码 281
	UcsPerViewport      bool       // 组码 71
	DisplayUcsIcon      bool       // 组码 74
	UcsOrigin           core.Point // 组码 110
	UcsXAxis            core.Point // 组码 111
	UcsYAxis            core.Point // 组码 112
	OrthographicType    int16      // 组码 79
	Elevation           float64    // 组码 146
	ShadePlotMode       int16      // 组码 170
	MajorGridLines      int16      // 组码 61
	DefaultLightingOn   bool       // 组码 292
	DefaultLightingType int16      // 组码 282
	Brightness          float64    // 组码 141
	Contrast            float64    // 组码 142
	AmbientColor        Color      // 组码 63 / 421
}

func init() {
	Register(TokenViewport, func() Entity {
		return &Viewport{BaseEntity: newBaseEntity(), ViewDirection: DefaultNormal, CircleSides: 1000}
	})
}

func (*Viewport) ObjectName() string     { return TokenViewport }
func (*Viewport) SubclassMarker() string { return SubclassViewport }
func (*Viewport) Subclasses() []string   { return []string{SubclassEntity, SubclassViewport} }
