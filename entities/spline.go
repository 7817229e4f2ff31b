package entities

import "github.com/zooyer/dxfreader/core"

type Spline struct {
	BaseEntity
	Normal                core.Point   // 组码 210
	Flags                 int16        // 组码 70
	Degree                int16        // 组码 71
	KnotTolerance         float64      // 组码 42
	ControlPointTolerance float64      // 组码 43
	FitTolerance          float64      // 组码 44
	StartTangent          core.Point   // 组码 12
	EndTangent            core.Point   // 组码 13
	Knots                 []float64    // 组码 40
	ControlPoints         []core.Point // 组码 10
	Weights               []float64    // 组码 41
	FitPoints             []core.Point // 组码 11
}

func init() {
	Register(TokenSpline, func() Entity {
		return &Spline{
			BaseEntity:            newBaseEntity(),
			Normal:                DefaultNormal,
			KnotTolerance:         1e-7,
			ControlPointTolerance: 1e-7,
			FitTolerance:          1e-10,
		}
	})
}

func (*Spline) ObjectName() string     { return TokenSpline }
func (*Spline) SubclassMarker() string { return SubclassSpline }
func (*Spline) Subclasses() []string   { return []string{SubclassEntity, SubclassSpline} }
