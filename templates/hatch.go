package templates

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

// HatchTemplate 填充，边界路径单独记录关联对象的句柄
type HatchTemplate struct {
	EntityTemplate
	PatternName string // 组码 2
	Paths       []*BoundaryPathTemplate
}

// BoundaryPathTemplate 一条边界路径及其关联对象 (组码 330)
type BoundaryPathTemplate struct {
	Path    *entities.BoundaryPath
	Handles []core.Handle
}

func NewHatchTemplate(e *entities.Hatch) *HatchTemplate {
	return &HatchTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *HatchTemplate) Hatch() *entities.Hatch {
	h, _ := t.Object.(*entities.Hatch)
	return h
}
