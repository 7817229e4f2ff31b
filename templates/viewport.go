package templates

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/entities"
)

// ViewportTemplate 视口，冻结图层 (331) 可以重复出现
type ViewportTemplate struct {
	EntityTemplate
	ViewportID         int16        // 组码 69
	VisualStyleHandle  *core.Handle // 组码 348
	FrozenLayerHandles []core.Handle
}

func NewViewportTemplate(e *entities.Viewport) *ViewportTemplate {
	return &ViewportTemplate{EntityTemplate: *NewEntityTemplate(e)}
}

func (t *ViewportTemplate) Viewport() *entities.Viewport {
	v, _ := t.Object.(*entities.Viewport)
	return v
}

func (t *ViewportTemplate) SetVisualStyle(h core.Handle) {
	t.VisualStyleHandle = &h
}

// AddHandle 340 裁剪边界，332 背景，333 着色打印，345 / 346 UCS，361 阳光
func (t *ViewportTemplate) AddHandle(code int, h core.Handle) bool {
	switch code {
	case 331:
		t.FrozenLayerHandles = append(t.FrozenLayerHandles, h)
		return true
	case 340, 332, 333, 345, 346, 361:
		return t.setHandle(code, h)
	}
	return t.EntityTemplate.AddHandle(code, h)
}
