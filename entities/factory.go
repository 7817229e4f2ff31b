package entities

import (
	"github.com/zooyer/dxfreader/core"
)

// Entity 是一切图形实体的接口
type Entity interface {
	Object
	Entity() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（AcDbEntity 子类）
type BaseEntity struct {
	CadObject
	Color         Color   // 组码 62 / 420
	LineWeight    int16   // 组码 370
	LineTypeScale float64 // 组码 48
	Invisible     bool    // 组码 60
	Transparency  int32   // 组码 440
	PaperSpace    bool    // 组码 67
	ShadowMode    int16   // 组码 284
}

func newBaseEntity() BaseEntity {
	return BaseEntity{
		Color:         ByLayer,
		LineWeight:    -1,
		LineTypeScale: 1,
	}
}

func (b *BaseEntity) Entity() *BaseEntity { return b }

// EntityFactory 定义了如何创建一个空实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}

// DefaultNormal 默认拉伸方向
var DefaultNormal = core.Point{Z: 1}
