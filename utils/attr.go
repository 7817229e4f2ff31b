package utils

import (
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/templates"
)

// GetAttrs 块参照上的属性，标签 -> 值
func GetAttrs(ins *templates.InsertTemplate) map[string]string {
	var attrs = make(map[string]string)
	for _, a := range ins.Attributes {
		if attr, ok := a.Object.(*entities.AttributeEntity); ok {
			attrs[attr.Tag] = attr.Value
		}
	}

	return attrs
}

func GetAttr(ins *templates.InsertTemplate, key string) string {
	return GetAttrs(ins)[key]
}
