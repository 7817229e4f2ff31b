package dxfmap

import (
	"strings"
	"sync"

	"github.com/zooyer/dxfreader/entities"
)

var cache sync.Map // string -> *DxfMap

// Class 按子类标记返回映射表
func Class(name string) (*ClassMap, bool) {
	m, ok := classes[name]
	return m, ok
}

// For 按对象的子类链组装映射表，每种对象只组装一次
func For(obj entities.Object) *DxfMap {
	chain := obj.Subclasses()
	key := obj.ObjectName() + ":" + strings.Join(chain, ",")
	if m, ok := cache.Load(key); ok {
		return m.(*DxfMap)
	}

	m := &DxfMap{Name: obj.ObjectName(), SubClasses: make(map[string]*ClassMap, len(chain))}
	for _, name := range chain {
		if c, ok := classes[name]; ok {
			m.SubClasses[name] = c
		}
	}

	actual, _ := cache.LoadOrStore(key, m)
	return actual.(*DxfMap)
}
