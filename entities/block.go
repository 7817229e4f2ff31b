package entities

import "github.com/zooyer/dxfreader/core"

// BlockBegin 块定义开始 (BLOCK)
type BlockBegin struct {
	BaseEntity
	Name        string     // 组码 2
	Flags       int16      // 组码 70
	BasePoint   core.Point // 组码 10
	XrefPath    string     // 组码 1
	Description string     // 组码 4
}

// BlockEnd 块定义结束 (ENDBLK)
type BlockEnd struct {
	BaseEntity
}

func init() {
	Register(TokenBlock, func() Entity { return &BlockBegin{BaseEntity: newBaseEntity()} })
	Register(TokenBlockEnd, func() Entity { return &BlockEnd{BaseEntity: newBaseEntity()} })
}

func (*BlockBegin) ObjectName() string     { return TokenBlock }
func (*BlockBegin) SubclassMarker() string { return SubclassBlockBegin }
func (*BlockBegin) Subclasses() []string   { return []string{SubclassEntity, SubclassBlockBegin} }

func (*BlockEnd) ObjectName() string     { return TokenBlockEnd }
func (*BlockEnd) SubclassMarker() string { return SubclassBlockEnd }
func (*BlockEnd) Subclasses() []string   { return []string{SubclassEntity, SubclassBlockEnd} }
