package entities

// AttributeBase 属性与属性定义的公共部分
type AttributeBase struct {
	TextEntity
	Tag         string // 属性标签，如 "序号"，组码 2
	Flags       int16  // 组码 70
	FieldLength int16  // 组码 73
	Version     int16  // 组码 280
}

// AttributeEntity 块参照上的属性值 (ATTRIB)
type AttributeEntity struct {
	AttributeBase
}

// AttributeDefinition 块定义中的属性定义 (ATTDEF)
type AttributeDefinition struct {
	AttributeBase
	Prompt string // 组码 3
}

func init() {
	Register(TokenAttribute, func() Entity {
		return &AttributeEntity{AttributeBase: AttributeBase{TextEntity: *NewText()}}
	})
	Register(TokenAttributeDefinition, func() Entity {
		return &AttributeDefinition{AttributeBase: AttributeBase{TextEntity: *NewText()}}
	})
}

func (a *AttributeBase) AsAttribute() *AttributeBase { return a }

func (*AttributeEntity) ObjectName() string     { return TokenAttribute }
func (*AttributeEntity) SubclassMarker() string { return SubclassAttribute }
func (*AttributeEntity) Subclasses() []string {
	return []string{SubclassEntity, SubclassText, SubclassAttribute}
}

func (*AttributeDefinition) ObjectName() string     { return TokenAttributeDefinition }
func (*AttributeDefinition) SubclassMarker() string { return SubclassAttributeDefinition }
func (*AttributeDefinition) Subclasses() []string {
	return []string{SubclassEntity, SubclassText, SubclassAttributeDefinition}
}
