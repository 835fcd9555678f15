package schema

import (
	"maps"
	"slices"
)

// ShowKind names the field attribute ShownFields filters on.
type ShowKind string

const (
	KindShowCreate  ShowKind = "showCreate"
	KindShowDetail  ShowKind = "showDetail"
	KindShowIndex   ShowKind = "showIndex"
	KindShowTooltip ShowKind = "showTooltip"
	KindRequired    ShowKind = "required"
	KindQueryIndex  ShowKind = "queryIndex"
	KindQueryDetail ShowKind = "queryDetail"
)

// Input types that never get a filter control.
var unfilterable = []string{
	TypeCreatableStringSelect,
	OneToMany,
	ManyToMany,
	TypePhone,
	TypeID,
}

// IsFieldEditable reports whether a field can be edited for the row in
// p.Node. Only "id" is editable when the field says nothing.
func (b *Builder) IsFieldEditable(modelName, fieldName string, p Props) bool {
	var attr Bool
	if f := b.lookupField(modelName, fieldName); f != nil {
		attr = f.Editable
	}
	return attr.resolve(Context{
		Schema:      b,
		ModelName:   modelName,
		FieldName:   fieldName,
		Node:        p.Node,
		ParentNode:  p.ParentNode,
		CustomProps: p.CustomProps,
	}, fieldName == "id")
}

// IsRowEditable reports whether any field of the row is editable. The
// fields checked are p.FieldOrder, or the row's own keys when it is nil.
func (b *Builder) IsRowEditable(modelName string, p Props) bool {
	order := p.FieldOrder
	if order == nil {
		order = nodeFields(p.Node)
	}
	for _, fieldName := range order {
		if b.IsFieldEditable(modelName, fieldName, p) {
			return true
		}
	}
	return false
}

// nodeFields returns the row's keys, sorted, without __typename.
func nodeFields(n Node) []string {
	keys := slices.Sorted(maps.Keys(n))
	return slices.DeleteFunc(keys, func(k string) bool { return k == "__typename" })
}

// IsTableEditable reports whether any row of data is editable.
func (b *Builder) IsTableEditable(modelName string, data []Node, p Props) bool {
	for _, row := range data {
		rp := p
		rp.Node = row
		if b.IsRowEditable(modelName, rp) {
			return true
		}
	}
	return false
}

// IsDeletable reports whether the row in p.Node can be deleted.
func (b *Builder) IsDeletable(modelName string, p Props) bool {
	var attr Bool
	if m := b.doc[modelName]; m != nil {
		attr = m.Deletable
	}
	return attr.resolve(Context{
		Schema:      b,
		ModelName:   modelName,
		Node:        p.Node,
		ParentNode:  p.ParentNode,
		CustomProps: p.CustomProps,
	}, false)
}

// IsTableDeletable reports whether any row of data is deletable.
func (b *Builder) IsTableDeletable(modelName string, data []Node, p Props) bool {
	for _, row := range data {
		rp := p
		rp.Node = row
		if b.IsDeletable(modelName, rp) {
			return true
		}
	}
	return false
}

// IsCreatable reports whether new rows can be created.
func (b *Builder) IsCreatable(modelName string, p Props) bool {
	var attr Bool
	if m := b.doc[modelName]; m != nil {
		attr = m.Creatable
	}
	return attr.resolve(Context{
		Schema:      b,
		ModelName:   modelName,
		ParentNode:  p.ParentNode,
		Data:        p.Data,
		CustomProps: p.CustomProps,
	}, false)
}

// ShouldDisplay resolves a display condition. An unset condition displays.
func (b *Builder) ShouldDisplay(modelName, fieldName string, cond Bool, p Props) bool {
	return cond.resolve(Context{
		Schema:      b,
		ModelName:   modelName,
		FieldName:   fieldName,
		Node:        p.Node,
		CustomProps: p.CustomProps,
	}, true)
}

// ShouldDisplayIndex resolves the field's index display condition.
func (b *Builder) ShouldDisplayIndex(modelName, fieldName string, p Props) bool {
	return b.ShouldDisplay(modelName, fieldName, b.FieldConditions(modelName, fieldName).Index, p)
}

// ShouldDisplayDetail resolves the field's detail display condition.
func (b *Builder) ShouldDisplayDetail(modelName, fieldName string, p Props) bool {
	return b.ShouldDisplay(modelName, fieldName, b.FieldConditions(modelName, fieldName).Detail, p)
}

// ShouldDisplayCreate resolves the field's create display condition.
func (b *Builder) ShouldDisplayCreate(modelName, fieldName string, p Props) bool {
	return b.ShouldDisplay(modelName, fieldName, b.FieldConditions(modelName, fieldName).Create, p)
}

// IsFieldDisabled reports whether a form input is disabled. Without an
// explicit disabled attribute, relationship fields inherit the disabled
// flag the current form-stack entry holds for them.
func (b *Builder) IsFieldDisabled(modelName, fieldName string, stack FormStack, p Props) bool {
	defaultDisable := false
	if entry, ok := stack.current(); ok {
		fv, has := entry.Fields[fieldName]
		typ := b.Type(modelName, fieldName)
		switch {
		case !has:
		case toMany(typ):
			if len(fv.Items) > 0 {
				defaultDisable = fv.Items[0].Disabled
			}
		case toOne(typ):
			defaultDisable = fv.Disabled
		}
	}

	cond := b.FieldDisableCondition(modelName, fieldName)
	if cond.IsCallback() {
		return cond.fn(Context{
			Schema:         b,
			ModelName:      modelName,
			FieldName:      fieldName,
			Node:           p.Node,
			DefaultDisable: defaultDisable,
			CustomProps:    p.CustomProps,
		})
	}
	if v, ok := cond.Literal(); ok {
		return v
	}
	return defaultDisable
}

// IsSortable reports whether a column can be sorted. Relationship
// columns never are.
func (b *Builder) IsSortable(modelName, fieldName string, p Props) bool {
	f := b.lookupField(modelName, fieldName)
	var attr Bool
	if f != nil {
		attr = f.Sortable
	}
	ok := attr.resolve(Context{
		Schema:      b,
		ModelName:   modelName,
		FieldName:   fieldName,
		CustomProps: p.CustomProps,
	}, true)
	return ok && (f == nil || !f.Type.IsRel())
}

// IsTableSortable reports whether any column in p.FieldOrder is sortable,
// unless the model turns sorting off.
func (b *Builder) IsTableSortable(modelName string, p Props) bool {
	var attr Bool
	if m := b.doc[modelName]; m != nil {
		attr = m.Sortable
	}
	if !attr.resolve(Context{Schema: b, ModelName: modelName, CustomProps: p.CustomProps}, true) {
		return false
	}
	for _, fieldName := range p.FieldOrder {
		if b.IsSortable(modelName, fieldName, p) {
			return true
		}
	}
	return false
}

// IsFilterable reports whether a column gets a filter control.
func (b *Builder) IsFilterable(modelName, fieldName string, p Props) bool {
	var attr Bool
	if f := b.lookupField(modelName, fieldName); f != nil {
		attr = f.Filterable
	}
	ok := attr.resolve(Context{
		Schema:      b,
		ModelName:   modelName,
		FieldName:   fieldName,
		Data:        p.Data,
		CustomProps: p.CustomProps,
	}, true)
	if !ok {
		return false
	}
	typ := b.Type(modelName, fieldName)
	return typ != "" && !slices.Contains(unfilterable, typ)
}

// IsTableFilterable reports whether any column in p.FieldOrder is
// filterable, unless the model turns filtering off.
func (b *Builder) IsTableFilterable(modelName string, p Props) bool {
	var attr Bool
	if m := b.doc[modelName]; m != nil {
		attr = m.Filterable
	}
	ctx := Context{Schema: b, ModelName: modelName, Data: p.Data, CustomProps: p.CustomProps}
	if !attr.resolve(ctx, true) {
		return false
	}
	for _, fieldName := range p.FieldOrder {
		if b.IsFilterable(modelName, fieldName, p) {
			return true
		}
	}
	return false
}

// ShownFields filters the model's field order by the attribute kind names.
// Create and detail forms show everything but "id" by default; every other
// kind is opt-in.
func (b *Builder) ShownFields(modelName string, kind ShowKind, p Props) []string {
	shown := []string{}
	m := b.doc[modelName]
	if m == nil {
		return shown
	}
	for _, fieldName := range m.FieldOrder {
		attr, def := showAttr(m.Fields[fieldName], kind, fieldName)
		ctx := Context{
			Schema:      b,
			ModelName:   modelName,
			FieldName:   fieldName,
			Node:        p.Node,
			Data:        p.Data,
			CustomProps: p.CustomProps,
		}
		if attr.resolve(ctx, def) {
			shown = append(shown, fieldName)
		}
	}
	return shown
}

func showAttr(f *Field, kind ShowKind, fieldName string) (Bool, bool) {
	def := false
	if kind == KindShowCreate || kind == KindShowDetail {
		def = fieldName != "id"
	}
	if f == nil {
		return Bool{}, def
	}
	switch kind {
	case KindShowCreate:
		return f.ShowCreate, def
	case KindShowDetail:
		return f.ShowDetail, def
	case KindShowIndex:
		return f.ShowIndex, def
	case KindShowTooltip:
		return f.ShowTooltip, def
	case KindRequired:
		return f.Required, def
	case KindQueryIndex:
		return f.QueryIndex, def
	case KindQueryDetail:
		return f.QueryDetail, def
	}
	return BoolFrom(f.Extra[string(kind)]), def
}

// CreateFields returns the create form's field order.
func (b *Builder) CreateFields(modelName string, p Props) []string {
	return b.fieldOrder(modelName, KindShowCreate, func(m *Model) Strings { return m.CreateFieldOrder }, p)
}

// DetailFields returns the detail view's field order.
func (b *Builder) DetailFields(modelName string, p Props) []string {
	return b.fieldOrder(modelName, KindShowDetail, func(m *Model) Strings { return m.DetailFieldOrder }, p)
}

// IndexFields returns the index table's column order.
func (b *Builder) IndexFields(modelName string, p Props) []string {
	return b.fieldOrder(modelName, KindShowIndex, func(m *Model) Strings { return m.IndexFieldOrder }, p)
}

// TooltipFields returns the tooltip's field order.
func (b *Builder) TooltipFields(modelName string, p Props) []string {
	return b.fieldOrder(modelName, KindShowTooltip, func(m *Model) Strings { return m.TooltipFieldOrder }, p)
}

func (b *Builder) fieldOrder(modelName string, kind ShowKind, attr func(*Model) Strings, p Props) []string {
	def := b.ShownFields(modelName, kind, p)
	m := b.doc[modelName]
	if m == nil {
		return def
	}
	return attr(m).resolve(Context{
		Schema:       b,
		ModelName:    modelName,
		Node:         p.Node,
		Data:         p.Data,
		DefaultOrder: def,
		CustomProps:  p.CustomProps,
	}, def)
}

// OptionsOverride filters dropdown options through the field's
// DisabledDropDown callback. Without one, or when it returns nil, options
// come back unchanged.
func (b *Builder) OptionsOverride(modelName, fieldName string, options []Option, value any, p Props) []Option {
	fn := b.DropDownDisableCondition(modelName, fieldName)
	if fn == nil {
		return options
	}
	out := fn(Context{
		Schema:      b,
		ModelName:   modelName,
		FieldName:   fieldName,
		Node:        p.Node,
		Options:     options,
		Value:       value,
		CustomProps: p.CustomProps,
	})
	if out == nil {
		return options
	}
	return out
}
