package schema

import (
	"slices"

	"github.com/matthewbaird/uischema/internal/humanize"
)

const (
	defaultDisplayField       = "name"
	defaultNoDataDisplayValue = "N/A"
)

// Model returns the named model, or nil.
func (b *Builder) Model(modelName string) *Model {
	return b.doc[modelName]
}

// ModelAttribute returns a model attribute by its document key. Unset
// attributes and missing models give nil; unknown keys are read from Extra.
func (b *Builder) ModelAttribute(modelName, name string) any {
	m := b.doc[modelName]
	if m == nil {
		return nil
	}
	attrs := map[string]interface{ IsSet() bool }{
		"displayName":       m.DisplayName,
		"displayNamePlural": m.DisplayNamePlural,
		"displayField":      m.DisplayField,
		"creatable":         m.Creatable,
		"deletable":         m.Deletable,
		"sortable":          m.Sortable,
		"filterable":        m.Filterable,
		"hasIndex":          m.HasIndex,
		"hasDetail":         m.HasDetail,
		"singleton":         m.Singleton,
		"searchable":        m.Searchable,
		"createFieldOrder":  m.CreateFieldOrder,
		"detailFieldOrder":  m.DetailFieldOrder,
		"indexFieldOrder":   m.IndexFieldOrder,
		"tooltipFieldOrder": m.TooltipFieldOrder,
	}
	if a, ok := attrs[name]; ok {
		if !a.IsSet() {
			return nil
		}
		return a
	}
	switch name {
	case "modelName":
		return nonEmpty(m.ModelName)
	case "fields":
		return m.Fields
	case "fieldOrder":
		return m.FieldOrder
	case "tableLinkField":
		return nonEmpty(m.TableLinkField)
	case "components":
		return m.Components
	case "actions":
		return m.Actions
	case "queryName":
		return nonEmpty(m.QueryName)
	case "queryAllName":
		return nonEmpty(m.QueryAllName)
	}
	return m.Extra[name]
}

func nonEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Actions returns the model's opaque actions value.
func (b *Builder) Actions(modelName string) any {
	if m := b.doc[modelName]; m != nil {
		return m.Actions
	}
	return nil
}

// Fields returns the model's fields, or nil.
func (b *Builder) Fields(modelName string) map[string]*Field {
	if m := b.doc[modelName]; m != nil {
		return m.Fields
	}
	return nil
}

// Field returns one field, or nil.
func (b *Builder) Field(modelName, fieldName string) *Field {
	return b.lookupField(modelName, fieldName)
}

// Type returns the field's type tag, or "" when the field is missing.
func (b *Builder) Type(modelName, fieldName string) string {
	f := b.lookupField(modelName, fieldName)
	if f == nil {
		return ""
	}
	return f.Type.Name()
}

// EnumLabel returns the label of an enum value.
func (b *Builder) EnumLabel(modelName, fieldName, value string) (string, bool) {
	f := b.lookupField(modelName, fieldName)
	if f == nil || value == "" {
		return "", false
	}
	label, ok := f.Choices[value]
	return label, ok
}

// DisplayValue returns the text that represents node in links and
// dropdowns: the model's displayField callback result, or the node's value
// under the displayField name ("name" by default).
func (b *Builder) DisplayValue(modelName string, p Props) string {
	var attr String
	if m := b.doc[modelName]; m != nil {
		attr = m.DisplayField
	}
	if attr.IsCallback() {
		return attr.fn(Context{
			Schema:      b,
			ModelName:   modelName,
			Node:        p.Node,
			CustomProps: p.CustomProps,
		})
	}
	name := attr.resolve(Context{}, defaultDisplayField)
	s, _ := p.Node[name].(string)
	return s
}

// FieldLabel returns the field's display name, defaulting to the humanized
// field name.
func (b *Builder) FieldLabel(modelName, fieldName string, p Props) string {
	def := humanize.Field(fieldName)
	f := b.lookupField(modelName, fieldName)
	if f == nil {
		return def
	}
	return f.DisplayName.resolve(Context{
		Schema:       b,
		ModelName:    modelName,
		FieldName:    fieldName,
		Node:         p.Node,
		Data:         p.Data,
		DefaultValue: def,
		CustomProps:  p.CustomProps,
	}, def)
}

// ModelLabel returns the model's display name, defaulting to the titleized
// model name.
func (b *Builder) ModelLabel(modelName string, p Props) string {
	def := humanize.Model(modelName)
	m := b.doc[modelName]
	if m == nil {
		return def
	}
	return m.DisplayName.resolve(b.labelContext(modelName, def, p), def)
}

// ModelLabelPlural returns the model's plural display name.
func (b *Builder) ModelLabelPlural(modelName string, p Props) string {
	def := humanize.ModelPlural(modelName)
	m := b.doc[modelName]
	if m == nil {
		return def
	}
	return m.DisplayNamePlural.resolve(b.labelContext(modelName, def, p), def)
}

func (b *Builder) labelContext(modelName, def string, p Props) Context {
	return Context{
		Schema:       b,
		ModelName:    modelName,
		Node:         p.Node,
		Data:         p.Data,
		DefaultValue: def,
		CustomProps:  p.CustomProps,
	}
}

// NoDataDisplayValue returns what to show for an empty value, "N/A" by default.
func (b *Builder) NoDataDisplayValue(modelName, fieldName string, p Props) string {
	f := b.lookupField(modelName, fieldName)
	if f == nil {
		return defaultNoDataDisplayValue
	}
	return f.NoDataDisplayValue.resolve(Context{
		Schema:       b,
		ModelName:    modelName,
		FieldName:    fieldName,
		Node:         p.Node,
		DefaultValue: defaultNoDataDisplayValue,
		CustomProps:  p.CustomProps,
	}, defaultNoDataDisplayValue)
}

// FieldConditions returns the field's per-view display conditions.
func (b *Builder) FieldConditions(modelName, fieldName string) DisplayConditions {
	if f := b.lookupField(modelName, fieldName); f != nil {
		return f.DisplayConditions
	}
	return DisplayConditions{}
}

// FieldDisableCondition returns the field's raw disabled attribute.
func (b *Builder) FieldDisableCondition(modelName, fieldName string) Bool {
	if f := b.lookupField(modelName, fieldName); f != nil {
		return f.Disabled
	}
	return Bool{}
}

// DropDownDisableCondition returns the field's dropdown filter, or nil.
func (b *Builder) DropDownDisableCondition(modelName, fieldName string) OptionsFunc {
	if f := b.lookupField(modelName, fieldName); f != nil {
		return f.DisabledDropDown
	}
	return nil
}

// FieldHelpText returns the field's help text, if it has any.
func (b *Builder) FieldHelpText(modelName, fieldName string) (string, bool) {
	f := b.lookupField(modelName, fieldName)
	if f == nil || f.FieldHelp == "" {
		return "", false
	}
	return f.FieldHelp, true
}

// RequiredFields lists the required fields in field order.
func (b *Builder) RequiredFields(modelName string) []string {
	return b.ShownFields(modelName, KindRequired, Props{})
}

// HasIndex reports whether the model has a list page. Defaults to true.
func (b *Builder) HasIndex(modelName string) bool {
	return b.modelFlag(modelName, func(m *Model) Bool { return m.HasIndex }, true)
}

// HasDetail reports whether the model has a detail page. Defaults to true.
func (b *Builder) HasDetail(modelName string) bool {
	return b.modelFlag(modelName, func(m *Model) Bool { return m.HasDetail }, true)
}

// Singleton reports whether the model has exactly one row.
func (b *Builder) Singleton(modelName string) bool {
	return b.modelFlag(modelName, func(m *Model) Bool { return m.Singleton }, false)
}

// Searchable reports whether the list page offers search.
func (b *Builder) Searchable(modelName string) bool {
	return b.modelFlag(modelName, func(m *Model) Bool { return m.Searchable }, false)
}

func (b *Builder) modelFlag(modelName string, attr func(*Model) Bool, def bool) bool {
	m := b.doc[modelName]
	if m == nil {
		return def
	}
	return attr(m).literalOr(def)
}

// EnumChoices returns the field's value-to-label map, empty by default.
func (b *Builder) EnumChoices(modelName, fieldName string) map[string]string {
	if f := b.lookupField(modelName, fieldName); f != nil && f.Choices != nil {
		return f.Choices
	}
	return map[string]string{}
}

// EnumChoiceOrder returns the display order of the field's choices.
func (b *Builder) EnumChoiceOrder(modelName, fieldName string) []string {
	if f := b.lookupField(modelName, fieldName); f != nil && f.ChoiceOrder != nil {
		return f.ChoiceOrder
	}
	return []string{}
}

// Collapsable reports whether the field may be collapsed in the detail view.
func (b *Builder) Collapsable(modelName, fieldName string) bool {
	f := b.lookupField(modelName, fieldName)
	if f == nil {
		return true
	}
	return f.Collapsable.literalOr(true)
}

// TableLinkField returns the field that links a table row to its detail
// view: the model's explicit choice, else "name" when fieldOrder has it.
func (b *Builder) TableLinkField(modelName string, fieldOrder []string) (string, bool) {
	if m := b.doc[modelName]; m != nil && m.TableLinkField != "" {
		return m.TableLinkField, true
	}
	if slices.Contains(fieldOrder, defaultDisplayField) {
		return defaultDisplayField, true
	}
	return "", false
}

// TableFields returns the columns shown for a relationship field's table.
func (b *Builder) TableFields(modelName, fieldName string) []string {
	f := b.lookupField(modelName, fieldName)
	if f == nil || f.Type.Rel == nil || f.Type.Rel.TableFields == nil {
		return []string{}
	}
	return f.Type.Rel.TableFields
}
