package schema

import (
	"github.com/matthewbaird/uischema/internal/merge"
)

// ModelDefaultsFunc computes default attributes for a model. It sees the
// model as it was before the merge.
type ModelDefaultsFunc func(b *Builder, m *Model) *Model

// FieldDefaultsFunc computes default attributes for a field.
type FieldDefaultsFunc func(b *Builder, m *Model, f *Field) *Field

// MergeSchema merges remote into the current document. With override the
// remote leaves win; without it the current ones do. Keys present on one
// side only are kept either way.
func (b *Builder) MergeSchema(remote Document, override bool) {
	p := merge.PolicyFor(override)
	next := merge.Maps(b.doc, remote, func(l, r *Model) *Model {
		return mergeModels(p, l, r)
	})
	if next == nil {
		next = Document{}
	}
	b.replace(next, "merge schema", p)
}

// MergeDefaultModelAttr merges the output of fn into every model.
func (b *Builder) MergeDefaultModelAttr(fn ModelDefaultsFunc, override bool) {
	p := merge.PolicyFor(override)
	next := make(Document, len(b.doc))
	for name, m := range b.doc {
		next[name] = mergeModels(p, m, fn(b, m))
	}
	b.replace(next, "merge default model attributes", p)
}

// MergeDefaultFieldAttr merges the output of fn into every field of every
// model.
func (b *Builder) MergeDefaultFieldAttr(fn FieldDefaultsFunc, override bool) {
	p := merge.PolicyFor(override)
	next := make(Document, len(b.doc))
	for name, m := range b.doc {
		if m == nil {
			next[name] = nil
			continue
		}
		fields := make(map[string]*Field, len(m.Fields))
		for fieldName, f := range m.Fields {
			fields[fieldName] = mergeFields(p, f, fn(b, m, f))
		}
		cp := *m
		cp.Fields = fields
		next[name] = &cp
	}
	b.replace(next, "merge default field attributes", p)
}

func pickAttr[T interface{ IsSet() bool }](p merge.Policy, l, r T) T {
	return merge.Pick(p, l, r, l.IsSet(), r.IsSet())
}

func pickString(p merge.Policy, l, r string) string {
	return merge.Pick(p, l, r, l != "", r != "")
}

func pickSlice(p merge.Policy, l, r []string) []string {
	return merge.Pick(p, l, r, l != nil, r != nil)
}

func mergeModels(p merge.Policy, l, r *Model) *Model {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return &Model{
		ModelName: pickString(p, l.ModelName, r.ModelName),
		Fields: merge.Maps(l.Fields, r.Fields, func(lf, rf *Field) *Field {
			return mergeFields(p, lf, rf)
		}),
		FieldOrder: pickSlice(p, l.FieldOrder, r.FieldOrder),

		DisplayName:       pickAttr(p, l.DisplayName, r.DisplayName),
		DisplayNamePlural: pickAttr(p, l.DisplayNamePlural, r.DisplayNamePlural),
		DisplayField:      pickAttr(p, l.DisplayField, r.DisplayField),

		Creatable:  pickAttr(p, l.Creatable, r.Creatable),
		Deletable:  pickAttr(p, l.Deletable, r.Deletable),
		Sortable:   pickAttr(p, l.Sortable, r.Sortable),
		Filterable: pickAttr(p, l.Filterable, r.Filterable),

		HasIndex:   pickAttr(p, l.HasIndex, r.HasIndex),
		HasDetail:  pickAttr(p, l.HasDetail, r.HasDetail),
		Singleton:  pickAttr(p, l.Singleton, r.Singleton),
		Searchable: pickAttr(p, l.Searchable, r.Searchable),

		TableLinkField: pickString(p, l.TableLinkField, r.TableLinkField),

		CreateFieldOrder:  pickAttr(p, l.CreateFieldOrder, r.CreateFieldOrder),
		DetailFieldOrder:  pickAttr(p, l.DetailFieldOrder, r.DetailFieldOrder),
		IndexFieldOrder:   pickAttr(p, l.IndexFieldOrder, r.IndexFieldOrder),
		TooltipFieldOrder: pickAttr(p, l.TooltipFieldOrder, r.TooltipFieldOrder),

		Components:   merge.Untyped(p, l.Components, r.Components),
		Actions:      merge.Values(p, l.Actions, r.Actions),
		QueryName:    pickString(p, l.QueryName, r.QueryName),
		QueryAllName: pickString(p, l.QueryAllName, r.QueryAllName),
		Extra:        merge.Untyped(p, l.Extra, r.Extra),
	}
}

func mergeFields(p merge.Policy, l, r *Field) *Field {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return &Field{
		FieldName: pickString(p, l.FieldName, r.FieldName),
		Type:      mergeTypes(p, l.Type, r.Type),

		Editable:    pickAttr(p, l.Editable, r.Editable),
		Sortable:    pickAttr(p, l.Sortable, r.Sortable),
		Filterable:  pickAttr(p, l.Filterable, r.Filterable),
		ShowCreate:  pickAttr(p, l.ShowCreate, r.ShowCreate),
		ShowDetail:  pickAttr(p, l.ShowDetail, r.ShowDetail),
		ShowIndex:   pickAttr(p, l.ShowIndex, r.ShowIndex),
		ShowTooltip: pickAttr(p, l.ShowTooltip, r.ShowTooltip),
		Required:    pickAttr(p, l.Required, r.Required),
		QueryIndex:  pickAttr(p, l.QueryIndex, r.QueryIndex),
		QueryDetail: pickAttr(p, l.QueryDetail, r.QueryDetail),
		Disabled:    pickAttr(p, l.Disabled, r.Disabled),

		DisplayName:        pickAttr(p, l.DisplayName, r.DisplayName),
		NoDataDisplayValue: pickAttr(p, l.NoDataDisplayValue, r.NoDataDisplayValue),

		DisabledDropDown: merge.Pick(p, l.DisabledDropDown, r.DisabledDropDown,
			l.DisabledDropDown != nil, r.DisabledDropDown != nil),

		DisplayConditions: DisplayConditions{
			Index:  pickAttr(p, l.DisplayConditions.Index, r.DisplayConditions.Index),
			Detail: pickAttr(p, l.DisplayConditions.Detail, r.DisplayConditions.Detail),
			Create: pickAttr(p, l.DisplayConditions.Create, r.DisplayConditions.Create),
		},

		Choices:     merge.Leaves(p, l.Choices, r.Choices),
		ChoiceOrder: pickSlice(p, l.ChoiceOrder, r.ChoiceOrder),
		FieldHelp:   pickString(p, l.FieldHelp, r.FieldHelp),
		Collapsable: pickAttr(p, l.Collapsable, r.Collapsable),

		Components: merge.Untyped(p, l.Components, r.Components),
		Extra:      merge.Untyped(p, l.Extra, r.Extra),
	}
}

// mergeTypes merges two relationships member by member; any other pair is
// a leaf conflict.
func mergeTypes(p merge.Policy, l, r FieldType) FieldType {
	if l.Rel == nil || r.Rel == nil {
		return merge.Pick(p, l, r, !l.IsZero(), !r.IsZero())
	}
	return FieldType{Rel: &Relationship{
		Type:        pickString(p, l.Rel.Type, r.Rel.Type),
		Target:      pickString(p, l.Rel.Target, r.Rel.Target),
		Backref:     pickString(p, l.Rel.Backref, r.Rel.Backref),
		TableFields: pickSlice(p, l.Rel.TableFields, r.Rel.TableFields),
	}}
}
