package schema

import (
	"encoding/json"
	"fmt"
)

// Document is a complete schema, keyed by model name.
type Document map[string]*Model

// Model describes one model of the admin UI.
type Model struct {
	ModelName  string
	Fields     map[string]*Field
	FieldOrder []string

	DisplayName       String
	DisplayNamePlural String
	DisplayField      String

	Creatable  Bool
	Deletable  Bool
	Sortable   Bool
	Filterable Bool

	// Read as literals only.
	HasIndex   Bool
	HasDetail  Bool
	Singleton  Bool
	Searchable Bool

	TableLinkField string

	CreateFieldOrder  Strings
	DetailFieldOrder  Strings
	IndexFieldOrder   Strings
	TooltipFieldOrder Strings

	Components   map[string]any
	Actions      any
	QueryName    string
	QueryAllName string

	// Extra holds keys the document carries that the resolver has no use for.
	Extra map[string]any
}

// Field describes one field of a model.
type Field struct {
	FieldName string
	Type      FieldType

	Editable    Bool
	Sortable    Bool
	Filterable  Bool
	ShowCreate  Bool
	ShowDetail  Bool
	ShowIndex   Bool
	ShowTooltip Bool
	Required    Bool
	QueryIndex  Bool
	QueryDetail Bool
	Disabled    Bool

	DisplayName        String
	NoDataDisplayValue String

	// DisabledDropDown filters dropdown options. A nil result means
	// "no override", which callers treat the same as a nil func.
	DisabledDropDown OptionsFunc

	DisplayConditions DisplayConditions

	Choices     map[string]string
	ChoiceOrder []string
	FieldHelp   string
	Collapsable Bool

	Components map[string]any
	Extra      map[string]any
}

// DisplayConditions gate a field per view.
type DisplayConditions struct {
	Index  Bool `json:"index"`
	Detail Bool `json:"detail"`
	Create Bool `json:"create"`
}

// Option is one dropdown choice.
type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// OptionsFunc rewrites the options of a dropdown.
type OptionsFunc func(Context) []Option

// Relationship is the type of a field that points at another model.
type Relationship struct {
	Type        string   `json:"type"`
	Target      string   `json:"target,omitempty"`
	Backref     string   `json:"backref,omitempty"`
	TableFields []string `json:"tableFields,omitempty"`
}

// FieldType is either a scalar input-type tag or a relationship.
type FieldType struct {
	Scalar string
	Rel    *Relationship
}

// ScalarType returns a scalar field type.
func ScalarType(tag string) FieldType {
	return FieldType{Scalar: tag}
}

// RelType returns a relationship field type.
func RelType(kind, target string) FieldType {
	return FieldType{Rel: &Relationship{Type: kind, Target: target}}
}

// IsRel reports whether the type is a relationship.
func (t FieldType) IsRel() bool { return t.Rel != nil }

// IsZero reports whether no type was given.
func (t FieldType) IsZero() bool { return t.Rel == nil && t.Scalar == "" }

// Name returns the type tag: the relationship kind or the scalar tag.
func (t FieldType) Name() string {
	if t.Rel != nil {
		return t.Rel.Type
	}
	return t.Scalar
}

// UnmarshalJSON accepts either a string tag or a relationship object.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*t = FieldType{Scalar: v}
	case map[string]any:
		var rel Relationship
		if err := json.Unmarshal(data, &rel); err != nil {
			return fmt.Errorf("relationship: %w", err)
		}
		*t = FieldType{Rel: &rel}
	default:
		*t = FieldType{}
	}
	return nil
}

// MarshalJSON writes the string tag or the relationship object.
func (t FieldType) MarshalJSON() ([]byte, error) {
	if t.Rel != nil {
		return json.Marshal(t.Rel)
	}
	return json.Marshal(t.Scalar)
}

// UnmarshalJSON decodes a model; keys it does not know go to Extra.
func (m *Model) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	extra, err := decodeKnown(raw, map[string]any{
		"modelName":         &m.ModelName,
		"fields":            &m.Fields,
		"fieldOrder":        &m.FieldOrder,
		"displayName":       &m.DisplayName,
		"displayNamePlural": &m.DisplayNamePlural,
		"displayField":      &m.DisplayField,
		"creatable":         &m.Creatable,
		"deletable":         &m.Deletable,
		"sortable":          &m.Sortable,
		"filterable":        &m.Filterable,
		"hasIndex":          &m.HasIndex,
		"hasDetail":         &m.HasDetail,
		"singleton":         &m.Singleton,
		"searchable":        &m.Searchable,
		"tableLinkField":    &m.TableLinkField,
		"createFieldOrder":  &m.CreateFieldOrder,
		"detailFieldOrder":  &m.DetailFieldOrder,
		"indexFieldOrder":   &m.IndexFieldOrder,
		"tooltipFieldOrder": &m.TooltipFieldOrder,
		"components":        &m.Components,
		"actions":           &m.Actions,
		"queryName":         &m.QueryName,
		"queryAllName":      &m.QueryAllName,
	})
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	m.Extra = extra
	return nil
}

// UnmarshalJSON decodes a field; keys it does not know go to Extra.
func (f *Field) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	extra, err := decodeKnown(raw, map[string]any{
		"fieldName":          &f.FieldName,
		"type":               &f.Type,
		"editable":           &f.Editable,
		"sortable":           &f.Sortable,
		"filterable":         &f.Filterable,
		"showCreate":         &f.ShowCreate,
		"showDetail":         &f.ShowDetail,
		"showIndex":          &f.ShowIndex,
		"showTooltip":        &f.ShowTooltip,
		"required":           &f.Required,
		"queryIndex":         &f.QueryIndex,
		"queryDetail":        &f.QueryDetail,
		"disabled":           &f.Disabled,
		"displayName":        &f.DisplayName,
		"noDataDisplayValue": &f.NoDataDisplayValue,
		"displayConditions":  &f.DisplayConditions,
		"choices":            &f.Choices,
		"choiceOrder":        &f.ChoiceOrder,
		"fieldHelp":          &f.FieldHelp,
		"collapsable":        &f.Collapsable,
		"components":         &f.Components,
	})
	if err != nil {
		return fmt.Errorf("field: %w", err)
	}
	f.Extra = extra
	return nil
}

func decodeKnown(raw map[string]json.RawMessage, targets map[string]any) (map[string]any, error) {
	var extra map[string]any
	for key, msg := range raw {
		if target, ok := targets[key]; ok {
			if err := json.Unmarshal(msg, target); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			continue
		}
		var v any
		if err := json.Unmarshal(msg, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = v
	}
	return extra, nil
}

// Node is one row of runtime data.
type Node map[string]any

// TypeName returns the __typename of the row, if any.
func (n Node) TypeName() string {
	s, _ := n["__typename"].(string)
	return s
}

// FormStack is the nested-form state of a create/edit flow.
type FormStack struct {
	Stack           []FormEntry
	Index           int
	OriginPath      []string
	OriginModelName string
	OriginFieldName string
	OriginNode      Node
}

// FormEntry is one level of a FormStack.
type FormEntry struct {
	ModelName string
	Fields    map[string]FormValue
}

// FormValue is the form state of one field. Items holds the entries of a
// to-many field.
type FormValue struct {
	Value    any
	Disabled bool
	Items    []FormValue
}

// current returns the entry at Index, if it exists.
func (s FormStack) current() (FormEntry, bool) {
	if s.Index < 0 || s.Index >= len(s.Stack) {
		return FormEntry{}, false
	}
	return s.Stack[s.Index], true
}

// Context is what callbacks receive. Only the members relevant to the
// operation are filled in.
type Context struct {
	Schema    *Builder
	ModelName string
	FieldName string

	Node       Node
	ParentNode Node
	Data       []Node

	DefaultValue   string
	DefaultOrder   []string
	DefaultDisable bool

	Options []Option
	Value   any

	CustomProps map[string]any
}

// Props carries the optional runtime inputs of a read.
type Props struct {
	Node        Node
	ParentNode  Node
	Data        []Node
	FieldOrder  []string
	CustomProps map[string]any
}
