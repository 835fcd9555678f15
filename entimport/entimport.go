// Package entimport derives a base schema document from ent schema
// definitions.
//
// Each ent schema becomes a model named after its Go type. Fields keep ent's
// order behind a leading "id"; edges follow as relationship fields whose
// cardinality is worked out the way ent's own code generator does it.
package entimport

import (
	"fmt"
	"reflect"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/ettle/strcase"

	"github.com/matthewbaird/uischema/schema"
)

// ent's default varchar size. Longer strings are edited as text areas.
const maxStringSize = 255

type entity struct {
	name   string
	view   bool
	fields []*field.Descriptor
	edges  []*edge.Descriptor
}

// Build converts ent schemas into a document. Schemas may reference each
// other through edges; an inverse edge whose reference cannot be found is
// an error.
func Build(schemas ...ent.Interface) (schema.Document, error) {
	entities := make(map[string]*entity, len(schemas))
	ordered := make([]*entity, 0, len(schemas))
	for _, s := range schemas {
		e, err := collect(s)
		if err != nil {
			return nil, err
		}
		if _, dup := entities[e.name]; dup {
			return nil, fmt.Errorf("entimport: duplicate schema %s", e.name)
		}
		entities[e.name] = e
		ordered = append(ordered, e)
	}

	doc := make(schema.Document, len(ordered))
	for _, e := range ordered {
		m, err := buildModel(e, entities)
		if err != nil {
			return nil, err
		}
		doc[e.name] = m
	}
	return doc, nil
}

// collect flattens a schema and its mixins: mixin fields come before the
// schema's own, mixin edges before its own.
func collect(s ent.Interface) (*entity, error) {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	_, view := s.(ent.Viewer)
	e := &entity{name: t.Name(), view: view}

	var fields []ent.Field
	var edges []ent.Edge
	for _, mx := range s.Mixin() {
		fields = append(fields, mx.Fields()...)
		edges = append(edges, mx.Edges()...)
	}
	fields = append(fields, s.Fields()...)
	edges = append(edges, s.Edges()...)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("entimport: %s.%s: %w", e.name, d.Name, d.Err)
		}
		e.fields = append(e.fields, d)
	}
	for _, ed := range edges {
		d := ed.Descriptor()
		// edge.To(...).From(...) yields the inverse with its assoc edge in Ref.
		if d.Inverse && d.Ref != nil {
			inv := *d
			inv.RefName = d.Ref.Name
			inv.Ref = nil
			e.edges = append(e.edges, d.Ref, &inv)
			continue
		}
		e.edges = append(e.edges, d)
	}
	return e, nil
}

func buildModel(e *entity, entities map[string]*entity) (*schema.Model, error) {
	m := &schema.Model{
		ModelName: e.name,
		Creatable: schema.BoolValue(!e.view),
		Deletable: schema.BoolValue(!e.view),
		Fields: map[string]*schema.Field{
			"id": {
				FieldName: "id",
				Type:      schema.ScalarType(schema.TypeID),
				Editable:  schema.BoolValue(false),
				ShowIndex: schema.BoolValue(true),
			},
		},
		FieldOrder: []string{"id"},
	}

	add := func(f *schema.Field) error {
		if _, dup := m.Fields[f.FieldName]; dup {
			return fmt.Errorf("entimport: %s: duplicate field %s", e.name, f.FieldName)
		}
		if e.view {
			f.Editable = schema.BoolValue(false)
		}
		m.Fields[f.FieldName] = f
		m.FieldOrder = append(m.FieldOrder, f.FieldName)
		return nil
	}

	for _, d := range e.fields {
		if err := add(fieldFor(d)); err != nil {
			return nil, err
		}
	}
	for _, d := range e.edges {
		kind, backref, err := cardinality(e, d, entities)
		if err != nil {
			return nil, err
		}
		if err := add(edgeFor(d, kind, backref)); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func fieldFor(d *field.Descriptor) *schema.Field {
	f := &schema.Field{
		FieldName: strcase.ToCamel(d.Name),
		Type:      schema.ScalarType(scalarType(d)),
		Editable:  schema.BoolValue(!d.Immutable),
		Required:  schema.BoolValue(!d.Optional && d.Default == nil),
		ShowIndex: schema.BoolValue(!d.Sensitive),
		FieldHelp: d.Comment,
	}
	if d.Sensitive {
		f.ShowDetail = schema.BoolValue(false)
		f.ShowTooltip = schema.BoolValue(false)
	}
	if d.Deprecated {
		f.ShowCreate = schema.BoolValue(false)
	}
	if len(d.Enums) > 0 {
		f.Choices = make(map[string]string, len(d.Enums))
		for _, en := range d.Enums {
			f.Choices[en.V] = schema.HumanizeField(en.N)
			f.ChoiceOrder = append(f.ChoiceOrder, en.V)
		}
	}
	return f
}

func scalarType(d *field.Descriptor) string {
	if d.Info == nil {
		return schema.TypeString
	}
	switch t := d.Info.Type; {
	case t == field.TypeBool:
		return schema.TypeBoolean
	case t == field.TypeTime:
		return schema.TypeDate
	case t == field.TypeEnum:
		return schema.TypeEnum
	case t == field.TypeString && d.Sensitive:
		return schema.TypePassword
	case t == field.TypeString && d.Size > maxStringSize:
		return schema.TypeText
	case t.Integer():
		return schema.TypeInt
	case t.Float():
		return schema.TypeFloat
	case t == field.TypeBytes:
		return schema.TypeFile
	default:
		return schema.TypeString
	}
}

func edgeFor(d *edge.Descriptor, kind, backref string) *schema.Field {
	f := &schema.Field{
		FieldName: strcase.ToCamel(d.Name),
		Type: schema.FieldType{Rel: &schema.Relationship{
			Type:    kind,
			Target:  d.Type,
			Backref: strcase.ToCamel(backref),
		}},
		Editable:  schema.BoolValue(!d.Immutable),
		Required:  schema.BoolValue(d.Required),
		FieldHelp: d.Comment,
	}
	return f
}

// cardinality returns the relationship kind of d, declared on e, and the
// name of the edge on the other side, if there is one.
func cardinality(e *entity, d *edge.Descriptor, entities map[string]*entity) (string, string, error) {
	if d.Inverse {
		target, ok := entities[d.Type]
		if !ok {
			return "", "", fmt.Errorf("entimport: %s.%s: unknown schema %s", e.name, d.Name, d.Type)
		}
		assoc := target.assoc(d.RefName)
		if assoc == nil {
			return "", "", fmt.Errorf("entimport: %s.%s: no edge %q on %s", e.name, d.Name, d.RefName, d.Type)
		}
		switch {
		case assoc.Unique && d.Unique:
			return schema.OneToOne, assoc.Name, nil
		case !assoc.Unique && d.Unique:
			return schema.ManyToOne, assoc.Name, nil
		case assoc.Unique && !d.Unique:
			return schema.OneToMany, assoc.Name, nil
		default:
			return schema.ManyToMany, assoc.Name, nil
		}
	}

	if target, ok := entities[d.Type]; ok {
		if inv := target.inverseOf(e.name, d.Name); inv != nil {
			switch {
			case d.Unique && inv.Unique:
				return schema.OneToOne, inv.Name, nil
			case !d.Unique && inv.Unique:
				return schema.OneToMany, inv.Name, nil
			case d.Unique && !inv.Unique:
				return schema.ManyToOne, inv.Name, nil
			default:
				return schema.ManyToMany, inv.Name, nil
			}
		}
	}

	switch self := d.Type == e.name; {
	case self && d.Unique:
		return schema.OneToOne, "", nil
	case self:
		return schema.ManyToMany, "", nil
	case d.Unique:
		return schema.ManyToOne, "", nil
	default:
		return schema.OneToMany, "", nil
	}
}

func (e *entity) assoc(name string) *edge.Descriptor {
	for _, d := range e.edges {
		if !d.Inverse && d.Name == name {
			return d
		}
	}
	return nil
}

func (e *entity) inverseOf(owner, name string) *edge.Descriptor {
	for _, d := range e.edges {
		if d.Inverse && d.Type == owner && d.RefName == name {
			return d
		}
	}
	return nil
}
