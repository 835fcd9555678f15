package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayValue(t *testing.T) {
	b := New(testDocument())

	assert.Equal(t, "name", b.DisplayValue("DefaultsTest", Props{Node: Node{"__typename": "DefaultsTest", "name": "name"}}))
	assert.Equal(t, "foo", b.DisplayValue("PredefinedTest", Props{Node: Node{"__typename": "PredefinedTest", "foo": "foo"}}))
	assert.Equal(t, "bar", b.DisplayValue("ValidCasesTest", Props{Node: Node{"__typename": "ValidCasesTest", "bar": "bar"}}))
	assert.Equal(t, "", b.DisplayValue("DefaultsTest", Props{Node: Node{"name": 12}}))
	assert.Equal(t, "", b.DisplayValue("DefaultsTest", Props{}))
}

func TestFieldLabel(t *testing.T) {
	b := New(testDocument())

	assert.Equal(t, " id ", b.FieldLabel("DefaultsTest", "id", Props{}))
	assert.Equal(t, " name ", b.FieldLabel("DefaultsTest", "name", Props{}))
	assert.Equal(t, "ID #", b.FieldLabel("PredefinedTest", "id", Props{}))
	assert.Equal(t, "Field Name", b.FieldLabel("PredefinedTest", "name", Props{}))
	assert.Equal(t, "foobar", b.FieldLabel("PredefinedTest", "foo", Props{}))
	assert.Equal(t, "Created At", b.FieldLabel("DefaultsTest", "createdAt", Props{}))

	b = New(Document{"M": {Fields: map[string]*Field{
		"first_name": {FieldName: "first_name", DisplayName: StringCallback(func(ctx Context) string {
			return ctx.DefaultValue + "!"
		})},
	}}})
	assert.Equal(t, "First name!", b.FieldLabel("M", "first_name", Props{}))
}

func TestModelLabel(t *testing.T) {
	b := New(testDocument())

	assert.Equal(t, "Defaults Test", b.ModelLabel("DefaultsTest", Props{}))
	assert.Equal(t, "Titleize Test", b.ModelLabel("titleizeTest", Props{}))
	assert.Equal(t, "Predefined Test", b.ModelLabel("PredefinedTest", Props{}))
	assert.Equal(t, "Pre Test", b.ModelLabel("ValidCasesTest", Props{}))
	assert.Equal(t, "Invalid Cases Test", b.ModelLabel("InvalidCasesTest", Props{}))

	assert.Equal(t, "Defaults Tests", b.ModelLabelPlural("DefaultsTest", Props{}))
	assert.Equal(t, "Titleize Tests", b.ModelLabelPlural("titleizeTest", Props{}))
	assert.Equal(t, "Predefined Tests", b.ModelLabelPlural("PredefinedTest", Props{}))
	assert.Equal(t, "Pre Tests", b.ModelLabelPlural("ValidCasesTest", Props{}))
	assert.Equal(t, "Lease Spaces", b.ModelLabelPlural("LeaseSpace", Props{}))
}

func TestNoDataDisplayValue(t *testing.T) {
	doc := testDocument()
	doc["DefaultsTest"].Fields["name"].NoDataDisplayValue = StringValue("-")
	b := New(doc)

	assert.Equal(t, "N/A", b.NoDataDisplayValue("DefaultsTest", "id", Props{}))
	assert.Equal(t, "-", b.NoDataDisplayValue("DefaultsTest", "name", Props{}))
	assert.Equal(t, "N/A", b.NoDataDisplayValue("Missing", "x", Props{}))
}

func TestModelFlags(t *testing.T) {
	b := New(testDocument())

	assert.True(t, b.HasIndex("DefaultsTest"))
	assert.False(t, b.HasIndex("PredefinedTest"))
	assert.True(t, b.HasIndex("ValidCasesTest"))
	assert.True(t, b.HasDetail("DefaultsTest"))
	assert.False(t, b.Singleton("DefaultsTest"))
	assert.False(t, b.Searchable("DefaultsTest"))
	assert.True(t, b.HasIndex("Missing"))

	b = New(Document{"Settings": {Singleton: BoolValue(true), Searchable: BoolValue(true), HasDetail: BoolFrom(1)}})
	assert.True(t, b.Singleton("Settings"))
	assert.True(t, b.Searchable("Settings"))
	assert.False(t, b.HasDetail("Settings"))
}

func TestTableLinkField(t *testing.T) {
	b := New(Document{
		"Explicit": {TableLinkField: "title"},
		"Implicit": {},
	})

	got, ok := b.TableLinkField("Explicit", nil)
	assert.True(t, ok)
	assert.Equal(t, "title", got)

	got, ok = b.TableLinkField("Implicit", []string{"id", "name"})
	assert.True(t, ok)
	assert.Equal(t, "name", got)

	_, ok = b.TableLinkField("Implicit", []string{"id"})
	assert.False(t, ok)
}

func TestFieldGetters(t *testing.T) {
	doc := Document{"Ticket": {
		Actions: map[string]any{"close": true},
		Fields: map[string]*Field{
			"status": {
				FieldName:   "status",
				Type:        ScalarType(TypeEnum),
				Choices:     map[string]string{"open": "Open", "closed": "Closed"},
				ChoiceOrder: []string{"open", "closed"},
				FieldHelp:   "Current state",
				Collapsable: BoolValue(false),
			},
			"watchers": {
				FieldName: "watchers",
				Type:      FieldType{Rel: &Relationship{Type: ManyToMany, Target: "User", TableFields: []string{"email"}}},
			},
			"title": stringField("title"),
		},
	}}
	b := New(doc)

	label, ok := b.EnumLabel("Ticket", "status", "open")
	assert.True(t, ok)
	assert.Equal(t, "Open", label)
	_, ok = b.EnumLabel("Ticket", "status", "")
	assert.False(t, ok)
	_, ok = b.EnumLabel("Ticket", "missing", "open")
	assert.False(t, ok)

	assert.Equal(t, []string{"open", "closed"}, b.EnumChoiceOrder("Ticket", "status"))
	assert.Equal(t, []string{}, b.EnumChoiceOrder("Ticket", "title"))
	assert.Equal(t, map[string]string{}, b.EnumChoices("Ticket", "title"))
	assert.Len(t, b.EnumChoices("Ticket", "status"), 2)

	help, ok := b.FieldHelpText("Ticket", "status")
	assert.True(t, ok)
	assert.Equal(t, "Current state", help)
	_, ok = b.FieldHelpText("Ticket", "title")
	assert.False(t, ok)

	assert.False(t, b.Collapsable("Ticket", "status"))
	assert.True(t, b.Collapsable("Ticket", "title"))

	assert.Equal(t, []string{"email"}, b.TableFields("Ticket", "watchers"))
	assert.Equal(t, []string{}, b.TableFields("Ticket", "title"))

	assert.Equal(t, TypeEnum, b.Type("Ticket", "status"))
	assert.Equal(t, ManyToMany, b.Type("Ticket", "watchers"))
	assert.Equal(t, "", b.Type("Ticket", "missing"))

	assert.Equal(t, map[string]any{"close": true}, b.Actions("Ticket"))
	assert.Nil(t, b.Actions("Missing"))
	assert.Len(t, b.Fields("Ticket"), 3)
	assert.Nil(t, b.Fields("Missing"))
	assert.Same(t, doc["Ticket"].Fields["title"], b.Field("Ticket", "title"))
}

func TestModelAttribute(t *testing.T) {
	doc := testDocument()
	b := New(doc)

	assert.Equal(t, "PredefinedTest", b.ModelAttribute("PredefinedTest", "modelName"))
	assert.Equal(t, BoolValue(false), b.ModelAttribute("PredefinedTest", "hasIndex"))
	assert.Nil(t, b.ModelAttribute("DefaultsTest", "hasIndex"))
	assert.Equal(t, "name", b.ModelAttribute("DefaultsTest", "tableLinkField"))
	assert.Equal(t, []string{"name"}, b.ModelAttribute("DefaultsTest", "fieldOrder"))
	assert.Equal(t, "titleize test", b.ModelAttribute("InvalidCasesTest", "fieldName"))
	assert.Nil(t, b.ModelAttribute("Missing", "modelName"))
}

func TestDisableConditions(t *testing.T) {
	fn := func(Context) []Option { return nil }
	b := New(Document{"M": {Fields: map[string]*Field{
		"f": {FieldName: "f", Disabled: BoolValue(true), DisabledDropDown: fn,
			DisplayConditions: DisplayConditions{Index: BoolValue(false)}},
	}}})

	v, ok := b.FieldDisableCondition("M", "f").Literal()
	assert.True(t, ok)
	assert.True(t, v)
	assert.NotNil(t, b.DropDownDisableCondition("M", "f"))
	assert.Nil(t, b.DropDownDisableCondition("M", "x"))
	assert.False(t, b.FieldDisableCondition("M", "x").IsSet())

	idx, _ := b.FieldConditions("M", "f").Index.Literal()
	assert.False(t, idx)
	assert.False(t, b.FieldConditions("M", "x").Index.IsSet())
}
