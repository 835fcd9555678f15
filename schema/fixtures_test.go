package schema

func stringField(name string) *Field {
	return &Field{FieldName: name, Type: ScalarType(TypeString)}
}

func idAndName() map[string]*Field {
	return map[string]*Field{
		"id":   {FieldName: "id", Type: ScalarType(TypeString), DisplayName: StringValue(" id ")},
		"name": {FieldName: "name", Type: ScalarType(TypeString), DisplayName: StringValue(" name ")},
	}
}

// testDocument mirrors the models the admin UI exercises: one relying on
// defaults, one with every attribute given, and models with callback and
// wrongly typed attributes.
func testDocument() Document {
	return Document{
		"DefaultsTest": {
			ModelName:      "Defaults_Test",
			Fields:         idAndName(),
			TableLinkField: "name",
			FieldOrder:     []string{"name"},
		},
		"PredefinedTest": {
			ModelName:         "PredefinedTest",
			Deletable:         BoolValue(false),
			Creatable:         BoolValue(false),
			DisplayField:      StringValue("foo"),
			DisplayName:       StringValue("Predefined Test"),
			DisplayNamePlural: StringValue("Predefined Tests"),
			HasIndex:          BoolValue(false),
			TableLinkField:    "name",
			FieldOrder:        []string{"id", "name", "foo", "bar"},
			Fields: map[string]*Field{
				"id": {
					FieldName:   "id",
					Type:        ScalarType(TypeString),
					Editable:    BoolValue(true),
					DisplayName: StringValue("ID #"),
					ShowCreate:  BoolValue(true),
					ShowDetail:  BoolValue(true),
					ShowIndex:   BoolValue(true),
					ShowTooltip: BoolValue(true),
				},
				"name": {
					FieldName:   "name",
					Type:        ScalarType(TypeString),
					Editable:    BoolValue(false),
					DisplayName: StringValue("Field Name"),
					ShowCreate:  BoolValue(false),
					ShowDetail:  BoolValue(false),
					ShowTooltip: BoolValue(false),
				},
				"foo": {
					FieldName:   "foo",
					Type:        ScalarType(TypeString),
					Editable:    BoolCallback(func(Context) bool { return true }),
					DisplayName: StringCallback(func(Context) string { return "foobar" }),
					ShowCreate:  BoolCallback(func(Context) bool { return false }),
					ShowDetail:  BoolCallback(func(Context) bool { return false }),
					ShowIndex:   BoolCallback(func(Context) bool { return true }),
					ShowTooltip: BoolCallback(func(Context) bool { return true }),
				},
				"bar": {
					FieldName:   "bar",
					Type:        ScalarType(TypeString),
					DisplayName: StringValue(" bar "),
					ShowCreate:  BoolValue(false),
					ShowDetail:  BoolValue(false),
					ShowIndex:   BoolValue(true),
					ShowTooltip: BoolValue(true),
				},
			},
		},
		"ValidCasesTest": {
			ModelName:         "titleize test",
			Fields:            idAndName(),
			HasIndex:          BoolValue(true),
			DisplayName:       StringCallback(func(Context) string { return "Pre Test" }),
			DisplayNamePlural: StringCallback(func(Context) string { return "Pre Tests" }),
			Deletable:         BoolCallback(func(Context) bool { return false }),
			Creatable:         BoolCallback(func(Context) bool { return false }),
			DisplayField:      StringCallback(func(ctx Context) string { return ctx.Node["bar"].(string) }),
			TableLinkField:    "name",
			FieldOrder:        []string{"name"},
		},
		"InvalidCasesTest": {
			ModelName: "titleize test",
			Fields: map[string]*Field{
				"id":   {FieldName: "id", Type: ScalarType(TypeString), Editable: BoolFrom(42)},
				"name": {FieldName: "name", Type: ScalarType(TypeString), ShowCreate: BoolFrom("yes")},
			},
			Deletable:      BoolFrom(42),
			Creatable:      BoolFrom(42),
			DisplayName:    StringFrom(42),
			TableLinkField: "name",
			FieldOrder:     []string{"id", "name"},
			Extra:          map[string]any{"fieldName": "titleize test"},
		},
		"titleizeTest": {
			ModelName:      "titleize test",
			Fields:         idAndName(),
			TableLinkField: "name",
			FieldOrder:     []string{"name"},
		},
	}
}

// typesDocument holds one field per input type.
func typesDocument() Document {
	fields := map[string]*Field{
		"bar": {
			FieldName:   "bar",
			Type:        ScalarType(TypeString),
			DisplayName: StringValue("FOO"),
			Components:  map[string]any{SlotCell: "cell-component"},
		},
		"oneToMany":  {FieldName: "oneToMany", Type: RelType(OneToMany, "Other")},
		"manyToMany": {FieldName: "manyToMany", Type: RelType(ManyToMany, "Other")},
		"manyToOne":  {FieldName: "manyToOne", Type: RelType(ManyToOne, "Other")},
		"oneToOne":   {FieldName: "oneToOne", Type: RelType(OneToOne, "Other")},
	}
	for _, tag := range []string{
		TypeEnum, TypeURL, TypeEmail, TypePhone, TypeCurrency, TypeDate,
		TypeText, TypeFile, TypeBoolean, TypePassword,
	} {
		fields[tag] = &Field{FieldName: tag, Type: ScalarType(tag)}
	}
	return Document{
		"foo": {
			ModelName:  "foo",
			Fields:     fields,
			Components: map[string]any{SlotDetail: "detail-component"},
		},
	}
}
