package schema

// Field component slots.
const (
	SlotCell        = "cell"
	SlotDetail      = "detail"
	SlotDetailLabel = "detailLabel"
	SlotDetailValue = "detailValue"
	SlotInput       = "input"
)

// Model component slots. SlotDetail is shared with fields.
const (
	SlotCreate      = "create"
	SlotCreateTitle = "createTitle"
	SlotCreatePage  = "createPage"
	SlotDetailTitle = "detailTitle"
	SlotDetailPage  = "detailPage"
	SlotIndex       = "index"
	SlotIndexTitle  = "indexTitle"
	SlotIndexPage   = "indexPage"
)

// FieldOverride returns the component registered for a field slot, or nil.
func (b *Builder) FieldOverride(modelName, fieldName, slot string) any {
	if f := b.lookupField(modelName, fieldName); f != nil {
		return f.Components[slot]
	}
	return nil
}

// ModelOverride returns the component registered for a model slot, or nil.
func (b *Builder) ModelOverride(modelName, slot string) any {
	if m := b.doc[modelName]; m != nil {
		return m.Components[slot]
	}
	return nil
}

// CellOverride returns the table cell component for a field.
func (b *Builder) CellOverride(modelName, fieldName string) any {
	return b.FieldOverride(modelName, fieldName, SlotCell)
}

// DetailFieldOverride returns the component that renders a field on the detail page.
func (b *Builder) DetailFieldOverride(modelName, fieldName string) any {
	return b.FieldOverride(modelName, fieldName, SlotDetail)
}

// DetailLabelOverride returns the detail page label component for a field.
func (b *Builder) DetailLabelOverride(modelName, fieldName string) any {
	return b.FieldOverride(modelName, fieldName, SlotDetailLabel)
}

// DetailValueOverride returns the detail page value component for a field.
func (b *Builder) DetailValueOverride(modelName, fieldName string) any {
	return b.FieldOverride(modelName, fieldName, SlotDetailValue)
}

// InputOverride returns the form input component for a field.
func (b *Builder) InputOverride(modelName, fieldName string) any {
	return b.FieldOverride(modelName, fieldName, SlotInput)
}

// CreateOverride returns the model's create form component.
func (b *Builder) CreateOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotCreate)
}

// CreateTitleOverride returns the model's create form title component.
func (b *Builder) CreateTitleOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotCreateTitle)
}

// CreatePageOverride returns the model's create page component.
func (b *Builder) CreatePageOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotCreatePage)
}

// DetailOverride returns the model's detail view component.
func (b *Builder) DetailOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotDetail)
}

// DetailTitleOverride returns the model's detail title component.
func (b *Builder) DetailTitleOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotDetailTitle)
}

// DetailPageOverride returns the model's detail page component.
func (b *Builder) DetailPageOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotDetailPage)
}

// IndexOverride returns the model's list table component.
func (b *Builder) IndexOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotIndex)
}

// IndexTitleOverride returns the model's list title component.
func (b *Builder) IndexTitleOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotIndexTitle)
}

// IndexPageOverride returns the model's list page component.
func (b *Builder) IndexPageOverride(modelName string) any {
	return b.ModelOverride(modelName, SlotIndexPage)
}
