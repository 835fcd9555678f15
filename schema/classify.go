package schema

import "strings"

// Input types a field's type tag may carry.
const (
	TypeString                = "string"
	TypeFloat                 = "float"
	TypeInt                   = "int"
	TypeDate                  = "date"
	TypeText                  = "text"
	TypeEnum                  = "enum"
	TypeURL                   = "url"
	TypePhone                 = "phone"
	TypeEmail                 = "email"
	TypeBoolean               = "boolean"
	TypeCurrency              = "currency"
	TypeFile                  = "file"
	TypeSelect                = "select"
	TypeCreatableStringSelect = "creatable_string_select"
	TypePassword              = "password"
	TypeRadio                 = "radio"
	TypeID                    = "ID"
	TypeCheckbox              = "checkbox"
)

// Relationship kinds.
const (
	ManyToOne  = "ManyToOne"
	OneToOne   = "OneToOne"
	OneToMany  = "OneToMany"
	ManyToMany = "ManyToMany"
)

func (b *Builder) lookupField(modelName, fieldName string) *Field {
	m := b.doc[modelName]
	if m == nil {
		return nil
	}
	return m.Fields[fieldName]
}

func (b *Builder) isRelKind(modelName, fieldName, kind string) bool {
	f := b.lookupField(modelName, fieldName)
	return f != nil && f.Type.Rel != nil && f.Type.Rel.Type == kind
}

func (b *Builder) isScalar(modelName, fieldName, tag string) bool {
	f := b.lookupField(modelName, fieldName)
	return f != nil && f.Type.Rel == nil && f.Type.Scalar == tag
}

// IsRel reports whether the field's type is a relationship.
func (b *Builder) IsRel(modelName, fieldName string) bool {
	f := b.lookupField(modelName, fieldName)
	return f != nil && f.Type.IsRel()
}

// IsOneToMany reports whether the field is a one-to-many relationship.
func (b *Builder) IsOneToMany(modelName, fieldName string) bool {
	return b.isRelKind(modelName, fieldName, OneToMany)
}

// IsManyToMany reports whether the field is a many-to-many relationship.
func (b *Builder) IsManyToMany(modelName, fieldName string) bool {
	return b.isRelKind(modelName, fieldName, ManyToMany)
}

// IsManyToOne reports whether the field is a many-to-one relationship.
func (b *Builder) IsManyToOne(modelName, fieldName string) bool {
	return b.isRelKind(modelName, fieldName, ManyToOne)
}

// IsOneToOne reports whether the field is a one-to-one relationship.
func (b *Builder) IsOneToOne(modelName, fieldName string) bool {
	return b.isRelKind(modelName, fieldName, OneToOne)
}

// IsEnum reports whether the field picks from fixed choices.
func (b *Builder) IsEnum(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeEnum)
}

// IsURL reports whether the field holds a link.
func (b *Builder) IsURL(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeURL)
}

// IsEmail reports whether the field holds an email address.
func (b *Builder) IsEmail(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeEmail)
}

// IsPhone reports whether the field holds a phone number.
func (b *Builder) IsPhone(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypePhone)
}

// IsCurrency reports whether the field holds a money amount.
func (b *Builder) IsCurrency(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeCurrency)
}

// IsDate reports whether the field holds a date.
func (b *Builder) IsDate(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeDate)
}

// IsTextArea reports whether the field is a multi-line text field.
func (b *Builder) IsTextArea(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeText)
}

// IsFile reports whether the field holds an upload.
func (b *Builder) IsFile(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeFile)
}

// IsBoolean reports whether the field is a checkbox-style flag.
func (b *Builder) IsBoolean(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeBoolean)
}

// IsPassword reports whether the field input is masked.
func (b *Builder) IsPassword(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypePassword)
}

// IsString reports whether the field is a plain single-line string.
func (b *Builder) IsString(modelName, fieldName string) bool {
	return b.isScalar(modelName, fieldName, TypeString)
}

// toMany reports whether a type tag names a to-many relationship.
func toMany(tag string) bool { return strings.Contains(tag, "ToMany") }

func toOne(tag string) bool { return strings.Contains(tag, "ToOne") }
