package entimport

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
	"github.com/google/uuid"
)

// trackingMixin stamps every row with who changed it and when.
type trackingMixin struct {
	mixin.Schema
}

func (trackingMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the row was created"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Enum("source").
			Values("user", "agent", "import"),
		field.String("correlation_id").
			Optional().
			Nillable().
			Comment("Links related changes"),
	}
}

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{trackingMixin{}}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),
		field.String("password").Sensitive(),
		field.Text("bio").Optional(),
		field.Int("age").Optional(),
		field.Float("rating").Default(0),
		field.Bool("active").Default(true),
		field.Enum("role").Values("admin", "member", "read_only"),
		field.Bytes("avatar").Optional(),
		field.UUID("external_id", uuid.UUID{}).Default(uuid.New),
		field.JSON("prefs", map[string]string{}).Optional(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("posts", Post.Type),
		edge.To("friends", User.Type),
		edge.To("following", User.Type).From("followers"),
		edge.To("profile", Profile.Type).Unique(),
	}
}

type Post struct {
	ent.Schema
}

func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.String("title"),
		field.Text("body"),
	}
}

func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", User.Type).Ref("posts").Unique().Required(),
		edge.To("tags", Tag.Type),
	}
}

type Tag struct {
	ent.Schema
}

func (Tag) Fields() []ent.Field {
	return []ent.Field{field.String("name")}
}

func (Tag) Edges() []ent.Edge {
	return []ent.Edge{edge.From("posts", Post.Type).Ref("tags")}
}

type Profile struct {
	ent.Schema
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{edge.From("owner", User.Type).Ref("profile").Unique()}
}

type PostStats struct {
	ent.View
}

func (PostStats) Fields() []ent.Field {
	return []ent.Field{field.Int("post_count")}
}

type Orphan struct {
	ent.Schema
}

func (Orphan) Edges() []ent.Edge {
	return []ent.Edge{edge.From("owner", User.Type).Ref("missing")}
}

type brokenField struct{}

func (brokenField) Descriptor() *field.Descriptor {
	return &field.Descriptor{Name: "broken", Err: errBroken}
}

type Broken struct {
	ent.Schema
}

func (Broken) Fields() []ent.Field {
	return []ent.Field{brokenField{}}
}
