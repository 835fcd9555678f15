// Package schema resolves the declarative model/field document behind a
// generated admin UI.
//
// A Builder wraps a Document. Reads answer questions such as "is this field
// editable for this row" or "which fields does the create form show, in
// which order", resolving attributes that are either literals or callbacks.
// Merges replace the document with a new one that combines it with a remote
// document or with computed defaults.
package schema

import (
	"github.com/google/uuid"

	"github.com/matthewbaird/uischema/internal/humanize"
	"github.com/matthewbaird/uischema/internal/merge"
)

// Builder is the facade over a schema document. It is not safe for
// concurrent merges.
type Builder struct {
	doc      Document
	revision string
	log      Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for merge diagnostics.
func WithLogger(l Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// New wraps doc. A nil doc is treated as empty.
func New(doc Document, opts ...BuilderOption) *Builder {
	if doc == nil {
		doc = Document{}
	}
	b := &Builder{
		doc:      doc,
		revision: uuid.New().String(),
		log:      nopLogger{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log.Info("builder ready", map[string]any{"models": len(doc), "revision": b.revision})
	return b
}

// Document returns the current document. Treat it as read-only.
func (b *Builder) Document() Document { return b.doc }

// Revision identifies the current document. It changes on every merge.
func (b *Builder) Revision() string { return b.revision }

func (b *Builder) replace(doc Document, op string, p merge.Policy) {
	b.doc = doc
	b.revision = uuid.New().String()
	b.log.Trace(op, map[string]any{
		"models":   len(doc),
		"policy":   p.String(),
		"revision": b.revision,
	})
}

// HumanizeField turns a field name into a label ("createdAt" -> "Created at").
func HumanizeField(s string) string { return humanize.Field(s) }

// HumanizeModel turns a model name into a title ("LeaseSpace" -> "Lease Space").
func HumanizeModel(s string) string { return humanize.Model(s) }

// HumanizeModelPlural is HumanizeModel, pluralized.
func HumanizeModelPlural(s string) string { return humanize.ModelPlural(s) }
