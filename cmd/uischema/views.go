package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"github.com/ettle/strcase"
	"github.com/spf13/cobra"

	"github.com/matthewbaird/uischema/internal/suggest"
	"github.com/matthewbaird/uischema/load"
	"github.com/matthewbaird/uischema/schema"
)

var (
	outDir string
	dump   bool
)

var viewsCmd = &cobra.Command{
	Use:   "views <schema> [model...]",
	Short: "Print the resolved view of each model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBuilder(args[0])
		if err != nil {
			return err
		}
		names, err := selectModels(b, args[1:])
		if err != nil {
			return err
		}

		views := make([]modelView, 0, len(names))
		for _, name := range names {
			views = append(views, buildView(b, name))
		}

		switch {
		case outDir != "":
			return writeViews(cmd.OutOrStdout(), outDir, views)
		case dump:
			dumper.Fdump(cmd.OutOrStdout(), views)
			return nil
		default:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models <schema>",
	Short: "List the models of a schema with their labels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := openBuilder(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, name := range sortedKeys(b.Document()) {
			fmt.Fprintf(w, "%-24s %-24s %s\n", name, b.ModelLabel(name, schema.Props{}), b.ModelLabelPlural(name, schema.Props{}))
		}
		return nil
	},
}

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

func init() {
	viewsCmd.Flags().StringVarP(&outDir, "out", "o", "", "write one <model>.view.json per model into this directory")
	viewsCmd.Flags().BoolVar(&dump, "dump", false, "dump the views as Go values instead of JSON")
}

// modelView is what an admin UI would render for one model.
type modelView struct {
	Model         string               `json:"model"`
	Label         string               `json:"label"`
	Plural        string               `json:"plural"`
	Revision      string               `json:"revision"`
	Creatable     bool                 `json:"creatable"`
	Deletable     bool                 `json:"deletable"`
	HasIndex      bool                 `json:"hasIndex"`
	HasDetail     bool                 `json:"hasDetail"`
	Singleton     bool                 `json:"singleton"`
	Searchable    bool                 `json:"searchable"`
	Sortable      bool                 `json:"sortable"`
	Filterable    bool                 `json:"filterable"`
	TableLink     string               `json:"tableLink,omitempty"`
	CreateFields  []string             `json:"createFields"`
	DetailFields  []string             `json:"detailFields"`
	IndexFields   []string             `json:"indexFields"`
	TooltipFields []string             `json:"tooltipFields"`
	Required      []string             `json:"required"`
	Fields        map[string]fieldView `json:"fields"`
}

type fieldView struct {
	Label      string            `json:"label"`
	Type       string            `json:"type"`
	Target     string            `json:"target,omitempty"`
	Editable   bool              `json:"editable"`
	Sortable   bool              `json:"sortable"`
	Filterable bool              `json:"filterable"`
	Help       string            `json:"help,omitempty"`
	Choices    map[string]string `json:"choices,omitempty"`
	Overrides  []string          `json:"overrides,omitempty"`
}

var fieldSlots = []string{
	schema.SlotCell, schema.SlotDetail, schema.SlotDetailLabel, schema.SlotDetailValue, schema.SlotInput,
}

func buildView(b *schema.Builder, name string) modelView {
	p := schema.Props{}
	index := b.IndexFields(name, p)
	tp := schema.Props{FieldOrder: index}

	v := modelView{
		Model:         name,
		Label:         b.ModelLabel(name, p),
		Plural:        b.ModelLabelPlural(name, p),
		Revision:      b.Revision(),
		Creatable:     b.IsCreatable(name, p),
		Deletable:     b.IsDeletable(name, p),
		HasIndex:      b.HasIndex(name),
		HasDetail:     b.HasDetail(name),
		Singleton:     b.Singleton(name),
		Searchable:    b.Searchable(name),
		Sortable:      b.IsTableSortable(name, tp),
		Filterable:    b.IsTableFilterable(name, tp),
		CreateFields:  b.CreateFields(name, p),
		DetailFields:  b.DetailFields(name, p),
		IndexFields:   index,
		TooltipFields: b.TooltipFields(name, p),
		Required:      b.RequiredFields(name),
		Fields:        make(map[string]fieldView),
	}
	if link, ok := b.TableLinkField(name, index); ok {
		v.TableLink = link
	}

	for fname, f := range b.Fields(name) {
		fv := fieldView{
			Label:      b.FieldLabel(name, fname, p),
			Type:       b.Type(name, fname),
			Editable:   b.IsFieldEditable(name, fname, p),
			Sortable:   b.IsSortable(name, fname, p),
			Filterable: b.IsFilterable(name, fname, p),
		}
		if f.Type.IsRel() {
			fv.Target = f.Type.Rel.Target
		}
		if help, ok := b.FieldHelpText(name, fname); ok {
			fv.Help = help
		}
		if b.IsEnum(name, fname) {
			fv.Choices = b.EnumChoices(name, fname)
		}
		for _, slot := range fieldSlots {
			if b.FieldOverride(name, fname, slot) != nil {
				fv.Overrides = append(fv.Overrides, slot)
			}
		}
		v.Fields[fname] = fv
	}
	return v
}

func openBuilder(path string) (*schema.Builder, error) {
	doc, err := load.FileAt(path, cuePath)
	if err != nil {
		return nil, err
	}
	b := schema.New(doc, schema.WithLogger(schema.StdLogger(verbose)))
	if overridePath != "" {
		remote, err := load.FileAt(overridePath, cuePath)
		if err != nil {
			return nil, err
		}
		b.MergeSchema(remote, true)
	}
	return b, nil
}

// selectModels returns the requested models in argument order, or every
// model sorted by name when none were requested.
func selectModels(b *schema.Builder, requested []string) ([]string, error) {
	all := sortedKeys(b.Document())
	if len(requested) == 0 {
		return all, nil
	}
	for _, name := range requested {
		if b.Model(name) != nil {
			continue
		}
		if hint := suggest.DidYouMean(name, all, 3); hint != "" {
			return nil, fmt.Errorf("unknown model %q; %s", name, hint)
		}
		return nil, fmt.Errorf("unknown model %q", name)
	}
	return requested, nil
}

func writeViews(w io.Writer, dir string, views []modelView) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, v := range views {
		path := filepath.Join(dir, strcase.ToSnake(v.Model)+".view.json")
		if err := writeJSON(path, v); err != nil {
			return fmt.Errorf("%s: %w", v.Model, err)
		}
	}
	fmt.Fprintf(w, "wrote %d views to %s\n", len(views), dir)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
