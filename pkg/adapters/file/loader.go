// Package file loads table definitions (columns, rows and expansion options)
// from YAML or JSON files.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/rowexpand"
	"github.com/aretw0/rowexpand/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Settings is the "options" block of a table definition.
// It uses "mapstructure" tags so YAML and JSON share snake_case keys.
type Settings struct {
	RowKey                 string   `json:"row_key" mapstructure:"row_key"`
	ExpandAll              bool     `json:"expand_all" mapstructure:"expand_all"`
	ExpandedRowKeys        []string `json:"expanded_row_keys" mapstructure:"expanded_row_keys"`
	DefaultExpandedRowKeys []string `json:"default_expanded_row_keys" mapstructure:"default_expanded_row_keys"`
	ChildrenColumnName     string   `json:"children_column_name" mapstructure:"children_column_name"`
	IndentSize             int      `json:"indent_size" mapstructure:"indent_size"`
	ExpandIconAsCell       bool     `json:"expand_icon_as_cell" mapstructure:"expand_icon_as_cell"`
	ExpandIconColumnIndex  int      `json:"expand_icon_column_index" mapstructure:"expand_icon_column_index"`
	ExpandRowByClick       bool     `json:"expand_row_by_click" mapstructure:"expand_row_by_click"`
	PrefixCls              string   `json:"prefix_cls" mapstructure:"prefix_cls"`

	// DetailField names the row field rendered as expanded detail content.
	DetailField string `json:"detail_field" mapstructure:"detail_field"`

	// DetailClass is the class of every detail pseudo-row.
	DetailClass string `json:"detail_class" mapstructure:"detail_class"`

	// Controlled is set when expanded_row_keys is present, even if empty.
	Controlled bool `json:"-" mapstructure:"-"`
}

// Definition is a decoded table file.
type Definition struct {
	Title    string
	Settings Settings
	Columns  []domain.Column
	Rows     []domain.Row
}

type rawDefinition struct {
	Title   string           `yaml:"title" json:"title"`
	Options map[string]any   `yaml:"options" json:"options"`
	Columns []map[string]any `yaml:"columns" json:"columns"`
	Rows    []map[string]any `yaml:"rows" json:"rows"`
}

// Load reads a table definition file. JSON is used for ".json" files,
// YAML for everything else.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table definition: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	return Parse(data, format)
}

// Parse decodes a table definition in format ("yaml" or "json").
func Parse(data []byte, format string) (*Definition, error) {
	var raw rawDefinition
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse json: %v", domain.ErrInvalidTable, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: failed to parse yaml: %v", domain.ErrInvalidTable, err)
		}
	}

	def := &Definition{Title: raw.Title}

	if err := decode(raw.Options, &def.Settings); err != nil {
		return nil, fmt.Errorf("%w: options: %v", domain.ErrInvalidTable, err)
	}
	_, def.Settings.Controlled = raw.Options["expanded_row_keys"]

	for i, c := range raw.Columns {
		var col domain.Column
		if err := decode(c, &col); err != nil {
			return nil, fmt.Errorf("%w: column %d: %v", domain.ErrInvalidTable, i, err)
		}
		if col.Key == "" {
			return nil, fmt.Errorf("%w: column %d has no key", domain.ErrInvalidTable, i)
		}
		def.Columns = append(def.Columns, col)
	}

	for _, r := range raw.Rows {
		def.Rows = append(def.Rows, domain.Row(r))
	}
	return def, nil
}

func decode(input any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// Options converts the settings into table options.
func (d *Definition) Options() []rowexpand.Option {
	s := d.Settings
	opts := []rowexpand.Option{
		rowexpand.WithChildrenColumnName(s.ChildrenColumnName),
		rowexpand.WithIndentSize(s.IndentSize),
		rowexpand.WithExpandIconAsCell(s.ExpandIconAsCell),
		rowexpand.WithExpandIconColumnIndex(s.ExpandIconColumnIndex),
		rowexpand.WithExpandRowByClick(s.ExpandRowByClick),
		rowexpand.WithPrefixCls(s.PrefixCls),
	}
	if s.RowKey != "" {
		opts = append(opts, rowexpand.WithRowKey(s.RowKey))
	}
	if s.ExpandAll {
		opts = append(opts, rowexpand.WithExpandAllRows())
	}
	if s.Controlled {
		opts = append(opts, rowexpand.WithExpandedRowKeys(toKeys(s.ExpandedRowKeys)...))
	}
	if len(s.DefaultExpandedRowKeys) > 0 {
		opts = append(opts, rowexpand.WithDefaultExpandedRowKeys(toKeys(s.DefaultExpandedRowKeys)...))
	}
	if s.DetailField != "" {
		opts = append(opts, rowexpand.WithExpandedRowRender(DetailFromField(s.DetailField)))
	}
	if s.DetailClass != "" {
		class := s.DetailClass
		opts = append(opts, rowexpand.WithExpandedRowClassName(func(domain.Row, int, int) string {
			return class
		}))
	}
	return opts
}

// NewTable builds a table from the definition. Extra options are applied last.
func (d *Definition) NewTable(extra ...rowexpand.Option) (*rowexpand.Table, error) {
	opts := append(d.Options(), extra...)
	return rowexpand.New(d.Rows, d.Columns, opts...)
}

// DetailFromField returns a detail producer reading field from each row.
// Missing or empty values produce no detail row.
func DetailFromField(field string) domain.ExpandedRowRenderFunc {
	return func(record domain.Row, index, indent int) any {
		v, ok := record[field]
		if !ok || v == nil {
			return nil
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return nil
		}
		return v
	}
}

func toKeys(in []string) []domain.RowKey {
	out := make([]domain.RowKey, 0, len(in))
	for _, k := range in {
		out = append(out, domain.RowKey(k))
	}
	return out
}
