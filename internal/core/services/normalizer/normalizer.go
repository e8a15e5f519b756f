package normalizer

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"standby-builder/internal/core/domain"
)

// Normalizer turns a submitted field map into a domain.NormalizedConfig using
// the package field table. It holds no state and is safe for concurrent use.
type Normalizer struct {
	fields []Field
}

// New creates a Normalizer over the package field table.
func New() *Normalizer {
	return &Normalizer{fields: fieldTable}
}

// Normalize applies coercion and defaults. It never fails: a value that cannot
// be read as its field's kind is replaced by the field default.
func (n *Normalizer) Normalize(fields domain.FieldMap) domain.NormalizedConfig {
	tree := make(map[string]any)
	for _, f := range n.fields {
		value := f.Default
		if raw, ok := lookup(fields, f); ok {
			if coerced, ok := coerce(f.Kind, raw); ok {
				value = coerced
			}
		}
		section(tree, f.Section)[f.Name] = value
	}

	cfg, err := decode(tree)
	if err != nil {
		// The table is verified against NormalizedConfig at init, so this
		// only happens if that check was bypassed.
		panic(fmt.Sprintf("normalizer: field table out of sync with NormalizedConfig: %v", err))
	}
	return cfg
}

// Denormalize projects cfg back onto canonical input keys. Normalizing the
// result yields cfg again.
func (n *Normalizer) Denormalize(cfg domain.NormalizedConfig) domain.FieldMap {
	var tree map[string]any
	if err := mapstructure.Decode(cfg, &tree); err != nil {
		panic(fmt.Sprintf("normalizer: encode config: %v", err))
	}
	out := make(domain.FieldMap, len(n.fields))
	for _, f := range n.fields {
		sec, _ := tree[f.Section].(map[string]any)
		out[f.Key] = sec[f.Name]
	}
	return out
}

func lookup(fields domain.FieldMap, f Field) (any, bool) {
	if v, ok := fields[f.Key]; ok && v != nil {
		return v, true
	}
	for _, alias := range f.Aliases {
		if v, ok := fields[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func section(tree map[string]any, name string) map[string]any {
	sec, ok := tree[name].(map[string]any)
	if !ok {
		sec = make(map[string]any)
		tree[name] = sec
	}
	return sec
}

func decode(tree map[string]any) (domain.NormalizedConfig, error) {
	var cfg domain.NormalizedConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		TagName:     "mapstructure",
		ErrorUnused: true,
		ErrorUnset:  true,
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(tree); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// checkTable verifies that every row has a unique key, a default of its
// declared kind, and a matching NormalizedConfig field (and the reverse).
func checkTable(fields []Field) error {
	seen := make(map[string]bool)
	tree := make(map[string]any)
	for _, f := range fields {
		for _, k := range append([]string{f.Key}, f.Aliases...) {
			if seen[k] {
				return fmt.Errorf("input key %q is declared twice", k)
			}
			seen[k] = true
		}
		if _, ok := coerce(f.Kind, f.Default); !ok && f.Default != "" {
			return fmt.Errorf("field %q: default %v is not a %s", f.Key, f.Default, f.Kind)
		}
		sec := section(tree, f.Section)
		if _, dup := sec[f.Name]; dup {
			return fmt.Errorf("field %s.%s is mapped twice", f.Section, f.Name)
		}
		sec[f.Name] = f.Default
	}
	_, err := decode(tree)
	return err
}

func init() {
	if err := checkTable(fieldTable); err != nil {
		panic(fmt.Sprintf("normalizer: %v", err))
	}
}
