// dialect.go: declarative tokenizer configuration
package kassemblix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dialect bundles the per-tokenizer configuration: the multi-character
// symbols to register beyond the built-in "!=", ">=" and "<=", and
// whether words may contain embedded blanks. Dialects keep tokenizer
// configuration explicit and per-instance; two tokenizers with
// different dialects never interfere.
type Dialect struct {
	Symbols       []string `yaml:"symbols"`
	BlanksInWords bool     `yaml:"blanks_in_words"`
}

// Apply configures t with this dialect.
func (d *Dialect) Apply(t *Tokenizer) {
	for _, s := range d.Symbols {
		t.RegisterSymbol(s)
	}
	t.SetBlanksInWords(d.BlanksInWords)
}

// NewTokenizerDialect returns a tokenizer for src configured with d.
func NewTokenizerDialect(src string, d *Dialect) *Tokenizer {
	t := NewTokenizer(src)
	d.Apply(t)
	return t
}

// LoadDialect reads a dialect from a YAML file:
//
//	symbols: ["=:=", "->"]
//	blanks_in_words: true
func LoadDialect(path string) (*Dialect, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dialect
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("dialect %s: %w", path, err)
	}
	return &d, nil
}
