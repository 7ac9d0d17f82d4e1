package reviewsense

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidTerm is returned for blank keyword or slang terms.
	ErrInvalidTerm = errors.New("invalid lexicon term")
	// ErrInvalidWeight is returned for weights that are not finite and > 0.
	ErrInvalidWeight = errors.New("invalid keyword weight")
)

// Keyword is a canonical term together with its weight.
type Keyword struct {
	Term   string
	Weight float64
}

// SlangEntry maps an informal term onto a canonical term of the same class.
type SlangEntry struct {
	Slang     string
	Canonical string
}

// KeywordBank maps canonical terms to weights. Terms are lowercased and keep
// the order in which they were first added. A repeated term keeps its first
// position and takes the last weight.
type KeywordBank struct {
	terms   []string
	weights map[string]float64
}

// NewKeywordBank builds a bank from keywords in order.
func NewKeywordBank(keywords ...Keyword) (KeywordBank, error) {
	b := KeywordBank{weights: make(map[string]float64, len(keywords))}
	for _, kw := range keywords {
		term := lowerText(strings.TrimSpace(kw.Term))
		if term == "" {
			return KeywordBank{}, fmt.Errorf("%w: empty keyword", ErrInvalidTerm)
		}
		if !(kw.Weight > 0) || math.IsInf(kw.Weight, 1) {
			return KeywordBank{}, fmt.Errorf("%w: %q has weight %v", ErrInvalidWeight, term, kw.Weight)
		}
		if _, seen := b.weights[term]; !seen {
			b.terms = append(b.terms, term)
		}
		b.weights[term] = kw.Weight
	}
	return b, nil
}

// Weight returns the weight of a canonical term.
func (b KeywordBank) Weight(term string) (float64, bool) {
	w, ok := b.weights[term]
	return w, ok
}

// Has reports whether term is a canonical term of the bank.
func (b KeywordBank) Has(term string) bool {
	_, ok := b.weights[term]
	return ok
}

// Terms returns the canonical terms in insertion order.
func (b KeywordBank) Terms() []string {
	return append([]string(nil), b.terms...)
}

// Len returns the number of distinct terms.
func (b KeywordBank) Len() int {
	return len(b.terms)
}

// SlangMap maps slang terms to canonical terms, with the same ordering and
// duplicate rules as KeywordBank.
type SlangMap struct {
	terms   []string
	targets map[string]string
}

// NewSlangMap builds a slang table from entries in order.
func NewSlangMap(entries ...SlangEntry) (SlangMap, error) {
	m := SlangMap{targets: make(map[string]string, len(entries))}
	for _, e := range entries {
		slang := lowerText(strings.TrimSpace(e.Slang))
		canonical := lowerText(strings.TrimSpace(e.Canonical))
		if slang == "" || canonical == "" {
			return SlangMap{}, fmt.Errorf("%w: slang entry %q -> %q", ErrInvalidTerm, e.Slang, e.Canonical)
		}
		if _, seen := m.targets[slang]; !seen {
			m.terms = append(m.terms, slang)
		}
		m.targets[slang] = canonical
	}
	return m, nil
}

// Canonical returns the canonical term for slang.
func (m SlangMap) Canonical(slang string) (string, bool) {
	c, ok := m.targets[slang]
	return c, ok
}

// Terms returns the slang terms in insertion order.
func (m SlangMap) Terms() []string {
	return append([]string(nil), m.terms...)
}

// Len returns the number of slang terms.
func (m SlangMap) Len() int {
	return len(m.terms)
}

// ClassLexicon is the vocabulary of one keyword class.
type ClassLexicon struct {
	Bank  KeywordBank
	Slang SlangMap
}

// Lexicon holds the vocabulary of all three classes.
type Lexicon struct {
	Positive ClassLexicon
	Negative ClassLexicon
	Neutral  ClassLexicon
}

// For returns the vocabulary of class c.
func (l Lexicon) For(c Class) ClassLexicon {
	switch c {
	case PositiveClass:
		return l.Positive
	case NegativeClass:
		return l.Negative
	default:
		return l.Neutral
	}
}

// lexiconFile is the YAML layout of an external lexicon:
//
//	positive:
//	  keywords:
//	    excellent: 1.4
//	  slang:
//	    badiya: badhiya
type lexiconFile struct {
	Positive classFile `yaml:"positive"`
	Negative classFile `yaml:"negative"`
	Neutral  classFile `yaml:"neutral"`
}

type classFile struct {
	Keywords orderedKeywords `yaml:"keywords"`
	Slang    orderedSlang    `yaml:"slang"`
}

// orderedKeywords decodes a YAML mapping without losing key order or
// collapsing repeated keys, so the bank sees entries exactly as written.
type orderedKeywords []Keyword

func (o *orderedKeywords) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: keywords must be a mapping of term to weight", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var weight float64
		if err := val.Decode(&weight); err != nil {
			return fmt.Errorf("line %d: weight for %q: %w", val.Line, key.Value, err)
		}
		*o = append(*o, Keyword{Term: key.Value, Weight: weight})
	}
	return nil
}

type orderedSlang []SlangEntry

func (o *orderedSlang) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: slang must be a mapping of slang to canonical term", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: canonical term for %q must be a string", val.Line, key.Value)
		}
		*o = append(*o, SlangEntry{Slang: key.Value, Canonical: val.Value})
	}
	return nil
}

// ParseLexicon decodes a YAML lexicon document.
func ParseLexicon(data []byte) (Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Lexicon{}, fmt.Errorf("error parsing lexicon YAML: %w", err)
	}

	var (
		lex Lexicon
		err error
	)
	if lex.Positive, err = file.Positive.build(); err != nil {
		return Lexicon{}, fmt.Errorf("positive: %w", err)
	}
	if lex.Negative, err = file.Negative.build(); err != nil {
		return Lexicon{}, fmt.Errorf("negative: %w", err)
	}
	if lex.Neutral, err = file.Neutral.build(); err != nil {
		return Lexicon{}, fmt.Errorf("neutral: %w", err)
	}
	return lex, nil
}

// LoadLexicon reads a YAML lexicon from disk.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("error reading lexicon file: %w", err)
	}
	return ParseLexicon(data)
}

func (cf classFile) build() (ClassLexicon, error) {
	bank, err := NewKeywordBank(cf.Keywords...)
	if err != nil {
		return ClassLexicon{}, err
	}
	slang, err := NewSlangMap(cf.Slang...)
	if err != nil {
		return ClassLexicon{}, err
	}
	return ClassLexicon{Bank: bank, Slang: slang}, nil
}
