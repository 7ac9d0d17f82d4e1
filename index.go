package reviewsense

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/sirupsen/logrus"
)

// ErrEmptyBank is returned when a keyword class has nothing to match.
var ErrEmptyBank = errors.New("keyword class has no terms")

// classIndex is the compiled vocabulary of one class.
type classIndex struct {
	bank     KeywordBank
	slang    SlangMap           // as given, including entries dropped from expanded
	expanded map[string]float64 // canonical + resolvable slang keys
	keys     []string           // expanded keys in match priority order
	matcher  *phraseMatcher
}

// Index is the compiled, read-only form of a Lexicon. It is safe for
// concurrent use.
type Index struct {
	classes  [numClasses]classIndex
	warnings []Warning
}

// IndexOpt changes how a Lexicon is compiled.
type IndexOpt func(opts *indexOpts)

type indexOpts struct {
	logger       *logrus.Logger
	stopwordLang string
}

// WithIndexLogger sets the logger that receives compile warnings.
func WithIndexLogger(logger *logrus.Logger) IndexOpt {
	return func(opts *indexOpts) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithStopwordLanguage sets the ISO 639-1 code used to flag keywords made
// only of stopwords. An empty code disables the check.
func WithStopwordLanguage(lang string) IndexOpt {
	return func(opts *indexOpts) {
		opts.stopwordLang = lang
	}
}

// Compile expands every class bank with its slang terms and builds one
// whole-word matcher per class. Slang entries pointing at a missing
// canonical term are dropped and reported through Warnings.
func Compile(lex Lexicon, opts ...IndexOpt) (*Index, error) {
	o := indexOpts{
		logger:       logrus.StandardLogger(),
		stopwordLang: "en",
	}
	for _, applyOpt := range opts {
		applyOpt(&o)
	}

	idx := &Index{}
	for _, c := range Classes {
		ci, warnings, err := compileClass(c, lex.For(c), o.stopwordLang)
		if err != nil {
			return nil, err
		}
		idx.classes[c] = ci
		idx.warnings = append(idx.warnings, warnings...)
	}

	log := o.logger.WithField("component", "lexicon")
	for _, w := range idx.warnings {
		log.WithFields(logrus.Fields{
			"kind":  w.Kind,
			"class": w.Class.String(),
			"term":  w.Term,
		}).Warn(w.String())
	}

	return idx, nil
}

func compileClass(c Class, cl ClassLexicon, stopwordLang string) (classIndex, []Warning, error) {
	if cl.Bank.Len() == 0 {
		return classIndex{}, nil, fmt.Errorf("%s: %w", c, ErrEmptyBank)
	}

	var warnings []Warning
	ci := classIndex{
		bank:     cl.Bank,
		slang:    cl.Slang,
		expanded: make(map[string]float64, cl.Bank.Len()+cl.Slang.Len()),
	}

	for _, term := range cl.Bank.terms {
		ci.expanded[term] = cl.Bank.weights[term]
		ci.keys = append(ci.keys, term)
	}

	for _, slang := range cl.Slang.terms {
		canonical := cl.Slang.targets[slang]
		weight, ok := cl.Bank.Weight(canonical)
		if !ok {
			warnings = append(warnings, Warning{
				Kind:   SlangResolutionWarning,
				Class:  c,
				Term:   slang,
				Target: canonical,
			})
			continue
		}
		if _, dup := ci.expanded[slang]; !dup {
			ci.keys = append(ci.keys, slang)
		}
		ci.expanded[slang] = weight
	}

	if stopwordLang != "" {
		for _, term := range ci.keys {
			if onlyStopwords(term, stopwordLang) {
				warnings = append(warnings, Warning{
					Kind:  StopwordKeywordWarning,
					Class: c,
					Term:  term,
				})
			}
		}
	}

	ci.matcher = newPhraseMatcher(ci.keys)
	return ci, warnings, nil
}

// onlyStopwords reports whether every word of term is a stopword.
func onlyStopwords(term, lang string) bool {
	return strings.TrimSpace(stopwords.CleanString(term, lang, false)) == ""
}

// Warnings returns the non-fatal problems found while compiling.
func (idx *Index) Warnings() []Warning {
	return append([]Warning(nil), idx.warnings...)
}

// Expanded returns a copy of the expanded bank of class c: canonical terms
// plus surviving slang terms, each with its effective weight.
func (idx *Index) Expanded(c Class) map[string]float64 {
	out := make(map[string]float64, len(idx.classes[c].expanded))
	for k, v := range idx.classes[c].expanded {
		out[k] = v
	}
	return out
}

// matches returns every match of class c in lowered text, in text order.
func (idx *Index) matches(c Class, lowered string) []string {
	return idx.classes[c].matcher.FindAll(lowered)
}

// canonical resolves a match through the slang table of class c. Entries
// whose target is missing from the bank still apply here.
func (idx *Index) canonical(c Class, match string) string {
	if canonical, ok := idx.classes[c].slang.Canonical(match); ok {
		return canonical
	}
	return match
}

// weight returns the bank weight for a match of class c, 1.0 when the
// resolved term is unknown.
func (idx *Index) weight(c Class, match string) float64 {
	if w, ok := idx.classes[c].bank.Weight(idx.canonical(c, match)); ok {
		return w
	}
	return 1.0
}

// Keywords lists the distinct terms of text matched by any class. Every match
// is resolved through the positive slang table, whatever class matched it.
func (idx *Index) Keywords(text string) []string {
	return idx.keywords(lowerText(text))
}

func (idx *Index) keywords(lowered string) []string {
	seen := make(map[string]struct{})
	for _, c := range Classes {
		for _, m := range idx.matches(c, lowered) {
			seen[idx.canonical(PositiveClass, m)] = struct{}{}
		}
	}

	keywords := make([]string, 0, len(seen))
	for k := range seen {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
