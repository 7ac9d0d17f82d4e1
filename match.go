package reviewsense

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// phraseMatcher finds whole-word occurrences of literal phrases in lowered
// text. At every position the phrases are tried in order and the first one
// bounded by word boundaries on both sides wins; scanning resumes after it.
//
// Word characters are Unicode letters, marks, numbers and '_', so "naïve"
// does not contain the word "na".
type phraseMatcher struct {
	phrases []string
}

func newPhraseMatcher(phrases []string) *phraseMatcher {
	m := &phraseMatcher{phrases: make([]string, 0, len(phrases))}
	for _, p := range phrases {
		if p != "" {
			m.phrases = append(m.phrases, p)
		}
	}
	return m
}

// FindAll returns every match in s, in text order.
func (m *phraseMatcher) FindAll(s string) []string {
	return m.find(s, -1)
}

// MatchString reports whether any phrase occurs in s as a whole word.
func (m *phraseMatcher) MatchString(s string) bool {
	return len(m.find(s, 1)) > 0
}

func (m *phraseMatcher) find(s string, limit int) []string {
	if m == nil || len(m.phrases) == 0 {
		return nil
	}

	var found []string
	for i := 0; i < len(s); {
		if p := m.matchAt(s, i); p != "" {
			found = append(found, p)
			if limit > 0 && len(found) >= limit {
				return found
			}
			i += len(p)
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return found
}

func (m *phraseMatcher) matchAt(s string, i int) string {
	if !isWordBoundary(s, i) {
		return ""
	}
	rest := s[i:]
	for _, p := range m.phrases {
		if strings.HasPrefix(rest, p) && isWordBoundary(s, i+len(p)) {
			return p
		}
	}
	return ""
}

// isWordBoundary reports whether exactly one side of byte offset i in s is
// a word character.
func isWordBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
