package reviewsense

import (
	"fmt"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// SplitMode selects how raw batch text is cut into reviews.
type SplitMode string

const (
	// SplitLines treats every non-blank line as one review.
	SplitLines SplitMode = "lines"
	// SplitSentences treats every sentence as one review.
	SplitSentences SplitMode = "sentences"
)

// ParseSplitMode returns the mode named by s. The empty string means lines.
func ParseSplitMode(s string) (SplitMode, error) {
	switch SplitMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", SplitLines:
		return SplitLines, nil
	case SplitSentences:
		return SplitSentences, nil
	}
	return "", fmt.Errorf("reviewsense: unknown split mode %q", s)
}

// Splitter cuts raw batch text into trimmed, non-blank reviews.
type Splitter struct {
	mode      SplitMode
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSplitter creates a splitter for mode. Sentence mode loads the English
// punkt model once.
func NewSplitter(mode SplitMode) (*Splitter, error) {
	s := &Splitter{mode: mode}
	switch mode {
	case SplitLines:
	case SplitSentences:
		tokenizer, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("reviewsense: load sentence tokenizer: %w", err)
		}
		s.tokenizer = tokenizer
	default:
		return nil, fmt.Errorf("reviewsense: unknown split mode %q", mode)
	}
	return s, nil
}

// Mode returns the splitter's mode.
func (s *Splitter) Mode() SplitMode {
	return s.mode
}

// Split returns the reviews in text, in order.
func (s *Splitter) Split(text string) []string {
	reviews := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if s.tokenizer == nil {
			reviews = append(reviews, line)
			continue
		}
		for _, sent := range s.tokenizer.Tokenize(line) {
			if t := strings.TrimSpace(sent.Text); t != "" {
				reviews = append(reviews, t)
			}
		}
	}
	return reviews
}

// SplitReviews splits text one review per line.
func SplitReviews(text string) []string {
	s := &Splitter{mode: SplitLines}
	return s.Split(text)
}

// CleanReviews trims every review and drops the blank ones.
func CleanReviews(reviews []string) []string {
	out := make([]string, 0, len(reviews))
	for _, r := range reviews {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
