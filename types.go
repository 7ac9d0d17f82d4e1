package reviewsense

import "fmt"

// Label is the sentiment label attached to a review.
type Label string

const (
	Positive Label = "POSITIVE"
	Negative Label = "NEGATIVE"
	Neutral  Label = "NEUTRAL"
)

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	switch l {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Class identifies one of the three keyword classes. Every class carries its
// own bank, slang table and match pattern.
type Class int

const (
	PositiveClass Class = iota
	NegativeClass
	NeutralClass

	numClasses = 3
)

// Classes lists the keyword classes in scan order.
var Classes = [numClasses]Class{PositiveClass, NegativeClass, NeutralClass}

// Label returns the sentiment label that matches the class.
func (c Class) Label() Label {
	switch c {
	case PositiveClass:
		return Positive
	case NegativeClass:
		return Negative
	default:
		return Neutral
	}
}

func (c Class) String() string {
	switch c {
	case PositiveClass:
		return "positive"
	case NegativeClass:
		return "negative"
	case NeutralClass:
		return "neutral"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Prediction is the output of a base classifier.
type Prediction struct {
	Label      Label   // POSITIVE or NEGATIVE for the stock classifiers
	Confidence float64 // 0.0 to 1.0
}

// ReviewResult is the final, adjusted verdict for one review.
type ReviewResult struct {
	Review     string   `json:"review"`
	Sentiment  Label    `json:"sentiment"`
	Confidence float64  `json:"confidence"` // rounded to 4 decimals
	Keywords   []string `json:"keywords"`
}

// WarningKind categorizes construction-time diagnostics
type WarningKind string

const (
	SlangResolutionWarning WarningKind = "slang_resolution" // slang target missing from the class bank
	StopwordKeywordWarning WarningKind = "stopword_keyword" // keyword made only of stopwords
)

// A Warning is a non-fatal problem found while compiling a lexicon.
type Warning struct {
	Kind   WarningKind
	Class  Class
	Term   string
	Target string // canonical term, for slang warnings
}

func (w Warning) String() string {
	switch w.Kind {
	case SlangResolutionWarning:
		return fmt.Sprintf("%s: slang mapping skipped, canonical term %q not found for %q", w.Class, w.Target, w.Term)
	case StopwordKeywordWarning:
		return fmt.Sprintf("%s: keyword %q contains only stopwords", w.Class, w.Term)
	}
	return fmt.Sprintf("%s: %s %q", w.Class, w.Kind, w.Term)
}
