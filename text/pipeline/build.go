package pipeline

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/lguimbarda/min-text/text"
)

// Build wraps src in the decorators described by cfg, in order. It validates
// cfg but evaluates nothing.
func Build(cfg Config, src text.Text) (text.Text, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := src
	for _, s := range cfg.Steps {
		t = s.apply(t)
	}
	return t, nil
}

func (s Step) apply(t text.Text) text.Text {
	switch s.Op {
	case OpSub:
		if s.End == nil {
			return text.Sub(t, s.Start)
		}
		return text.SubRange(t, s.Start, *s.End)
	case OpUpper:
		return text.Upper(t, s.caseOptions()...)
	case OpLower:
		return text.Lower(t, s.caseOptions()...)
	case OpTrim:
		return text.Trimmed(t)
	case OpNormalize:
		return text.Normalized(t)
	case OpReverse:
		return text.Reversed(t)
	case OpAbbrev:
		return text.Abbreviated(t, s.Width)
	case OpReplace:
		if s.Regexp {
			return text.ReplacedRegexp(t, s.Pattern, s.Replacement)
		}
		return text.ReplacedString(t, s.Pattern, s.Replacement)
	case OpRepeat:
		return text.Repeated(t, s.Count)
	default:
		// Validate rejects unknown ops before apply is reached.
		panic(fmt.Sprintf("pipeline: unknown op %q", s.Op))
	}
}

func (s Step) caseOptions() []text.CaseOption {
	if s.Language == "" {
		return nil
	}
	// Validate already parsed the tag successfully.
	return []text.CaseOption{text.WithLanguage(language.MustParse(s.Language))}
}
