package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lguimbarda/min-text/text/core"
)

// CaseOption configures Upper and Lower.
type CaseOption func(*caseConfig)

type caseConfig struct {
	tag language.Tag
}

// WithLanguage selects the language whose casing rules apply,
// e.g. language.Turkish maps "i" to "İ" in Upper.
func WithLanguage(tag language.Tag) CaseOption {
	return func(c *caseConfig) {
		c.tag = tag
	}
}

// Upper maps t to upper case.
func Upper(t Text, opts ...CaseOption) Text {
	cfg := newCaseConfig(opts)
	return mapped(t, func(s string) string {
		// cases.Caser keeps state between calls and is not safe to share.
		return cases.Upper(cfg.tag).String(s)
	})
}

// Lower maps t to lower case.
func Lower(t Text, opts ...CaseOption) Text {
	cfg := newCaseConfig(opts)
	return mapped(t, func(s string) string {
		return cases.Lower(cfg.tag).String(s)
	})
}

func newCaseConfig(opts []CaseOption) caseConfig {
	cfg := caseConfig{tag: language.Und}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// mapped applies fn to the string produced by t, lazily.
// Errors from t are returned unchanged.
func mapped(t Text, fn func(string) string) Text {
	return core.Envelop(func() (string, error) {
		if t == nil {
			return "", core.ErrNilSource
		}
		s, err := t.AsString()
		if err != nil {
			return "", err
		}
		return fn(s), nil
	})
}
