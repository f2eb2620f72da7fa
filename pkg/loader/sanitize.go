package loader

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fewshot/pkg/tags"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// stripMarkup removes every element and returns plain text. The policy
// escapes entities on output, so they are decoded again.
func stripMarkup(raw string) string {
	if raw == "" {
		return ""
	}
	return html.UnescapeString(textSanitizer().Sanitize(raw))
}

func (l *Loader) clean(text string) string {
	if !l.sanitize {
		return text
	}
	return stripMarkup(text)
}

func (l *Loader) cleanAll(texts []string) []string {
	if !l.sanitize || len(texts) == 0 {
		return texts
	}
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = stripMarkup(text)
	}
	return out
}

func (l *Loader) cleanValue(value tags.Value) tags.Value {
	if !l.sanitize {
		return value
	}
	if value.IsList() {
		return tags.List(l.cleanAll(value.Values())...)
	}
	return tags.Single(stripMarkup(value.String()))
}
