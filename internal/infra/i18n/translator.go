// Package i18n localizes user-facing error messages with golang.org/x/text.
package i18n

import (
	"net/http"
	"strings"

	"blvgames/config"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	// LangParam is the query parameter that overrides Accept-Language.
	LangParam = "lang"

	argSuffix = "#args"
)

// Translator resolves request languages and renders catalog messages.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
	known    map[string]struct{}
}

// NewTranslator builds the es/en catalog. env.language selects the fallback.
func NewTranslator(cfg *config.Config) (*Translator, error) {
	fallback := language.Spanish
	if cfg != nil {
		if tag, err := language.Parse(strings.TrimSpace(cfg.Env.Language)); err == nil {
			base, _ := tag.Base()
			if base.String() == "en" {
				fallback = language.English
			}
		}
	}

	// The fallback goes first so the matcher picks it for unsupported languages.
	tags := []language.Tag{fallback}
	if fallback == language.Spanish {
		tags = append(tags, language.English)
	} else {
		tags = append(tags, language.Spanish)
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	known := make(map[string]struct{})
	for _, set := range []struct {
		entries map[string]map[string]string
		suffix  string
	}{{messages, ""}, {argMessages, argSuffix}} {
		for lang, entries := range set.entries {
			tag := language.MustParse(lang)
			for code, msg := range entries {
				key := code + set.suffix
				if err := builder.SetString(tag, key, msg); err != nil {
					return nil, errors.Wrapf(err, "catalog entry %s/%s", lang, key)
				}
				known[key] = struct{}{}
			}
		}
	}

	return &Translator{
		catalog:  builder,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		fallback: fallback,
		known:    known,
	}, nil
}

// Default returns the fallback language.
func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Match maps a raw Accept-Language or lang value to a supported tag.
func (t *Translator) Match(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return t.fallback
	}

	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}

	return t.tags[idx]
}

// ResolveTag picks the language for a request: ?lang= first, then Accept-Language.
func (t *Translator) ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return t.fallback
	}
	if lang := r.URL.Query().Get(LangParam); lang != "" {
		return t.Match(lang)
	}

	return t.Match(r.Header.Get("Accept-Language"))
}

// Message renders the message for code in tag. When args are given and the code
// has a parameterized entry, that entry is used. Unknown codes return fallback.
func (t *Translator) Message(tag language.Tag, code, fallback string, args ...any) string {
	key := code
	if len(args) > 0 {
		if _, ok := t.known[code+argSuffix]; ok {
			key = code + argSuffix
		}
	}
	if _, ok := t.known[key]; !ok {
		return fallback
	}

	printer := message.NewPrinter(tag, message.Catalog(t.catalog))
	if key == code {
		return printer.Sprintf(key)
	}

	return printer.Sprintf(key, args...)
}
