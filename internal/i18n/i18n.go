// Package i18n holds the Thai/English display dictionary. Lookups of keys that have
// no translation return the key itself, so literal strings pass through unchanged.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	TH Locale = "th"
	EN Locale = "en"
)

var supported = []language.Tag{language.Thai, language.English}

var matcher = language.NewMatcher(supported)

// Store is read-only after construction and safe for concurrent use.
type Store struct {
	dict     map[Locale]map[string]string
	fallback Locale
}

// New builds a store over dict. fallback is the locale used for unknown or empty locales.
func New(dict map[Locale]map[string]string, fallback Locale) *Store {
	if _, ok := dict[fallback]; !ok {
		fallback = TH
	}
	return &Store{dict: dict, fallback: fallback}
}

// Default returns the built-in dictionary with the given fallback locale.
func Default(fallback string) *Store {
	return New(map[Locale]map[string]string{TH: thai, EN: english}, Locale(fallback))
}

func (s *Store) Fallback() Locale { return s.fallback }

func (s *Store) Supports(l Locale) bool {
	_, ok := s.dict[l]
	return ok
}

// T translates key in locale l. Unknown locales use the fallback locale; unknown keys
// return key.
func (s *Store) T(l Locale, key string) string {
	m, ok := s.dict[l]
	if !ok {
		m = s.dict[s.fallback]
	}
	if v, ok := m[key]; ok && v != "" {
		return v
	}
	return key
}

// Tf translates key and formats the result with args.
func (s *Store) Tf(l Locale, key string, args ...any) string {
	return fmt.Sprintf(s.T(l, key), args...)
}

// Dictionary returns a copy of the whole table for l.
func (s *Store) Dictionary(l Locale) (map[string]string, bool) {
	m, ok := s.dict[l]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, true
}

// Parse accepts "th", "en" and region variants like "en-US"; ok is false for anything else.
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "th":
		return TH, true
	case "en":
		return EN, true
	}
	return "", false
}

// Negotiate picks the best supported locale for an Accept-Language header value.
func (s *Store) Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return s.fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return s.fallback
	}
	if idx == 1 {
		return EN
	}
	return TH
}
