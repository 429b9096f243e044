package service

import (
	"math/rand/v2"
	"strings"
	"sync"
)

// Rule maps any of its keywords, matched as substrings of the lower-cased input,
// to a fixed reply key.
type Rule struct {
	Keywords []string
	Reply    string
}

// Responder picks canned replies. Rules are tried in order and the first hit wins;
// otherwise a reply is drawn uniformly from the default pool.
type Responder struct {
	rules       []Rule
	defaults    []string
	suggestions []string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewResponder(rules []Rule, defaults, suggestions []string, rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			kws[j] = strings.ToLower(k)
		}
		normalized[i] = Rule{Keywords: kws, Reply: r.Reply}
	}
	return &Responder{rules: normalized, defaults: defaults, suggestions: suggestions, rng: rng}
}

var defaultRules = []Rule{
	{Keywords: []string{"ใบขับขี่", "ขับรถ", "driver", "driving"}, Reply: "chat.reply.driverLicense"},
	{Keywords: []string{"บัตรประชาชน", "บัตรปชช", "id card"}, Reply: "chat.reply.idCard"},
	{Keywords: []string{"ประกันสังคม", "สิทธิ์", "social security", "benefit"}, Reply: "chat.reply.socialSecurity"},
}

var defaultReplies = []string{
	"chat.default.intro",
	"chat.default.license",
	"chat.default.idCard",
	"chat.default.sso",
}

var quickSuggestions = []string{
	"suggestion.driverLicenseExpiry",
	"suggestion.renewIdCard",
	"suggestion.socialSecurity",
	"suggestion.bookQueue",
	"suggestion.documents",
	"suggestion.govApps",
}

// DefaultResponder uses the built-in rules. A nil rng means an unseeded source.
func DefaultResponder(rng *rand.Rand) *Responder {
	return NewResponder(defaultRules, defaultReplies, quickSuggestions, rng)
}

// Reply returns the reply key for text and whether a keyword rule matched.
func (r *Responder) Reply(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, kw) {
				return rule.Reply, true
			}
		}
	}
	if len(r.defaults) == 0 {
		return "", false
	}
	r.mu.Lock()
	i := r.rng.IntN(len(r.defaults))
	r.mu.Unlock()
	return r.defaults[i], false
}

// Suggestions returns pool[a:b] with a drawn from [0,3) and b from [3,6), clamped
// to the pool size.
func (r *Responder) Suggestions() []string {
	r.mu.Lock()
	a := r.rng.IntN(3)
	b := r.rng.IntN(3) + 3
	r.mu.Unlock()
	return r.slice(a, b)
}

// Greeting suggestions are the first three of the pool.
func (r *Responder) Greeting() []string { return r.slice(0, 3) }

// Popular is the fixed list shown under the chat input.
func (r *Responder) Popular() []string { return r.slice(0, 4) }

func (r *Responder) slice(a, b int) []string {
	n := len(r.suggestions)
	b = min(b, n)
	a = min(a, b)
	out := make([]string, b-a)
	copy(out, r.suggestions[a:b])
	return out
}
