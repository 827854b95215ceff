package transform

import (
	"fmt"
	"strings"
)

// Substitution replaces every occurrence of From with To.
type Substitution struct {
	From string `json:"from" yaml:"from" mapstructure:"from"`
	To   string `json:"to" yaml:"to" mapstructure:"to"`
}

// DefaultSubstitutions are the replacements required by the CrypTool 2
// homophonic analyzer, which reserves ";" and "|" in its key syntax.
var DefaultSubstitutions = []Substitution{
	{From: ";", To: "Ä"},
	{From: "|", To: "Ö"},
}

// Normalizer applies a fixed list of literal substitutions, in order, to the whole text.
type Normalizer struct {
	subs []Substitution
}

// NewNormalizer validates subs and returns a normalizer applying them in order.
func NewNormalizer(subs ...Substitution) (*Normalizer, error) {
	for i, s := range subs {
		if s.From == "" {
			return nil, fmt.Errorf("substitution %d: empty designator", i+1)
		}
	}
	cp := make([]Substitution, len(subs))
	copy(cp, subs)
	return &Normalizer{subs: cp}, nil
}

// DefaultNormalizer returns the normalizer built from DefaultSubstitutions.
func DefaultNormalizer() *Normalizer {
	n, _ := NewNormalizer(DefaultSubstitutions...)
	return n
}

// Substitutions returns a copy of the configured pairs.
func (n *Normalizer) Substitutions() []Substitution {
	cp := make([]Substitution, len(n.subs))
	copy(cp, n.subs)
	return cp
}

// Normalize applies every substitution to text.
func (n *Normalizer) Normalize(text string) string {
	for _, s := range n.subs {
		text = strings.ReplaceAll(text, s.From, s.To)
	}
	return text
}
