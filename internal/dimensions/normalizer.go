package dimensions

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type alias struct {
	key       string
	canonical string
}

// aliases maps every known spelling of a dimension to its canonical name.
// Order matters for the fuzzy pass: the first matching key wins.
var aliases = []alias{
	{"consciencia_interior", "Consciência Interior"},
	{"Consciência Interior", "Consciência Interior"},
	{"Consciencia Interior", "Consciência Interior"},

	{"coerencia_emocional", "Coerência Emocional"},
	{"Coerência Emocional", "Coerência Emocional"},
	{"Coerencia Emocional", "Coerência Emocional"},

	{"conexao_proposito", "Conexão e Propósito"},
	{"conexao_e_proposito", "Conexão e Propósito"},
	{"Conexão e Propósito", "Conexão e Propósito"},
	{"Conexao e Proposito", "Conexão e Propósito"},

	{"relacoes_compaixao", "Relações e Compaixão"},
	{"relacoes_e_compaixao", "Relações e Compaixão"},
	{"Relações e Compaixão", "Relações e Compaixão"},
	{"Relacoes e Compaixao", "Relações e Compaixão"},

	{"transformacao", "Transformação"},
	{"transformacao_crescimento", "Transformação"},
	{"Transformação", "Transformação"},
	{"Transformação e Crescimento", "Transformação"},
	{"Transformacao e Crescimento", "Transformação"},
}

var (
	aliasIndex = buildAliasIndex()
	fuzzyKeys  = buildFuzzyKeys()
)

func buildAliasIndex() map[string]string {
	idx := make(map[string]string, len(aliases))
	for _, a := range aliases {
		idx[a.key] = a.canonical
	}
	return idx
}

func buildFuzzyKeys() []alias {
	keys := make([]alias, 0, len(aliases))
	for _, a := range aliases {
		keys = append(keys, alias{key: foldName(a.key), canonical: a.canonical})
	}
	return keys
}

// foldName strips diacritics and every non-letter, then lowercases.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Resolve maps a dimension identifier (slug, canonical or variant spelling) to
// its canonical display name. Matching is exact, then lowercased and trimmed,
// then accent and punctuation insensitive. When nothing matches the input is
// returned unchanged with ok=false.
func Resolve(name string) (string, bool) {
	if canonical, ok := aliasIndex[name]; ok {
		return canonical, true
	}

	if canonical, ok := aliasIndex[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical, true
	}

	folded := foldName(name)
	if folded != "" {
		for _, k := range fuzzyKeys {
			if k.key == folded {
				return k.canonical, true
			}
		}
	}

	return name, false
}

// Normalize returns the canonical display name for name, or name itself when
// it cannot be resolved.
func Normalize(name string) string {
	canonical, _ := Resolve(name)
	return canonical
}

// Lookup resolves name through the normalizer and returns its registry entry.
func Lookup(name string) (Dimension, bool) {
	canonical, ok := Resolve(name)
	if !ok {
		return Dimension{}, false
	}
	return ByName(canonical)
}

// ScoreRecord is a dimension score as it arrives from persisted storage,
// keyed by whatever name form the producer used.
type ScoreRecord struct {
	Dimension  string  `json:"dimension"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// NormalizeScores returns a copy of records with every dimension name
// normalized. A non-positive maxScore becomes the Likert maximum, and a
// non-positive percentage is recomputed as score/maxScore*100.
func NormalizeScores(records []ScoreRecord) []ScoreRecord {
	out := make([]ScoreRecord, len(records))
	for i, r := range records {
		r.Dimension = Normalize(r.Dimension)
		if r.MaxScore <= 0 {
			r.MaxScore = MaxScore
		}
		if r.Percentage <= 0 {
			r.Percentage = (r.Score / r.MaxScore) * 100
		}
		out[i] = r
	}
	return out
}

// UnresolvedNames lists the record dimension names the normalizer cannot map,
// in input order, without duplicates.
func UnresolvedNames(records []ScoreRecord) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range records {
		if _, ok := Resolve(r.Dimension); ok || seen[r.Dimension] {
			continue
		}
		seen[r.Dimension] = true
		names = append(names, r.Dimension)
	}
	return names
}
