package wordnet

import "strings"

// detachment is one of WordNet's inflectional suffix rules.
type detachment struct {
	suffix, ending string
}

// detachments lists the suffix rules per WordNet part of speech. Adverbs have
// none. Satellite adjectives ("s") share the adjective rules.
var detachments = map[string][]detachment{
	"n": {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	"v": {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	"a": {{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"}},
	"s": {{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"}},
}

// baseForm is a candidate lemma for an inflected word, valid only for synsets
// of the given part of speech.
type baseForm struct {
	pos  string
	form string
}

// baseForms returns the forms word reduces to under the detachment rules.
// The word itself is not included. Results are ordered by part of speech then
// rule so the generated query is stable.
func baseForms(word string) []baseForm {
	var out []baseForm
	seen := make(map[baseForm]struct{})
	for _, pos := range []string{"n", "v", "a", "s"} {
		for _, d := range detachments[pos] {
			if !strings.HasSuffix(word, d.suffix) || len(word) == len(d.suffix) {
				continue
			}
			f := baseForm{pos: pos, form: strings.TrimSuffix(word, d.suffix) + d.ending}
			if f.form == word {
				continue
			}
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// synonymsQuery matches word as written in any synset, plus each base form
// within synsets of that form's part of speech.
func synonymsQuery(word string) (string, []any) {
	var b strings.Builder
	b.WriteString(`
SELECT DISTINCT lower(l2.name)
FROM lemmas l1
JOIN synsets s ON s.id = l1.synset_id
JOIN lemmas l2 ON l2.synset_id = l1.synset_id
WHERE lower(l1.name) = ?`)
	args := []any{word}
	for _, f := range baseForms(word) {
		b.WriteString("\n   OR (s.pos = ? AND lower(l1.name) = ?)")
		args = append(args, f.pos, f.form)
	}
	b.WriteString("\nORDER BY 1")
	return b.String(), args
}
