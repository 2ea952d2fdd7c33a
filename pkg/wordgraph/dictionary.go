package wordgraph

import (
	"strings"
)

// Lexicon indexes headwords by part of speech and resolves inflected forms
// back to their base words.
type Lexicon struct {
	defined map[string]bool
	nouns   map[string]bool // class "n." exactly
	verbs   map[string]bool // any class starting with "v."
}

// BuildLexicon indexes entries whose headword is a plain lowercase word.
// Headwords with spaces, hyphens or other characters are dropped.
func BuildLexicon(entries []Entry) *Lexicon {
	l := &Lexicon{
		defined: make(map[string]bool),
		nouns:   make(map[string]bool),
		verbs:   make(map[string]bool),
	}
	for _, e := range entries {
		if !isWord(e.Word) {
			continue
		}
		l.defined[e.Word] = true
		if e.Class == "n." {
			l.nouns[e.Word] = true
		}
		if strings.HasPrefix(e.Class, "v.") {
			l.verbs[e.Word] = true
		}
	}
	return l
}

// Contains reports whether word is a defined headword.
func (l *Lexicon) Contains(word string) bool { return l.defined[word] }

// Resolve maps a definition token to the headword it stands for. Defined
// words resolve to themselves; otherwise a fixed sequence of inflection
// rules is tried and the first that lands on a suitable headword wins:
//
//	cars -> car      (noun + s)
//	buses -> bus     (noun + es)
//	wolves -> wolf   (noun, f to ves)
//	cities -> city   (noun, y to ies)
//	lived -> live    (verb + d)
//	played -> play   (verb + ed)
//	tried -> try     (verb, y to ied)
//	playing -> play  (verb + ing)
//
// Tokens that neither are defined nor inflect a known noun or verb report
// false.
func (l *Lexicon) Resolve(word string) (string, bool) {
	switch {
	case l.defined[word]:
		return word, true
	case strings.HasSuffix(word, "s") && l.nouns[word[:len(word)-1]]:
		return word[:len(word)-1], true
	case strings.HasSuffix(word, "es") && l.nouns[word[:len(word)-2]]:
		return word[:len(word)-2], true
	case strings.HasSuffix(word, "ves") && l.nouns[word[:len(word)-3]+"f"]:
		return word[:len(word)-3] + "f", true
	case strings.HasSuffix(word, "ies") && l.nouns[word[:len(word)-3]+"y"]:
		return word[:len(word)-3] + "y", true
	case strings.HasSuffix(word, "d") && l.verbs[word[:len(word)-1]]:
		return word[:len(word)-1], true
	case strings.HasSuffix(word, "ed") && l.verbs[word[:len(word)-2]]:
		return word[:len(word)-2], true
	case strings.HasSuffix(word, "ied") && l.verbs[word[:len(word)-3]+"y"]:
		return word[:len(word)-3] + "y", true
	case strings.HasSuffix(word, "ing") && l.verbs[word[:len(word)-3]]:
		return word[:len(word)-3], true
	}
	return "", false
}

// Dictionary is the complete word graph: one vertex per defined headword
// and an edge from each headword to every headword its definitions use,
// after inflected forms are resolved. A headword whose definition mentions
// itself is marked reflexive rather than given a self-edge.
type Dictionary struct {
	out       map[string]map[string]bool
	in        map[string]map[string]bool
	reflexive map[string]bool
	edges     int
}

// Build assembles the word graph from parsed entries. Definition tokens
// that resolve to no headword are dropped, so the graph is closed: every
// edge ends on a defined word.
func Build(entries []Entry) *Dictionary {
	lex := BuildLexicon(entries)

	// Union the definition tokens of every sense of each headword.
	tokens := make(map[string]map[string]bool, len(lex.defined))
	for _, e := range entries {
		if !isWord(e.Word) {
			continue
		}
		set, ok := tokens[e.Word]
		if !ok {
			set = make(map[string]bool)
			tokens[e.Word] = set
		}
		for _, t := range splitWords(e.Definition) {
			set[t] = true
		}
	}

	d := &Dictionary{
		out:       make(map[string]map[string]bool, len(tokens)),
		in:        make(map[string]map[string]bool),
		reflexive: make(map[string]bool),
	}
	for word, set := range tokens {
		targets := make(map[string]bool)
		for t := range set {
			target, ok := lex.Resolve(t)
			if !ok {
				continue
			}
			if target == word {
				d.reflexive[word] = true
				continue
			}
			targets[target] = true
		}
		d.out[word] = targets
	}
	for word, targets := range d.out {
		for target := range targets {
			set, ok := d.in[target]
			if !ok {
				set = make(map[string]bool)
				d.in[target] = set
			}
			set[word] = true
			d.edges++
		}
	}
	return d
}

// WordCount returns the number of defined headwords.
func (d *Dictionary) WordCount() int { return len(d.out) }

// EdgeCount returns the number of definition edges.
func (d *Dictionary) EdgeCount() int { return d.edges }

// Contains reports whether word is a defined headword.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.out[word]
	return ok
}

// InDegree returns the number of headwords whose definitions use word.
func (d *Dictionary) InDegree(word string) int { return len(d.in[word]) }

// OutDegree returns the number of headwords word's definitions use.
func (d *Dictionary) OutDegree(word string) int { return len(d.out[word]) }

// isWord reports whether s consists of one or more letters a through z.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// splitWords lowercases s and splits it on every run of non-letters.
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}
