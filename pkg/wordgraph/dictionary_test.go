package wordgraph

import (
	"errors"
	"slices"
	"testing"
)

func lexiconEntries() []Entry {
	return []Entry{
		{Word: "car", Class: "n."},
		{Word: "bus", Class: "n."},
		{Word: "wolf", Class: "n."},
		{Word: "city", Class: "n."},
		{Word: "live", Class: "v. i."},
		{Word: "play", Class: "v. t."},
		{Word: "play", Class: "n."}, // second sense
		{Word: "try", Class: "v. t."},
		{Word: "new", Class: "n."},
		{Word: "news", Class: "n."},
		{Word: "out of order", Class: "adv."}, // not a plain word, dropped
	}
}

func TestLexiconResolve(t *testing.T) {
	lex := BuildLexicon(lexiconEntries())

	tests := []struct {
		name  string
		token string
		want  string
		ok    bool
	}{
		{name: "Defined", token: "car", want: "car", ok: true},
		{name: "PluralNoun", token: "cars", want: "car", ok: true},
		{name: "PluralNounEs", token: "buses", want: "bus", ok: true},
		{name: "PluralNounVes", token: "wolves", want: "wolf", ok: true},
		{name: "PluralNounIes", token: "cities", want: "city", ok: true},
		{name: "VerbD", token: "lived", want: "live", ok: true},
		{name: "VerbEd", token: "played", want: "play", ok: true},
		{name: "VerbIed", token: "tried", want: "try", ok: true},
		{name: "VerbIng", token: "playing", want: "play", ok: true},
		{name: "DefinedBeatsInflection", token: "news", want: "news", ok: true},
		{name: "VerbSuffixNeedsVerbBase", token: "cared", want: "", ok: false},
		{name: "Unknown", token: "qzx", want: "", ok: false},
		{name: "MultiWordHeadwordDropped", token: "out", want: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lex.Resolve(tt.token)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Resolve(%q) = %q, %t, want %q, %t", tt.token, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLexiconContains(t *testing.T) {
	lex := BuildLexicon(lexiconEntries())
	if !lex.Contains("car") {
		t.Error(`Contains("car") = false, want true`)
	}
	if lex.Contains("out of order") {
		t.Error("multi-word headword survived the word filter")
	}
}

func dictionaryEntries() []Entry {
	return []Entry{
		{Word: "cat", Class: "n.", Definition: "A small animal; cats hunt mice."},
		{Word: "animal", Class: "n.", Definition: "A living thing, unlike a stone."},
		{Word: "mouse", Class: "n.", Definition: "A small animal chased by cats."},
	}
}

func TestBuild(t *testing.T) {
	d := Build(dictionaryEntries())

	if got := d.WordCount(); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
	// cat -> animal, mouse -> animal, mouse -> cat; "cats" resolves back
	// to its own headword and becomes a reflexive mark, not an edge.
	if got := d.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
	if !d.Contains("cat") || d.Contains("cats") {
		t.Error("Contains should match headwords only")
	}
	if got := d.InDegree("animal"); got != 2 {
		t.Errorf("InDegree(animal) = %d, want 2", got)
	}
	if got := d.InDegree("cat"); got != 1 {
		t.Errorf("InDegree(cat) = %d, want 1", got)
	}
	if got := d.OutDegree("mouse"); got != 2 {
		t.Errorf("OutDegree(mouse) = %d, want 2", got)
	}
	if got := d.OutDegree("animal"); got != 0 {
		t.Errorf("OutDegree(animal) = %d, want 0", got)
	}
}

func TestNeighbourhood(t *testing.T) {
	d := Build(dictionaryEntries())

	g, labels, err := d.Neighbourhood("animal", NeighbourhoodOptions{})
	if err != nil {
		t.Fatalf("Neighbourhood: %v", err)
	}
	if want := []string{"animal", "cat", "mouse"}; !slices.Equal(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}

	at := func(word string) int { return slices.Index(labels, word) }
	for _, e := range [][2]string{{"cat", "animal"}, {"mouse", "animal"}, {"mouse", "cat"}} {
		if !g.HasEdge(at(e[0]), at(e[1])) {
			t.Errorf("missing edge %s -> %s", e[0], e[1])
		}
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}

	// "cats" in cat's own definition marks the node reflexive.
	if n, ok := g.Node(at("cat")); !ok || !n.Reflexive {
		t.Error("cat lost its reflexive mark")
	}
	if n, ok := g.Node(at("animal")); !ok || n.Reflexive {
		t.Error("animal should not be reflexive")
	}
}

func TestNeighbourhoodIndegreeCap(t *testing.T) {
	d := Build(dictionaryEntries())

	// InDegree(animal) = 2, so a cap of 2 drops it from mouse's
	// neighbourhood.
	g, labels, err := d.Neighbourhood("mouse", NeighbourhoodOptions{MaxInDegree: 2})
	if err != nil {
		t.Fatalf("Neighbourhood: %v", err)
	}
	if want := []string{"mouse", "cat"}; !slices.Equal(labels, want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	if !g.HasEdge(0, 1) {
		t.Error("missing edge mouse -> cat")
	}

	// The centre survives its own indegree.
	_, labels, err = d.Neighbourhood("animal", NeighbourhoodOptions{MaxInDegree: 1})
	if err != nil {
		t.Fatalf("Neighbourhood: %v", err)
	}
	if want := []string{"animal", "mouse"}; !slices.Equal(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestNeighbourhoodUnknownWord(t *testing.T) {
	d := Build(dictionaryEntries())
	if _, _, err := d.Neighbourhood("zebra", NeighbourhoodOptions{}); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("err = %v, want ErrUnknownWord", err)
	}
}

func TestNeighbourhoodNormalizesCentre(t *testing.T) {
	d := Build(dictionaryEntries())
	_, labels, err := d.Neighbourhood("  Animal ", NeighbourhoodOptions{})
	if err != nil {
		t.Fatalf("Neighbourhood: %v", err)
	}
	if labels[0] != "animal" {
		t.Errorf("centre = %q, want %q", labels[0], "animal")
	}
}
