package graphio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

func buildSample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := 0; i < 3; i++ {
		g.AddNode()
	}
	for _, pair := range [][2]int{{0, 1}, {1, 0}, {1, 2}} {
		if _, err := g.AddLink(pair[0], pair[1]); err != nil {
			t.Fatalf("AddLink: %v", err)
		}
	}
	if err := g.SetReflexive(2, true); err != nil {
		t.Fatalf("SetReflexive: %v", err)
	}
	return g
}

func TestJSONRoundTrip(t *testing.T) {
	g := buildSample(t)
	labels := []string{"alpha", "beta", "gamma"}

	var buf bytes.Buffer
	if err := WriteJSON(g, labels, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, gotLabels, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.NodeCount() != 3 || got.LinkCount() != 2 {
		t.Fatalf("restored %d nodes %d links, want 3 nodes 2 links", got.NodeCount(), got.LinkCount())
	}
	if l, ok := got.Link(0, 1); !ok || !l.Left || !l.Right {
		t.Errorf("Link(0, 1) = %+v, %t, want bidirectional", l, ok)
	}
	if l, ok := got.Link(1, 2); !ok || l.Left || !l.Right {
		t.Errorf("Link(1, 2) = %+v, %t, want right only", l, ok)
	}
	if n, ok := got.Node(2); !ok || !n.Reflexive {
		t.Error("node 2 lost its reflexive flag")
	}
	if !slices.Equal(gotLabels, labels) {
		t.Errorf("labels = %v, want %v", gotLabels, labels)
	}

	// The ID counter resumes past the restored IDs.
	if n := got.AddNode(); n.ID != 3 {
		t.Errorf("next ID = %d, want 3", n.ID)
	}
}

func TestWriteJSONLabelMismatch(t *testing.T) {
	g := buildSample(t)
	if err := WriteJSON(g, []string{"only-one"}, &bytes.Buffer{}); err == nil {
		t.Error("WriteJSON accepted a short label slice")
	}
}

func TestReadJSONNoLabels(t *testing.T) {
	in := `{"nodes": [{"id": 0}, {"id": 1}], "links": [{"source": 0, "target": 1, "right": true}]}`

	g, labels, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if labels != nil {
		t.Errorf("labels = %v, want nil", labels)
	}
	if !g.HasEdge(0, 1) {
		t.Error("HasEdge(0, 1) = false, want true")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{
			name: "MalformedJSON",
			in:   `{"nodes": [`,
		},
		{
			name:    "DuplicateNodeID",
			in:      `{"nodes": [{"id": 0}, {"id": 0}], "links": []}`,
			wantErr: graph.ErrDuplicateNodeID,
		},
		{
			name:    "SelfLink",
			in:      `{"nodes": [{"id": 0}], "links": [{"source": 0, "target": 0, "right": true}]}`,
			wantErr: graph.ErrSelfLink,
		},
		{
			name:    "NonCanonicalLink",
			in:      `{"nodes": [{"id": 0}, {"id": 1}], "links": [{"source": 1, "target": 0, "right": true}]}`,
			wantErr: graph.ErrInvalidLink,
		},
		{
			name:    "NoDirection",
			in:      `{"nodes": [{"id": 0}, {"id": 1}], "links": [{"source": 0, "target": 1}]}`,
			wantErr: graph.ErrInvalidLink,
		},
		{
			name:    "UnknownEndpoint",
			in:      `{"nodes": [{"id": 0}], "links": [{"source": 0, "target": 7, "right": true}]}`,
			wantErr: graph.ErrInvalidLink,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadJSON succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadEdgeList(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		check func(t *testing.T, g *graph.Graph)
	}{
		{
			name: "Directed",
			in:   "0 -> 1\n",
			check: func(t *testing.T, g *graph.Graph) {
				if !g.HasEdge(0, 1) || g.HasEdge(1, 0) {
					t.Errorf("edges = %v, want 0 -> 1 only", g.Links())
				}
			},
		},
		{
			name: "ReverseArrow",
			in:   "1 <- 0\n",
			check: func(t *testing.T, g *graph.Graph) {
				if !g.HasEdge(0, 1) || g.HasEdge(1, 0) {
					t.Errorf("edges = %v, want 0 -> 1 only", g.Links())
				}
			},
		},
		{
			name: "Bidirectional",
			in:   "0 <-> 1\n",
			check: func(t *testing.T, g *graph.Graph) {
				if !g.HasEdge(0, 1) || !g.HasEdge(1, 0) {
					t.Errorf("edges = %v, want both directions", g.Links())
				}
				if g.LinkCount() != 1 {
					t.Errorf("LinkCount = %d, want 1", g.LinkCount())
				}
			},
		},
		{
			name: "OppositeArrowsMerge",
			in:   "0 -> 1\n0 <- 1\n",
			check: func(t *testing.T, g *graph.Graph) {
				if l, ok := g.Link(0, 1); !ok || !l.Left || !l.Right {
					t.Errorf("Link(0, 1) = %+v, %t, want bidirectional", l, ok)
				}
			},
		},
		{
			name: "BareNodesKeepMentionOrder",
			in:   "5\n3\n",
			check: func(t *testing.T, g *graph.Graph) {
				if got, want := g.NodeIDs(), []int{5, 3}; !slices.Equal(got, want) {
					t.Errorf("NodeIDs() = %v, want %v", got, want)
				}
			},
		},
		{
			name: "SelfArrowMarksReflexive",
			in:   "2 -> 2\n",
			check: func(t *testing.T, g *graph.Graph) {
				if n, ok := g.Node(2); !ok || !n.Reflexive {
					t.Error("node 2 is not reflexive")
				}
				if g.LinkCount() != 0 {
					t.Errorf("LinkCount = %d, want 0", g.LinkCount())
				}
			},
		},
		{
			name: "CommentsAndBlanks",
			in:   "# a comment\n\n  0 -> 1\n",
			check: func(t *testing.T, g *graph.Graph) {
				if !g.HasEdge(0, 1) {
					t.Error("HasEdge(0, 1) = false, want true")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadEdgeList(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadEdgeList: %v", err)
			}
			tt.check(t, g)
		})
	}
}

func TestReadEdgeListErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "UnknownArrow", in: "0 => 1\n", want: "line 1"},
		{name: "NotAnInteger", in: "a -> b\n", want: "line 1"},
		{name: "NegativeID", in: "0 -> 1\n-2\n", want: "line 2"},
		{name: "TooManyFields", in: "0 -> 1 -> 2\n", want: "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadEdgeList(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadEdgeList succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	g := buildSample(t)
	jsonPath := filepath.Join(dir, "sample.json")
	if err := ExportJSON(g, nil, jsonPath); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, labels, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}
	if labels != nil {
		t.Errorf("labels = %v, want nil", labels)
	}
	if got.NodeCount() != 3 || got.LinkCount() != 2 {
		t.Errorf("loaded %d nodes %d links, want 3 nodes 2 links", got.NodeCount(), got.LinkCount())
	}

	listPath := filepath.Join(dir, "sample.graph")
	if err := os.WriteFile(listPath, []byte("0 -> 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, _, err = Load(listPath)
	if err != nil {
		t.Fatalf("Load edge list: %v", err)
	}
	if !got.HasEdge(0, 1) {
		t.Error("HasEdge(0, 1) = false, want true")
	}

	if _, _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}
