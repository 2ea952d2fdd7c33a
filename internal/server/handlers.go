package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/uspp-raketa/vertexsim/pkg/catalog"
	"github.com/uspp-raketa/vertexsim/pkg/compare"
	"github.com/uspp-raketa/vertexsim/pkg/graph"
	"github.com/uspp-raketa/vertexsim/pkg/resultstore"
)

// compareRequest is the POST /api/v1/compare body. A and B are 0/1
// adjacency literals; row nodes come from A, column nodes from B.
type compareRequest struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`

	Tolerance float64 `json:"tolerance,omitempty"`
	MaxRounds int     `json:"max_rounds,omitempty"`

	RowLabels []string `json:"row_labels,omitempty"`
	ColLabels []string `json:"col_labels,omitempty"`

	// Store persists the report so it can be fetched again under
	// /api/v1/results/{id}.
	Store bool `json:"store,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidBody, "decode request: "+err.Error())
		return
	}

	row, err := graph.FromAdjacency(req.A)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidGraph, "graph a: "+err.Error())
		return
	}
	col, err := graph.FromAdjacency(req.B)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidGraph, "graph b: "+err.Error())
		return
	}

	if req.RowLabels != nil && len(req.RowLabels) != row.NodeCount() {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidLabels, "row_labels length does not match graph a")
		return
	}
	if req.ColLabels != nil && len(req.ColLabels) != col.NodeCount() {
		writeError(w, http.StatusBadRequest, ErrCodeInvalidLabels, "col_labels length does not match graph b")
		return
	}

	rep, err := s.runner.Run(r.Context(), row, col, compare.Options{
		Tolerance: req.Tolerance,
		MaxRounds: req.MaxRounds,
		RowLabels: req.RowLabels,
		ColLabels: req.ColLabels,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	if req.Store {
		if err := s.store.Put(r.Context(), rep); err != nil {
			s.logger.Error("store report", "id", rep.ID, "err", err)
			writeError(w, http.StatusInternalServerError, ErrCodeInternal, "store report: "+err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, rep)
}

// exampleSummary is one row of the GET /api/v1/examples listing.
type exampleSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	pairs := catalog.All()
	out := make([]exampleSummary, len(pairs))
	for i, p := range pairs {
		out[i] = exampleSummary{Name: p.Name, Description: p.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

// exampleDetail is the GET /api/v1/examples/{name} body: the pair's
// adjacency literals, ready to feed back into /compare.
type exampleDetail struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	A           [][]float64 `json:"a"`
	B           [][]float64 `json:"b"`
}

func (s *Server) handleExample(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, err := catalog.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return
	}

	row, col := p.Build()
	writeJSON(w, http.StatusOK, exampleDetail{
		Name:        p.Name,
		Description: p.Description,
		A:           adjacencyRows(row),
		B:           adjacencyRows(col),
	})
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, resultstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// adjacencyRows copies a graph's adjacency matrix into plain slices for
// serialization. An empty graph yields an empty slice, not null.
func adjacencyRows(g *graph.Graph) [][]float64 {
	m := g.AdjacencyMatrix()
	if m == nil {
		return [][]float64{}
	}
	n, _ := m.Dims()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
