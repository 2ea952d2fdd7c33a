package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// ReadEdgeList parses the line-oriented edge-list format described in the
// package documentation. Nodes are created in order of first mention; a
// self-arrow marks its node reflexive. Parse errors report the offending
// line number.
func ReadEdgeList(r io.Reader) (*graph.Graph, error) {
	type statement struct {
		from, to  int
		both      bool
		reflexive bool
	}

	var (
		order []int
		seen  = make(map[int]bool)
		stmts []statement
	)
	note := func(id int) {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			id, err := parseID(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			note(id)
		case 3:
			from, err := parseID(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			to, err := parseID(fields[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			st := statement{from: from, to: to}
			switch fields[1] {
			case "->":
			case "<-":
				st.from, st.to = to, from
			case "<->":
				st.both = true
			default:
				return nil, fmt.Errorf("line %d: unknown arrow %q", lineNo, fields[1])
			}
			if st.from == st.to {
				st.reflexive = true
			}
			note(st.from)
			note(st.to)
			stmts = append(stmts, st)
		default:
			return nil, fmt.Errorf("line %d: want \"ID\" or \"ID -> ID\", got %q", lineNo, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	nodes := make([]graph.Node, len(order))
	for i, id := range order {
		nodes[i] = graph.Node{ID: id}
	}
	g, err := graph.Restore(nodes, nil)
	if err != nil {
		return nil, err
	}
	for _, st := range stmts {
		if st.reflexive {
			if err := g.SetReflexive(st.from, true); err != nil {
				return nil, fmt.Errorf("node %d: %w", st.from, err)
			}
			continue
		}
		if _, err := g.AddLink(st.from, st.to); err != nil {
			return nil, fmt.Errorf("edge %d -> %d: %w", st.from, st.to, err)
		}
		if st.both {
			if _, err := g.AddLink(st.to, st.from); err != nil {
				return nil, fmt.Errorf("edge %d -> %d: %w", st.to, st.from, err)
			}
		}
	}
	return g, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("node id %q is not an integer", s)
	}
	if id < 0 {
		return 0, fmt.Errorf("node id %d is negative", id)
	}
	return id, nil
}
