// Package neo4j materializes node neighbourhoods stored in a Neo4j
// database as directed graphs the similarity engine can consume. It backs
// the "vertexsim fetch neo4j" command: pick a node, pull the node plus its
// direct neighbours and every relationship among them, and hand back a
// [graph.Graph] with the matching name labels.
package neo4j

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/uspp-raketa/vertexsim/pkg/graph"
)

// ErrNodeNotFound is returned by [Source.Neighbourhood] when no node
// matches the requested property value.
var ErrNodeNotFound = errors.New("no matching node in database")

// Config holds the connection settings for a Neo4j instance.
type Config struct {
	// URI is the bolt/neo4j connection URI, for example
	// "neo4j://localhost:7687".
	URI string

	// Username and Password authenticate against the database.
	Username string
	Password string

	// Database is the target database name. Empty selects "neo4j".
	Database string
}

// Source reads graphs out of a Neo4j database.
type Source struct {
	driver neo4j.DriverWithContext
	dbName string
}

// Connect creates a driver for the configured instance and verifies
// connectivity before returning.
func Connect(ctx context.Context, cfg Config) (*Source, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = "neo4j"
	}
	return &Source{driver: driver, dbName: dbName}, nil
}

// Close releases the underlying driver.
func (s *Source) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// NeighbourhoodOptions configures which nodes [Source.Neighbourhood]
// matches.
type NeighbourhoodOptions struct {
	// Label restricts matching to nodes carrying this label. Empty
	// matches any node.
	Label string

	// Property is the node property holding the lookup value and the
	// display name. Empty selects "name".
	Property string
}

// Neighbourhood pulls the node whose property equals value, its direct
// neighbours in either direction, and every directed relationship among
// those nodes. The returned labels hold the property values in node order,
// centre first and the rest sorted, so they line up with adjacency matrix
// indices. Parallel relationships collapse to one edge; self relationships
// are dropped because the graph model has no self links.
func (s *Source) Neighbourhood(ctx context.Context, value string, opts NeighbourhoodOptions) (*graph.Graph, []string, error) {
	prop := opts.Property
	if prop == "" {
		prop = "name"
	}
	match := nodePattern(opts.Label)

	// Centre plus direct neighbours.
	memberQuery := fmt.Sprintf(
		"MATCH (c%[1]s {`%[2]s`: $value}) OPTIONAL MATCH (c)--(n%[1]s) "+
			"RETURN DISTINCT n.`%[2]s` AS name", match, prop)
	result, err := s.run(ctx, memberQuery, map[string]any{"value": value})
	if err != nil {
		return nil, nil, err
	}
	if len(result.Records) == 0 {
		return nil, nil, fmt.Errorf("%s=%q: %w", prop, value, ErrNodeNotFound)
	}

	members := map[string]bool{}
	for _, rec := range result.Records {
		if name, ok := stringField(rec, "name"); ok && name != value {
			members[name] = true
		}
	}

	names := make([]string, 0, len(members)+1)
	names = append(names, value)
	rest := make([]string, 0, len(members))
	for name := range members {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	names = append(names, rest...)

	// Every directed relationship among the members.
	edgeQuery := fmt.Sprintf(
		"MATCH (a%[1]s)-[]->(b%[1]s) WHERE a.`%[2]s` IN $names AND b.`%[2]s` IN $names "+
			"RETURN a.`%[2]s` AS from, b.`%[2]s` AS to", match, prop)
	result, err = s.run(ctx, edgeQuery, map[string]any{"names": names})
	if err != nil {
		return nil, nil, err
	}

	g := graph.New()
	index := make(map[string]int, len(names))
	for _, name := range names {
		index[name] = g.AddNode().ID
	}

	for _, rec := range result.Records {
		from, okFrom := stringField(rec, "from")
		to, okTo := stringField(rec, "to")
		if !okFrom || !okTo || from == to {
			continue
		}
		if _, err := g.AddLink(index[from], index[to]); err != nil {
			return nil, nil, fmt.Errorf("add edge %s -> %s: %w", from, to, err)
		}
	}

	return g, names, nil
}

// run executes one Cypher query with automatic session handling and fully
// buffered results.
func (s *Source) run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.dbName))
	if err != nil {
		return nil, fmt.Errorf("neo4j query: %w", err)
	}
	return result, nil
}

// nodePattern renders an optional label filter for a MATCH pattern.
// Backticks guard against labels containing unusual characters; backticks
// inside the label itself are rejected upstream by the driver.
func nodePattern(label string) string {
	if label == "" {
		return ""
	}
	return ":`" + strings.ReplaceAll(label, "`", "") + "`"
}

func stringField(rec *neo4j.Record, key string) (string, bool) {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
