// Package wordgraph builds a directed graph over the English lexicon from
// the OPTED edition of Webster's 1913 dictionary.
//
// # Overview
//
// Every defined headword becomes a vertex, and each definition contributes
// edges from its headword to the words it uses. The resulting graph has
// on the order of 100k vertices and a million edges, far too large to score
// directly, so comparisons work on word neighbourhoods: the subgraph around
// a centre word, which typically has tens to a few hundred vertices.
//
// # Building
//
// [Fetcher] downloads the 26 letter pages and [ParseEntries] extracts the
// entries; [Build] resolves definition tokens against the lexicon and
// assembles the [Dictionary]:
//
//	fetcher := wordgraph.NewFetcher(fileCache, "")
//	entries, err := fetcher.All(ctx, false)
//	if err != nil {
//	    return err
//	}
//	dict := wordgraph.Build(entries)
//
// Tokens that are not headwords themselves are resolved through a small
// set of inflection rules (plural nouns, past-tense and progressive
// verbs); see [Lexicon.Resolve]. Unresolvable tokens are dropped, which
// keeps the graph closed over defined words.
//
// # Neighbourhoods
//
// [Dictionary.Neighbourhood] extracts the centre word, its definition
// neighbours in both directions, and all edges among them. High-indegree
// filler words can be excluded with [NeighbourhoodOptions.MaxInDegree].
// The subgraph arrives as a [graph.Graph] plus a label slice aligned with
// node order, ready for adjacency matrix extraction and similarity
// scoring.
package wordgraph
