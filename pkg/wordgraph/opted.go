package wordgraph

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/uspp-raketa/vertexsim/pkg/cache"
	"github.com/uspp-raketa/vertexsim/pkg/httputil"
)

// DefaultBaseURL is the home of the OPTED edition of Webster's 1913
// dictionary, split into one HTML page per letter.
const DefaultBaseURL = "https://www.mso.anu.edu.au/~ralph/OPTED/v003"

// Entry is one parsed dictionary entry. Headwords repeat: each sense of a
// word is its own entry.
type Entry struct {
	// Word is the lowercased headword.
	Word string

	// Class is the part-of-speech tag as printed, for example "n.",
	// "v. t." or "a.".
	Class string

	// Definition is the raw definition text.
	Definition string
}

// Fetcher downloads and parses dictionary pages, caching the HTML so a
// full 26-letter fetch happens at most once per cache lifetime.
type Fetcher struct {
	client  *httputil.Client
	baseURL string
}

// NewFetcher creates a Fetcher that caches pages in c. An empty baseURL
// selects [DefaultBaseURL].
func NewFetcher(c cache.Cache, baseURL string) *Fetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fetcher{
		client:  httputil.NewClient(c, "opted:", cache.TTLDictionary, nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Letter fetches and parses the page for one letter ('a' through 'z').
// The second return value reports whether the page came from the cache.
// If refresh is true the cache is bypassed.
func (f *Fetcher) Letter(ctx context.Context, letter rune, refresh bool) ([]Entry, bool, error) {
	if letter < 'a' || letter > 'z' {
		return nil, false, fmt.Errorf("letter %q out of range a-z", letter)
	}

	url := fmt.Sprintf("%s/wb1913_%c.html", f.baseURL, letter)
	data, hit, err := f.client.Cached(ctx, url, refresh, func() ([]byte, error) {
		text, err := f.client.GetText(ctx, url)
		return []byte(text), err
	})
	if err != nil {
		return nil, false, fmt.Errorf("fetch %s: %w", url, err)
	}

	entries, err := ParseEntries(strings.NewReader(string(data)))
	if err != nil {
		return nil, hit, fmt.Errorf("parse %s: %w", url, err)
	}
	return entries, hit, nil
}

// All fetches and parses every letter page in order. With a warm cache this
// is a local operation; cold, it downloads some 30 MB of HTML.
func (f *Fetcher) All(ctx context.Context, refresh bool) ([]Entry, error) {
	var entries []Entry
	for letter := 'a'; letter <= 'z'; letter++ {
		page, _, err := f.Letter(ctx, letter, refresh)
		if err != nil {
			return nil, err
		}
		entries = append(entries, page...)
	}
	return entries, nil
}

// ParseEntries extracts dictionary entries from a page. Each entry is a
// paragraph of the shape
//
//	<p><b>Word</b> (<i>class</i>) definition</p>
//
// Paragraphs that do not match, such as page headers, are skipped.
func ParseEntries(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			if e, ok := parseEntry(n); ok {
				entries = append(entries, e)
			}
		}
	})
	return entries, nil
}

// parseEntry matches the four-part paragraph shape: a <b> headword, the
// " (" separator, an <i> class and the ") definition" text.
func parseEntry(p *html.Node) (Entry, bool) {
	var parts []*html.Node
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		parts = append(parts, c)
	}
	if len(parts) != 4 {
		return Entry{}, false
	}
	if parts[0].Type != html.ElementNode || parts[0].Data != "b" {
		return Entry{}, false
	}
	if parts[1].Type != html.TextNode || !strings.Contains(parts[1].Data, "(") {
		return Entry{}, false
	}
	if parts[2].Type != html.ElementNode || parts[2].Data != "i" {
		return Entry{}, false
	}
	if parts[3].Type != html.TextNode || !strings.HasPrefix(parts[3].Data, ") ") {
		return Entry{}, false
	}
	return Entry{
		Word:       strings.ToLower(strings.TrimSpace(textOf(parts[0]))),
		Class:      strings.TrimSpace(textOf(parts[2])),
		Definition: parts[3].Data[len(") "):],
	}, true
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}
