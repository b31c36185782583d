package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// DefaultALCURL is the Eijiro on the WEB search page.
	DefaultALCURL = "https://eow.alc.co.jp/search"

	// The page serves a reduced layout to unknown agents.
	alcUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.8; rv:24.0) Gecko/20100101 Firefox/24.0"
)

// ALC scrapes definitions from the Eijiro on the WEB search page.
type ALC struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewALC creates an ALC provider. An empty baseURL uses DefaultALCURL and a
// zero timeout leaves requests bounded only by ctx.
func NewALC(baseURL string, timeout time.Duration, logger *slog.Logger) *ALC {
	if baseURL == "" {
		baseURL = DefaultALCURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ALC{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "alc"),
	}
}

// Source names the provider in cache records.
func (p *ALC) Source() string {
	return "alc"
}

// Lookup fetches the search page for word and returns the text of the first
// result body.
func (p *ALC) Lookup(ctx context.Context, word string) (string, error) {
	reqURL := p.baseURL + "?q=" + url.QueryEscape(word)

	p.log.DebugContext(ctx, "alc request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("alc: create request: %w", err)
	}
	req.Header.Set("User-Agent", alcUserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("alc: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("alc: unexpected status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("alc: parse page: %w", err)
	}

	text, ok := firstResult(doc)
	if !ok {
		return "", ErrNotFound
	}

	p.log.DebugContext(ctx, "alc response", slog.String("word", word), slog.Int("length", len(text)))
	return text, nil
}

// firstResult finds the first element matching "#resultsList > ul > li > div"
// and returns its whitespace-collapsed text.
func firstResult(doc *html.Node) (string, bool) {
	list := findByID(doc, "resultsList")
	if list == nil {
		return "", false
	}
	for ul := range children(list, atom.Ul) {
		for li := range children(ul, atom.Li) {
			for div := range children(li, atom.Div) {
				text := strings.Join(strings.Fields(textContent(div)), " ")
				return text, true
			}
		}
	}
	return "", false
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// children yields the direct element children of n with the given tag.
func children(n *html.Node, tag atom.Atom) func(yield func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == tag {
				if !yield(c) {
					return
				}
			}
		}
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
