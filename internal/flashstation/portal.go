package flashstation

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// The API key is one comma-separated element of the body's client config
// attribute, a quoted 39-character token.
var reAPIKey = regexp.MustCompile(`^"([a-zA-Z0-9-_]{39})"$`)

// Lookup scrapes the flash portal for the embedded API key and the set of
// product ids worth querying for the codename.
func (c *Client) Lookup(ctx context.Context, query Query) (LookupOptions, error) {
	if c == nil {
		return LookupOptions{}, fmt.Errorf("client is nil")
	}
	codename := strings.TrimSpace(query.Codename)
	if codename == "" {
		return LookupOptions{}, fmt.Errorf("codename is empty")
	}

	page, err := c.get(ctx, c.portalURL.String(), false)
	if err != nil {
		return LookupOptions{}, err
	}

	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return LookupOptions{}, &DecodeError{What: "portal page", Err: err}
	}

	apiKey, err := extractAPIKey(doc)
	if err != nil {
		return LookupOptions{}, err
	}

	scriptURL, err := c.scriptURL(doc)
	if err != nil {
		return LookupOptions{}, err
	}

	script, err := c.get(ctx, scriptURL.String(), false)
	if err != nil {
		return LookupOptions{}, err
	}

	products := candidateProducts(codename, query.IncludeGeneric, string(script))

	c.log.Debug("portal scrape complete",
		zap.String("script", scriptURL.String()),
		zap.Int("candidates", len(products)))

	return LookupOptions{APIKey: apiKey, Products: products}, nil
}

// extractAPIKey pulls the API key out of <body data-client-config="...">.
func extractAPIKey(doc *html.Node) (string, error) {
	body := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "body"
	})
	if body == nil {
		return "", &DecodeError{What: "portal page", Err: fmt.Errorf("missing <body>")}
	}

	clientConfig := nodeAttr(body, "data-client-config")
	if clientConfig == "" {
		return "", &DecodeError{What: "portal page", Err: fmt.Errorf("missing client config attribute")}
	}

	for _, part := range strings.Split(clientConfig, ",") {
		if m := reAPIKey.FindStringSubmatch(part); m != nil {
			return m[1], nil
		}
	}
	return "", &DecodeError{What: "client config", Err: fmt.Errorf("api key not found")}
}

// scriptURL locates the portal's script bundle preload link and resolves it
// against the portal base.
func (c *Client) scriptURL(doc *html.Node) (*url.URL, error) {
	link := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "link" && nodeAttr(n, "as") == "script"
	})
	if link == nil {
		return nil, &DecodeError{What: "portal page", Err: fmt.Errorf("script link not found")}
	}

	href := nodeAttr(link, "href")
	if href == "" {
		return nil, &DecodeError{What: "portal page", Err: fmt.Errorf("script link has no href")}
	}

	rel, err := url.Parse(href)
	if err != nil {
		return nil, &DecodeError{What: "portal page", Err: fmt.Errorf("parse script href %q: %w", href, err)}
	}
	return c.portalURL.ResolveReference(rel), nil
}

// findNode walks the parse tree depth-first and returns the first node the
// match function accepts.
func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findNode(child, match); found != nil {
			return found
		}
	}
	return nil
}

func nodeAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
