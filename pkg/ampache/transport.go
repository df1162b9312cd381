package ampache

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// call makes one request to the server's RPC endpoint and returns the
// parsed response document. Every remote operation passes through here.
//
// It handles:
// - Dropping absent parameters (omit, never send an empty value)
// - Injecting the session token unless auth was supplied explicitly
// - Query-string encoding and the HTTP round trip
// - XML parsing and error detection on the response
//
// One call is one round trip: no retries, no queuing. Cancellation and
// timeouts are the HTTP client's business and the context is passed
// straight through.
func (c *Client) call(ctx context.Context, action string, params map[string]string) (*xmlquery.Node, error) {
	merged := make(map[string]string, len(params)+2)
	for k, v := range params {
		if v == "" {
			continue
		}
		merged[k] = v
	}
	merged["action"] = action
	if _, ok := merged["auth"]; !ok && c.authToken != "" {
		merged["auth"] = c.authToken
	}

	query := url.Values{}
	for k, v := range merged {
		query.Set(k, v)
	}

	c.logDebugf("ampache: calling %s", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "ampview/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := xmlquery.Parse(resp.Body)
	if err != nil {
		return nil, &MalformedResponseError{Reason: fmt.Sprintf("parse xml: %v", err)}
	}

	if err := checkError(doc); err != nil {
		return nil, err
	}

	c.logDebugf("ampache: %s succeeded", action)
	return doc, nil
}

// checkError scans the document for error elements. Zero matches means
// success. One match is the server reporting a failure for this call.
// The protocol allows at most one error per response, so more than one
// means the response itself cannot be trusted.
func checkError(doc *xmlquery.Node) error {
	nodes := xmlquery.Find(doc, "//error")
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		code, _ := strconv.Atoi(strings.TrimSpace(nodes[0].SelectAttr("code")))
		return &Error{Code: code, Message: extractText(nodes[0])}
	default:
		return &MalformedResponseError{
			Reason: fmt.Sprintf("%d error elements in one response", len(nodes)),
		}
	}
}
