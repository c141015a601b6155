package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// defaultLookupN is how many pronunciations the server guesses when the
// caller does not say.
const defaultLookupN = 5

// Lookup returns up to n pronunciations for a word and whether the word was
// already in the dictionary.
func (c *Client) Lookup(ctx context.Context, word string, n int) (*Pronunciations, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateWord(word); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = defaultLookupN
	}

	params := url.Values{"n": {strconv.Itoa(n)}}
	u := c.baseURL + "/lookup?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(word))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "text/plain")

	resp, err := c.do(httpReq, "lookup")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("lookup", resp); err != nil {
		return nil, err
	}
	var result Pronunciations
	if err := decodeJSON("lookup", resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
