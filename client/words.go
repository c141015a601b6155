package client

import (
	"bufio"
	"bytes"
	"context"
	"net/http"
	"sort"
	"strings"
)

// Custom word operations. The server stores custom pronunciations as plain
// text, one "word pronunciation" pair per line; a word may repeat with
// alternate pronunciations.

// GetCustomWords fetches custom words from the server and returns
// pronunciations grouped by word.
func (c *Client) GetCustomWords(ctx context.Context) (CustomWords, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/custom-words", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(httpReq, "custom-words")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get custom words", resp); err != nil {
		return nil, err
	}

	words := make(CustomWords)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, pronunciation, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		words[word] = append(words[word], strings.TrimSpace(pronunciation))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// SetCustomWords uploads pronunciations grouped by word, replacing the
// server's custom words file.
func (c *Client) SetCustomWords(ctx context.Context, words CustomWords) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sorted := make([]string, 0, len(words))
	for word := range words {
		sorted = append(sorted, word)
	}
	sort.Strings(sorted)

	var buf bytes.Buffer
	for _, word := range sorted {
		pronunciations := append([]string(nil), words[word]...)
		sort.Strings(pronunciations)
		for _, pronunciation := range pronunciations {
			buf.WriteString(word)
			buf.WriteByte(' ')
			buf.WriteString(pronunciation)
			buf.WriteByte('\n')
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/custom-words", &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "text/plain")

	resp, err := c.do(httpReq, "custom-words")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("set custom words", resp); err != nil {
		return "", err
	}
	return readText(resp)
}
