package client

import (
	"bytes"
	"context"
	"net/http"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Sentence template operations. The server stores templates in sentences.ini,
// one section per intent; lines with an "=" are named rules, bare lines are
// sentences.

var sentencesLoadOpts = ini.LoadOptions{
	AllowBooleanKeys:   true,
	KeyValueDelimiters: "=",
}

// GetSentences fetches sentences.ini from the server and returns its
// sentences and rules grouped by intent.
func (c *Client) GetSentences(ctx context.Context) (Sentences, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sentences", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(httpReq, "sentences")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get sentences", resp); err != nil {
		return nil, err
	}
	body, err := readText(resp)
	if err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(sentencesLoadOpts, []byte(body))
	if err != nil {
		return nil, &DecodeError{Op: "get sentences", Err: err}
	}

	sentences := make(Sentences)
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		for _, key := range section.Keys() {
			if key.Value() == "true" {
				// Bare sentence line (boolean key).
				sentences[section.Name()] = append(sentences[section.Name()], key.Name())
			} else {
				// Named rule.
				sentences[section.Name()] = append(sentences[section.Name()], key.Name()+" = "+key.Value())
			}
		}
	}
	return sentences, nil
}

// SetSentences uploads sentences grouped by intent, replacing the server's
// sentences.ini. Call Train afterwards to make the change effective.
func (c *Client) SetSentences(ctx context.Context, sentences Sentences) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := renderSentences(sentences)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sentences", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "text/plain")

	resp, err := c.do(httpReq, "sentences")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("set sentences", resp); err != nil {
		return "", err
	}
	return readText(resp)
}

// renderSentences serializes the intent map back into sentences.ini form.
// Intents and lines are sorted so uploads are deterministic.
func renderSentences(sentences Sentences) ([]byte, error) {
	f := ini.Empty(sentencesLoadOpts)

	intents := make([]string, 0, len(sentences))
	for intent := range sentences {
		intents = append(intents, intent)
	}
	sort.Strings(intents)

	for _, intent := range intents {
		section, err := f.NewSection(intent)
		if err != nil {
			return nil, err
		}
		lines := append([]string(nil), sentences[intent]...)
		sort.Strings(lines)
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if name, value, ok := strings.Cut(line, "="); ok {
				if _, err := section.NewKey(strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
					return nil, err
				}
				continue
			}
			if strings.HasPrefix(line, "[") {
				// Escape initial [ so it is not read as a section header.
				line = "\\" + line
			}
			if _, err := section.NewBooleanKey(line); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
