package sentiment

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Well-known prediction paths exposed by gradio-style inference hosts.
const (
	runPredictPath = "/run/predict"
	apiPredictPath = "/api/predict"
)

// candidateURLs builds the ordered, deduplicated set of endpoint URLs to try
// for a configured base URL: the base itself (trailing slash stripped), then
// the same scheme+host with the well-known prediction paths appended.
func candidateURLs(base string) []string {
	trimmed := strings.TrimRight(strings.TrimSpace(base), "/")

	candidates := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		candidates = append(candidates, u)
	}

	add(trimmed)

	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		root := parsed.Scheme + "://" + parsed.Host
		add(root + runPredictPath)
		add(root + apiPredictPath)
	}

	return candidates
}

// candidatePayloads builds the ordered set of request bodies to try for a
// message text: {"inputs": text} first, then {"data": [text]}.
func candidatePayloads(text string) [][]byte {
	inputs, _ := json.Marshal(map[string]string{"inputs": text})
	data, _ := json.Marshal(map[string][]string{"data": {text}})
	return [][]byte{inputs, data}
}

// rootURL returns scheme://host for the base URL, or "" if it has no
// parseable scheme and host.
func rootURL(base string) string {
	parsed, err := url.Parse(strings.TrimSpace(base))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
