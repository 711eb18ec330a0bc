package sentiment

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fastjson"

	"github.com/221-Batuhan/chat-ai-project/pkg/log"
)

const (
	defaultTimeout = 15 * time.Second

	// Hosting domain whose spaces expose the two-step submit/poll protocol.
	asyncHostSuffix = "hf.space"
	gradioCallPath  = "/gradio_api/call/predict"

	maxResponseBytes = 1 << 20
)

// Config describes the external inference endpoint.
type Config struct {
	// ServiceURL is the configured base endpoint URL.
	ServiceURL string
	// Timeout bounds every single outbound call. Defaults to 15s.
	Timeout time.Duration
	// ForceAsyncFallback attempts the two-step submit/poll flow regardless
	// of the endpoint's hosting domain.
	ForceAsyncFallback bool
}

// Client obtains sentiment predictions from a loosely-specified external
// inference endpoint. It tries several request shapes against several
// candidate URLs and tolerantly parses whatever comes back. It is strictly
// best-effort: every failure is logged and absorbed, never surfaced.
type Client struct {
	httpClient *http.Client
	baseURL    string
	forceAsync bool
}

// NewClient creates a sentiment client for the configured endpoint.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSpace(cfg.ServiceURL),
		forceAsync: cfg.ForceAsyncFallback,
	}
}

// Enrich attempts to obtain a sentiment prediction for the given text.
// The returned label is normalized to lowercase. The boolean reports whether
// a usable prediction was obtained.
func (c *Client) Enrich(ctx context.Context, text string) (Result, bool) {
	l := log.Ctx(ctx)

	body := c.tryDirect(ctx, text)
	if len(body) > 0 {
		if res, ok := extractLabelScore(body); ok {
			res.Label = strings.ToLower(res.Label)
			l.Info().Str("label", res.Label).Float64("score", res.Score).Msg("sentiment extracted")
			return res, true
		}
		l.Warn().Msg("could not extract label/score from inference response")
		return Result{}, false
	}

	if c.asyncEligible() {
		if res, ok := c.tryAsync(ctx, text); ok {
			res.Label = strings.ToLower(res.Label)
			l.Info().Str("label", res.Label).Float64("score", res.Score).Msg("sentiment extracted via async flow")
			return res, true
		}
	}

	l.Warn().Str("url", c.baseURL).Msg("sentiment enrichment produced no result")
	return Result{}, false
}

// tryDirect walks the (url, payload) candidate list in order and returns the
// body of the first successful non-empty response, or nil when every
// combination failed.
func (c *Client) tryDirect(ctx context.Context, text string) []byte {
	l := log.Ctx(ctx)

	urls := candidateURLs(c.baseURL)
	payloads := candidatePayloads(text)

	for _, u := range urls {
		for _, payload := range payloads {
			l.Debug().Str("url", u).Str("payload", string(payload)).Msg("trying inference endpoint")

			body, status, err := c.post(ctx, u, payload)
			if err != nil {
				l.Debug().Err(err).Str("url", u).Msg("inference call failed")
				continue
			}
			if status < 200 || status > 299 {
				l.Debug().Int("status", status).Str("url", u).Msg("inference call returned non-success status")
				continue
			}
			if len(body) > 0 {
				return body
			}
		}
	}

	return nil
}

// tryAsync drives the two-step submit/poll protocol: a POST that returns a
// job id followed by a GET that delivers the (possibly event-stream) result.
func (c *Client) tryAsync(ctx context.Context, text string) (Result, bool) {
	l := log.Ctx(ctx)

	root := rootURL(c.baseURL)
	if root == "" {
		return Result{}, false
	}

	payload := candidatePayloads(text)[1] // {"data": [text]}
	body, status, err := c.post(ctx, root+gradioCallPath, payload)
	if err != nil || status < 200 || status > 299 {
		l.Debug().Err(err).Int("status", status).Msg("async submit failed")
		return Result{}, false
	}

	eventID := fastjson.GetString(body, "event_id")
	if eventID == "" {
		eventID = fastjson.GetString(body, "eventId")
	}
	if eventID == "" {
		l.Debug().Msg("async submit returned no event id")
		return Result{}, false
	}

	resultBody, status, err := c.get(ctx, root+gradioCallPath+"/"+eventID)
	if err != nil || status < 200 || status > 299 {
		l.Debug().Err(err).Int("status", status).Msg("async poll failed")
		return Result{}, false
	}

	return parseEventStream(resultBody)
}

// parseEventStream scans an event-stream style body for "data: " lines whose
// remainder is a JSON array and extracts a label/score pair from the first
// element. When no such line parses, the whole body is treated as one JSON
// document.
func parseEventStream(body []byte) (Result, bool) {
	var p fastjson.Parser
	for _, line := range bytes.Split(body, []byte("\n")) {
		rest, found := bytes.CutPrefix(bytes.TrimSpace(line), []byte("data: "))
		if !found {
			continue
		}

		v, err := p.ParseBytes(rest)
		if err != nil || v.Type() != fastjson.TypeArray {
			continue
		}

		if res, ok := labelScoreFromFirst(v); ok {
			return res, true
		}
	}

	return extractLabelScore(body)
}

// asyncEligible reports whether the two-step flow should be attempted for
// the configured endpoint.
func (c *Client) asyncEligible() bool {
	if c.forceAsync {
		return true
	}
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	return strings.HasSuffix(parsed.Hostname(), asyncHostSuffix)
}

func (c *Client) post(ctx context.Context, u string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, u string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return bytes.TrimSpace(body), resp.StatusCode, nil
}
