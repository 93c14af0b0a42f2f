package mlservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/domain"
)

// Upstream paths on the ML microservice.
const (
	PathSentiment      = "/analyze/sentiment"
	PathProductivity   = "/predict/productivity"
	PathTaskCompletion = "/predict/task_completion"
	PathSchedule       = "/optimize/schedule"
)

// Client talks to the external ML microservice. Bodies pass through verbatim;
// the client adds only timeouts and error classification.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// Forward POSTs the raw body to the given upstream path and returns the
// upstream status code and body untouched. A transport-level failure maps to
// ErrUpstreamDown; non-2xx upstream responses are not errors here, the caller
// relays them as-is.
func (c *Client) Forward(ctx context.Context, path string, body []byte) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Warn("ML service unreachable", zap.String("path", path), zap.Error(err))
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrUpstreamDown, err)
	}

	status := resp.StatusCode()
	out := append([]byte(nil), resp.Body()...)
	return status, out, nil
}

type sentimentRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	MoodScore      int    `json:"mood_score"`
	SentimentLabel string `json:"sentiment_label"`
}

// AnalyzeSentiment scores free text on the 1-10 mood scale.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (int, string, error) {
	body, err := json.Marshal(sentimentRequest{Text: text})
	if err != nil {
		return 0, "", err
	}

	status, respBody, err := c.Forward(ctx, PathSentiment, body)
	if err != nil {
		return 0, "", err
	}
	if status < 200 || status >= 300 {
		return 0, "", domain.NewError(domain.ErrCodeUnavailable, fmt.Sprintf("analyzer returned status %d", status))
	}

	var parsed sentimentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return 0, "", domain.WrapError(domain.ErrCodeUnavailable, "malformed analyzer response", err)
	}
	return parsed.MoodScore, parsed.SentimentLabel, nil
}

// Ping reports whether the ML service answers at all. Used by the connection monitor.
func (c *Client) Ping(ctx context.Context) bool {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/")
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	return c.http.DoDeadline(req, resp, deadline) == nil
}
