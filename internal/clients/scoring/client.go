// Package scoring is the HTTP client for the remote token scoring backend.
// It owns the wire contract (extract, score, rank) and converts transport,
// payload and shape failures into the error taxonomy the orchestrator
// classifies on.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
)

// Client communicates with the scoring backend over HTTP/JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new scoring backend client. The timeout applies to
// every call; on expiry the failure is reported as a connectivity error.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("client", "scoring").Logger(),
	}
}

// Extract requests the backend's best-effort token record for an address.
// A logically failed extraction (success=false, or a success with no data
// object) is a DataError: for the caller it is indistinguishable from the
// service having nothing to say.
func (c *Client) Extract(ctx context.Context, address domain.TokenIdentifier) (*ExtractData, error) {
	var envelope extractEnvelope
	if err := c.post(ctx, "/extract", extractRequest{TokenAddress: address.String()}, &envelope); err != nil {
		return nil, err
	}

	if !envelope.Success || envelope.Data == nil {
		c.log.Warn().
			Str("token", address.String()).
			Str("message", envelope.Message).
			Msg("Extraction reported no data")
		return nil, &DataError{Endpoint: "/extract", Reason: "no data"}
	}

	c.log.Debug().
		Str("token", address.String()).
		Float64("coverage_pct", envelope.Data.Coverage.Percentage).
		Msg("Extraction complete")

	return envelope.Data, nil
}

// Score submits a reconciled record (plus optional metrics) for scoring.
func (c *Client) Score(ctx context.Context, token domain.ReconciledTokenRecord, metrics *domain.MetricsBundle) (*ScoreResult, error) {
	req := scoreRequest{Token: token}
	if !metrics.IsEmpty() {
		req.Metrics = metrics
	}

	var envelope scoreEnvelope
	if err := c.post(ctx, "/score", req, &envelope); err != nil {
		return nil, err
	}

	result := &ScoreResult{
		Outcome: domain.PreFilterOutcome{
			Passed:       envelope.PassedPrefilter,
			FailedChecks: envelope.FailedChecks,
		},
		Scores: domain.ScoreBundle{
			Total:          envelope.Total,
			Momentum:       envelope.Momentum,
			SmartMoney:     envelope.SmartMoney,
			Sentiment:      envelope.Sentiment,
			Event:          envelope.Event,
			Timeframes:     envelope.NewScores,
			ReportMarkdown: envelope.TrenchReportMarkdown,
		},
	}

	c.log.Debug().
		Str("token", token.Address).
		Bool("passed_prefilter", result.Outcome.Passed).
		Int("failed_checks", len(result.Outcome.FailedChecks)).
		Msg("Scoring complete")

	return result, nil
}

// Rank submits rows for a category tab and returns them in the backend's
// ranking order with scores attached.
func (c *Client) Rank(ctx context.Context, tab domain.RankingTab, rows []domain.RankingRow) (*RankResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to rank")
	}

	var result RankResult
	if err := c.post(ctx, "/rank", rankRequest{Tab: tab, Rows: rows}, &result); err != nil {
		return nil, err
	}
	if result.Rows == nil {
		return nil, &DataError{Endpoint: "/rank", Reason: "response carried no rows"}
	}

	c.log.Debug().
		Str("tab", string(tab)).
		Int("rows", len(result.Rows)).
		Msg("Ranking complete")

	return &result, nil
}

// post sends one JSON request and decodes the response into out, mapping
// every failure mode onto the client error taxonomy.
func (c *Client) post(ctx context.Context, endpoint string, payload any, out any) error {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + endpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("Scoring service unreachable")
		return &ConnectivityError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ConnectivityError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		detail := extractDetail(body)
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("endpoint", endpoint).
			Str("detail", detail).
			Msg("Scoring service returned error payload")
		return &ServiceError{Endpoint: endpoint, StatusCode: resp.StatusCode, Detail: detail}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DataError{Endpoint: endpoint, Reason: fmt.Sprintf("malformed response: %v", err)}
	}

	c.log.Debug().
		Str("endpoint", endpoint).
		Dur("elapsed", time.Since(start)).
		Msg("Request complete")

	return nil
}
