package enrichment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lookup-service/internal/domain/document"
	"lookup-service/internal/infra"
	"lookup-service/internal/pkg/config"
	"lookup-service/internal/pkg/errs"
)

// Client submits identifiers to the external enrichment queue. The queue gives
// no synchronous result beyond accepted/rejected; the processed record shows
// up in the record store later, or not at all.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.EnrichmentConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type submitRequest struct {
	Identifier string `json:"identifier"`
}

func (c *Client) Submit(ctx context.Context, identifier document.Number) error {
	body, err := json.Marshal(submitRequest{Identifier: identifier.String()})
	if err != nil {
		return errs.Wrap(err, "failed to encode enrichment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/enrichments", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build enrichment request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "enrichment submission transport failure")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusAccepted, http.StatusOK:
		return nil
	default:
		return infra.WrapRepoErr(
			fmt.Sprintf("enrichment dispatcher rejected identifier (status %d)", resp.StatusCode),
			nil, infra.KindUpstreamRejected)
	}
}
