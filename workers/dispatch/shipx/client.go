package shipx

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"shipx-dispatch-service/config"
)

// APIError is a non-2xx answer from the provider, carrying the endpoint that
// was hit and the raw error body for the log.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

type Client struct {
	config     *config.ShipXApiConfig
	httpClient *http.Client
}

func NewClient(cfg *config.ShipXApiConfig) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.SkipTlsVerify {
		// Sandbox certificates are not always trusted by the host
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: 20 * time.Second, Transport: transport},
	}
}

func (c *Client) CreateShipment(ctx context.Context, shipment *ShipmentRequest) (*Shipment, error) {
	endpoint := fmt.Sprintf("/organizations/%s/shipments", c.config.OrganizationId)

	var created Shipment
	if err := c.doJSON(ctx, http.MethodPost, endpoint, shipment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetShipment(ctx context.Context, shipmentID int64) (*Shipment, error) {
	endpoint := fmt.Sprintf("/shipments/%d", shipmentID)

	var shipment Shipment
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// GetLabel fetches the shipping label as raw PDF bytes.
func (c *Client) GetLabel(ctx context.Context, shipmentID int64) ([]byte, error) {
	return c.doPDF(ctx, fmt.Sprintf("/shipments/%d/label", shipmentID))
}

func (c *Client) CreateDispatchOrder(ctx context.Context, order *DispatchOrderRequest) (*DispatchOrder, error) {
	endpoint := fmt.Sprintf("/organizations/%s/dispatch_orders", c.config.OrganizationId)

	var created DispatchOrder
	if err := c.doJSON(ctx, http.MethodPost, endpoint, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetPrintout fetches the dispatch order printout as raw PDF bytes.
func (c *Client) GetPrintout(ctx context.Context, dispatchOrderID int64) ([]byte, error) {
	return c.doPDF(ctx, fmt.Sprintf("/dispatch_orders/%d/printout", dispatchOrderID))
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseUri+endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.config.ApiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) doPDF(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	return io.ReadAll(resp.Body)
}
