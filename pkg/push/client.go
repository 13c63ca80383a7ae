package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/prometheus"
)

// Client talks to the push-notification gateway (FCM legacy HTTP API shape).
// A non-2xx gateway response fails the triggering operation; there is no
// retry.
type Client struct {
	GatewayURL string
	ServerKey  string
	HTTPClient *http.Client
}

// payload is the gateway wire format: a title/body notification plus the
// audience selection.
type payload struct {
	Notification    body     `json:"notification"`
	Priority        string   `json:"priority"`
	RegistrationIDs []string `json:"registration_ids,omitempty"`
	To              string   `json:"to,omitempty"`
}

type body struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewClient creates a push gateway client.
func NewClient(gatewayURL, serverKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		GatewayURL: gatewayURL,
		ServerKey:  serverKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Send delivers a notification to its target audience. The returned error is
// an Upstream apperr carrying the gateway's status when the gateway rejects
// the delivery.
func (c *Client) Send(ctx context.Context, n *model.Notification) error {
	p := payload{
		Notification: body{Title: n.Title, Body: n.Message},
		Priority:     "high",
	}
	if len(n.Target.UserIDs) > 0 {
		p.RegistrationIDs = n.Target.UserIDs
	}
	if n.Target.AllUsers {
		p.To = "/topics/all"
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GatewayURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.ServerKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		prometheus.RecordPushDelivery("error")
		return apperr.Upstreamf(http.StatusBadGateway, "push gateway unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		prometheus.RecordPushDelivery("rejected")
		return apperr.Upstreamf(resp.StatusCode, "push gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	prometheus.RecordPushDelivery("delivered")
	return nil
}
