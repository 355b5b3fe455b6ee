package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// PushDispatcher delivers events through an FCM-style HTTP push gateway:
// one POST per event, authenticated with a server key, addressed either
// to a topic or to a device token.
type PushDispatcher struct {
	gatewayURL string
	serverKey  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewPushDispatcher creates a dispatcher for the given gateway.
func NewPushDispatcher(gatewayURL, serverKey string, timeout time.Duration, logger zerolog.Logger) *PushDispatcher {
	return &PushDispatcher{
		gatewayURL: gatewayURL,
		serverKey:  serverKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "push").Logger(),
	}
}

// pushMessage is the gateway wire format.
type pushMessage struct {
	To           string            `json:"to"`
	Notification pushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Dispatch posts one event to the gateway.
func (d *PushDispatcher) Dispatch(ctx context.Context, event Event) error {
	to := event.Token
	if event.Topic != "" {
		to = "/topics/" + event.Topic
	}
	if to == "" {
		return fmt.Errorf("event %s has no topic or token", event.ID)
	}

	msg := pushMessage{
		To:           to,
		Notification: pushNotification{Title: event.Title, Body: event.Body},
		Data: map[string]string{
			"orderId": fmt.Sprintf("%d", event.OrderID),
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+d.serverKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send push notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push gateway returned %d: %s", resp.StatusCode, body)
	}

	d.logger.Debug().
		Str("event_id", event.ID.String()).
		Str("kind", string(event.Kind)).
		Str("to", to).
		Int64("order_id", event.OrderID).
		Msg("notification dispatched")
	return nil
}
