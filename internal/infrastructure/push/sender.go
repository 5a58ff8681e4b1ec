package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dangol-v2/deal-service/internal/domain"
)

// Payload is what the delivery collaborator turns into an actual web-push
// message. The engine never talks to FCM or browser push endpoints itself.
type Payload struct {
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Icon  string                 `json:"icon,omitempty"`
	Badge string                 `json:"badge,omitempty"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

type Sender interface {
	Send(sub *domain.PushSubscription, payload Payload) error
}

type httpSender struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSender targets the push delivery collaborator. A send error
// means that one device failed; the caller records it per device and
// moves on.
func NewHTTPSender(endpoint string) Sender {
	return &httpSender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	DeviceID  string  `json:"device_id"`
	Endpoint  string  `json:"endpoint"`
	P256dhKey string  `json:"p256dh_key"`
	AuthKey   string  `json:"auth_key"`
	Payload   Payload `json:"payload"`
}

func (s *httpSender) Send(sub *domain.PushSubscription, payload Payload) error {
	body, err := json.Marshal(sendRequest{
		DeviceID:  sub.DeviceID,
		Endpoint:  sub.Endpoint,
		P256dhKey: sub.P256dhKey,
		AuthKey:   sub.AuthKey,
		Payload:   payload,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push collaborator returned status %d", resp.StatusCode)
	}
	return nil
}

type noopSender struct{}

// NewNoopSender is used when no push collaborator is configured (local
// runs); deliveries are still recorded.
func NewNoopSender() Sender {
	return noopSender{}
}

func (noopSender) Send(*domain.PushSubscription, Payload) error { return nil }
