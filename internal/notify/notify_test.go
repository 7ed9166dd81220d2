package notify

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHTTPClient struct {
	mu       sync.Mutex
	statuses []int
	err      error

	calls     int
	gotURL    string
	gotBody   []byte
	gotHeader http.Header

	delivered chan struct{}
}

func newFakeHTTPClient(statuses ...int) *fakeHTTPClient {
	return &fakeHTTPClient{
		statuses:  statuses,
		delivered: make(chan struct{}, 16),
	}
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, f.err
}

func (f *fakeHTTPClient) Post(url string, body []byte, headers http.Header) (int, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.gotURL = url
	f.gotBody = body
	f.gotHeader = headers
	f.delivered <- struct{}{}

	if f.err != nil {
		return 0, nil, f.err
	}
	status := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	return status, nil, nil
}

func waitDelivered(t *testing.T, client *fakeHTTPClient, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-client.delivered:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for webhook delivery")
		}
	}
}

func TestPublishNoopWithoutURL(t *testing.T) {
	client := newFakeHTTPClient(http.StatusOK)
	svc := New(&config.Config{WebhookURL: ""}, client)
	defer svc.Close()

	svc.Publish(context.Background(), Event{Action: "approve_product"})

	select {
	case <-client.delivered:
		t.Fatal("no delivery expected with a blank webhook URL")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, 0, client.calls)
}

func TestPublishDelivers(t *testing.T) {
	client := newFakeHTTPClient(http.StatusNoContent)
	svc := New(&config.Config{WebhookURL: "https://example.com/webhook"}, client)
	defer svc.Close()

	svc.Publish(context.Background(), Event{
		Action:     "approve_product",
		AdminName:  "Root",
		TargetID:   "prod-1",
		TargetType: "product",
		Details:    "Approved product: Icon Pack",
	})

	waitDelivered(t, client, 1)

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, "https://example.com/webhook", client.gotURL)
	assert.Equal(t, "application/json", client.gotHeader.Get("Content-Type"))
	assert.Contains(t, string(client.gotBody), "[approve_product] Approved product: Icon Pack by Root")
}

func TestPublishMultipleEvents(t *testing.T) {
	client := newFakeHTTPClient(http.StatusOK)
	svc := New(&config.Config{WebhookURL: "https://example.com/webhook"}, client)
	defer svc.Close()

	svc.Publish(context.Background(),
		Event{Action: "verify_payment", Details: "Verified payment for order: order-1 - Transaction: UTR12345678"},
		Event{Action: "reject_payment", Details: "Rejected payment for order: order-2 - Transaction: UTR87654321"},
	)

	waitDelivered(t, client, 2)

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, 2, client.calls)
}

func TestPublishClientRejectionNotRetried(t *testing.T) {
	client := newFakeHTTPClient(http.StatusBadRequest)
	svc := New(&config.Config{WebhookURL: "https://example.com/webhook"}, client)
	defer svc.Close()

	svc.Publish(context.Background(), Event{Action: "approve_product", Details: "Approved product: Icon Pack"})

	waitDelivered(t, client, 1)

	select {
	case <-client.delivered:
		t.Fatal("4xx responses must not be retried")
	case <-time.After(100 * time.Millisecond):
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, 1, client.calls)
}

func TestPublishSurvivesRequestCancel(t *testing.T) {
	client := newFakeHTTPClient(http.StatusOK)
	svc := New(&config.Config{WebhookURL: "https://example.com/webhook"}, client)
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Publish(ctx, Event{Action: "approve_product", Details: "Approved product: Icon Pack"})

	waitDelivered(t, client, 1)

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, 1, client.calls)
}

func TestPublishRetriesServerError(t *testing.T) {
	client := newFakeHTTPClient(http.StatusInternalServerError, http.StatusOK)
	svc := New(&config.Config{WebhookURL: "https://example.com/webhook"}, client)
	defer svc.Close()

	svc.Publish(context.Background(), Event{Action: "approve_product", Details: "Approved product: Icon Pack"})

	waitDelivered(t, client, 2)

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Equal(t, 2, client.calls)
}
