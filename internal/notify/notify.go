package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/gomarket/internal/config"
	"github.com/GlebRadaev/gomarket/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Best-effort webhook fan-out for admin decisions. Delivery is never on the
// transactional path: a dead webhook must not block moderation or settlement.

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Event struct {
	Action     string `json:"action"`
	AdminName  string `json:"admin_name"`
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
	Details    string `json:"details"`
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event)
}

type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.WebhookURL,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

// Publish queues the events for delivery. A blank webhook URL turns the
// whole dispatcher into a no-op.
func (s *Service) Publish(ctx context.Context, events ...Event) {
	if s.url == "" {
		return
	}

	// Delivery must outlive the request that triggered it: the handler
	// returns (and its context is canceled) before the worker runs.
	ctx = context.WithoutCancel(ctx)

	var g errgroup.Group
	for _, event := range events {
		event := event
		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				return s.deliver(ctx, event)
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error queueing notifications", zap.Error(err))
	}
}

func (s *Service) deliver(ctx context.Context, event Event) error {
	// Discord-compatible payload: a single content line plus the raw event.
	body, err := json.Marshal(map[string]any{
		"content": fmt.Sprintf("[%s] %s by %s", event.Action, event.Details, event.AdminName),
		"embeds": []map[string]any{
			{"title": event.Action, "description": event.Details},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err := s.client.Post(s.url, body, headers)
			if err == nil && statusCode < http.StatusInternalServerError {
				if statusCode >= http.StatusBadRequest {
					zap.L().Warn("Webhook rejected notification", zap.Int("status", statusCode), zap.String("action", event.Action))
				}
				return nil
			}
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to deliver notification after %d retries: %w", maxRetries, err)
			}
			return fmt.Errorf("failed to deliver notification after %d retries: status %d", maxRetries, statusCode)
		}
	}
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}
