package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

// Notifier posts publish events to a webhook without blocking the caller
type Notifier interface {
	Start() error
	Stop() error

	AssetPrepared(ctx context.Context, e PublishEvent)
	AssetPublished(ctx context.Context, e PublishEvent)
}

type PublishEvent struct {
	AssetType   string `json:"assetType"`
	SourceID    string `json:"sourceId"`
	AssetID     string `json:"assetId"`
	VersionUp   bool   `json:"versionUp"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

type Notification struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	NotifiedAt string         `json:"notifiedAt"`
	Data       []PublishEvent `json:"data"`
}

func NewNotification(notificationType string, e PublishEvent) *Notification {
	return &Notification{
		ID:         fmt.Sprintf("urn:asset-adapter:Notification:%s", uuid.New().String()),
		Type:       notificationType,
		NotifiedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Data:       []PublishEvent{e},
	}
}

const (
	AssetPreparedType  string = "AssetPrepared"
	AssetPublishedType string = "AssetPublished"
)

var tracer = otel.Tracer("asset-adapter/notifier")

type action func()

type notifier struct {
	started  bool
	endpoint string

	queue chan action
}

func NewNotifier(ctx context.Context, endpoint string) (Notifier, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("notifier endpoint must not be empty")
	}

	return &notifier{
		endpoint: endpoint,
		queue:    make(chan action, 32),
	}, nil
}

func (n *notifier) Start() error {
	if n.started {
		return fmt.Errorf("already started")
	}

	n.started = true

	go n.run()

	return nil
}

func (n *notifier) Stop() error {
	if n.started {
		resultChan := make(chan bool)

		n.queue <- func() {
			// no more actions will be accepted after this one
			close(n.queue)
			resultChan <- true
		}

		<-resultChan
		n.started = false
	}
	return nil
}

func (n *notifier) AssetPrepared(ctx context.Context, e PublishEvent) {
	n.enqueue(ctx, AssetPreparedType, e)
}

func (n *notifier) AssetPublished(ctx context.Context, e PublishEvent) {
	if e.PublishedAt == "" {
		e.PublishedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	n.enqueue(ctx, AssetPublishedType, e)
}

func (n *notifier) enqueue(ctx context.Context, notificationType string, e PublishEvent) {
	if !n.started {
		return
	}

	var err error

	logger := logging.GetFromContext(ctx)

	ctx, span := tracer.Start(
		tracing.ExtractHeaders(context.Background(), tracing.InjectHeaders(ctx)),
		"post",
	)

	n.queue <- func() {
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		err = postNotification(ctx, NewNotification(notificationType, e), n.endpoint)
		if err != nil {
			logger.Error("failed to post notification", "type", notificationType, "asset", e.AssetID, "err", err.Error())
		}
	}
}

func postNotification(ctx context.Context, notification *Notification, endpoint string) error {
	body, err := json.MarshalIndent(notification, "", " ")
	if err != nil {
		return fmt.Errorf("marshalling error (%w)", err)
	}

	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("unable to create new request (%w)", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request (%w)", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification endpoint returned status code %d", resp.StatusCode)
	}

	return nil
}

func (n *notifier) run() {
	for action := range n.queue {
		if action == nil {
			return
		}

		action()
	}
}
