package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/pubsub"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/forecast_backend/config"
	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

const defaultBatchSize = 100

// Publisher pushes forecast events to a Pub/Sub topic in batches. A failed
// publish is reported with the offending forecast_id and payload so the run
// can be reproduced, and the remaining batch is not retried here.
type Publisher struct {
	topic     *pubsub.Topic
	batchSize int
	logger    *logrus.Logger
}

// NewPublisher resolves the topic name from the argument or FORECAST_EVENTS_TOPIC
// and optionally creates the topic.
func NewPublisher(ctx context.Context, topicName string, createTopic bool) (*Publisher, error) {
	if topicName == "" {
		topicName = strings.TrimSpace(os.Getenv("FORECAST_EVENTS_TOPIC"))
	}
	if topicName == "" {
		return nil, errors.New("events: topic name is required")
	}

	client, err := config.GetClient(ctx)
	if err != nil {
		return nil, err
	}

	topic := client.Topic(topicName)
	if createTopic {
		topic, err = config.CreateTopicIfNotExists(client, topicName)
		if err != nil {
			return nil, err
		}
	}
	return &Publisher{
		topic:     topic,
		batchSize: defaultBatchSize,
		logger:    config.GetLogger(),
	}, nil
}

func (p *Publisher) SetBatchSize(n int) {
	if n > 0 {
		p.batchSize = n
	}
}

// Publish sends every event and waits batch-by-batch so schema or permission
// errors surface close to the payload that caused them.
func (p *Publisher) Publish(ctx context.Context, events []models.ForecastEvent) error {
	defer p.topic.Stop()

	type pending struct {
		res   *pubsub.PublishResult
		event models.ForecastEvent
	}

	var batch []pending
	flush := func() error {
		for _, item := range batch {
			if _, err := item.res.Get(ctx); err != nil {
				payload, _ := json.Marshal(item.event)
				config.LogError(p.logger, "events", "Publish", "pubsub publish",
					string(payload), err)
				return fmt.Errorf("publish event %s (forecast %s): %w",
					item.event.EventID, item.event.Payload.ForecastID, err)
			}
		}
		batch = batch[:0]
		return nil
	}

	for _, e := range events {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s (forecast %s): %w", e.EventID, e.Payload.ForecastID, err)
		}
		batch = append(batch, pending{
			res:   p.topic.Publish(ctx, &pubsub.Message{Data: data}),
			event: e,
		})
		if len(batch) >= p.batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
