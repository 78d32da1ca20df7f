package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/config"
	"bitbucket.org/mmdatafocus/forecast_backend/events"
	"bitbucket.org/mmdatafocus/forecast_backend/export"
)

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func main() {
	input := flag.String("input", getenv("FORECAST_PLAN_URI", ""), "Plan CSV: local path or gs://bucket/path")
	topic := flag.String("topic", getenv("FORECAST_EVENTS_TOPIC", "forecast-events"), "Pub/Sub topic for forecast events")
	createTopic := flag.Bool("create-topic", false, "Create the topic if it does not exist")
	batchSize := flag.Int("batch-size", getenvInt("FORECAST_PUBLISH_BATCH", 100), "How many publishes to await at a time")
	flag.Parse()

	if strings.TrimSpace(*input) == "" {
		fmt.Fprintln(os.Stderr, "missing required plan file: set FORECAST_PLAN_URI or pass --input")
		os.Exit(2)
	}

	logger := config.GetLogger()
	ctx := context.Background()

	rows, err := export.LoadPlan(ctx, *input)
	if err != nil {
		config.LogError(logger, "publish-forecast-events", "main", "load plan", *input, err)
		os.Exit(1)
	}
	fmt.Printf("loaded %d forecast rows from %s\n", len(rows), *input)

	publisher, err := events.NewPublisher(ctx, *topic, *createTopic)
	if err != nil {
		config.LogError(logger, "publish-forecast-events", "main", "init publisher", *topic, err)
		os.Exit(1)
	}
	publisher.SetBatchSize(*batchSize)

	evts := events.FromPlan(rows, time.Now().UTC())
	if err := publisher.Publish(ctx, evts); err != nil {
		config.LogError(logger, "publish-forecast-events", "main", "publish events", nil, err)
		os.Exit(1)
	}
	fmt.Printf("published %d events to %s\n", len(evts), *topic)
}
