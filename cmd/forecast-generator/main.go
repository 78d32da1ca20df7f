package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/forecast_backend/config"
	"bitbucket.org/mmdatafocus/forecast_backend/events"
	"bitbucket.org/mmdatafocus/forecast_backend/export"
	"bitbucket.org/mmdatafocus/forecast_backend/forecast"
	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"bitbucket.org/mmdatafocus/forecast_backend/utils"
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

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func main() {
	// Env-first, flags override env for convenience.
	def := forecast.DefaultConfig()

	start := flag.String("start", getenv("FORECAST_START_DATE", def.StartDate.Format(models.DateLayout)), "Window start date (YYYY-MM-DD)")
	end := flag.String("end", getenv("FORECAST_END_DATE", def.EndDate.Format(models.DateLayout)), "Window end date (YYYY-MM-DD)")
	businesses := flag.Int("businesses", getenvInt("FORECAST_BUSINESSES", 3), "How many BIZ-nnn entities to simulate")
	businessIDs := flag.String("business-ids", getenv("FORECAST_BUSINESS_IDS", ""), "Comma-separated business ids (overrides --businesses)")
	targetRows := flag.Int("target-rows", getenvInt("FORECAST_TARGET_ROWS", def.TargetRows), "Exact row count of the final plan")
	updateRate := flag.Float64("update-rate", getenvFloat("FORECAST_UPDATE_RATE", def.UpdateRate), "Share of rows adjusted post-generation")
	cancelRate := flag.Float64("cancel-rate", getenvFloat("FORECAST_CANCEL_RATE", def.CancelRate), "Share of remaining rows cancelled")
	idMode := flag.String("id-mode", getenv("FORECAST_ID_MODE", string(def.IDMode)), "Forecast id mode: SEQUENTIAL or UUID")
	currency := flag.String("currency", getenv("FORECAST_CURRENCY", def.Currency), "Currency code for every amount")
	scenario := flag.String("scenario", getenv("FORECAST_SCENARIO", def.Scenario), "Scenario label")
	seed := flag.Int64("seed", int64(getenvInt("FORECAST_SEED", int(def.Seed))), "Random seed; same seed + config reproduces the plan")
	outPath := flag.String("out", getenv("FORECAST_OUTPUT_CSV", "forecast_plan.csv"), "Local CSV output path")
	eventsPath := flag.String("events-out", getenv("FORECAST_OUTPUT_EVENTS", ""), "Optional JSONL path for the event stream")
	bucket := flag.String("bucket", getenv("GCS_BUCKET", ""), "Optional GCS bucket to upload the plan to")
	folder := flag.String("folder", getenv("FORECAST_GCS_FOLDER", "forecast_plan"), "Folder path prefix inside the bucket")
	flag.Parse()

	logger := config.GetLogger()

	cfg, err := buildConfig(*start, *end, *businesses, *businessIDs, *targetRows, *updateRate, *cancelRate, *idMode, *currency, *scenario, *seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	res, err := forecast.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.WithFields(logrus.Fields{
		"rows":      len(res.Records),
		"adjusted":  len(res.UpdatedIDs),
		"cancelled": len(res.CancelledIDs),
		"seed":      cfg.Seed,
	}).Info("forecast plan generated")

	if err := export.WritePlanFile(*outPath, res.Records); err != nil {
		config.LogError(logger, "forecast-generator", "main", "write plan csv", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(res.Records), *outPath)

	if *eventsPath != "" {
		evts, err := events.FromResult(res, cfg.GeneratedAt)
		if err != nil {
			config.LogError(logger, "forecast-generator", "main", "build events", nil, err)
			os.Exit(1)
		}
		if err := export.WriteEventsFile(*eventsPath, evts); err != nil {
			config.LogError(logger, "forecast-generator", "main", "write events jsonl", *eventsPath, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %d events to %s\n", len(evts), *eventsPath)
	}

	if *bucket != "" {
		data, err := export.PlanCSVBytes(res.Records)
		if err != nil {
			config.LogError(logger, "forecast-generator", "main", "render plan csv", nil, err)
			os.Exit(1)
		}
		loadDt := time.Now().UTC().Format(models.DateLayout)
		object := fmt.Sprintf("%s/load_dt=%s/forecast_plan_%s_%s_v1.csv",
			strings.Trim(*folder, "/"), loadDt,
			cfg.StartDate.Format(models.DateLayout), cfg.EndDate.Format(models.DateLayout))
		if err := utils.UploadToGCS(context.Background(), *bucket, object, data, "text/csv"); err != nil {
			config.LogError(logger, "forecast-generator", "main", "upload to gcs", object, err)
			os.Exit(1)
		}
		fmt.Printf("uploaded to gs://%s/%s\n", *bucket, object)
	}
}

func buildConfig(start, end string, businesses int, businessIDs string, targetRows int, updateRate, cancelRate float64, idMode, currency, scenario string, seed int64) (forecast.Config, error) {
	var cfg forecast.Config
	var err error

	if cfg.StartDate, err = time.Parse(models.DateLayout, start); err != nil {
		return cfg, fmt.Errorf("invalid --start %q: %w", start, err)
	}
	if cfg.EndDate, err = time.Parse(models.DateLayout, end); err != nil {
		return cfg, fmt.Errorf("invalid --end %q: %w", end, err)
	}
	if businessIDs != "" {
		for _, id := range strings.Split(businessIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.BusinessIDs = append(cfg.BusinessIDs, id)
			}
		}
	} else {
		cfg.BusinessIDs = forecast.BusinessIDs(businesses)
	}
	if cfg.IDMode, err = models.ParseIDMode(idMode); err != nil {
		return cfg, err
	}
	cfg.TargetRows = targetRows
	cfg.UpdateRate = updateRate
	cfg.CancelRate = cancelRate
	cfg.Currency = currency
	cfg.Scenario = scenario
	cfg.Seed = seed
	cfg.GeneratedAt = time.Now().UTC()
	return cfg, cfg.Validate()
}
