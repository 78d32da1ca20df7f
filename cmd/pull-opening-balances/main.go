package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/forecast_backend/config"
	"bitbucket.org/mmdatafocus/forecast_backend/export"
	"bitbucket.org/mmdatafocus/forecast_backend/models"
	"bitbucket.org/mmdatafocus/forecast_backend/plaid"
	"bitbucket.org/mmdatafocus/forecast_backend/utils"
)

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func main() {
	businessIDs := flag.String("business-ids", getenv("FORECAST_BUSINESS_IDS", "BIZ-001"), "Comma-separated business ids; one Plaid item per business")
	openingDate := flag.String("opening-date", getenv("OPENING_BALANCE_DATE", time.Now().UTC().Format(models.DateLayout)), "Opening balance date (YYYY-MM-DD)")
	institution := flag.String("institution", getenv("PLAID_INSTITUTION_ID", plaid.DefaultInstitutionID), "Sandbox institution id")
	outPath := flag.String("out", getenv("OPENING_BALANCE_CSV", "opening_balances.csv"), "Local CSV output path")
	bucket := flag.String("bucket", getenv("GCS_BUCKET", ""), "Optional GCS bucket to upload CSV to")
	folder := flag.String("folder", getenv("OPENING_BALANCE_FOLDER", "config/opening_balances"), "Folder path prefix inside the bucket")
	flag.Parse()

	logger := config.GetLogger()

	date, err := time.Parse(models.DateLayout, *openingDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --opening-date %q: %v\n", *openingDate, err)
		os.Exit(2)
	}
	var ids []string
	for _, id := range strings.Split(*businessIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "at least one business id is required")
		os.Exit(2)
	}

	client, err := plaid.NewClientFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()
	balances, err := plaid.PullOpeningBalances(ctx, client, ids, *institution, date)
	if err != nil {
		config.LogError(logger, "pull-opening-balances", "main", "pull balances", ids, err)
		os.Exit(1)
	}
	for _, b := range balances {
		fmt.Printf("%s total_current = %s\n", b.BusinessID, b.Amount.StringFixed(2))
	}

	data, err := export.OpeningBalancesCSVBytes(balances)
	if err != nil {
		config.LogError(logger, "pull-opening-balances", "main", "render csv", nil, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		config.LogError(logger, "pull-opening-balances", "main", "write csv", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("local CSV written: %s\n", *outPath)

	if *bucket != "" {
		loadDt := time.Now().UTC().Format(models.DateLayout)
		object := fmt.Sprintf("%s/load_dt=%s/opening_balances_%s.csv", strings.Trim(*folder, "/"), loadDt, loadDt)
		if err := utils.UploadToGCS(ctx, *bucket, object, data, "text/csv"); err != nil {
			config.LogError(logger, "pull-opening-balances", "main", "upload to gcs", object, err)
			os.Exit(1)
		}
		fmt.Printf("uploaded to gs://%s/%s\n", *bucket, object)
	}
}
