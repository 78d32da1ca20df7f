package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

// WriteEventsJSONL writes one event envelope per line.
func WriteEventsJSONL(w io.Writer, events []models.ForecastEvent) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("encode event %s (%s): %w", e.EventID, e.Payload.ForecastID, err)
		}
	}
	return nil
}

// WriteEventsFile writes the event stream to a local JSONL file.
func WriteEventsFile(path string, events []models.ForecastEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteEventsJSONL(f, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
