package forecast

import (
	"strings"
	"testing"

	"bitbucket.org/mmdatafocus/forecast_backend/models"
)

func TestConfigValidate_RejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		errPart string
	}{
		{"zero target", func(c *Config) { c.TargetRows = 0 }, "target rows"},
		{"negative target", func(c *Config) { c.TargetRows = -5 }, "target rows"},
		{"inverted range", func(c *Config) { c.StartDate, c.EndDate = c.EndDate, c.StartDate }, "precedes"},
		{"no businesses", func(c *Config) { c.BusinessIDs = nil }, "business"},
		{"update rate above 1", func(c *Config) { c.UpdateRate = 1.5 }, "update rate"},
		{"negative cancel rate", func(c *Config) { c.CancelRate = -0.1 }, "cancel rate"},
		{"rates sum above 1", func(c *Config) { c.UpdateRate, c.CancelRate = 0.7, 0.4 }, "exceeds 1.0"},
		{"bad id mode", func(c *Config) { c.IDMode = models.IDMode("READABLE") }, "id mode"},
		{"missing currency", func(c *Config) { c.Currency = "" }, "currency"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Fatalf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestConfigValidate_AcceptsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestBusinessIDs(t *testing.T) {
	ids := BusinessIDs(3)
	want := []string{"BIZ-001", "BIZ-002", "BIZ-003"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}
