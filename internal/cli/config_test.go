package cli

import (
	"testing"

	"github.com/spf13/viper"
)

func TestEffectiveConfigMergesViperValues(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("scoring.top_k", 25)
	viper.Set("dumps.types", "/data/types.nt")

	cfg, err := effectiveConfig()
	if err != nil {
		t.Fatalf("effectiveConfig() error = %v", err)
	}
	if cfg.Scoring.TopK != 25 {
		t.Errorf("Scoring.TopK = %d, want 25", cfg.Scoring.TopK)
	}
	if cfg.Dumps.Types != "/data/types.nt" {
		t.Errorf("Dumps.Types = %q, want /data/types.nt", cfg.Dumps.Types)
	}
}

func TestEffectiveConfigKeepsDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("scoring.top_k", 10)

	cfg, err := effectiveConfig()
	if err != nil {
		t.Fatalf("effectiveConfig() error = %v", err)
	}
	if cfg.CSV.Separator != "\t" {
		t.Errorf("CSV.Separator = %q, want tab", cfg.CSV.Separator)
	}
	if cfg.Scoring.Workers <= 0 {
		t.Errorf("Scoring.Workers = %d, want > 0", cfg.Scoring.Workers)
	}
}
