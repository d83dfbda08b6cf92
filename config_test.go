package folio

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/eringen/folio/content"
)

func TestLoadConfig(t *testing.T) {
	v := viper.New()
	v.Set("name", "Jane")
	v.Set("contact_webhook", "https://forms.example/hook")
	v.Set("contact_timeout", "3s")
	v.Set("submit_limit", 2)
	v.Set("stats_disabled", true)

	cfg := LoadConfig(v)
	if cfg.Name != "Jane" || cfg.ContactWebhook != "https://forms.example/hook" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ContactTimeout != 3*time.Second || cfg.SubmitLimit != 2 || !cfg.StatsDisabled {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestBindEnv(t *testing.T) {
	t.Setenv("FOLIO_SESSION_SECRET", "from-env")
	t.Setenv("FOLIO_VIEW_TTL", "5m")

	v := viper.New()
	BindEnv(v)
	cfg := LoadConfig(v)
	if cfg.SessionSecret != "from-env" {
		t.Errorf("SessionSecret = %q", cfg.SessionSecret)
	}
	if cfg.ViewTTL != 5*time.Minute {
		t.Errorf("ViewTTL = %v", cfg.ViewTTL)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()
	cfg.fillFromProfile(content.Profile{Name: "Jane", Intro: "Builds things"})

	if cfg.URL != "http://localhost:3000" || cfg.Addr != ":3000" {
		t.Errorf("URL/Addr = %q/%q", cfg.URL, cfg.Addr)
	}
	if cfg.SimulatedDelay != 2*time.Second || cfg.SubmitWindow != time.Minute {
		t.Errorf("delays = %v/%v", cfg.SimulatedDelay, cfg.SubmitWindow)
	}
	if cfg.Name != "Jane" || cfg.Author != "Jane" || cfg.Description != "Builds things" {
		t.Errorf("profile fill = %+v", cfg)
	}

	cfg = SiteConfig{ViewTTL: -time.Minute, SubmitWindow: -time.Second, SubmitLimit: -1, StatsRetention: -3, SectionCacheTTL: -time.Hour}
	cfg.setDefaults()
	if cfg.ViewTTL != 30*time.Minute || cfg.SubmitWindow != time.Minute || cfg.SectionCacheTTL != time.Hour {
		t.Errorf("negative durations should fall back to defaults: %+v", cfg)
	}
	if cfg.SubmitLimit != 5 || cfg.StatsRetention != 365 {
		t.Errorf("negative counts should fall back to defaults: %+v", cfg)
	}

	cfg = SiteConfig{Name: "Site"}
	cfg.fillFromProfile(content.Profile{Name: "Jane"})
	if cfg.Name != "Site" {
		t.Errorf("explicit name overwritten: %q", cfg.Name)
	}
}
