package calendar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZiadElshayeb/workky/common/config"
)

func TestBusinessConfigDefaultsWhenKeysAbsent(t *testing.T) {
	var cfg BusinessConfig
	if err := json.Unmarshal([]byte(`{"hours":{}}`), &cfg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	rules := cfg.BookingRules
	if rules.DefaultDuration != 30 || rules.BufferTime != 0 || rules.MinNotice != 1 || rules.MaxAdvance != 30 {
		t.Errorf("rules = %+v, want defaults 30/0/1/30", rules)
	}
}

func TestBusinessConfigHonorsExplicitZero(t *testing.T) {
	var cfg BusinessConfig
	raw := `{"bookingRules":{"minNotice":0,"bufferTime":15}}`
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	rules := cfg.BookingRules
	if rules.MinNotice != 0 {
		t.Errorf("minNotice = %d, an explicit 0 must not be overridden", rules.MinNotice)
	}
	if rules.BufferTime != 15 {
		t.Errorf("bufferTime = %d, want 15", rules.BufferTime)
	}
	if rules.DefaultDuration != 30 || rules.MaxAdvance != 30 {
		t.Errorf("absent keys lost their defaults: %+v", rules)
	}
}

func TestLoadBusinessConfigMissingFile(t *testing.T) {
	old := config.DataDir
	config.DataDir = t.TempDir()
	t.Cleanup(func() {
		config.DataDir = old
		configCache.Del(configCacheKey)
	})
	configCache.Del(configCacheKey)

	cfg := LoadBusinessConfig()
	if cfg.BookingRules != defaultBookingRules() {
		t.Errorf("rules = %+v, want defaults", cfg.BookingRules)
	}
}

func TestLoadBusinessConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	raw := []byte(`{"bookingRules":{"minNotice":0},"businessInfo":{"name":"Workky Salon"}}`)
	if err := os.WriteFile(filepath.Join(dir, "business_config.json"), raw, 0600); err != nil {
		t.Fatal(err)
	}
	old := config.DataDir
	config.DataDir = dir
	t.Cleanup(func() {
		config.DataDir = old
		configCache.Del(configCacheKey)
	})
	configCache.Del(configCacheKey)

	cfg := LoadBusinessConfig()
	if cfg.BookingRules.MinNotice != 0 {
		t.Errorf("minNotice = %d, explicit 0 from the file must survive", cfg.BookingRules.MinNotice)
	}
	if cfg.BookingRules.DefaultDuration != 30 {
		t.Errorf("defaultDuration = %d, want default 30", cfg.BookingRules.DefaultDuration)
	}
	if cfg.BusinessInfo.Name != "Workky Salon" {
		t.Errorf("business name = %q", cfg.BusinessInfo.Name)
	}
}
