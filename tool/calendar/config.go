package calendar

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ZiadElshayeb/workky/common/config"
	"github.com/ZiadElshayeb/workky/common/logger"
	"github.com/coocood/freecache"
)

type DayHours struct {
	Enabled bool   `json:"enabled"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type Service struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    any    `json:"price"`
}

type BookingRules struct {
	DefaultDuration int `json:"defaultDuration"`
	BufferTime      int `json:"bufferTime"`
	MinNotice       int `json:"minNotice"`
	MaxAdvance      int `json:"maxAdvance"`
}

type BusinessInfo struct {
	Name string `json:"name"`
}

type BusinessConfig struct {
	Hours        map[string]DayHours `json:"hours"`
	Services     []Service           `json:"services"`
	BookingRules BookingRules        `json:"bookingRules"`
	BusinessInfo BusinessInfo        `json:"businessInfo"`
}

func defaultBookingRules() BookingRules {
	return BookingRules{
		DefaultDuration: 30,
		BufferTime:      0,
		MinNotice:       1,
		MaxAdvance:      30,
	}
}

func defaultConfig() BusinessConfig {
	return BusinessConfig{BookingRules: defaultBookingRules()}
}

// UnmarshalJSON presets the booking-rule defaults before decoding, so an
// absent key keeps its default while an explicit zero is honored.
func (c *BusinessConfig) UnmarshalJSON(data []byte) error {
	type businessConfig BusinessConfig
	decoded := businessConfig{BookingRules: defaultBookingRules()}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = BusinessConfig(decoded)
	return nil
}

var configCache = freecache.NewCache(512 * 1024)

var configCacheKey = []byte("business_config")

const configCacheTTL = 60 // seconds

// LoadBusinessConfig reads business_config.json from the shared data volume.
// The raw file is cached briefly so each tool call does not hit the disk.
// A missing or malformed file yields an empty config with default rules.
func LoadBusinessConfig() BusinessConfig {
	raw, err := configCache.Get(configCacheKey)
	if err != nil {
		raw, err = os.ReadFile(filepath.Join(config.DataDir, "business_config.json"))
		if err != nil {
			return defaultConfig()
		}
		_ = configCache.Set(configCacheKey, raw, configCacheTTL)
	}
	var cfg BusinessConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		logger.SysError("failed to parse business_config.json: " + err.Error())
		return defaultConfig()
	}
	return cfg
}
