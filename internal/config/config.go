// Package config defines service configuration and its loading order:
// defaults, optional YAML file, then environment variables.
package config

import "time"

// ROIFactors parameterize the three-horizon ROI projection. The estimate
// for each horizon is level * factor * base.
type ROIFactors struct {
	// EfficiencyGain is the per-level efficiency factor (year one).
	EfficiencyGain float64 `koanf:"efficiency_gain"`
	// RevenueImpact is the additional per-level revenue factor layered on
	// for the later horizons.
	RevenueImpact float64 `koanf:"revenue_impact"`
	// Year1Base, Year3Base and Year5Base are the dollar bases per horizon.
	Year1Base int64 `koanf:"year1_base"`
	Year3Base int64 `koanf:"year3_base"`
	Year5Base int64 `koanf:"year5_base"`
}

// Thresholds hold the score cut-offs used when synthesizing the report.
// The agent-level risk/insight policy (0.5/0.7) is intentionally separate
// from the report-level gap/strength policy (0.3/0.7).
type Thresholds struct {
	Strength     float64 `koanf:"strength"`      // aggregated score above -> strength
	CriticalGap  float64 `koanf:"critical_gap"`  // aggregated score below -> critical gap
	AgentRisk    float64 `koanf:"agent_risk"`    // per-agent score below -> risk + recommendation
	AgentInsight float64 `koanf:"agent_insight"` // per-agent score above -> insight + opportunity
}

// Config contains process configuration.
type Config struct {
	LogLevel string `koanf:"log_level"`
	Addr     string `koanf:"addr"`

	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
	RedisAddr     string `koanf:"redis_addr"`

	JWTSecret     string `koanf:"jwt_secret"`
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	// ResultCacheTTL bounds how long a computed report is replayed for
	// identical input; ResultCacheSize bounds the in-memory variant.
	ResultCacheTTL  time.Duration `koanf:"result_cache_ttl"`
	ResultCacheSize int           `koanf:"result_cache_size"`
	SessionTTL      time.Duration `koanf:"session_ttl"`

	// AgentTimeout caps one agent's analysis; zero disables the cap.
	AgentTimeout time.Duration `koanf:"agent_timeout"`

	ROI        ROIFactors `koanf:"roi"`
	Thresholds Thresholds `koanf:"thresholds"`
}

// New returns the configuration defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "aimaturity",
		RedisAddr:       "localhost:6379",
		JWTSecret:       "change-me-in-production",
		AdminUsername:   "admin",
		AdminPassword:   "password123",
		ResultCacheTTL:  24 * time.Hour,
		ResultCacheSize: 1024,
		SessionTTL:      time.Hour,
		AgentTimeout:    10 * time.Second,
		ROI: ROIFactors{
			EfficiencyGain: 0.10,
			RevenueImpact:  0.05,
			Year1Base:      1_000_000,
			Year3Base:      3_000_000,
			Year5Base:      5_000_000,
		},
		Thresholds: Thresholds{
			Strength:     0.7,
			CriticalGap:  0.3,
			AgentRisk:    0.5,
			AgentInsight: 0.7,
		},
	}
}
