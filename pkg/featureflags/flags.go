// ABOUTME: Feature flag management for optional surfaces of the service
// ABOUTME: Flags come from environment variables with per-flag defaults and test overrides

package featureflags

import (
	"context"
	"maps"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

const (
	// ChartEnabled turns on chart rendering in /country-stats and the PNG route
	ChartEnabled FeatureFlag = "chart_enabled"

	// MetricsEnabled mounts the Prometheus endpoint and records upstream metrics
	MetricsEnabled FeatureFlag = "metrics_enabled"

	// RateLimitEnabled installs the per-client rate limiter
	RateLimitEnabled FeatureFlag = "rate_limit_enabled"
)

// All lists every flag the service reads.
var All = []FeatureFlag{ChartEnabled, MetricsEnabled, RateLimitEnabled}

// Defaults is the state of every flag when nothing else decides it.
var Defaults = map[FeatureFlag]bool{
	ChartEnabled:     true,
	MetricsEnabled:   true,
	RateLimitEnabled: true,
}

// Manager answers flag queries
type Manager interface {
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled pins a flag, taking precedence over any other source
	SetEnabled(flag FeatureFlag, enabled bool)

	GetAllFlags() map[FeatureFlag]bool
}

// flagSet is a map of flag states guarded for concurrent use
type flagSet struct {
	mu     sync.RWMutex
	values map[FeatureFlag]bool
}

func newFlagSet(initial map[FeatureFlag]bool) *flagSet {
	values := make(map[FeatureFlag]bool, len(initial))
	maps.Copy(values, initial)
	return &flagSet{values: values}
}

func (s *flagSet) get(flag FeatureFlag) (enabled, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enabled, ok = s.values[flag]
	return enabled, ok
}

func (s *flagSet) set(flag FeatureFlag, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[flag] = enabled
}

func (s *flagSet) snapshot() map[FeatureFlag]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// EnvManager reads flags from environment variables named prefix + the
// upper-cased flag, e.g. FEATURE_CHART_ENABLED. Pinned values win over the
// environment, which wins over the defaults.
type EnvManager struct {
	prefix   string
	defaults map[FeatureFlag]bool
	pinned   *flagSet
}

// NewEnvManager creates an environment backed manager. An empty prefix means
// "FEATURE_" and a nil defaults map means Defaults.
func NewEnvManager(prefix string, defaults map[FeatureFlag]bool) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	if defaults == nil {
		defaults = Defaults
	}
	return &EnvManager{
		prefix:   prefix,
		defaults: maps.Clone(defaults),
		pinned:   newFlagSet(nil),
	}
}

// IsEnabled reports the current state of flag. Unrecognized values fall back
// to the default.
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	if enabled, ok := m.pinned.get(flag); ok {
		return enabled
	}

	raw := os.Getenv(m.prefix + strings.ToUpper(string(flag)))
	if enabled, ok := parseBool(raw); ok {
		return enabled
	}
	return m.defaults[flag]
}

// SetEnabled pins flag to enabled
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.pinned.set(flag, enabled)
}

// GetAllFlags returns the state of every flag in All
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	out := make(map[FeatureFlag]bool, len(All))
	for _, flag := range All {
		out[flag] = m.IsEnabled(ctx, flag)
	}
	return out
}

func parseBool(raw string) (enabled, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "enabled":
		return true, true
	case "false", "0", "disabled":
		return false, true
	}
	return false, false
}

// StaticManager serves a fixed set of flags; unknown flags are off.
type StaticManager struct {
	flags *flagSet
}

// NewStaticManager copies flags into a new manager
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	return &StaticManager{flags: newFlagSet(flags)}
}

func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	enabled, _ := m.flags.get(flag)
	return enabled
}

func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.flags.set(flag, enabled)
}

func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	return m.flags.snapshot()
}
