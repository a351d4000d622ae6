package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds runtime defaults loaded from an optional YAML file.
// A value supplied on the BirthInput always takes precedence; these only
// fill fields the caller left empty.
type Settings struct {
	// Language selects the display-string locale (ISO 639-1).
	Language string `yaml:"language"`

	// LeapMonthHandling is the default leap-month policy (mid|current|next).
	LeapMonthHandling string `yaml:"leapMonthHandling"`

	// ZiHourHandling is the default zi-hour policy (midnightChange|ziChange).
	ZiHourHandling string `yaml:"ziHourHandling"`

	// FlankerPolicy controls 天伤/天使 placement (rotation|noDistinction).
	FlankerPolicy string `yaml:"flankerPolicy"`

	// StemInterpretations selects the four-transformation variant per
	// disputed heavenly stem, e.g. {"庚": "2"}.
	StemInterpretations map[string]string `yaml:"stemInterpretations"`

	// CacheCapacity bounds the result cache (FIFO eviction).
	CacheCapacity int `yaml:"cacheCapacity"`

	// ValidationURL, when set, receives a fire-and-forget POST with the
	// computed chart fingerprint. Empty disables remote validation.
	ValidationURL string `yaml:"validationUrl"`

	// ServerPort is used by the -serve mode.
	ServerPort string `yaml:"serverPort"`
}

// DefaultSettings returns the built-in defaults used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Language:            DefaultLanguage,
		LeapMonthHandling:   DefaultLeapMonthHandling,
		ZiHourHandling:      DefaultZiHourHandling,
		FlankerPolicy:       DefaultFlankerPolicy,
		StemInterpretations: map[string]string{},
		CacheCapacity:       DefaultCacheCapacity,
		ServerPort:          DefaultPort,
	}
}

// LoadSettings reads the YAML settings file at path. A missing file is not
// an error: the defaults are returned so the engine can always start.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug(MsgSettingsDefault,
				LogKeyComponent, CompSettings,
				LogKeyFile, path,
			)
			return s, nil
		}
		return s, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}

	slog.Info(MsgSettingsLoaded,
		LogKeyComponent, CompSettings,
		LogKeyFile, path,
	)
	return s, nil
}

// Validate rejects out-of-vocabulary policy values. Zero values are filled
// with defaults rather than rejected, so a partial file stays usable.
func (s *Settings) Validate() error {
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.CacheCapacity <= 0 {
		s.CacheCapacity = DefaultCacheCapacity
	}
	if s.ServerPort == "" {
		s.ServerPort = DefaultPort
	}
	if s.StemInterpretations == nil {
		s.StemInterpretations = map[string]string{}
	}

	switch s.LeapMonthHandling {
	case "":
		s.LeapMonthHandling = DefaultLeapMonthHandling
	case LeapPolicyMid, LeapPolicyCurrent, LeapPolicyNext:
	default:
		return fmt.Errorf("%s: %s: %q", ErrSettingsInvalid, ErrLeapPolicyValue, s.LeapMonthHandling)
	}

	switch s.ZiHourHandling {
	case "":
		s.ZiHourHandling = DefaultZiHourHandling
	case ZiPolicyMidnight, ZiPolicyZiChange:
	default:
		return fmt.Errorf("%s: %s: %q", ErrSettingsInvalid, ErrZiPolicyValue, s.ZiHourHandling)
	}

	switch s.FlankerPolicy {
	case "":
		s.FlankerPolicy = DefaultFlankerPolicy
	case FlankerPolicyRotation, FlankerPolicyFixed:
	default:
		return fmt.Errorf("%s: unknown flanker policy %q", ErrSettingsInvalid, s.FlankerPolicy)
	}

	return nil
}
