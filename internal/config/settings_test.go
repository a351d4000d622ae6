package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ziwei/internal/config"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.NoError(t, err, "A missing settings file must not be an error")
	assert.Equal(t, config.DefaultLeapMonthHandling, s.LeapMonthHandling)
	assert.Equal(t, config.DefaultZiHourHandling, s.ZiHourHandling)
	assert.Equal(t, config.DefaultCacheCapacity, s.CacheCapacity)
	assert.NotNil(t, s.StemInterpretations)
}

func TestLoadSettings_PartialFileFillsDefaults(t *testing.T) {
	// Only one field is set; everything else should fall back to defaults.
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	content := "leapMonthHandling: next\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))

	s, err := config.LoadSettings(path)

	assert.NoError(t, err)
	assert.Equal(t, config.LeapPolicyNext, s.LeapMonthHandling)
	assert.Equal(t, config.DefaultZiHourHandling, s.ZiHourHandling)
	assert.Equal(t, config.DefaultPort, s.ServerPort)
}

func TestLoadSettings_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	content := `language: zh
leapMonthHandling: current
ziHourHandling: ziChange
flankerPolicy: noDistinction
cacheCapacity: 10
serverPort: "9000"
validationUrl: https://example.com/validate
stemInterpretations:
  "庚": "2"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))

	s, err := config.LoadSettings(path)

	assert.NoError(t, err)
	assert.Equal(t, "zh", s.Language)
	assert.Equal(t, config.LeapPolicyCurrent, s.LeapMonthHandling)
	assert.Equal(t, config.ZiPolicyZiChange, s.ZiHourHandling)
	assert.Equal(t, config.FlankerPolicyFixed, s.FlankerPolicy)
	assert.Equal(t, 10, s.CacheCapacity)
	assert.Equal(t, "9000", s.ServerPort)
	assert.Equal(t, "https://example.com/validate", s.ValidationURL)
	assert.Equal(t, "2", s.StemInterpretations["庚"])
}

func TestLoadSettings_InvalidPolicyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	assert.NoError(t, os.WriteFile(path, []byte("ziHourHandling: whenever\n"), config.FilePermUserRW))

	_, err := config.LoadSettings(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrZiPolicyValue)
}

func TestLoadSettings_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.SettingsFileName)
	assert.NoError(t, os.WriteFile(path, []byte("\t[broken"), config.FilePermUserRW))

	s, err := config.LoadSettings(path)

	assert.Error(t, err)
	// Defaults must still be usable after a parse failure.
	assert.Equal(t, config.DefaultCacheCapacity, s.CacheCapacity)
}
