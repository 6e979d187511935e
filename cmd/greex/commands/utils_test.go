/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils_test.go
Description: Unit tests for the shared command utilities. Verifies that the
logging setup builds the Greex logging system from the active configuration,
honors the JSON format switch, and rejects invalid levels.
*/

package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/greex/cmd/greex/commands"
)

func TestSetupLoggingBuildsFileLogger(t *testing.T) {
	dir := t.TempDir()
	viper.Set("log_level", "info")
	viper.Set("log_dir", dir)
	viper.Set("json_logs", false)
	defer viper.Reset()

	logger, err := commands.SetupLogging()
	require.NoError(t, err)
	defer logger.Close()

	require.NotNil(t, logger.GetLogger())

	// The timestamped log file must exist in the configured directory
	files, err := filepath.Glob(filepath.Join(dir, "greex_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestSetupLoggingJSONFormat(t *testing.T) {
	viper.Set("log_level", "info")
	viper.Set("log_dir", t.TempDir())
	viper.Set("json_logs", true)
	defer viper.Reset()

	logger, err := commands.SetupLogging()
	require.NoError(t, err)
	defer logger.Close()

	_, ok := logger.GetLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestSetupLoggingRejectsInvalidLevel(t *testing.T) {
	viper.Set("log_level", "loud")
	viper.Set("log_dir", t.TempDir())
	viper.Set("json_logs", false)
	defer viper.Reset()

	_, err := commands.SetupLogging()
	assert.Error(t, err)
}
