package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libcirc/circulation-go/circulation/core"
	"github.com/libcirc/circulation-go/circulation/shell/config"
)

func givenConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "circulation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func Test_Load_WithoutFile_ReturnsDefaults(t *testing.T) {
	// act
	cfg, err := config.Load("")

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, core.DefaultPolicy(), cfg.Policy())
}

func Test_Load_FileOverridesDefaults(t *testing.T) {
	// arrange
	path := givenConfigFile(t, "loan_limit: 3\nlog_level: debug\n")

	// act
	cfg, err := config.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LoanLimit)
	assert.Equal(t, core.DefaultLoanPeriodDays, cfg.LoanPeriodDays)
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func Test_Load_EnvironmentOverridesFile(t *testing.T) {
	// arrange
	path := givenConfigFile(t, "loan_limit: 3\nloan_period_days: 21\n")
	t.Setenv("CIRCULATION_LOAN_LIMIT", "5")
	t.Setenv("CIRCULATION_OBSERVABILITY_ENABLED", "true")

	// act
	cfg, err := config.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.LoanLimit)
	assert.Equal(t, 21, cfg.LoanPeriodDays)
	assert.True(t, cfg.ObservabilityEnabled)
}

func Test_Load_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			file:    "loan_limit: [",
			wantErr: config.ErrReadingConfigFileFailed,
		},
		{
			name:    "malformed environment value",
			env:     map[string]string{"CIRCULATION_LOAN_LIMIT": "two"},
			wantErr: config.ErrParsingEnvironmentFailed,
		},
		{
			name:    "loan limit below one",
			file:    "loan_limit: 0\n",
			wantErr: core.ErrInvalidLoanLimit,
		},
		{
			name:    "loan period below one day",
			env:     map[string]string{"CIRCULATION_LOAN_PERIOD_DAYS": "0"},
			wantErr: core.ErrInvalidLoanPeriod,
		},
		{
			name:    "unknown log level",
			file:    "log_level: loud\n",
			wantErr: config.ErrInvalidLogLevel,
		},
		{
			name:    "observability without service name",
			file:    "observability_enabled: true\nservice_name: \"  \"\n",
			wantErr: config.ErrEmptyServiceName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			path := ""
			if tc.file != "" {
				path = givenConfigFile(t, tc.file)
			}

			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			// act
			_, err := config.Load(path)

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_Load_MissingFile_Fails(t *testing.T) {
	// act
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	// assert
	assert.ErrorIs(t, err, config.ErrReadingConfigFileFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_NewObservabilityConfig_ExportsSpansOnShutdown(t *testing.T) {
	// arrange
	var out bytes.Buffer
	providers, err := config.NewObservabilityConfig(context.Background(), "circulation-test", "test", &out)
	require.NoError(t, err)

	_, span := providers.TracerProvider.Tracer("config_test").Start(context.Background(), "issue loan")
	span.End()

	// act
	err = providers.Shutdown()

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "issue loan")
	assert.Contains(t, out.String(), "circulation-test")
}
