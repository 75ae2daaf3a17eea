package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFixtures(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	schemesPath := filepath.Join(tmp, "schemes.json")
	require.NoError(t, os.WriteFile(schemesPath, []byte(`[
		{
			"scheme_name": {"en": "PM-KISAN"},
			"description": {"en": "Income support for farmers"},
			"eligibility": {"en": "All landholding farmers"},
			"more_info": "https://pmkisan.gov.in"
		}
	]`), 0o644))

	pricesPath := filepath.Join(tmp, "cropprice.csv")
	require.NoError(t, os.WriteFile(pricesPath, []byte(
		"State,District,Market,Commodity,Arrival_Date,Min_x0020_Price,Max_x0020_Price,Modal_x0020_Price\n"+
			"Kerala,Ernakulam,Kochi,Tomato,01/08/2026,1200,1800,1500\n"), 0o644))

	configPath := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(
		"log:\n  log_level: error\n  log_dir: \"\"\ndata:\n  crop_price_file: %s\n  schemes_file: %s\n",
		pricesPath, schemesPath,
	)), 0o644))

	return configPath
}

func TestInitGraphOrder(t *testing.T) {
	steps := InitGraph()
	want := []string{
		"config:load",
		"logging:init",
		"ai:init-client",
		"domain:init-services",
		"schemes:verify",
	}
	require.Len(t, steps, len(want))
	for i, step := range steps {
		require.Equal(t, want[i], step.ID)
	}
}

func TestExecuteInitGraph(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-ai-key")
	t.Setenv("WEATHER_API_KEY", "test-weather-key")

	configPath := writeTestFixtures(t)

	state := &appState{opts: Options{ConfigPath: configPath, DotEnv: false}}
	require.NoError(t, executeInitSteps(context.Background(), InitGraph(), state))

	require.NotNil(t, state.config)
	require.NotNil(t, state.logger)
	require.NotNil(t, state.aiClient)
	require.NotNil(t, state.advisoryService)
	require.NotNil(t, state.diagnosisService)
	require.NotNil(t, state.weatherService)
	require.NotNil(t, state.marketService)
	require.NotNil(t, state.schemeService)
	state.logger.Close()
}

func TestExecuteInitGraphFailsWithoutSchemes(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-ai-key")
	t.Setenv("WEATHER_API_KEY", "test-weather-key")

	tmp := t.TempDir()
	configPath := filepath.Join(tmp, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(
		"log:\n  log_level: error\n  log_dir: \"\"\ndata:\n  schemes_file: %s\n",
		filepath.Join(tmp, "missing.json"),
	)), 0o644))

	state := &appState{opts: Options{ConfigPath: configPath, DotEnv: false}}
	err := executeInitSteps(context.Background(), InitGraph(), state)
	require.Error(t, err)
	if state.logger != nil {
		state.logger.Close()
	}
}
