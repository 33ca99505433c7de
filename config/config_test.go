package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_NAME", "SCHOOL_LOCKERS", "SCHOOL_FIRST_NUMBER", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "school-registry", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 3, cfg.School.Lockers)
	assert.Equal(t, 9312, cfg.School.FirstStudentNumber)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SCHOOL_LOCKERS", "10")
	t.Setenv("SCHOOL_FIRST_NUMBER", "100")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 10, cfg.School.Lockers)
	assert.Equal(t, 100, cfg.School.FirstStudentNumber)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown environment", func(c *Config) { c.App.Environment = "qa" }, "APP_ENV"},
		{"negative lockers", func(c *Config) { c.School.Lockers = -1 }, "SCHOOL_LOCKERS"},
		{"zero first number", func(c *Config) { c.School.FirstStudentNumber = 0 }, "SCHOOL_FIRST_NUMBER"},
		{"negative first number", func(c *Config) { c.School.FirstStudentNumber = -1 }, "SCHOOL_FIRST_NUMBER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{Environment: EnvDevelopment},
				School: SchoolConfig{Lockers: 3, FirstStudentNumber: 9312},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_RejectsInvalidSchoolSettings(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"negative first number", "SCHOOL_FIRST_NUMBER", "-1", "SCHOOL_FIRST_NUMBER must be positive"},
		{"zero first number", "SCHOOL_FIRST_NUMBER", "0", "SCHOOL_FIRST_NUMBER must be positive"},
		{"negative lockers", "SCHOOL_LOCKERS", "-2", "SCHOOL_LOCKERS must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
