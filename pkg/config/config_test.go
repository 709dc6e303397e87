package config

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				App:    AppConfig{Name: "test-service"},
				Log:    LogConfig{Level: "info"},
				Solver: SolverConfig{TimeLimit: 3600, MaxNumSolutions: 4},
			},
			wantErr: false,
		},
		{
			name: "missing app name",
			cfg: Config{
				Log:    LogConfig{Level: "info"},
				Solver: SolverConfig{TimeLimit: 3600, MaxNumSolutions: 4},
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "invalid"},
				Solver: SolverConfig{TimeLimit: 3600, MaxNumSolutions: 4},
			},
			wantErr: true,
		},
		{
			name: "valid debug level",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "debug"},
				Solver: SolverConfig{TimeLimit: 3600, MaxNumSolutions: 4},
			},
			wantErr: false,
		},
		{
			name: "negative time limit",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "info"},
				Solver: SolverConfig{TimeLimit: -1, MaxNumSolutions: 4},
			},
			wantErr: true,
		},
		{
			name: "max num solutions too small",
			cfg: Config{
				App:    AppConfig{Name: "test"},
				Log:    LogConfig{Level: "info"},
				Solver: SolverConfig{TimeLimit: 3600, MaxNumSolutions: 1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		cfg := &Config{App: AppConfig{Environment: tt.env}}
		if got := cfg.IsDevelopment(); got != tt.want {
			t.Errorf("IsDevelopment() for %s = %v, want %v", tt.env, got, tt.want)
		}
	}
}
