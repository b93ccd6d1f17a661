package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("port = %q, want 8000", cfg.Port)
	}
	if cfg.StudentID != "default_student" {
		t.Errorf("student = %q, want default_student", cfg.StudentID)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEARNLOOP_PORT", "9001")
	t.Setenv("LEARNLOOP_STUDENT_ID", "alice")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9001" {
		t.Errorf("port = %q, want 9001", cfg.Port)
	}
	if cfg.StudentID != "alice" {
		t.Errorf("student = %q, want alice", cfg.StudentID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: "8000", StudentID: "s"}, false},
		{"empty port", Config{Port: "", StudentID: "s"}, true},
		{"port with slash", Config{Port: "80/00", StudentID: "s"}, true},
		{"empty student", Config{Port: "8000", StudentID: ""}, true},
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
