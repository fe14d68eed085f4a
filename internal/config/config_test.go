package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	policy := cfg.RewardPolicy()
	if policy.XPPerCorrect != 10 || policy.PerfectBonus != 20 {
		t.Errorf("reward policy = %+v, want 10 per correct and 20 bonus", policy)
	}

	gates := cfg.Gates()
	if gates.MinTests != 10 || gates.MinWrongAnswers != 10 {
		t.Errorf("global gates = %+v, want 10 and 10", gates)
	}
	if gates.CategoryMinTests != 100 || gates.MaxRetrySize != 10 {
		t.Errorf("category gates = %+v, want 100 and 10", gates)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "xp:\n  per_correct: 25\nretry:\n  min_tests: 5\nbank:\n  dir: /tmp/banks\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.XP.PerCorrect != 25 {
		t.Errorf("per correct = %d, want 25", cfg.XP.PerCorrect)
	}
	// Unset keys keep their defaults.
	if cfg.XP.PerfectBonus != 20 {
		t.Errorf("perfect bonus = %d, want default 20", cfg.XP.PerfectBonus)
	}
	if cfg.Retry.MinTests != 5 {
		t.Errorf("min tests = %d, want 5", cfg.Retry.MinTests)
	}
	if cfg.Bank.Dir != "/tmp/banks" {
		t.Errorf("bank dir = %q, want /tmp/banks", cfg.Bank.Dir)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUIZDRILL_XP_PER_CORRECT", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.XP.PerCorrect != 15 {
		t.Errorf("per correct = %d, want env override 15", cfg.XP.PerCorrect)
	}
}
