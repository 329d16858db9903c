package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Database.Host != "localhost" || cfg.Database.Port != "5432" {
		t.Errorf("database defaults = %+v", cfg.Database)
	}
	if cfg.Game.CountdownSeconds != 20 || cfg.Game.TickSeconds != 1 {
		t.Errorf("game defaults = %+v", cfg.Game)
	}
	if cfg.Bot.PollTimeout != 10 {
		t.Errorf("poll timeout = %d, want 10", cfg.Bot.PollTimeout)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
bot:
  token: "123:abc"
  poll_timeout: 25
database:
  host: db.internal
  database: quiz
game:
  countdown_seconds: 30
  tick_seconds: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Bot.Token != "123:abc" || cfg.Bot.PollTimeout != 25 {
		t.Errorf("bot = %+v", cfg.Bot)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Name != "quiz" {
		t.Errorf("database = %+v", cfg.Database)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Database.User != "postgres" {
		t.Errorf("user = %q, want default", cfg.Database.User)
	}
	if cfg.Game.Countdown() != 30*time.Second || cfg.Game.Tick() != 2*time.Second {
		t.Errorf("game = %+v", cfg.Game)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
bot:
  token: "from-file"
database:
  password: file-password
`)

	t.Setenv("BOT_TOKEN", "from-env")
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("GAME_COUNTDOWN_SECONDS", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Bot.Token != "from-env" {
		t.Errorf("token = %q, want env override", cfg.Bot.Token)
	}
	if cfg.Database.Password != "env-password" {
		t.Errorf("password = %q, want env override", cfg.Database.Password)
	}
	if cfg.Game.CountdownSeconds != 5 {
		t.Errorf("countdown = %d, want 5", cfg.Game.CountdownSeconds)
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", Name: "db"}
	want := "host=h port=5432 user=u password=p dbname=db sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("dsn = %q, want %q", got, want)
	}
}
