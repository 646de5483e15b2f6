package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func validViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("DB_HOST", "localhost")
	v.Set("DB_USER", "health")
	v.Set("DB_NAME", "healthlog")
	v.Set("JWT_ACCESS_SECRET", strings.Repeat("s", 32))
	return v
}

func TestFromViper_AppliesDefaults(t *testing.T) {
	cfg, err := FromViper(validViper())
	if err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.JWT.AccessTTL() != 7*24*time.Hour {
		t.Fatalf("expected 7 day token ttl, got %s", cfg.JWT.AccessTTL())
	}
	if cfg.Cache.NarrativeTTL != 6*time.Hour {
		t.Fatalf("expected 6h narrative ttl, got %s", cfg.Cache.NarrativeTTL)
	}
	if cfg.Gemini.Model != "gemini-1.5-pro" {
		t.Fatalf("unexpected gemini model %q", cfg.Gemini.Model)
	}
	if cfg.RedisEnabled() {
		t.Fatal("expected redis disabled without host")
	}
	if got := cfg.Database.GetDSN(); got != "host=localhost port=5432 user=health password= dbname=healthlog sslmode=disable" {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestFromViper_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(v *viper.Viper)
		wantErr string
	}{
		{name: "missing db host", mutate: func(v *viper.Viper) { v.Set("DB_HOST", "") }, wantErr: "database host"},
		{name: "missing db user", mutate: func(v *viper.Viper) { v.Set("DB_USER", "") }, wantErr: "database user"},
		{name: "missing db name", mutate: func(v *viper.Viper) { v.Set("DB_NAME", "") }, wantErr: "database name"},
		{name: "short secret", mutate: func(v *viper.Viper) { v.Set("JWT_ACCESS_SECRET", "short") }, wantErr: "at least 32"},
		{name: "zero expiry", mutate: func(v *viper.Viper) { v.Set("JWT_ACCESS_EXPIRY_DAY", 0) }, wantErr: "expiry"},
		{name: "bad port", mutate: func(v *viper.Viper) { v.Set("SERVER_PORT", 70000) }, wantErr: "out of range"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			v := validViper()
			testCase.mutate(v)
			_, err := FromViper(v)
			if err == nil || !strings.Contains(err.Error(), testCase.wantErr) {
				t.Fatalf("expected error containing %q, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}
	if got := cfg.GetAddr(); got != "cache:6380" {
		t.Fatalf("expected cache:6380, got %q", got)
	}
}
