package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{Port: 0},
		Corpus: CorpusConfig{Path: "data/quran.json"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingCorpusPath(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing corpus path")
	}
}

func TestValidate_NegativeRateLimit(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{Port: 8080},
		Corpus:    CorpusConfig{Path: "data/quran.json"},
		RateLimit: RateLimitConfig{RequestsPerSecond: -1},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative rate limit")
	}
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := Config{
		HTTP:       HTTPConfig{Port: 8080},
		Corpus:     CorpusConfig{Path: "data/quran.json"},
		Similarity: SimilarityConfig{Workers: -2},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative similarity workers")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Cache.TTLSec != 24*60*60 {
		t.Errorf("expected TTLSec=86400, got %d", cfg.Cache.TTLSec)
	}
	if cfg.Cache.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Cache.ReadinessTimeout)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:  HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Cache: CacheConfig{TTLSec: 600, ReadinessTimeout: 15},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Cache.TTLSec != 600 {
		t.Errorf("expected TTLSec=600, got %d", cfg.Cache.TTLSec)
	}
}

func TestApplyDefaults_RateLimitBurst(t *testing.T) {
	cfg := Config{RateLimit: RateLimitConfig{RequestsPerSecond: 5}}
	cfg.ApplyDefaults()

	if cfg.RateLimit.Burst != 10 {
		t.Errorf("expected Burst=10, got %d", cfg.RateLimit.Burst)
	}
}

func TestRequireCompleteCorpus_Default(t *testing.T) {
	cfg := Config{}
	if !cfg.RequireCompleteCorpus() {
		t.Error("expected complete corpus required by default")
	}

	f := false
	cfg.Corpus.RequireComplete = &f
	if cfg.RequireCompleteCorpus() {
		t.Error("expected explicit false to disable the completeness check")
	}
}

func TestCacheEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.CacheEnabled() {
		t.Error("expected cache disabled with no addrs")
	}

	cfg.Cache.Addrs = []string{"localhost:6379"}
	if !cfg.CacheEnabled() {
		t.Error("expected cache enabled with addrs")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("VERSEREF_TEST_PORT", "9090")

	in := []byte("port: ${VERSEREF_TEST_PORT}\npath: ${VERSEREF_TEST_MISSING:-data/quran.json}\n")
	got := string(expandEnvVars(in))
	want := "port: 9090\npath: data/quran.json\n"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
