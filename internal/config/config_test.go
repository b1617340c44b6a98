package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "https://backend.mama-hieam.shop/api/v1" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("APITimeout = %v", cfg.APITimeout)
	}
	if cfg.CartTTL != 12*time.Hour {
		t.Fatalf("CartTTL = %v", cfg.CartTTL)
	}
	if cfg.ConfirmationGrace != time.Second {
		t.Fatalf("ConfirmationGrace = %v", cfg.ConfirmationGrace)
	}
	if cfg.AllowedOrigins != nil {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("API_BASE_URL", "http://localhost:4000/api/v1")
	t.Setenv("CART_TTL_HOURS", "6")
	t.Setenv("API_TIMEOUT_SECONDS", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example, https://admin.example ,")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "http://localhost:4000/api/v1" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.CartTTL != 6*time.Hour {
		t.Fatalf("CartTTL = %v", cfg.CartTTL)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Fatalf("APITimeout = %v", cfg.APITimeout)
	}
	want := []string{"https://shop.example", "https://admin.example"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CART_TTL_HOURS", "half a day")
	t.Setenv("API_TIMEOUT_SECONDS", "")

	cfg := FromEnv()
	if cfg.CartTTL != 12*time.Hour {
		t.Fatalf("CartTTL = %v", cfg.CartTTL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Fatalf("APITimeout = %v", cfg.APITimeout)
	}
}
