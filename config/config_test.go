package config

import (
	"testing"
	"time"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"NAME": "value", "EMPTY": ""}

	if got := GetString(cfg, "NAME", "fallback"); got != "value" {
		t.Errorf("GetString(NAME) = %q", got)
	}
	if got := GetString(cfg, "EMPTY", "fallback"); got != "" {
		t.Errorf("GetString(EMPTY) = %q, a present empty value wins over the default", got)
	}
	if got := GetString(cfg, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q", got)
	}
	if got := GetString(nil, "NAME", "fallback"); got != "fallback" {
		t.Errorf("GetString(nil map) = %q", got)
	}
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "BAD": "eighty"}

	if got := GetInt(cfg, "PORT", 3000); got != 8080 {
		t.Errorf("GetInt(PORT) = %d", got)
	}
	if got := GetInt(cfg, "BAD", 3000); got != 3000 {
		t.Errorf("GetInt(BAD) = %d, unparseable values fall back", got)
	}
	if got := GetInt(cfg, "MISSING", 3000); got != 3000 {
		t.Errorf("GetInt(MISSING) = %d", got)
	}
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "yep"}

	if !GetBool(cfg, "ON", false) {
		t.Error("GetBool(ON) = false")
	}
	if GetBool(cfg, "OFF", true) {
		t.Error("GetBool(OFF) = true")
	}
	if !GetBool(cfg, "BAD", true) {
		t.Error("GetBool(BAD) should fall back to the default")
	}
}

func TestGetDuration(t *testing.T) {
	cfg := map[string]string{"TTL": "45m", "SECONDS": "30", "BAD": "soon"}

	if got := GetDuration(cfg, "TTL", time.Hour); got != 45*time.Minute {
		t.Errorf("GetDuration(TTL) = %v", got)
	}
	if got := GetDuration(cfg, "SECONDS", time.Hour); got != 30*time.Second {
		t.Errorf("GetDuration(SECONDS) = %v, bare integers are seconds", got)
	}
	if got := GetDuration(cfg, "BAD", time.Hour); got != time.Hour {
		t.Errorf("GetDuration(BAD) = %v", got)
	}
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		entry, key, value string
	}{
		{"KEY=value", "KEY", "value"},
		{"KEY=a=b", "KEY", "a=b"},
		{"KEY", "KEY", ""},
	} {
		key, value := split(tc.entry)
		if key != tc.key || value != tc.value {
			t.Errorf("split(%q) = (%q, %q), want (%q, %q)", tc.entry, key, value, tc.key, tc.value)
		}
	}
}
