package telemetry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	envEndpoint    = "OTPFIELD_OTEL_ENDPOINT"
	envInsecure    = "OTPFIELD_OTEL_INSECURE"
	envService     = "OTPFIELD_OTEL_SERVICE"
	envDialTimeout = "OTPFIELD_OTEL_DIAL_TIMEOUT"
	envHeaders     = "OTPFIELD_OTEL_HEADERS"

	defaultServiceName = "otpfield"
)

type Config struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
	Version     string
	DialTimeout time.Duration
	Headers     map[string]string
}

func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != ""
}

// ConfigFromEnv reads OTPFIELD_OTEL_* through getenv. Malformed values are
// ignored and leave the field at its default.
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := Config{ServiceName: defaultServiceName}
	if getenv == nil {
		return cfg
	}
	cfg.Endpoint = strings.TrimSpace(getenv(envEndpoint))
	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(envInsecure))); err == nil {
		cfg.Insecure = v
	}
	if name := strings.TrimSpace(getenv(envService)); name != "" {
		cfg.ServiceName = name
	}
	if d, err := time.ParseDuration(strings.TrimSpace(getenv(envDialTimeout))); err == nil {
		cfg.DialTimeout = d
	}
	if headers, err := ParseHeaders(getenv(envHeaders)); err == nil {
		cfg.Headers = headers
	}
	return cfg
}

// ParseHeaders parses "k=v, k2=v2". Blank input yields nil.
func ParseHeaders(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q", part)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
