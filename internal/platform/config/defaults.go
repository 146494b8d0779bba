package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"groups.enabled":                                false,
		"groups.client.base_url":                        "http://localhost:8081",
		"groups.client.timeout":                         "30s",
		"groups.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"groups.client.retry.initial_interval":          "100ms",
		"groups.client.retry.max_interval":              "10s",
		"groups.client.retry.multiplier":                defaultRetryMultiplier,
		"groups.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"groups.client.circuit_breaker.timeout":         "30s",
		"groups.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"groups.client.rate_limit.requests_per_second":  0,
		"groups.client.rate_limit.burst":                1,

		"store.fixtures": "",

		"clone.clear_unresolved_blocks": false,

		SettingsNamespace + ".text_to_prepend_to_title": "",
		SettingsNamespace + ".clone_status":             false,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "quick-node-clone",
	}
}
