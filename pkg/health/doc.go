// Package health provides liveness and readiness probes for the localize
// HTTP server.
//
// Checks are plain func(context.Context) error values, so the service's own
// check plugs in directly:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"localization": svc.Healthcheck(),
//	}, health.WithTimeout(2*time.Second)))
//
// Handlers answer "OK" or "Service Unavailable" as plain text, or the full
// [Response] as JSON when requested with ?format=json or an
// "Accept: application/json" header:
//
//	{"status":"unhealthy","checks":{"localization":{"status":"unhealthy","error":"..."}}}
//
// [Run] executes the same checks outside HTTP, e.g. from a CLI.
package health
