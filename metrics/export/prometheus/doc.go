// Package prometheus provides Prometheus collectors for mujairAuth metrics.
//
// [NewPrometheusExporter] accepts an [mujairAuth.Engine] and exposes an [http.Handler]
// that renders all mujairAuth counters and histograms in Prometheus text exposition format.
// Counter names are prefixed mujairauth_*_total; the single histogram is
// mujairauth_validate_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
