// Package metrics exports vehicle events as Prometheus counters.
package metrics
