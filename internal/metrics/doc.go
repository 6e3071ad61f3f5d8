// Package metrics records run statistics in a private Prometheus registry
// and exports them in the text exposition format, either to a file for the
// node_exporter textfile collector or through any prometheus.Gatherer
// consumer.
package metrics
