// Package consumer implements the programs that consume the shared symbols in
// pkg/types. Each consumer is independent: it builds its own containers,
// optionally implements types.Processor, and writes a plain-text report.
package consumer
