// Package types defines the shared symbols every sharedkit consumer imports:
// the generic Container, the Processor contract, the Color enumeration, the
// Greet and SampleItems helpers, and the Tally and Store contracts used by
// the tally backends.
package types
