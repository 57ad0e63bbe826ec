//go:build mage

// Package main provides build targets for the sharedkit project using Mage.
//
// Usage:
//
//	mage build             Compile sharedkit binary to bin/
//	mage demo              Build, then run every consumer
//	mage test:all          Run all tests (unit + integration)
//	mage test:unit         Run only unit tests (exclude tests/)
//	mage test:integration  Run only integration tests (builds first)
//	mage test:cover        Run unit tests with a coverage profile
//	mage lint              Run golangci-lint
//	mage clean             Remove build artifacts
//	mage install           Install sharedkit to GOPATH/bin
//	mage stats             Print Go LOC as a JSON record
package main

const (
	binGo      = "go"
	binaryName = "sharedkit"
	binaryDir  = "bin"
	cmdDir     = "./cmd/sharedkit"
	coverFile  = "coverage.out"
)
