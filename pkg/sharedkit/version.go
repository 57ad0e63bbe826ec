// Package sharedkit holds project-wide metadata for the sharedkit module.
package sharedkit

// Version is the sharedkit release version.
const Version = "0.1.0"

// ModulePath is the Go module path of sharedkit.
const ModulePath = "github.com/mesh-intelligence/sharedkit"
