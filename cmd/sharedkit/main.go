// Package main provides the sharedkit CLI.
package main

import "github.com/mesh-intelligence/sharedkit/internal/cli"

func main() {
	cli.Execute()
}
