// Package cli wires together the Cobra command tree for the scoreboard
// binary.
//
// It defines the root command and its subcommands (serve, version), builds
// the service graph from environment configuration, and returns
// deterministic exit codes.
package cli
