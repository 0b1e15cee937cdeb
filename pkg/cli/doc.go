// Package cli implements the datagen command-line interface.
//
// # Overview
//
// datagen reads a small configuration of wood families and writes the
// cutting-board recipe documents of the mangocompatdelight datapack.
//
// # Commands
//
// generate - Write recipe documents:
//
//	datagen generate [--config FILE] [--output DIR] [--checksums] [--format yaml|json|toml|table]
//	                 [--report FILE] [--metrics-file FILE] [--publish oci://REGISTRY/REPO[:TAG]]
//	                 [--plain-http] [--insecure-tls] [--watch]
//
// Loads the configuration, builds one recipe per configured log, writes each
// as indented JSON under DIR/<namespace>/recipe/ and prints a report. With
// --publish the output root is pushed as an OCI artifact; the tag defaults to
// the pack version and then to "latest". With --watch the command keeps
// running and regenerates on every change to the configuration file.
//
// list - Dry run:
//
//	datagen list [--config FILE] [--output DIR] [--format yaml|json|toml|table]
//
// Prints every record id and the path it would be written to.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	DATAGEN_CONFIG     Default for --config (src/tool/data.toml)
//	DATAGEN_OUTPUT     Default for --output (src/main/data)
//	LOG_LEVEL          Logging verbosity
//	SOURCE_DATE_EPOCH  Fixed creation time for published artifacts
//
// # Exit Codes
//
//	0  Success
//	1  Any failure; the error code and context are logged to stderr
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mangocompatdelight/datagen/pkg/cli.version=1.0.0'"
package cli
