// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

// Package main is artsctl, a command line client for the Arts backend.
//
// artsctl wraps the typed client in internal/artsapi. Every command prints
// the backend's response envelope as indented JSON on stdout; failures are
// printed on stderr and exit with status 1.
//
// # Configuration
//
// Settings are layered, highest priority last:
//
//  1. Built-in defaults
//  2. YAML file (--config, CONFIG_PATH, ./artsctl.yaml, /etc/artsctl/config.yaml)
//  3. Environment variables, after loading ./.env (--env-file)
//  4. Command line flags (--base-url, --token, --lang, --timeout)
//
// Environment variables:
//
//	ARTS_BASE_URL    - Backend origin, optionally ending in /arts (default: http://localhost:8080)
//	ARTS_TOKEN       - Session token sent in the Token header
//	ARTS_LANGUAGE    - Accept-Language sent with every request
//	ARTS_TIMEOUT     - Per-request timeout (default: 30s, 0 disables)
//	LOG_LEVEL        - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT       - json or console (default: json)
//
// # Example Usage
//
//	artsctl health
//	artsctl work list --keyword ink --tag landscape --page-size 5
//	ARTS_TOKEN=... artsctl user asset
//	artsctl static cover 8 -o cover.png
//	artsctl call GET /arts/channel/banners --query position=home --auth none
//	artsctl --dump-metrics ticket list
package main

import (
	"fmt"
	"io"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
