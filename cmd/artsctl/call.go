// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/artsapi/internal/artsapi"
)

// callCmd sends an arbitrary request through the client and prints the envelope.
func (a *cli) callCmd() *cobra.Command {
	var (
		queries []string
		data    string
		auth    string
	)

	cmd := &cobra.Command{
		Use:   "call <METHOD> <PATH>",
		Short: "Send a raw request and print the envelope",
		Example: `  artsctl call GET /arts/work/list --query page=1 --query tags=a --query tags=b
  artsctl call POST /arts/work/like --data '{"workId":12}' --auth required`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parseQueryFlags(queries)
			if err != nil {
				return err
			}

			opts := artsapi.RequestOptions{
				Auth:  artsapi.AuthMode(strings.ToLower(auth)),
				Query: query,
			}
			if data != "" {
				if !json.Valid([]byte(data)) {
					return fmt.Errorf("--data is not valid JSON")
				}
				opts.Body = json.RawMessage(data)
			}

			resp, err := artsapi.RequestJSON[any](commandContext(cmd), a.client, strings.ToUpper(args[0]), args[1], opts)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	cmd.Flags().StringArrayVar(&queries, "query", nil, "query parameter as key=value, repeatable")
	cmd.Flags().StringVar(&data, "data", "", "JSON request body")
	cmd.Flags().StringVar(&auth, "auth", string(artsapi.AuthOptional), "auth mode: required, optional or none")

	return cmd
}

// parseQueryFlags turns key=value pairs into a Query. Repeated keys collect
// into a list.
func parseQueryFlags(pairs []string) (artsapi.Query, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	q := artsapi.Query{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --query %q: want key=value", pair)
		}
		switch existing := q[key].(type) {
		case nil:
			q[key] = value
		case string:
			q[key] = []string{existing, value}
		case []string:
			q[key] = append(existing, value)
		}
	}
	return q, nil
}
