// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/artsapi/internal/artsapi"
	"github.com/tomtom215/artsapi/internal/models/arts"
)

// pageFlags registers --page and --page-size on cmd.
func pageFlags(cmd *cobra.Command, p *arts.PageParams) {
	cmd.Flags().IntVar(&p.Page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "items per page")
}

// groupCmd is a parent command that only prints its help.
func groupCmd(use, short string, children ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(children...)
	return cmd
}

func (a *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend liveness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Health.Check(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
}

func (a *cli) userCmd() *cobra.Command {
	var address string
	nonce := &cobra.Command{
		Use:   "nonce",
		Short: "Fetch the login message for a wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checksummed, err := artsapi.ChecksumAddress(address)
			if err != nil {
				return err
			}
			resp, err := a.client.User.Nonce(commandContext(cmd), arts.NonceParams{Address: checksummed})
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	nonce.Flags().StringVar(&address, "address", "", "wallet address")
	_ = nonce.MarkFlagRequired("address")

	info := &cobra.Command{
		Use:   "info",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.User.Info(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	asset := &cobra.Command{
		Use:   "asset",
		Short: "Show points, token balances and holdings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.User.Asset(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	return groupCmd("user", "User account commands", nonce, info, asset)
}

func (a *cli) workCmd() *cobra.Command {
	var params arts.WorkListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List published works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Work.List(commandContext(cmd), params)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	pageFlags(list, &params.PageParams)
	list.Flags().Int64Var(&params.CategoryID, "category", 0, "category ID")
	list.Flags().StringVar(&params.Keyword, "keyword", "", "search keyword")
	list.Flags().StringVar(&params.Sort, "sort", "", "sort order")
	list.Flags().StringArrayVar(&params.Tags, "tag", nil, "tag filter, repeatable")

	detail := &cobra.Command{
		Use:   "detail <id>",
		Short: "Show one work",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := a.client.Work.Detail(commandContext(cmd), id)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List work categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Work.Categories(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	return groupCmd("work", "Artwork commands", list, detail, categories)
}

func (a *cli) pointsCmd() *cobra.Command {
	balance := &cobra.Command{
		Use:   "balance",
		Short: "Show the points balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Points.Balance(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	var params arts.ProductListParams
	products := &cobra.Command{
		Use:   "products",
		Short: "List redeemable products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Points.Products(commandContext(cmd), params)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	pageFlags(products, &params.PageParams)
	products.Flags().StringVar(&params.Category, "category", "", "product category")

	return groupCmd("points", "Points and redemption commands", balance, products)
}

func (a *cli) nodeCmd() *cobra.Command {
	var params arts.NodeListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List mining nodes for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Node.List(commandContext(cmd), params)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	pageFlags(list, &params.PageParams)
	list.Flags().IntVar(&params.Level, "level", 0, "node level")

	overview := &cobra.Command{
		Use:   "mining-overview",
		Short: "Show mining totals for owned nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Node.Mining.Overview(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	return groupCmd("node", "Mining node commands", list, overview)
}

func (a *cli) channelCmd() *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Channel.List(commandContext(cmd))
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	var params arts.BannerParams
	banners := &cobra.Command{
		Use:   "banners",
		Short: "List banners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Channel.Banners(commandContext(cmd), params)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	banners.Flags().StringVar(&params.Position, "position", "", "banner position")

	return groupCmd("channel", "Channel content commands", list, banners)
}

func (a *cli) ticketCmd() *cobra.Command {
	var params arts.TicketListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List tickets on sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Ticket.List(commandContext(cmd), params)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	pageFlags(list, &params.PageParams)
	list.Flags().StringVar(&params.Status, "status", "", "ticket status")
	list.Flags().StringVar(&params.Keyword, "keyword", "", "search keyword")

	detail := &cobra.Command{
		Use:   "detail <id>",
		Short: "Show one ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := a.client.Ticket.Detail(commandContext(cmd), id)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}

	return groupCmd("ticket", "Ticket commands", list, detail)
}

func (a *cli) staticCmd() *cobra.Command {
	var out string
	cover := &cobra.Command{
		Use:   "cover <ticket-id>",
		Short: "Download a ticket cover image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			blob, err := a.client.Static.TicketCover(commandContext(cmd), id)
			if err != nil {
				return err
			}
			return a.writeBlob(blob, out)
		},
	}
	cover.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")

	return groupCmd("static", "Public asset downloads", cover)
}

func (a *cli) fileCmd() *cobra.Command {
	var name string
	upload := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.client.File.Upload(commandContext(cmd), artsapi.RemoteURI{URI: args[0]}, name)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	upload.Flags().StringVar(&name, "name", "", "filename sent to the server (default: base name of path)")

	return groupCmd("file", "File upload commands", upload)
}

func (a *cli) adminCmd() *cobra.Command {
	var (
		params arts.HoldingSnapshotParams
		out    string
	)
	export := &cobra.Command{
		Use:   "export",
		Short: "Download a holder snapshot for a ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			blob, err := a.client.Admin.TicketStats.ExportHoldingSnapshot(commandContext(cmd), params)
			if err != nil {
				return err
			}
			return a.writeBlob(blob, out)
		},
	}
	export.Flags().Int64Var(&params.TicketID, "ticket-id", 0, "ticket ID")
	export.Flags().Int64Var(&params.SnapshotAt, "snapshot-at", 0, "snapshot time as a Unix timestamp (default: now)")
	export.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")
	_ = export.MarkFlagRequired("ticket-id")

	stats := groupCmd("ticket-stats", "Ticket statistics", export)
	return groupCmd("admin", "Back-office commands", stats)
}

func (a *cli) tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Decode the configured session token without verifying it",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			token := a.client.Token()
			if token == "" {
				return fmt.Errorf("no session token configured (set ARTS_TOKEN or --token)")
			}
			info, err := artsapi.InspectToken(token)
			if err != nil {
				return err
			}
			return a.printJSON(struct {
				*artsapi.TokenInfo
				Expired bool `json:"expired"`
			}{info, info.Expired(time.Now())})
		},
	}
}
