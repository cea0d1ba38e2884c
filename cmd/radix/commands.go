package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/js-arias/radix"
	"github.com/urfave/cli/v3"
)

func prefixCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "prefix",
		Usage:     "prints the keys that start with each PREFIX, or every key",
		ArgsUsage: "[PREFIX...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tree, err := e.load(ctx, cmd)
			if err != nil {
				return err
			}

			prefixes := cmd.Args().Slice()
			if len(prefixes) == 0 {
				prefixes = []string{""}
			}

			var entries []radix.Entry[string]
			for _, p := range prefixes {
				found := tree.StartsWith(p)
				if len(found) == 0 {
					e.logger.Warn(fmt.Sprintf("no keys start with %q", p))
				}
				entries = append(entries, found...)
			}
			entriesTable(e.stdout, entries)

			return nil
		},
	}
}

func listCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "lists the keys under PREFIX, grouping them by delimiter",
		ArgsUsage: "[PREFIX]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "delimiter",
				Usage: "group keys that contain `DELIM` after the prefix",
				Value: "/",
			},
			&cli.StringFlag{
				Name:  "marker",
				Usage: "list only items after `KEY`",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "return at most `N` keys and common prefixes, 0 for no limit",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 1 {
				return fmt.Errorf("list takes a single prefix, got %d", cmd.NArg())
			}
			limit := cmd.Int("limit")
			if limit < 0 {
				return fmt.Errorf("invalid limit %d", limit)
			}

			tree, err := e.load(ctx, cmd)
			if err != nil {
				return err
			}

			l := tree.List(cmd.Args().First(), radix.ListOptions{
				Delimiter: cmd.String("delimiter"),
				Marker:    cmd.String("marker"),
				Limit:     int(limit),
			})

			t := newTable(e.stdout)
			t.AppendHeader(table.Row{"Key", "Value"})
			for _, p := range l.CommonPrefixes {
				t.AppendRow(table.Row{p, ""})
			}
			for _, en := range l.Entries {
				t.AppendRow(table.Row{en.Key, en.Value})
			}
			t.Render()

			if l.Truncated {
				e.logger.Info(fmt.Sprintf("listing truncated, continue with --marker %s", l.NextMarker))
			}

			return nil
		},
	}
}

func dumpCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "prints the edges of the tree",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tree, err := e.load(ctx, cmd)
			if err != nil {
				return err
			}

			return tree.Dump(e.stdout)
		},
	}
}

func statsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "prints statistics about the shape of the tree",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tree, err := e.load(ctx, cmd)
			if err != nil {
				return err
			}

			st := tree.Stats()
			t := newTable(e.stdout)
			t.AppendRows([]table.Row{
				{"Keys", tree.Len()},
				{"Nodes", st.Nodes},
				{"Max depth", st.MaxDepth},
			})
			t.Render()

			return nil
		},
	}
}
