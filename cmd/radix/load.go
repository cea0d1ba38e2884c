package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/radix"
	"github.com/js-arias/radix/internal/cmdlogger"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// load applies the global flags and reads every input file into a tree.
// Files are read concurrently.
func (e *env) load(ctx context.Context, cmd *cli.Command) (*radix.Trie[string], error) {
	level, err := cmdlogger.ParseLevel(cmd.String("verbosity"))
	if err != nil {
		return nil, err
	}
	e.logs.SetLevel(level)

	files := cmd.StringSlice("file")
	if len(files) == 0 {
		return nil, errors.New("no input files, use --file")
	}

	tree := radix.NewLocked[string]()
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range files {
		g.Go(func() error {
			n, err := e.loadFile(ctx, tree, name)
			if err != nil {
				return fmt.Errorf("loading %s: %w", name, err)
			}
			e.logger.Debug(fmt.Sprintf("loaded %d keys from %s", n, name))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.logger.Debug(fmt.Sprintf("tree holds %d keys", tree.Len()))

	return tree.Snapshot(), nil
}

func (e *env) loadFile(ctx context.Context, tree *radix.Locked[string], name string) (int, error) {
	var r io.Reader
	if name == "-" {
		r = e.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		r = f
	}

	return readKeys(ctx, r, tree)
}

// readKeys inserts every key of r in tree and returns how many lines held
// a key.
func readKeys(ctx context.Context, r io.Reader, tree *radix.Locked[string]) (int, error) {
	count := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, _ := strings.Cut(line, "\t")
		tree.Insert(key, value)
		count++
	}

	return count, sc.Err()
}
