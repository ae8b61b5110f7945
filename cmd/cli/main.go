// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/carterperez-dev/cskit/internal/config"
	"github.com/carterperez-dev/cskit/internal/kv"
	"github.com/carterperez-dev/cskit/internal/product"
)

const usage = `usage: cskit-cli [-config path] <command> [flags]

commands:
  seed   write the default catalog (-force overwrites an existing one)
  dump   print every stored key as JSON
  reset  remove stored keys (-key limits it to one key)
`

var errUsage = errors.New("invalid usage")

func main() {
	fs := flag.NewFlagSet("cskit-cli", flag.ContinueOnError)
	configPath := fs.String("config", "config.yaml", "path to config file")
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err := run(context.Background(), *configPath, fs.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store, err := kv.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck // process is exiting

	return dispatch(ctx, store, args, out)
}

func dispatch(ctx context.Context, store kv.Store, args []string, out io.Writer) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "seed":
		fs := flag.NewFlagSet("seed", flag.ContinueOnError)
		force := fs.Bool("force", false, "overwrite the stored catalog")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		return seed(ctx, store, *force, out)

	case "dump":
		return dump(ctx, store, out)

	case "reset":
		fs := flag.NewFlagSet("reset", flag.ContinueOnError)
		key := fs.String("key", "", "only remove this key")
		if err := fs.Parse(rest); err != nil {
			return errUsage
		}
		return reset(ctx, store, *key, out)

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func seed(ctx context.Context, store kv.Store, force bool, out io.Writer) error {
	repo := product.NewRepository(store)

	if force {
		if err := repo.Save(ctx, product.DefaultCatalog()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(out, "catalog reset to %d products\n", len(product.DefaultCatalog()))
		return err
	}

	products, err := product.NewService(repo).List(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "catalog has %d products\n", len(products))
	return err
}

// dump prints each stored blob as raw JSON when it parses and as a string
// otherwise.
func dump(ctx context.Context, store kv.Store, out io.Writer) error {
	keys, err := store.Keys(ctx)
	if err != nil {
		return err
	}

	snapshot := make(map[string]any, len(keys))
	for _, key := range keys {
		v, found, err := store.Get(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if json.Valid([]byte(v)) {
			snapshot[key] = json.RawMessage(v)
		} else {
			snapshot[key] = v
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(snapshot)
}

func reset(ctx context.Context, store kv.Store, key string, out io.Writer) error {
	keys := kv.KnownKeys
	if key != "" {
		if !slices.Contains(kv.KnownKeys, key) {
			return fmt.Errorf("unknown key %q: %w", key, errUsage)
		}
		keys = []string{key}
	}

	ops := make([]kv.Op, 0, len(keys))
	for _, k := range keys {
		ops = append(ops, kv.RemoveOp(k))
	}
	if err := kv.Apply(ctx, store, ops...); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "removed %d keys\n", len(keys))
	return err
}
