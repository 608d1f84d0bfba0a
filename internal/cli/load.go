package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/rdf-commons/rdf"
	"github.com/geoknoesis/rdf-commons/rdf/indexed"
	"github.com/geoknoesis/rdf-commons/rdf/jsonld"
	"github.com/geoknoesis/rdf-commons/rdf/simple"
)

// backends maps backend names to factory constructors.
var backends = map[string]func(...rdf.Option) rdf.Factory{
	"simple":  func(opts ...rdf.Option) rdf.Factory { return simple.NewFactory(opts...) },
	"indexed": func(opts ...rdf.Option) rdf.Factory { return indexed.NewFactory(opts...) },
	"jsonld":  func(opts ...rdf.Option) rdf.Factory { return jsonld.NewFactory(opts...) },
}

type loadOpts struct {
	config    string
	backend   string
	output    string
	predicate string
	strict    bool
}

func (c *CLI) loadCommand() *cobra.Command {
	var opts loadOpts

	cmd := &cobra.Command{
		Use:   "load FILE.nq",
		Short: "Load an N-Quads file and print dataset statistics",
		Long: `Load parses an N-Quads file, copies every quad into the chosen backend
and reports the size of the dataset and of its graph views.`,
		Example: `  rdfstat load data.nq
  rdfstat load data.nq --backend simple --output yaml
  rdfstat load data.nq --predicate http://xmlns.com/foaf/0.1/name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return runLoad(ctx, args[0], cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "", "backend: simple, indexed or jsonld")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: text or yaml")
	cmd.Flags().StringVar(&opts.predicate, "predicate", "", "count quads with this predicate IRI")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "strict IRI and language tag validation")

	return cmd
}

// resolve merges the configuration file, if any, with the flags that were
// set explicitly.
func (o loadOpts) resolve(cmd *cobra.Command) (Config, error) {
	cfg := defaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = loadConfig(o.config); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("predicate") {
		cfg.Predicate = o.predicate
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	return cfg, cfg.validate()
}

func runLoad(ctx context.Context, path string, cfg Config, w io.Writer) error {
	logger := loggerFromContext(ctx)
	opts := cfg.options(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	parser := jsonld.NewFactory(opts...)
	src, err := parser.ParseNQuads(string(data), jsonld.ReadOnly())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()
	prog.done(fmt.Sprintf("Parsed %d quads", src.Size()))

	if err := ctx.Err(); err != nil {
		return err
	}

	factory := backends[cfg.Backend](opts...)
	var ds rdf.Dataset = src
	if cfg.Backend != "jsonld" {
		if ds, err = factory.NewDataset(); err != nil {
			return err
		}
		defer ds.Close()
		prog = newProgress(logger)
		n, err := rdf.CopyQuads(src.Stream(), rdf.DatasetSink(ds))
		if err != nil {
			return fmt.Errorf("copy into %s backend: %w", cfg.Backend, err)
		}
		prog.done(fmt.Sprintf("Copied %d quads into %s backend", n, cfg.Backend))
	}

	var predicate rdf.IRI
	if cfg.Predicate != "" {
		if predicate, err = factory.IRI(cfg.Predicate); err != nil {
			return err
		}
	}
	stats, err := collectStats(ds, predicate)
	if err != nil {
		return err
	}
	stats.File = filepath.Base(path)
	stats.Backend = cfg.Backend
	return writeStats(w, stats, cfg.Output)
}
