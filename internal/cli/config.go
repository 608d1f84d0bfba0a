package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/geoknoesis/rdf-commons/rdf"
)

// Config is the rdfstat configuration file. Flags override every field.
//
//	backend = "indexed"
//	output = "yaml"
//	strict = true
//	salt = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
type Config struct {
	// Backend is one of simple, indexed or jsonld.
	Backend string `toml:"backend"`
	// Output is text or yaml.
	Output string `toml:"output"`
	// Strict enables strict IRI and language tag validation.
	Strict bool `toml:"strict"`
	// Salt fixes the blank node salt, making blank node references
	// reproducible across runs.
	Salt string `toml:"salt"`
	// Predicate, when set, counts the quads using it.
	Predicate string `toml:"predicate"`
}

func defaultConfig() Config {
	return Config{Backend: "indexed", Output: "text"}
}

// loadConfig reads a TOML file over the defaults. Unknown keys are an
// error so typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, ok := backends[c.Backend]; !ok {
		return fmt.Errorf("unknown backend %q (want one of %s)", c.Backend, strings.Join(backendNames(), ", "))
	}
	switch c.Output {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown output %q (want text or yaml)", c.Output)
	}
	if c.Salt != "" {
		if _, err := uuid.Parse(c.Salt); err != nil {
			return fmt.Errorf("invalid salt %q: %w", c.Salt, err)
		}
	}
	return nil
}

// options returns the factory options for c. validate must have passed.
func (c Config) options(logger *log.Logger) []rdf.Option {
	opts := []rdf.Option{rdf.OptLogger(logger)}
	if c.Strict {
		opts = append(opts, rdf.OptStrictValidation())
	}
	if c.Salt != "" {
		opts = append(opts, rdf.OptSalt(uuid.MustParse(c.Salt)))
	}
	return opts
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
