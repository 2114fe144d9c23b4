// Copyright (c) 2026 The NDN-microservices Authors
// SPDX-License-Identifier: MIT

// Command cstree exercises the named tree: it builds a tree from a names
// file or from generated names, hammers it with exact, LPM and first-match
// probes and reports sizes and timings. Optionally it dumps the final tree
// as a diagram or as JSON.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DOCTOR-ANR/NDN-microservices/internal/config"
	"github.com/DOCTOR-ANR/NDN-microservices/namedtree"
	"github.com/DOCTOR-ANR/NDN-microservices/ndn"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	dump := flag.String("dump", "", "override dump format: tree or json")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if *dump != "" {
		cfg.Dump = *dump
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(lvl)
	} else {
		logger.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
	}

	names, err := loadNames(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("load names")
	}
	logger.Info().Int("names", len(names)).Msg("building tree")

	tree := namedtree.New[int]()

	start := time.Now()
	for i, name := range names {
		v := i
		tree.Insert(name, &v, true)
	}
	logger.Info().
		Int("size", tree.Size()).
		Int("populated", tree.PopulatedCount()).
		Dur("elapsed", time.Since(start)).
		Msg("tree built")

	if cfg.Probes > 0 {
		runProbes(logger, cfg, tree, names)
	}

	switch cfg.Dump {
	case "tree":
		if err := tree.Fprint(os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("dump tree")
		}
	case "json":
		buf, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			logger.Fatal().Err(err).Msg("dump json")
		}
		fmt.Println(string(buf))
	}
}

// loadNames reads one name URI per line from the configured file, or
// generates cfg.Count pseudo-random names.
func loadNames(cfg *config.Config) ([]ndn.Name, error) {
	if cfg.NamesFile == "" {
		return generateNames(cfg), nil
	}

	f, err := os.Open(cfg.NamesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []ndn.Name

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, err := ndn.ParseName(line)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}
		names = append(names, name)
	}

	return names, scanner.Err()
}

// generateNames builds cfg.Count names over a small component alphabet so
// prefixes overlap and the tree gets a realistic shape.
func generateNames(cfg *config.Config) []ndn.Name {
	prng := rand.New(rand.NewSource(cfg.Seed))

	names := make([]ndn.Name, 0, cfg.Count)
	for range cfg.Count {
		names = append(names, randomName(prng, cfg.Depth))
	}

	return names
}

func randomName(prng *rand.Rand, maxDepth int) ndn.Name {
	depth := 1 + prng.Intn(maxDepth)

	name := ndn.Name{}
	for range depth {
		comp := fmt.Sprintf("c%02d", prng.Intn(16))
		name = name.Append(ndn.GenericComponent(comp))
	}

	return name
}

func runProbes(logger zerolog.Logger, cfg *config.Config, tree *namedtree.Tree[int], names []ndn.Name) {
	prng := rand.New(rand.NewSource(cfg.Seed + 1))

	var exactHits, lpmHits, firstHits int

	start := time.Now()
	for i := range cfg.Probes {
		name := names[prng.Intn(len(names))]

		switch i % 3 {
		case 0:
			if tree.Find(name) != nil {
				exactHits++
			}
		case 1:
			// overshoot the query to make the LPM work for it
			probe := name.Append(ndn.GenericComponent("zz"))
			if _, val := tree.FindLastUntil(probe); val != nil {
				lpmHits++
			}
		case 2:
			if _, _, ok := tree.FindFirstFrom(name.Prefix(1), cfg.Rightmost); ok {
				firstHits++
			}
		}
	}

	logger.Info().
		Int("probes", cfg.Probes).
		Int("exact_hits", exactHits).
		Int("lpm_hits", lpmHits).
		Int("first_hits", firstHits).
		Dur("elapsed", time.Since(start)).
		Msg("probes done")
}
