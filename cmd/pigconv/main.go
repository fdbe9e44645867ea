// Package main implements pigconv, a one-shot converter between the
// JSON-LD interchange form and the internal form of Product Information
// Graph documents. It reads one item document, runs it through the model's
// validation pipeline and writes the converted (or validated) result.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/config"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/message"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/pig"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "pigconv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	model, err := buildModel(cliCfg, logger)
	if err != nil {
		return err
	}

	itemType := pig.ItemType(cliCfg.ItemType)
	if !itemType.IsValid() {
		return fmt.Errorf("unknown item type: %s", cliCfg.ItemType)
	}

	doc, err := readDocument(cliCfg.InputPath)
	if err != nil {
		return err
	}

	item := model.NewItem(itemType)
	st, out := convert(item, doc, cliCfg.Direction)

	if cliCfg.Validate {
		return writeDocument(cliCfg.OutputPath, statusDocument(st))
	}
	if !st.Ok {
		return fmt.Errorf("document rejected: %s (status %d)", st.StatusText, st.Status)
	}
	return writeDocument(cliCfg.OutputPath, out)
}

// buildModel assembles the model from the optional configuration file.
func buildModel(cliCfg *CLIConfig, logger *slog.Logger) (*pig.Model, error) {
	cfg := config.Default()
	if cliCfg.ConfigPath != "" {
		loaded, err := config.Load(cliCfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	cfg.Apply()

	opts := []pig.Option{
		pig.WithLanguage(cfg.Tag()),
		pig.WithLogger(logger),
	}
	if cfg.Context != "" {
		opts = append(opts, pig.WithContext(cfg.Context))
	}
	if len(cfg.IDKeys) > 0 {
		opts = append(opts, pig.WithIDKeys(cfg.IDKeys...))
	}
	return pig.NewModel(opts...), nil
}

// convert runs the document through the item in the requested direction and
// returns the validation status together with the converted document.
func convert(item pig.Item, doc map[string]any, direction string) (message.Status, map[string]any) {
	switch direction {
	case "to-jsonld":
		st := item.Set(doc)
		return st, item.GetJSONLD()
	default: // from-jsonld
		st := item.SetJSONLD(doc)
		return st, item.Get()
	}
}

// statusDocument renders a status as the output document of --validate.
func statusDocument(st message.Status) map[string]any {
	out := map[string]any{
		"status": st.Status,
		"ok":     st.Ok,
	}
	if st.StatusText != "" {
		out["statusText"] = st.StatusText
	}
	return out
}

func readDocument(path string) (map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return doc, nil
}

func writeDocument(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
