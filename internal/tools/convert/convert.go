// Package convert turns the spreadsheet exports (tab separated) into the
// JSON datasets the server loads at startup.
package convert

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lmm-be/internal/service/catalog"
)

const (
	KIND_ROLES     = "roles"
	KIND_ROLELISTS = "rolelists"
)

// Config holds configuration for the converter.
type Config struct {
	Kind   string
	In     string
	Out    string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config. Input and output paths default
// to <kind>.tsv and <kind>.json.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Kind: KIND_ROLES}

	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "dataset kind: roles or rolelists")
	fs.StringVar(&cfg.In, "in", "", "input TSV path")
	fs.StringVar(&cfg.Out, "out", "", "output JSON path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing the output file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	if cfg.Kind != KIND_ROLES && cfg.Kind != KIND_ROLELISTS {
		return Config{}, fmt.Errorf("unknown kind %q", cfg.Kind)
	}
	if strings.TrimSpace(cfg.In) == "" {
		cfg.In = cfg.Kind + ".tsv"
	}
	if strings.TrimSpace(cfg.Out) == "" {
		cfg.Out = cfg.Kind + ".json"
	}

	return cfg, nil
}

// Run executes the converter using the provided Config.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	f, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	var (
		payload any
		count   int
		indent  string
	)

	switch cfg.Kind {
	case KIND_ROLES:
		roles, err := ConvertRoles(f)
		if err != nil {
			return err
		}
		payload, count, indent = roles, len(roles), "    "
	case KIND_ROLELISTS:
		lists, err := ConvertRolelists(f)
		if err != nil {
			return err
		}
		payload, count, indent = lists, len(lists), "  "
	default:
		return fmt.Errorf("unknown kind %q", cfg.Kind)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(payload, indent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", cfg.Kind, err)
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d %s\n", count, cfg.Kind)
		return err
	}

	if err := os.WriteFile(cfg.Out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	_, err = fmt.Fprintf(out, "wrote %d %s to %s\n", count, cfg.Kind, cfg.Out)
	return err
}

// ConvertRoles reads rows of id, name, archetype, abilities, wincon.
// Rows with fewer than five columns are skipped.
func ConvertRoles(r io.Reader) ([]catalog.Role, error) {
	rows, err := readTSV(r)
	if err != nil {
		return nil, err
	}

	roles := make([]catalog.Role, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid id %q", i+1, row[0])
		}

		abilities := strings.Split(row[3], " // ")
		for j := range abilities {
			abilities[j] = strings.TrimSpace(abilities[j])
		}

		roles = append(roles, catalog.Role{
			ID:        id,
			Name:      convertName(row[1]),
			Image:     fmt.Sprintf("/images/Artboard %d.svg", id),
			Abilities: abilities,
			Archetype: row[2],
			Wincon:    row[4],
		})
	}

	return roles, nil
}

func convertName(name string) string {
	name = strings.ReplaceAll(name, "Mr", "Mr.")
	return strings.ReplaceAll(name, "Little Miss ", "Little Miss<br>")
}

// ConvertRolelists turns every column into one rolelist keyed by its number
// of non-blank entries. A later column replaces an earlier one with the same
// count.
func ConvertRolelists(r io.Reader) (map[string][]string, error) {
	rows, err := readTSV(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("rolelists file is empty")
	}

	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}

	lists := make(map[string][]string)
	for col := 0; col < columns; col++ {
		var entries []string
		for _, row := range rows {
			if col < len(row) && strings.TrimSpace(row[col]) != "" {
				entries = append(entries, strings.TrimSpace(row[col]))
			}
		}

		if len(entries) > 0 {
			lists[strconv.Itoa(len(entries))] = entries
		}
	}

	return lists, nil
}

func readTSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read tsv: %w", err)
	}

	return rows, nil
}

// encode keeps markup such as <br> unescaped.
func encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
