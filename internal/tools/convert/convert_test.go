package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lmm-be/internal/service/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rolesTSV = "1\tMr Nosey\tTown Investigative\tLook at a player // Learn their group \tWin with the Town\n" +
	"2\tLittle Miss Bossy\tTown Support\tGive orders\tWin with the Town\n" +
	"incomplete\trow\n"

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("convert", flag.ContinueOnError), []string{"-kind", "Rolelists"})
	require.NoError(t, err)
	assert.Equal(t, Config{Kind: KIND_ROLELISTS, In: "rolelists.tsv", Out: "rolelists.json"}, cfg)

	_, err = ParseConfig(flag.NewFlagSet("convert", flag.ContinueOnError), []string{"-kind", "players"})
	assert.Error(t, err)
}

func TestConvertRoles(t *testing.T) {
	roles, err := ConvertRoles(strings.NewReader(rolesTSV))
	require.NoError(t, err)
	require.Len(t, roles, 2)

	assert.Equal(t, catalog.Role{
		ID:        1,
		Name:      "Mr. Nosey",
		Image:     "/images/Artboard 1.svg",
		Abilities: []string{"Look at a player", "Learn their group"},
		Archetype: "Town Investigative",
		Wincon:    "Win with the Town",
	}, roles[0])
	assert.Equal(t, "Little Miss<br>Bossy", roles[1].Name)
}

func TestConvertRoles_InvalidID(t *testing.T) {
	_, err := ConvertRoles(strings.NewReader("x\tMr Nosey\tTown Investigative\ta\tb\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")
}

func TestConvertRolelists(t *testing.T) {
	tsv := "Town Investigative\tTown Support\n" +
		"Mafia Killing\tMafia Any\n" +
		"\tNeutral Any\n"

	lists, err := ConvertRolelists(strings.NewReader(tsv))
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"2": {"Town Investigative", "Mafia Killing"},
		"3": {"Town Support", "Mafia Any", "Neutral Any"},
	}, lists)

	_, err = ConvertRolelists(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "roles.tsv")
	out := filepath.Join(dir, "roles.json")
	require.NoError(t, os.WriteFile(in, []byte(rolesTSV), 0o644))

	var buf bytes.Buffer
	err := Run(context.Background(), Config{Kind: KIND_ROLES, In: in, Out: out, DryRun: true}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "validated 2 roles\n", buf.String())
	assert.NoFileExists(t, out)

	buf.Reset()
	err = Run(context.Background(), Config{Kind: KIND_ROLES, In: in, Out: out}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "wrote 2 roles")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Little Miss<br>Bossy")

	var roles []catalog.Role
	require.NoError(t, json.Unmarshal(data, &roles))
	assert.Len(t, roles, 2)
}

func TestRun_MissingInput(t *testing.T) {
	err := Run(context.Background(), Config{Kind: KIND_ROLES, In: filepath.Join(t.TempDir(), "nope.tsv")}, nil)
	assert.Error(t, err)
}
