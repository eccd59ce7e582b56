// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cheatgen/pkg/types"
)

const validJSON = `{
  "errors": [
    {"name": "CheatcodeError", "description": "Error thrown by cheatcodes.", "declaration": "error CheatcodeError(string message);"}
  ],
  "events": [],
  "enums": [
    {"name": "CallerMode", "description": "Caller mode.", "variants": [
      {"name": "None", "description": "No caller modification."},
      {"name": "Prank", "description": ""}
    ]}
  ],
  "structs": [
    {"name": "Rpc", "description": "An RPC URL.", "fields": [
      {"name": "key", "ty": "string", "description": "The alias."},
      {"name": "url", "ty": "string", "description": ""}
    ]}
  ],
  "cheatcodes": [
    {
      "func": {
        "id": "warp",
        "description": "Sets block.timestamp.",
        "declaration": "function warp(uint256 newTimestamp) external;",
        "visibility": "external",
        "mutability": "",
        "signature": "warp(uint256)",
        "selector": "0xe5d6bf02",
        "selectorBytes": [229, 214, 191, 2]
      },
      "group": "evm",
      "status": "stable",
      "safety": "unsafe"
    }
  ]
}`

func TestDecode_JSON(t *testing.T) {
	c, err := Decode(strings.NewReader(validJSON), FormatJSON)
	require.NoError(t, err)

	require.Len(t, c.Errors, 1)
	assert.Equal(t, "error CheatcodeError(string message);", c.Errors[0].Declaration)
	assert.Empty(t, c.Events)

	require.Len(t, c.Enums, 1)
	assert.Equal(t, []types.EnumVariant{
		{Name: "None", Description: "No caller modification."},
		{Name: "Prank", Description: ""},
	}, c.Enums[0].Variants)

	require.Len(t, c.Structs, 1)
	assert.Equal(t, "string", c.Structs[0].Fields[0].Ty)

	require.Len(t, c.Cheatcodes, 1)
	cc := c.Cheatcodes[0]
	assert.Equal(t, "warp", cc.Func.ID)
	assert.Equal(t, types.External, cc.Func.Visibility)
	assert.Equal(t, types.MutabilityNone, cc.Func.Mutability)
	assert.Equal(t, []byte{0xe5, 0xd6, 0xbf, 0x02}, cc.Func.SelectorBytes)
	assert.Equal(t, types.GroupEVM, cc.Group)
	assert.Equal(t, types.Stable, cc.Status)
	assert.Equal(t, types.Unsafe, cc.Safety)
}

func TestDecode_YAML(t *testing.T) {
	doc := `
errors: []
events:
  - name: Log
    description: A log.
    declaration: "event Log(string message);"
enums: []
structs: []
cheatcodes:
  - func:
      id: addr
      description: Gets the address for a given private key.
      declaration: "function addr(uint256 privateKey) external pure returns (address keyAddr);"
      visibility: external
      mutability: pure
      signature: addr(uint256)
      selector: "0xffa18649"
      selectorBytes: [255, 161, 134, 73]
    group: utilities
    status: stable
    safety: safe
`
	c, err := Decode(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)

	require.Len(t, c.Events, 1)
	assert.Equal(t, "event Log(string message);", c.Events[0].Declaration)
	require.Len(t, c.Cheatcodes, 1)
	assert.Equal(t, types.Pure, c.Cheatcodes[0].Func.Mutability)
	assert.Equal(t, types.GroupUtilities, c.Cheatcodes[0].Group)
	assert.True(t, c.Cheatcodes[0].Safety.IsSafe())
}

func TestDecode_TOML(t *testing.T) {
	doc := `
errors = []
events = []
enums = []

[[structs]]
name = "Log"
description = ""
fields = [
  { name = "data", ty = "bytes", description = "" },
]

[[cheatcodes]]
group = "testing"
status = "deprecated"
safety = "safe"

[cheatcodes.func]
id = "assertTrue"
description = "Asserts that a condition is true."
declaration = "function assertTrue(bool condition) external pure;"
visibility = "external"
mutability = "pure"
signature = "assertTrue(bool)"
selector = "0x0c9fd581"
selectorBytes = [12, 159, 213, 129]
`
	c, err := Decode(strings.NewReader(doc), FormatTOML)
	require.NoError(t, err)

	require.Len(t, c.Structs, 1)
	assert.Equal(t, "bytes", c.Structs[0].Fields[0].Ty)
	require.Len(t, c.Cheatcodes, 1)
	assert.Equal(t, types.Deprecated, c.Cheatcodes[0].Status)
	assert.Equal(t, "assertTrue", c.Cheatcodes[0].Func.ID)
}

func TestDecode_MissingKeysReportedTogether(t *testing.T) {
	doc := `{
  "errors": [{"name": "E", "declaration": "error E();"}],
  "events": [],
  "enums": [],
  "cheatcodes": []
}`
	_, err := Decode(strings.NewReader(doc), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "errors[0].description: missing key")
	assert.Contains(t, err.Error(), "structs: missing key")
}

func TestDecode_UnknownEnumerator(t *testing.T) {
	doc := strings.Replace(validJSON, `"group": "evm"`, `"group": "cheese"`, 1)

	_, err := Decode(strings.NewReader(doc), FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)

	var unknown *types.UnknownValueError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "group", unknown.Kind)
	assert.Equal(t, "cheese", unknown.Value)
	assert.Contains(t, err.Error(), "cheatcodes[0].group")
}

func TestDecode_SelectorByteOutOfRange(t *testing.T) {
	doc := strings.Replace(validJSON, "[229, 214, 191, 2]", "[229, 214, 300, 2]", 1)

	_, err := Decode(strings.NewReader(doc), FormatJSON)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "selectorBytes[2]")
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), FormatJSON)
	assert.ErrorIs(t, err, ErrParse)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("cheatcodes.json"))
	assert.Equal(t, FormatYAML, FormatFromPath("c.YAML"))
	assert.Equal(t, FormatYAML, FormatFromPath("c.yml"))
	assert.Equal(t, FormatTOML, FormatFromPath("c.toml"))
	assert.Equal(t, FormatJSON, FormatFromPath("noext"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cheatcodes.json")
	require.NoError(t, os.WriteFile(path, []byte(validJSON), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
