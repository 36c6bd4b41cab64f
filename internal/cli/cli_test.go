// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usun/usunplanning/core"
	"github.com/usun/usunplanning/internal/config"
)

const dagScenario = `
vertices = ["fetch", "compile", "test", "package", "docs"]

[[edges]]
from = "fetch"
to = "compile"

[[edges]]
from = "compile"
to = "test"

[[edges]]
from = "compile"
to = "package"

[[edges]]
from = "test"
to = "package"
`

const costScenario = `
weighted = true
vertices = ["A", "B", "C", "D"]

[[edges]]
from = "A"
to = "B"
weight = 4
bidirectional = true

[[edges]]
from = "A"
to = "C"
weight = 1
bidirectional = true

[[edges]]
from = "B"
to = "C"
weight = 2
bidirectional = true

[[edges]]
from = "C"
to = "D"
weight = 7
bidirectional = true

[[edges]]
from = "B"
to = "D"
weight = 3
bidirectional = true
`

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errb bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())

	return ansi.ReplaceAllString(out.String(), ""), ansi.ReplaceAllString(errb.String(), ""), err
}

func TestTopo(t *testing.T) {
	path := writeScenario(t, dagScenario)
	out, _, err := run(t, "topo", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "fetch → compile → test → package")
}

func TestTopo_Cycle(t *testing.T) {
	path := writeScenario(t, dagScenario+"\n[[edges]]\nfrom = \"package\"\nto = \"fetch\"\n")
	_, _, err := run(t, "topo", "-f", path)
	require.ErrorIs(t, err, core.ErrCycleDetected)
}

func TestMST_Weighted(t *testing.T) {
	path := writeScenario(t, costScenario)
	out, _, err := run(t, "mst", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "A<->C=1")
	assert.Contains(t, out, "C<->B=2")
	assert.Contains(t, out, "B<->D=3")
	assert.Regexp(t, `total\s+6`, out)
}

func TestMST_UnweightedIsBreadthFirstTree(t *testing.T) {
	path := writeScenario(t, `
[[edges]]
from = "a"
to = "b"
bidirectional = true

[[edges]]
from = "a"
to = "c"
bidirectional = true

[[edges]]
from = "b"
to = "c"
bidirectional = true
`)
	out, _, err := run(t, "mst", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "a<->b=1")
	assert.Contains(t, out, "a<->c=1")
	assert.Regexp(t, `total\s+2`, out)
}

func TestMST_Disconnected(t *testing.T) {
	path := writeScenario(t, dagScenario)
	_, _, err := run(t, "mst", "-f", path)
	require.ErrorIs(t, err, core.ErrDisconnected)
}

func TestPath(t *testing.T) {
	path := writeScenario(t, costScenario)

	out, _, err := run(t, "path", "-f", path, "--shortest", "A", "D")
	require.NoError(t, err)
	assert.Contains(t, out, "A → B → D (2 hops)")

	out, _, err = run(t, "path", "-f", path, "D", "D")
	require.NoError(t, err)
	assert.Contains(t, out, "D (0 hops)")

	dag := writeScenario(t, dagScenario)
	out, _, err = run(t, "path", "-f", dag, "package", "fetch")
	require.NoError(t, err)
	assert.Contains(t, out, "no path from package to fetch")

	_, _, err = run(t, "path", "-f", dag, "fetch", "nowhere")
	require.ErrorIs(t, err, core.ErrUnknownKey)

	_, _, err = run(t, "path", "-f", dag, "fetch")
	require.Error(t, err, "two arguments are required")
}

func TestConnectedAndReach(t *testing.T) {
	path := writeScenario(t, dagScenario)

	out, _, err := run(t, "connected", "-f", path, "fetch", "package")
	require.NoError(t, err)
	assert.Contains(t, out, "fetch reaches package")

	out, _, err = run(t, "connected", "-f", path, "docs", "fetch")
	require.NoError(t, err)
	assert.Contains(t, out, "docs does not reach fetch")

	out, _, err = run(t, "reach", "-f", path, "compile")
	require.NoError(t, err)
	assert.Contains(t, out, "compile, test, package")
}

func TestClosure(t *testing.T) {
	path := writeScenario(t, "[[edges]]\nfrom = \"a\"\nto = \"b\"\n\n[[edges]]\nfrom = \"b\"\nto = \"c\"\n")

	out, _, err := run(t, "closure", "-f", path, "--matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "0,1,1\n0,0,1\n0,0,0\n")

	out, _, err = run(t, "closure", "-f", path)
	require.NoError(t, err)
	assert.Regexp(t, `a\s+a, b, c`, out)
	assert.Regexp(t, `c\s+c\n`, out)
}

func TestShow_Trace(t *testing.T) {
	path := writeScenario(t, "[[edges]]\nfrom = \"A\"\nto = \"B\"\n")
	out, _, err := run(t, "show", "-f", path, "--trace")
	require.NoError(t, err)
	assert.Regexp(t, `vertices\s+2`, out)
	assert.Contains(t, out, "A->B=1")
	assert.Contains(t, out, "index: A=0 B=1")
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeScenario(t, dagScenario)

	_, stderr, err := run(t, "topo", "-f", path)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "scenario loaded")

	_, stderr, err = run(t, "topo", "-v", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "scenario loaded")
	assert.Contains(t, stderr, "topological order")
}

func TestScenarioErrors(t *testing.T) {
	_, _, err := run(t, "topo")
	require.Error(t, err, "--file is required")

	_, _, err = run(t, "topo", "-f", filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeScenario(t, "vertices = [\"a\", \"a\"]")
	_, _, err = run(t, "topo", "-f", bad)
	require.ErrorIs(t, err, config.ErrInvalidScenario)
}

func TestCanceledContext(t *testing.T) {
	path := writeScenario(t, dagScenario)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"topo", "-f", path})
	require.ErrorIs(t, root.ExecuteContext(ctx), context.Canceled)
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "graphplan 1.0.0")
	assert.Contains(t, out, "commit: abc123")
}

func TestLoggerFromContext_Default(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))
}
