package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/standardcheck/internal/cli/testutil"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with captured output streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := ExecuteArgs(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestCheck_SelfTestStandard(t *testing.T) {
	inTempDir(t)
	writeFile(t, "short.txt", "0123456789")

	out, _, err := run(t, "short.txt")
	require.ErrorIs(t, err, ErrViolationsFound)
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Equal(t, strings.Join([]string{
		`ERR_PATHLEN:TESTING:"short.txt"`,
		`ERR_COMPLEN:TESTING:"short.txt"`,
		`ERR_BADNAME:TESTING:"short.txt"`,
		`ERR_TOOBIG:TESTING:"short.txt"`,
	}, "\n")+"\n", out)
}

func TestCheck_Delimiter(t *testing.T) {
	inTempDir(t)

	out, _, err := run(t, "-d", "||", "missing")
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Equal(t, "ERR_NOFILE||SYSTEM||\"missing\"\n", out)
	testutil.AssertLineProtocol(t, out, "||")
}

func TestCheck_EmptyDelimiter(t *testing.T) {
	inTempDir(t)

	out, _, err := run(t, "-d", "", "whatever")
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, out, "Bad delimiter")
	assert.Contains(t, out, "Usage: standardcheck")
	assert.NotContains(t, out, "ERR_")
}

func TestCheck_NoInput(t *testing.T) {
	inTempDir(t)

	out, _, err := run(t, "-s", "POSIX")
	require.NoError(t, err)
	assert.Equal(t, ExitOK, ExitCode(err))
	assert.Equal(t, "no input\n", out)

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "-o", "json", "-s", "POSIX")
		require.NoError(t, err)

		var decoded struct {
			Standards  []string          `json:"standards"`
			Paths      int               `json:"paths"`
			Violations []json.RawMessage `json:"violations"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, []string{"POSIX"}, decoded.Standards)
		assert.Zero(t, decoded.Paths)
		assert.NotNil(t, decoded.Violations)
		assert.Empty(t, decoded.Violations)
	})
}

func TestCheck_InvalidStandard(t *testing.T) {
	inTempDir(t)
	writeFile(t, "short.txt", "x")

	out, _, err := run(t, "-s", "POSIX,BOGUS", "short.txt")
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, out, "Invalid standard: BOGUS")
	assert.Contains(t, out, "Usage: standardcheck")
	assert.NotContains(t, out, "ERR_", "no path is evaluated")
}

func TestCheck_UnknownFlag(t *testing.T) {
	inTempDir(t)

	out, _, err := run(t, "--bogus", "x")
	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, out, "unknown flag: --bogus")
	assert.Contains(t, out, "Usage: standardcheck")
}

func TestCheck_CompliantPath(t *testing.T) {
	inTempDir(t)
	writeFile(t, "report.txt", "ok")

	out, _, err := run(t, "-s", "posix,xopen", "report.txt")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheck_MultipleStandardsAndPaths(t *testing.T) {
	inTempDir(t)
	writeFile(t, "a name with spaces.txt", "x")

	out, _, err := run(t, "-s", "POSIX,XOPEN", "missing", "a name with spaces.txt")
	assert.Equal(t, ExitViolations, ExitCode(err))
	testutil.AssertLineProtocol(t, out, ":")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `ERR_NOFILE:SYSTEM:"missing"`, lines[0])
	assert.Equal(t, `ERR_COMPLEN:POSIX:"a name with spaces.txt"`, lines[1])
	assert.Equal(t, `ERR_BADNAME:POSIX:"a name with spaces.txt"`, lines[2])
}

func TestCheck_Exclude(t *testing.T) {
	inTempDir(t)

	out, _, err := run(t, "-x", "build/**,**/*.tmp", "build/x", "a/b.tmp", "missing")
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Equal(t, "ERR_NOFILE:SYSTEM:\"missing\"\n", out)
}

func TestCheck_BadExcludePattern(t *testing.T) {
	inTempDir(t)

	_, errOut, err := run(t, "-x", "a/[b", "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrViolationsFound))
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, errOut, "invalid exclude pattern")
}

func TestCheck_JSONOutput(t *testing.T) {
	inTempDir(t)
	writeFile(t, "short.txt", "0123456789")

	out, _, err := run(t, "-o", "json", "short.txt", "missing")
	assert.Equal(t, ExitViolations, ExitCode(err))

	var decoded struct {
		Standards  []string `json:"standards"`
		Paths      int      `json:"paths"`
		Violations []struct {
			Kind     string `json:"kind"`
			Standard string `json:"standard"`
			Path     string `json:"path"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []string{"TESTING"}, decoded.Standards)
	assert.Equal(t, 2, decoded.Paths)
	require.Len(t, decoded.Violations, 5)
	assert.Equal(t, "ERR_PATHLEN", decoded.Violations[0].Kind)
	assert.Equal(t, "SYSTEM", decoded.Violations[4].Standard)
}

func TestCheck_TextOutputSummary(t *testing.T) {
	inTempDir(t)
	writeFile(t, "ok.txt", "x")

	out, _, err := run(t, "-o", "text", "-s", "XOPEN", "ok.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "1 path against XOPEN: no violations")
}

func TestCheck_MarkdownOutput(t *testing.T) {
	inTempDir(t)

	out, errOut, err := run(t, "-o", "markdown", "missing")
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Empty(t, errOut)
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertNoANSI(t, out)
	assert.Equal(t, strings.Join([]string{
		"| Kind | Standard | Path |",
		"| --- | --- | --- |",
		"| `ERR_NOFILE` | SYSTEM | `missing` |",
		"",
		"**1 path against TESTING:** 1 violation",
	}, "\n")+"\n", out)
}

func TestRootCmd_ExampleStandardsExist(t *testing.T) {
	fields := strings.Fields(NewRootCmd().Example)
	found := 0
	for i, f := range fields {
		if f != "-s" || i+1 == len(fields) {
			continue
		}
		found++
		_, err := standard.Default().Resolve(fields[i+1])
		assert.NoError(t, err, "example uses -s %s", fields[i+1])
	}
	assert.NotZero(t, found)
}

func TestCheck_ConfigFile(t *testing.T) {
	dir := inTempDir(t)
	writeFile(t, "short.txt", "0123456789")
	writeFile(t, filepath.Join(dir, "standardcheck.yaml"), "standards: [XOPEN]\ndelimiter: ','\n")

	out, _, err := run(t, "short.txt", "missing")
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Equal(t, "ERR_NOFILE,SYSTEM,\"missing\"\n", out, "XOPEN accepts short.txt")
}

func TestCheck_ExternalCatalog(t *testing.T) {
	inTempDir(t)
	writeFile(t, "tiny.yaml", `standards:
  - name: TINY
    max_path_length: 3
`)
	writeFile(t, "long-name", "x")

	out, _, err := run(t, "--catalog", "tiny.yaml", "-s", "tiny", "long-name")
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Equal(t, "ERR_PATHLEN:TINY:\"long-name\"\n", out)

	out, _, err = run(t, "--catalog", "tiny.yaml", "-s", "TESTING", "long-name")
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, out, "Invalid standard: TESTING")
}

func TestCheck_VerboseLogsToStderr(t *testing.T) {
	inTempDir(t)

	out, errOut, err := run(t, "-v", "-s", "XOPEN", "missing")
	assert.Equal(t, ExitViolations, ExitCode(err))
	assert.Equal(t, "ERR_NOFILE:SYSTEM:\"missing\"\n", out)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "path=missing")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitViolations, ExitCode(ErrViolationsFound))
	assert.Equal(t, ExitUsage, ExitCode(&UsageError{Msg: "x"}))
	assert.Equal(t, ExitUsage, ExitCode(errors.New("boom")))
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"version", "standards", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"standards", "delimiter", "exclude"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	for _, flag := range []string{"config", "catalog", "output", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "standardcheck")
}
