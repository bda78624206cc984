package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dzonerzy/snapargs/argp"
	snapio "github.com/dzonerzy/snapargs/io"
)

const lsDecl = `params:
  - kind: flag
    aliases: [v, verbose]
  - kind: option
    aliases: [s, size]
    default: "4"
  - kind: option
    aliases: [color]
  - kind: setting
    aliases: [if]
`

func writeDecl(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv(envDecl, "")

	var out, errOut bytes.Buffer
	m := snapio.New().WithOut(&out).WithErr(&errOut)
	cmd := newRootCmd(m)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), argp.NewExitCodeManager().Resolve(err)
}

func TestParseReport(t *testing.T) {
	path := writeDecl(t, "ls.yaml", lsDecl)

	out, errOut, code := execute(t, "parse", "--decl="+path, "--", "-vs8", "--color=never", "if=/dev/zero", "file")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d (stderr %q)", code, errOut)
	}

	for _, want := range []string{
		`flag     -v                   found=true count=1`,
		`option   -s                   found=true count=0 value="8"`,
		`option   --color              found=true count=1 value="never"`,
		`setting  if=                  found=true value="/dev/zero"`,
		`args     ["file"]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected report line %q in:\n%s", want, out)
		}
	}
}

func TestParseInvalidSuggests(t *testing.T) {
	path := writeDecl(t, "ls.yaml", lsDecl)

	out, errOut, code := execute(t, "parse", "-d", path, "--", "--verbos", "-x")
	if code != 2 {
		t.Fatalf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut, "Invalid parameters '--verbos' and '-x'") {
		t.Errorf("Expected diagnostic on stderr, got %q", errOut)
	}
	if !strings.Contains(out, "did you mean '--verbose'?") {
		t.Errorf("Expected suggestion on stdout, got %q", out)
	}
}

func TestParseDeclFromEnv(t *testing.T) {
	path := writeDecl(t, "ls.yaml", lsDecl)

	t.Setenv("NO_COLOR", "1")
	t.Setenv(envDecl, path)
	var out bytes.Buffer
	m := snapio.New().WithOut(&out).WithErr(&out)
	if err := runParse(m, []string{"--", "-v"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "found=true count=1") {
		t.Errorf("Expected -v to be found, got:\n%s", out.String())
	}
}

func TestParseMissingDecl(t *testing.T) {
	_, errOut, code := execute(t, "parse", "--", "-v")
	if code != 2 {
		t.Fatalf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut, envDecl) {
		t.Errorf("Expected hint about %s, got %q", envDecl, errOut)
	}
}

func TestParseOwnOptionsInvalid(t *testing.T) {
	_, errOut, code := execute(t, "parse", "--dcl", "x.yaml")
	if code != 2 {
		t.Fatalf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(errOut, "Invalid parameter '--dcl'") {
		t.Errorf("Unexpected stderr %q", errOut)
	}
}

func TestCheck(t *testing.T) {
	good := writeDecl(t, "good.hcl", `flag "verbose" { aliases = ["v"] }
setting "if" {}
`)
	out, _, code := execute(t, "check", good)
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "3 keys declared") {
		t.Errorf("Unexpected output %q", out)
	}

	bad := writeDecl(t, "bad.yaml", "params:\n  - kind: flag\n    aliases: []\n")
	_, errOut, code := execute(t, "check", bad)
	if code != 3 {
		t.Fatalf("Expected exit 3 for invalid declaration, got %d (%q)", code, errOut)
	}

	var declErr *argp.DeclError
	_, err := argp.NewFromDecls([]argp.Decl{{Kind: argp.KindFlag}})
	if !errors.As(err, &declErr) {
		t.Fatalf("Expected *argp.DeclError, got %T", err)
	}
}

func TestParseBareDeclNeedsValue(t *testing.T) {
	path := writeDecl(t, "ls.yaml", lsDecl)
	t.Setenv(envDecl, path)

	var out, errOut bytes.Buffer
	t.Setenv("NO_COLOR", "1")
	m := snapio.New().WithOut(&out).WithErr(&errOut)
	err := runParse(m, []string{"--decl", path, "--", "-v"})
	if got := argp.NewExitCodeManager().Resolve(err); got != 2 {
		t.Fatalf("Expected exit 2, got %d", got)
	}
	if !strings.Contains(errOut.String(), "--decl needs a value") {
		t.Errorf("Unexpected stderr %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("Expected no report, got:\n%s", out.String())
	}
}
