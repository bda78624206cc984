package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/snapargs/argp"
	"github.com/dzonerzy/snapargs/decl"
	"github.com/dzonerzy/snapargs/humanize"
	snapio "github.com/dzonerzy/snapargs/io"
)

// envDecl names the declaration file when -d/--decl is not given
const envDecl = "SNAPARGS_DECL"

func newRootCmd(m *snapio.IOManager) *cobra.Command {
	root := &cobra.Command{
		Use:           "argpctl",
		Short:         "Inspect command lines against argp parameter declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(m.Out())
	root.SetErr(m.Err())

	root.AddCommand(newParseCmd(m), newCheckCmd(m))
	return root
}

// newParseCmd hands its raw arguments to argp: the command's own options
// are themselves declared and parsed with argp.
func newParseCmd(m *snapio.IOManager) *cobra.Command {
	return &cobra.Command{
		Use:                "parse [-d FILE | --decl=FILE] [-t] [--color=WHEN] -- ARGS...",
		Short:              "Parse ARGS against a declaration file and print the result",
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(m, args)
		},
	}
}

func newCheckCmd(m *snapio.IOManager) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a declaration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(m, args[0])
		},
	}
}

func runParse(m *snapio.IOManager, args []string) error {
	self := argp.New(6).
		AddOpt("d", "decl").
		AddFlag("t", "trace").
		AddOptDefault("", "color", "auto")
	self.Parse(append([]string{"argpctl"}, args...))

	logger := newLogger(m, self)
	if err := self.FoundInvalid(); err != nil {
		reportInvalid(logger, self, err)
		return err
	}

	path, ok := self.GetOpt("decl")
	if ok && path == "" {
		// a bare --decl marks the option without consuming the next token
		err := &argp.ExitError{Code: 2, Err: errors.New("--decl needs a value (--decl=FILE or -d FILE)")}
		logger.Error("%v", err)
		return err
	}
	if !ok {
		path = os.Getenv(envDecl)
	}
	if path == "" {
		err := &argp.ExitError{Code: 2, Err: fmt.Errorf("no declaration file: use --decl or %s", envDecl)}
		logger.Error("%v", err)
		return err
	}

	target, err := decl.Load(path)
	if err != nil {
		logger.Error("%v", err)
		return err
	}
	if self.Found("trace") {
		target.SetLogger(logger)
	}

	target.Parse(append([]string{path}, self.Args()...))
	printReport(m, target)

	if err := target.FoundInvalid(); err != nil {
		reportInvalid(logger, target, err)
		return err
	}
	return nil
}

func runCheck(m *snapio.IOManager, path string) error {
	logger := snapio.NewLogger(m)
	p, err := decl.Load(path)
	if err != nil {
		logger.Error("%v", err)
		return err
	}
	logger.Success("%s: %d keys declared (checked %s)", path, p.Params(), humanize.FormatNow(0))
	return nil
}

func newLogger(m *snapio.IOManager, self *argp.Parser) *snapio.Logger {
	switch v, _ := self.GetOpt("color"); v {
	case "always":
		m.ForceColor()
	case "never":
		m.NoColor()
	}
	logger := snapio.NewLogger(m)
	if self.Found("trace") {
		logger.WithLevel(snapio.LevelDebug)
	}
	return logger
}

func reportInvalid(logger *snapio.Logger, p *argp.Parser, err error) {
	logger.Error("%s", strings.TrimSuffix(err.Error(), "\n"))
	for _, key := range p.Invalid() {
		if hint := p.Suggest(key); hint != "" {
			logger.Info("%s: did you mean '%s'?", key, hint)
		}
	}
}

// printReport writes one line per registered key and the positional args.
func printReport(m *snapio.IOManager, p *argp.Parser) {
	out := m.Out()
	for _, key := range p.Keys() {
		kind, _ := p.KindOf(key)
		switch kind {
		case argp.KindFlag:
			fmt.Fprintf(out, "%-8s %-20s found=%t count=%d\n", kind, key, p.FoundParam(key), p.CountParam(key))
		case argp.KindOpt:
			v, ok := p.GetOptParam(key)
			fmt.Fprintf(out, "%-8s %-20s found=%t count=%d value=%q\n", kind, key, ok, p.CountParam(key), v)
		case argp.KindSetting:
			v, ok := p.GetSetting(key.Name())
			fmt.Fprintf(out, "%-8s %-20s found=%t value=%q\n", kind, key.Name()+"=", ok, v)
		}
	}
	fmt.Fprintf(out, "args     %q\n", p.Args())
}
