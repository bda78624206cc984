package benchmark

import (
	"testing"

	"github.com/dzonerzy/snapargs/argp"
)

// Category: parser

func buildLsParser() *argp.Parser {
	return argp.New(8).
		AddFlag("l", "long").
		AddFlag("a", "all").
		AddFlag("h", "human-readable").
		AddOpt("T", "tabsize").
		AddOptDefault("", "color", "auto")
}

func BenchmarkParserShortCluster(b *testing.B) {
	args := []string{"ls", "-lahT4", "dir"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := buildLsParser()
		p.Parse(args)
		if !p.Found("l") {
			b.Fatal("-l not parsed")
		}
	}
}

func BenchmarkParserLongOptions(b *testing.B) {
	args := []string{"ls", "--long", "--all", "--tabsize=4", "--color=never", "dir"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := buildLsParser()
		p.Parse(args)
		if v, _ := p.GetOpt("color"); v != "never" {
			b.Fatal("--color not parsed")
		}
	}
}

func BenchmarkParserSettings(b *testing.B) {
	args := []string{"dd", "if=/dev/zero", "of=/dev/null", "bs=1M", "count=16"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := argp.New(4).
			AddSetting("if").
			AddSetting("of").
			AddSettingDefault("bs", "512").
			AddSetting("count")
		p.Parse(args)
		if err := p.FoundInvalid(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParserInvalidSummary(b *testing.B) {
	args := []string{"ls", "-xyz", "--bogus", "nope=1"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := buildLsParser()
		p.Parse(args)
		if err := p.FoundInvalid(); err == nil {
			b.Fatal("expected error")
		}
	}
}
