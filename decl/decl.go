// Package decl loads parameter declarations for argp from YAML or HCL files.
//
// YAML layout:
//
//	params:
//	  - kind: flag
//	    aliases: [v, verbose]
//	  - kind: option
//	    aliases: [s, size]
//	    default: "4"
//	  - kind: setting
//	    aliases: [if]
//
// HCL layout, where the block label is the first alias:
//
//	flag "verbose" { aliases = ["v"] }
//	option "size" {
//	  aliases = ["s"]
//	  default = "4"
//	}
//	setting "if" {}
//
// Declarations keep their file order in both formats.
package decl

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilira/go-errors"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.yaml.in/yaml/v3"

	"github.com/dzonerzy/snapargs/argp"
)

// Error codes for declaration loading
const (
	ErrCodeRead        = "SNAPARGS_DECL_READ"
	ErrCodeParse       = "SNAPARGS_DECL_PARSE"
	ErrCodeInvalid     = "SNAPARGS_DECL_INVALID"
	ErrCodeUnsupported = "SNAPARGS_DECL_UNSUPPORTED"
)

// yamlFile is the top-level YAML document
type yamlFile struct {
	Params []yamlParam `yaml:"params"`
}

type yamlParam struct {
	Kind    string   `yaml:"kind"`
	Aliases []string `yaml:"aliases"`
	Default *string  `yaml:"default"`
}

// LoadYAML decodes a YAML declaration document. Unknown keys are rejected.
func LoadYAML(r io.Reader) ([]argp.Decl, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlFile
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, ErrCodeParse, "failed to decode YAML declarations")
	}

	decls := make([]argp.Decl, 0, len(doc.Params))
	for i, p := range doc.Params {
		kind, ok := argp.ParseKind(p.Kind)
		if !ok {
			return nil, errors.New(ErrCodeInvalid, fmt.Sprintf("params[%d]: unknown kind %q", i, p.Kind))
		}
		decls = append(decls, argp.Decl{Kind: kind, Aliases: p.Aliases, Default: p.Default})
	}
	return decls, nil
}

// hclParam is the body of a flag, option or setting block
type hclParam struct {
	Aliases []string `hcl:"aliases,optional"`
	Default *string  `hcl:"default,optional"`
}

var hclSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "flag", LabelNames: []string{"name"}},
		{Type: "option", LabelNames: []string{"name"}},
		{Type: "setting", LabelNames: []string{"name"}},
	},
}

// LoadHCL decodes HCL declaration blocks. filename is only used in
// diagnostics.
func LoadHCL(filename string, src []byte) ([]argp.Decl, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, ErrCodeParse, "failed to parse HCL declarations")
	}

	content, diags := file.Body.Content(hclSchema)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, ErrCodeParse, "failed to read HCL declarations")
	}

	decls := make([]argp.Decl, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		var body hclParam
		if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
			return nil, errors.Wrap(diags, ErrCodeParse, "failed to decode "+block.Type+" "+block.Labels[0])
		}

		kind, _ := argp.ParseKind(block.Type)
		aliases := append([]string{block.Labels[0]}, body.Aliases...)
		decls = append(decls, argp.Decl{Kind: kind, Aliases: aliases, Default: body.Default})
	}
	return decls, nil
}

// LoadFile reads path and decodes it by extension (.yaml, .yml or .hcl).
func LoadFile(path string) ([]argp.Decl, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, ErrCodeRead, "failed to read "+path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(src))
	case ".hcl":
		return LoadHCL(path, src)
	default:
		return nil, errors.New(ErrCodeUnsupported, "unsupported declaration file "+path)
	}
}

// Load reads a declaration file and builds a parser from it. Malformed
// declarations are reported as *argp.DeclError.
func Load(path string) (*argp.Parser, error) {
	decls, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return argp.NewFromDecls(decls)
}
