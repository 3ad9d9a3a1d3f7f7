package design

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Load reads design parameters from an HCL file. Attributes not present in
// the file keep their default values. An empty path returns the defaults.
func Load(path string) (Params, error) {
	if path == "" {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Params{}, fmt.Errorf("parsing %s: %w", path, diags)
	}

	var p Params
	if diags := gohcl.DecodeBody(file.Body, nil, &p); diags.HasErrors() {
		return Params{}, fmt.Errorf("decoding %s: %w", path, diags)
	}

	return withDefaults(p), nil
}

// withDefaults fills every zero-valued field of p from Default. Parameters
// are all required to be positive, so zero doubles as "unset".
func withDefaults(p Params) Params {
	def := Default()
	pv := reflect.ValueOf(&p).Elem()
	dv := reflect.ValueOf(def)
	for i := 0; i < pv.NumField(); i++ {
		if pv.Field(i).IsZero() {
			pv.Field(i).Set(dv.Field(i))
		}
	}
	return p
}
