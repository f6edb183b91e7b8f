package parser

import (
	"path"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

// decodeHCL reads documents shaped like:
//
//	name = "Estimator"
//	type = "Model"
//	args = ["satellite"]
//
//	param "gain" { type = "Real" }
//	adds "truth.{satellite}.bias" { type = "Real Lazy" }
//	gets "dt" { type = "Real" }
func decodeHCL(location string, raw []byte) (schema.Definition, error) {
	var def schema.Definition
	if err := hclsimple.Decode(hclFilename(location), raw, nil, &def); err != nil {
		return schema.Definition{}, structural("", "", "decode hcl: %v", err)
	}
	return def, nil
}

// hclsimple picks the syntax from the file suffix.
func hclFilename(location string) string {
	name := path.Base(strings.ReplaceAll(location, "\\", "/"))
	if !strings.HasSuffix(name, ".hcl") {
		return "document.hcl"
	}
	return name
}
