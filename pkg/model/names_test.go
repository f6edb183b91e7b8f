package model_test

import (
	"testing"

	"github.com/goliatone/go-modelgen/pkg/model"
)

func TestValidators(t *testing.T) {
	cases := []struct {
		name  string
		check func(string) bool
		good  []string
		bad   []string
	}{
		{
			name:  "argument",
			check: model.ValidArgumentName,
			good:  []string{"a", "satellite", "sensor_index"},
			bad:   []string{"", "Index", "a1", "_a", "a-b"},
		},
		{
			name:  "model",
			check: model.ValidModelName,
			good:  []string{"A", "OrbitEstimator", "Gnc2"},
			bad:   []string{"", "orbit", "Orbit_Estimator", "2Gnc"},
		},
		{
			name:  "variable",
			check: model.ValidVariableName,
			good:  []string{"x", "truth.{satellite}.orbit.r", "{a}", "a.b_c.D1"},
			bad:   []string{"", ".a", "1a", "a.{B}", "a b", "{}"},
		},
		{
			name:  "type specifier",
			check: model.ValidTypeSpecifier,
			good:  []string{"Real", "Real Lazy", "Vector3Writable", "Integer Initialized Writable"},
			bad:   []string{"", "real", "Real ", " Real", "Real  Lazy", "Real,Lazy"},
		},
		{
			name:  "comment",
			check: model.ValidComment,
			good:  []string{"gain", "Position in ECEF (m)", "it's fine", "a * b / c", "path a/b\\c"},
			bad:   []string{"", `say "hi"`, "a\nb", "a\tb", "a\rb", "ends here */ int oops;", "*/", `continues\`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range tc.good {
				if !tc.check(s) {
					t.Errorf("expected %q to be accepted", s)
				}
			}
			for _, s := range tc.bad {
				if tc.check(s) {
					t.Errorf("expected %q to be rejected", s)
				}
			}
		})
	}
}
