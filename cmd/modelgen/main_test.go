package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/internal/config"
	"github.com/goliatone/go-modelgen/pkg/scaffold"
	"github.com/goliatone/go-modelgen/pkg/schema"
)

const sensorSchema = `name: Sensor
type: Model
args: [index]
adds:
  - name: sensor.{index}.temp
    type: Real Lazy
    comment: Die temperature
`

func invoke(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, path, data string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestHelpContainsAllCommands(t *testing.T) {
	code, out, _ := invoke(t)
	if code != exitOK {
		t.Fatalf("exit code %d, want %d", code, exitOK)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("help output missing usage header:\n%s", out)
	}
	for _, cmd := range commands {
		if !strings.Contains(out, cmd.name) || !strings.Contains(out, cmd.short) {
			t.Errorf("help output missing command %q", cmd.name)
		}
	}
}

func TestLongHelp(t *testing.T) {
	for _, cmd := range commands {
		t.Run(cmd.name, func(t *testing.T) {
			code, out, _ := invoke(t, "help", cmd.name)
			if code != exitOK {
				t.Fatalf("exit code %d", code)
			}
			if !strings.Contains(out, cmd.usage) {
				t.Fatalf("long help missing usage %q:\n%s", cmd.usage, out)
			}
		})
	}

	if code, _, _ := invoke(t, "help", "no-such-command"); code != exitUsage {
		t.Fatalf("exit code %d, want %d", code, exitUsage)
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := invoke(t, "frobnicate")
	if code != exitUsage {
		t.Fatalf("exit code %d, want %d", code, exitUsage)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Fatalf("unexpected stderr: %s", stderr)
	}
}

func TestCompileShorthand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "sensor.yml"), sensorSchema)
	output := filepath.Join(dir, "sensor.hpp")

	code, _, stderr := invoke(t, input, output)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{
		"#ifndef PSIM_AUTOCODED_SENSOR_HPP_",
		"  // Die temperature",
		"  StateFieldLazy<Real> sensor_index_temp;",
	} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %q in output:\n%s", want, data)
		}
	}
}

func TestCompileCatalog(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "sensor.yml"), sensorSchema)
	output := filepath.Join(dir, "sensor.md")

	if code, _, stderr := invoke(t, "compile", "-renderer", "catalog", input, output); code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "# Sensor") {
		t.Fatalf("unexpected catalog:\n%s", data)
	}
}

func TestCompileInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "bad.yml"), "name: Bad\ntype: Model\nadds:\n  - name: x\n    type: Real Lazy Writable\n")
	output := filepath.Join(dir, "bad.hpp")

	code, _, stderr := invoke(t, "compile", input, output)
	if code != exitFail {
		t.Fatalf("exit code %d, want %d", code, exitFail)
	}
	if !strings.Contains(stderr, "adds[0].type") {
		t.Fatalf("expected error path in stderr:\n%s", stderr)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("expected no output, stat err = %v", err)
	}
}

func TestCompileUsageErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "sensor.yml"), sensorSchema)

	cases := map[string][]string{
		"missing output":   {"compile", input},
		"unknown renderer": {"compile", "-renderer", "rust", input, filepath.Join(dir, "out")},
		"unknown flag":     {"compile", "-fast", input, filepath.Join(dir, "out")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if code, _, _ := invoke(t, args...); code != exitUsage {
				t.Fatalf("exit code %d, want %d", code, exitUsage)
			}
		})
	}
}

func TestCompileLenientFromEnv(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, filepath.Join(dir, "loose.yml"), "name: Loose\ntype: Model\ngets:\n  - name: a.{missing}\n    type: Real\n")
	output := filepath.Join(dir, "loose.hpp")

	if code, _, _ := invoke(t, input, output); code != exitFail {
		t.Fatalf("exit code %d, want %d", code, exitFail)
	}
	t.Setenv("MODELGEN_LENIENT", "true")
	if code, _, stderr := invoke(t, input, output); code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
}

func TestCompileFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/sensor.yml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(sensorSchema))
	}))
	defer srv.Close()

	dir := t.TempDir()
	output := filepath.Join(dir, "sensor.hpp")
	url := srv.URL + "/models/sensor.yml"

	if code, _, stderr := invoke(t, url, output); code != exitFail || !strings.Contains(stderr, "http support disabled") {
		t.Fatalf("expected disabled http to fail, exit %d, stderr:\n%s", code, stderr)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("expected no output, stat err = %v", err)
	}

	t.Setenv("MODELGEN_ALLOW_HTTP", "true")
	t.Setenv("MODELGEN_HTTP_TIMEOUT", "5s")
	if code, _, stderr := invoke(t, url, output); code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "#define PSIM_AUTOCODED_SENSOR_HPP_") {
		t.Fatalf("unexpected header:\n%s", data)
	}

	if code, _, _ := invoke(t, srv.URL+"/missing.yml", output); code != exitFail {
		t.Fatalf("expected missing remote schema to fail, exit %d", code)
	}
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "models", "sensor.yml"), sensorSchema)

	code, out, stderr := invoke(t, "search", "-root", dir, `sensor\.`)
	if code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if diff := cmp.Diff("sensor.{index}.temp [Real Lazy]\n", out); diff != "" {
		t.Fatalf("search output mismatch (-want +got):\n%s", diff)
	}

	if code, _, _ := invoke(t, "search", "-root", dir); code != exitUsage {
		t.Fatalf("exit code %d, want %d", code, exitUsage)
	}
}

type scriptedDriver struct {
	inputs  []string
	confirm []bool
	selects []int
	multi   [][]int
	err     error
}

func (d *scriptedDriver) Input(context.Context, scaffold.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		if d.err != nil {
			return "", d.err
		}
		return "", errors.New("no input scripted")
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, scaffold.ConfirmConfig) (bool, error) {
	if len(d.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	v := d.confirm[0]
	d.confirm = d.confirm[1:]
	return v, nil
}

func (d *scriptedDriver) Select(context.Context, scaffold.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return -1, errors.New("no select scripted")
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) MultiSelect(context.Context, scaffold.SelectConfig) ([]int, error) {
	if len(d.multi) == 0 {
		return nil, errors.New("no multiselect scripted")
	}
	v := d.multi[0]
	d.multi = d.multi[1:]
	return v, nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func newTestCLI(driver scaffold.PromptDriver) (*cli, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cfg := config.Config{Renderer: "cpp"}
	c := &cli{stdout: &stdout, stderr: &stderr, cfg: cfg, prompt: driver}
	c.logger = slog.New(slog.DiscardHandler)
	return c, &stdout, &stderr
}

func TestNew(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gyro.yml")
	driver := &scriptedDriver{
		inputs:  []string{"Gyro", "", "", "gyro.rate", "Angular rate"},
		confirm: []bool{true, false},
		selects: []int{1, 3},
		multi:   [][]int{{0}},
	}
	c, stdout, stderr := newTestCLI(driver)

	if code := c.exec(context.Background(), []string{"new", output}); code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stdout.String(), output) {
		t.Fatalf("unexpected stdout: %s", stdout)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var def schema.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := schema.Definition{
		Name: "Gyro",
		Type: "Model",
		Adds: []schema.FieldRecord{{Name: "gyro.rate", Type: "Vector3 Initialized", Comment: "Angular rate"}},
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	output := writeFile(t, filepath.Join(dir, "schemas", "gyro.yml"), "previous\n")
	driver := &scriptedDriver{
		inputs:  []string{"Gyro", "", ""},
		confirm: []bool{false},
	}
	c, _, stderr := newTestCLI(driver)

	if code := c.exec(context.Background(), []string{"new", output}); code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "name: Gyro") {
		t.Fatalf("expected new schema, got:\n%s", data)
	}
	entries, err := os.ReadDir(filepath.Dir(output))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no leftover temp files, found %d entries", len(entries))
	}

	nested := filepath.Join(dir, "fresh", "dir", "gyro.yml")
	c, _, stderr = newTestCLI(&scriptedDriver{inputs: []string{"Gyro", "", ""}, confirm: []bool{false}})
	if code := c.exec(context.Background(), []string{"new", nested}); code != exitOK {
		t.Fatalf("exit code %d, stderr:\n%s", code, stderr)
	}
	if _, err := os.Stat(nested); err != nil {
		t.Fatalf("expected schema in new directory: %v", err)
	}
}

func TestNewAborted(t *testing.T) {
	output := filepath.Join(t.TempDir(), "gyro.yml")
	c, _, _ := newTestCLI(&scriptedDriver{inputs: []string{"Gyro"}, err: scaffold.ErrAborted})

	if code := c.exec(context.Background(), []string{"new", output}); code != exitFail {
		t.Fatalf("exit code %d, want %d", code, exitFail)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("expected nothing written, stat err = %v", err)
	}
}
