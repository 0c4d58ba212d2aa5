package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/viper"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "declarations.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	is := is.New(t)
	viper.Reset()

	path := writeManifest(t, `
output:
  dir: ./generated
  package: program
logging:
  level: debug
declarations:
  - name: system
    id: "11111111111111111111111111111111"
  - name: pump_fun_global
    pda: "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
    program: "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
    seeds:
      - global
`)

	cfg, err := LoadConfig(path)
	is.NoErr(err)
	is.Equal(cfg.Output.Package, "program")
	is.Equal(cfg.Logging.Level, "debug")
	is.Equal(len(cfg.Declarations), 2)
	is.Equal(cfg.Declarations[0].ID, "11111111111111111111111111111111")
	is.Equal(cfg.Declarations[1].Seeds, []string{"global"})
}

func TestLoadConfig_Defaults(t *testing.T) {
	is := is.New(t)
	viper.Reset()

	path := writeManifest(t, `
declarations:
  - name: system
    id: "11111111111111111111111111111111"
`)

	cfg, err := LoadConfig(path)
	is.NoErr(err)
	is.Equal(cfg.Output.Dir, "./generated")
	is.Equal(cfg.Output.Package, "program")
	is.Equal(cfg.Logging.Level, "info")
}

// TestLoadConfig_AliasResolution verifies well-known program aliases
// are rewritten to their base58 form
func TestLoadConfig_AliasResolution(t *testing.T) {
	is := is.New(t)
	viper.Reset()

	path := writeManifest(t, `
declarations:
  - name: global
    pda: "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
    program: pump-fun
    seeds:
      - global
`)

	cfg, err := LoadConfig(path)
	is.NoErr(err)
	is.Equal(cfg.Declarations[0].Program, "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{
			name:     "no declarations",
			manifest: "output:\n  package: program\n",
		},
		{
			name: "missing name",
			manifest: `
declarations:
  - id: "11111111111111111111111111111111"
`,
		},
		{
			name: "duplicate name",
			manifest: `
declarations:
  - name: system
    id: "11111111111111111111111111111111"
  - name: system
    id: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
`,
		},
		{
			name: "id and pda together",
			manifest: `
declarations:
  - name: both
    id: "11111111111111111111111111111111"
    pda: "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
    program: pump-fun
    seeds: [global]
`,
		},
		{
			name: "pda without program",
			manifest: `
declarations:
  - name: orphan
    pda: "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
    seeds: [global]
`,
		},
		{
			name: "pda without seeds",
			manifest: `
declarations:
  - name: seedless
    pda: "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf"
    program: pump-fun
`,
		},
		{
			name: "seeds on id declaration",
			manifest: `
declarations:
  - name: noisy
    id: "11111111111111111111111111111111"
    seeds: [global]
`,
		},
		{
			name: "bad package name",
			manifest: `
output:
  package: "9program"
declarations:
  - name: system
    id: "11111111111111111111111111111111"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			viper.Reset()

			path := writeManifest(t, tt.manifest)
			_, err := LoadConfig(path)
			is.True(err != nil)
		})
	}
}

func TestResolveProgramAlias(t *testing.T) {
	is := is.New(t)

	resolved, ok := ResolveProgramAlias("system")
	is.True(ok)
	is.Equal(resolved, "11111111111111111111111111111111")

	resolved, ok = ResolveProgramAlias("token")
	is.True(ok)
	is.Equal(resolved, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

	_, ok = ResolveProgramAlias("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")
	is.True(!ok)
}
