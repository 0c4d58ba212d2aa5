package declare

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// declTemplate emits a static identity spliced as a byte-array literal,
// an equality check, an accessor, and for PDAs the bump constant. The
// byte array comes from the claimed literal, the bump from the
// recomputed derivation.
var declTemplate = template.Must(template.New("decl").Parse(`// Code generated by declaregen. DO NOT EDIT.

package {{.Package}}

import "github.com/gagliardetto/solana-go"

// {{.GoName}}ID is the static identity {{.Base58}}.
var {{.GoName}}ID = solana.PublicKey{
{{- range .ByteRows}}
	{{.}}
{{- end}}
}

// Check{{.GoName}}ID reports whether id equals {{.GoName}}ID.
func Check{{.GoName}}ID(id solana.PublicKey) bool {
	return id == {{.GoName}}ID
}

// {{.GoName}} returns the static identity.
func {{.GoName}}() solana.PublicKey {
	return {{.GoName}}ID
}
{{- if .IsPDA}}

// {{.GoName}}Bump is the bump seed of the derived address.
const {{.GoName}}Bump uint8 = {{.Bump}}
{{- end}}
`))

var testTemplate = template.Must(template.New("test").Parse(`// Code generated by declaregen. DO NOT EDIT.

package {{.Package}}

import "testing"

func Test{{.GoName}}ID(t *testing.T) {
	if !Check{{.GoName}}ID({{.GoName}}()) {
		t.Fatal("Check{{.GoName}}ID({{.GoName}}()) = false")
	}
}
`))

type templateData struct {
	Package  string
	GoName   string
	Base58   string
	ByteRows []string
	IsPDA    bool
	Bump     uint8
}

// Renderer emits Go source for resolved declarations.
type Renderer struct {
	Package string
}

// NewRenderer returns a Renderer targeting the given package name.
func NewRenderer(pkg string) *Renderer {
	return &Renderer{Package: pkg}
}

// Render produces the gofmt-formatted declaration file.
func (r *Renderer) Render(resolved Resolved) ([]byte, error) {
	return r.execute(declTemplate, resolved)
}

// RenderTest produces the gofmt-formatted self-test file.
func (r *Renderer) RenderTest(resolved Resolved) ([]byte, error) {
	return r.execute(testTemplate, resolved)
}

func (r *Renderer) execute(tmpl *template.Template, resolved Resolved) ([]byte, error) {
	data := templateData{
		Package:  r.Package,
		GoName:   GoName(resolved.Name),
		Base58:   resolved.Key.String(),
		ByteRows: byteRows(resolved.Key.Bytes(), 8),
		IsPDA:    resolved.Kind == KindPDA,
		Bump:     resolved.Bump,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render declaration %q: %w", resolved.Name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format declaration %q: %w", resolved.Name, err)
	}
	return src, nil
}

// byteRows formats bytes as hex literals, perLine per row.
func byteRows(b []byte, perLine int) []string {
	var rows []string
	for start := 0; start < len(b); start += perLine {
		end := start + perLine
		if end > len(b) {
			end = len(b)
		}
		var row bytes.Buffer
		for _, v := range b[start:end] {
			fmt.Fprintf(&row, "0x%02x, ", v)
		}
		rows = append(rows, row.String())
	}
	return rows
}
