// Package declare validates identity declarations and renders them as
// Go source. An id declaration pins a literal program identity; a pda
// declaration additionally proves that the literal is exactly the
// address derived from its program and seeds, and recovers the bump.
package declare

import (
	"fmt"
	"strings"

	"solana-declare-go/internal/config"
	"solana-declare-go/pkg/pda"
	"solana-declare-go/pkg/pubkey"
)

// Kind distinguishes the two declaration forms.
type Kind string

const (
	KindID  Kind = "id"
	KindPDA Kind = "pda"
)

// Declaration is one manifest entry, normalized.
type Declaration struct {
	Name    string
	Kind    Kind
	Address string // base58 literal; for KindPDA this is the claimed address
	Program string // base58 literal, KindPDA only
	Seeds   []string
}

// Resolved is a declaration that passed validation. Key always holds
// the claimed literal's decoded bytes; Bump is meaningful for KindPDA
// only.
type Resolved struct {
	Declaration
	Key  pubkey.PublicKey
	Bump uint8
}

// FromConfig maps a manifest entry onto a Declaration. Structural
// checks (mutual exclusion, required fields) already happened in the
// config layer; this only normalizes the shape.
func FromConfig(c config.DeclarationConfig) Declaration {
	if c.PDA != "" {
		return Declaration{
			Name:    c.Name,
			Kind:    KindPDA,
			Address: c.PDA,
			Program: c.Program,
			Seeds:   c.Seeds,
		}
	}
	return Declaration{
		Name:    c.Name,
		Kind:    KindID,
		Address: c.ID,
	}
}

// Validate decodes the declaration's literals and, for a PDA, proves
// the claimed address against the derivation. Never patches a
// mismatch: a wrong literal is a defect in the manifest.
func Validate(d Declaration) (Resolved, error) {
	if err := checkName(d.Name); err != nil {
		return Resolved{}, err
	}

	switch d.Kind {
	case KindID:
		key, err := pubkey.FromBase58(d.Address)
		if err != nil {
			return Resolved{}, fmt.Errorf("declaration %q: %w", d.Name, err)
		}
		return Resolved{Declaration: d, Key: key}, nil

	case KindPDA:
		seeds := make([][]byte, len(d.Seeds))
		for i, s := range d.Seeds {
			seeds[i] = []byte(s)
		}
		result, err := pda.ValidateDeclared(d.Address, d.Program, seeds)
		if err != nil {
			return Resolved{}, fmt.Errorf("declaration %q: %w", d.Name, err)
		}
		return Resolved{Declaration: d, Key: result.Address, Bump: result.Bump}, nil

	default:
		return Resolved{}, fmt.Errorf("declaration %q: unknown kind %q", d.Name, d.Kind)
	}
}

// checkName accepts snake_case, kebab-case or CamelCase names that map
// onto an exported Go identifier.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("declaration name is empty")
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '_' || r == '-':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("declaration name %q must not start with a digit", name)
			}
		default:
			return fmt.Errorf("declaration name %q contains invalid character %q", name, r)
		}
	}

	// The identifier prefix must survive separator folding and start
	// with a letter, or the rendered code would not be valid Go.
	folded := GoName(name)
	if folded == "" {
		return fmt.Errorf("declaration name %q contains only separators", name)
	}
	if folded[0] < 'A' || folded[0] > 'Z' {
		return fmt.Errorf("declaration name %q must start with a letter after separators", name)
	}
	return nil
}

// CheckCollisions rejects declaration sets whose names fold to the same
// generated identifier prefix or output file. "pump_fun" and "pump-fun"
// both render PumpFunID into pump_fun.go, so the second would silently
// overwrite the first.
func CheckCollisions(decls []Declaration) error {
	goNames := make(map[string]string, len(decls))
	fileNames := make(map[string]string, len(decls))

	for _, d := range decls {
		goName := GoName(d.Name)
		if prev, ok := goNames[goName]; ok {
			return fmt.Errorf("declarations %q and %q generate the same identifier prefix %s", prev, d.Name, goName)
		}
		goNames[goName] = d.Name

		fileName := FileName(d.Name)
		if prev, ok := fileNames[fileName]; ok {
			return fmt.Errorf("declarations %q and %q generate the same output file %s", prev, d.Name, fileName)
		}
		fileNames[fileName] = d.Name
	}
	return nil
}

// GoName converts a declaration name to the exported identifier prefix
// used in generated code: "pump_fun" and "pump-fun" both become
// "PumpFun".
func GoName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FileName returns the output file name for a declaration:
// "pump-fun" becomes "pump_fun.go".
func FileName(name string) string {
	return strings.ReplaceAll(name, "-", "_") + ".go"
}

// TestFileName returns the output file name for the generated
// self-test.
func TestFileName(name string) string {
	return strings.ReplaceAll(name, "-", "_") + "_test.go"
}
