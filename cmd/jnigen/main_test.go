package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"

	"github.com/wippyai/go-jni/classfile"
	"github.com/wippyai/go-jni/internal/codegen"
)

func TestDefaultPackage(t *testing.T) {
	tests := map[string]string{
		"com/example/Calc":      "calc",
		"com/example/Outer$Inn": "inn",
		"Plain":                 "plain",
	}
	for name, want := range tests {
		if got := defaultPackage(&classfile.Class{Name: name}); got != want {
			t.Errorf("defaultPackage(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestHandleName(t *testing.T) {
	tests := []struct {
		m    classfile.Method
		want string
	}{
		{classfile.Method{Descriptor: "()V"}, "Method0"},
		{classfile.Method{Descriptor: "(II)I", Static: true}, "StaticMethod2"},
		{classfile.Method{Descriptor: "([ILjava/lang/String;[[Ljava/lang/Object;)V"}, "Method3"},
	}
	for _, tt := range tests {
		if got := handleName(tt.m); got != tt.want {
			t.Errorf("handleName(%s) = %q, want %q", tt.m.Descriptor, got, tt.want)
		}
	}
}

func TestFlags(t *testing.T) {
	if got := strings.Join(flags(classfile.Method{Public: true, Static: true, Native: true}), " "); got != "public static native" {
		t.Errorf("flags = %q", got)
	}
	if got := flags(classfile.Method{}); len(got) != 1 || got[0] != "package-private" {
		t.Errorf("flags = %v", got)
	}
}

func TestWriteArity(t *testing.T) {
	out := filepath.Join(t.TempDir(), "method_gen.go")
	if err := writeArity(1, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("// "+codegen.Header)) {
		t.Errorf("unexpected output:\n%s", data)
	}
	if err := writeArity(-1, out); err == nil {
		t.Error("expected error for negative arity")
	}
}

func TestRunCheck_AggregatesFailures(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "jni.toml")
	content := `
[[class]]
name = "com/example/A"

[[class]]
name = "com/example/B"
file = "missing/B.class"

[[class.method]]
name = "run"
descriptor = "()V"
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := runCheck(&out, manifest)
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("err = %T %v", err, err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("got %d errors: %v", len(merr.Errors), merr)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected ok lines: %s", out.String())
	}
}

func TestInteractiveModel_Filter(t *testing.T) {
	cls := &classfile.Class{
		Name: "com/example/Calc",
		Methods: []classfile.Method{
			{Name: "add", Descriptor: "(II)I", Public: true, Static: true},
			{Name: "sub", Descriptor: "(II)I", Public: true, Static: true},
			{Name: "secret", Descriptor: "()V"},
		},
	}
	m := newInteractiveModel("Calc.class")
	m.Update(loadedMsg{cls: cls, skipped: map[string]string{"secret:()V": "not public"}})
	if len(m.visible) != 3 {
		t.Fatalf("visible = %d", len(m.visible))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if m.state != stateFilter {
		t.Fatalf("state = %v, want filter", m.state)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if len(m.visible) != 2 {
		t.Errorf("visible after filter = %d", len(m.visible))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateBrowse {
		t.Errorf("state = %v, want browse", m.state)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateDetail {
		t.Fatalf("state = %v, want detail", m.state)
	}
	if view := m.View(); !strings.Contains(view, "not public") {
		t.Errorf("detail view lacks skip reason:\n%s", view)
	}
}
