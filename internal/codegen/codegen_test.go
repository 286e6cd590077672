package codegen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"testing"

	"github.com/wippyai/go-jni/classfile"
	jerrors "github.com/wippyai/go-jni/errors"
)

func parse(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	return f
}

func decls(f *ast.File) map[string]bool {
	out := map[string]bool{}
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				var recv string
				switch t := d.Recv.List[0].Type.(type) {
				case *ast.Ident:
					recv = t.Name
				case *ast.IndexExpr:
					recv = t.X.(*ast.Ident).Name
				case *ast.IndexListExpr:
					recv = t.X.(*ast.Ident).Name
				}
				name = recv + "." + name
			}
			out[name] = true
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					out[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						out[n.Name] = true
					}
				}
			}
		}
	}
	return out
}

// normalize drops layout so comparisons ignore blank lines and alignment.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestArity(t *testing.T) {
	src, err := Arity(2)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(src), "// "+Header+"\n\npackage jni\n") {
		t.Errorf("missing header:\n%s", src[:60])
	}

	f := parse(t, src)
	if f.Name.Name != "jni" {
		t.Errorf("package = %s", f.Name.Name)
	}
	got := decls(f)
	for _, n := range []string{"Method0", "Method2", "StaticMethod1"} {
		for _, want := range []string{n, "New" + n, "Resolve" + n, n + ".ID", n + ".Signature", n + ".Call"} {
			if !got[want] {
				t.Errorf("missing %s", want)
			}
		}
	}
	if got["Method3"] {
		t.Error("Method3 generated for arity 2")
	}

	text := normalize(string(src))
	for _, want := range []string{
		"type Method2[R Result[R], A1 Arg, A2 Arg] struct { id MethodID }",
		"// StaticMethod1 is a handle to a static method taking 1 argument.",
		"// Method0 is a handle to an instance method taking 0 arguments.",
		"func (m Method2[R, A1, A2]) Call(env Env, obj Referent, a1 A1, a2 A2) (R, error) {",
		"args := [2]Value{a1.Value(), a2.Value()}",
		"return Call[R](env, handleOf(obj), m.id, args[:])",
		"return CallStatic[R](env, Class(handleOf(cls)), m.id, nil)",
		"var r R return MethodDescriptor(r)",
		"id, err := resolveStaticMethod(env, cls, name, StaticMethod2[R, A1, A2]{}.Signature())",
	} {
		if !strings.Contains(text, normalize(want)) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestArity_MatchesCheckedIn(t *testing.T) {
	checked, err := os.ReadFile("../../method_gen.go")
	if err != nil {
		t.Skip("method_gen.go not available:", err)
	}
	src, err := Arity(6)
	if err != nil {
		t.Fatal(err)
	}
	if normalize(string(src)) != normalize(string(checked)) {
		t.Error("method_gen.go is stale; run go generate")
	}
}

func TestArity_Range(t *testing.T) {
	for _, n := range []int{-1, MaxArity + 1} {
		_, err := Arity(n)
		var e *jerrors.Error
		if !errors.As(err, &e) || e.Phase != jerrors.PhaseGenerate {
			t.Errorf("Arity(%d) err = %v", n, err)
		}
	}
	if _, err := Arity(0); err != nil {
		t.Errorf("Arity(0) = %v", err)
	}
}

func calc() *classfile.Class {
	return &classfile.Class{
		Name:  "com/example/Calc",
		Super: "java/lang/Object",
		Methods: []classfile.Method{
			{Name: "<init>", Descriptor: "()V", Public: true},
			{Name: "add", Descriptor: "(JJ)J", Public: true, Static: true},
			{Name: "add", Descriptor: "(II)I", Public: true, Static: true},
			{Name: "name", Descriptor: "()Ljava/lang/String;", Public: true},
			{Name: "items", Descriptor: "(Ljava/util/List;[I)[Ljava/util/Map$Entry;", Public: true},
			{Name: "other", Descriptor: "(Lcom/other/List;)V", Public: true, Static: true},
			{Name: "self", Descriptor: "()Lcom/example/Calc;", Public: true},
			{Name: "secret", Descriptor: "()V"},
			{Name: "get", Descriptor: "()Ljava/lang/Object;", Public: true, Bridge: true, Synthetic: true},
			{Name: "wide", Descriptor: "(IIIIIII)V", Public: true},
			{Name: "bad", Descriptor: "(Q)V", Public: true},
		},
	}
}

func TestBindings(t *testing.T) {
	b, err := Bindings(calc(), "calc")
	if err != nil {
		t.Fatal(err)
	}
	if b.Type != "Calc" {
		t.Errorf("Type = %q", b.Type)
	}

	wantFields := []string{"Add", "Add2", "Items", "Name", "Other", "Self"}
	if strings.Join(b.Fields, ",") != strings.Join(wantFields, ",") {
		t.Errorf("Fields = %v, want %v", b.Fields, wantFields)
	}

	reasons := map[string]string{}
	for _, s := range b.Skipped {
		reasons[s.Name] = s.Reason
	}
	for name, want := range map[string]string{
		"<init>": "initializer",
		"secret": "not public",
		"get":    "synthetic",
	} {
		if reasons[name] != want {
			t.Errorf("skip reason for %s = %q, want %q", name, reasons[name], want)
		}
	}
	if !strings.Contains(reasons["wide"], "exceed arity") {
		t.Errorf("wide skipped for %q", reasons["wide"])
	}
	if !strings.Contains(reasons["bad"], "invalid_descriptor") {
		t.Errorf("bad skipped for %q", reasons["bad"])
	}

	f := parse(t, b.Source)
	if f.Name.Name != "calc" {
		t.Errorf("package = %s", f.Name.Name)
	}
	got := decls(f)
	for _, want := range []string{
		"CalcClass", "FindCalc", "Calc", "ResolveCalc",
		"CalcRef", "ListRef", "EntryRef", "ComOtherListRef",
		"ListRef.ClassName", "ListRef.Descriptor",
	} {
		if !got[want] {
			t.Errorf("missing %s", want)
		}
	}

	text := normalize(string(b.Source))
	for _, want := range []string{
		`const CalcClass = "com/example/Calc"`,
		"Add jni.StaticMethod2[jni.Int, jni.Int, jni.Int]",
		"Add2 jni.StaticMethod2[jni.Long, jni.Long, jni.Long]",
		"Name jni.Method0[*ref.Local[jni.StringRef]]",
		"Items jni.Method2[*ref.Local[jni.ArrayRef[EntryRef]], *ref.Local[ListRef], *ref.Local[jni.ArrayRef[jni.Int]]]",
		"Other jni.StaticMethod1[jni.Void, *ref.Local[ComOtherListRef]]",
		"Self jni.Method0[*ref.Local[CalcRef]]",
		`if t.Add, err = jni.ResolveStaticMethod2[jni.Int, jni.Int, jni.Int](env, cls, "add"); err != nil { return nil, err }`,
		`func (EntryRef) ClassName() string { return "java/util/Map$Entry" }`,
		`func (ListRef) Descriptor() string { return "Ljava/util/List;" }`,
		"return jni.FindClass(env, CalcClass)",
	} {
		if !strings.Contains(text, normalize(want)) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestBindings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cls  *classfile.Class
		pkg  string
	}{
		{"nil class", nil, "x"},
		{"unnamed class", &classfile.Class{}, "x"},
		{"empty package", calc(), ""},
		{"bad package", calc(), "my-pkg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bindings(tt.cls, tt.pkg)
			var e *jerrors.Error
			if !errors.As(err, &e) || e.Phase != jerrors.PhaseGenerate {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestExported(t *testing.T) {
	tests := map[string]string{
		"add":       "Add",
		"getName":   "GetName",
		"to_string": "ToString",
		"lambda$0":  "Lambda0",
		"9lives":    "X9lives",
		"Map$Entry": "MapEntry",
		"":          "X",
	}
	for in, want := range tests {
		if got := exported(in); got != want {
			t.Errorf("exported(%q) = %q, want %q", in, got, want)
		}
	}
}
