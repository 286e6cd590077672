package codegen

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/classfile"
	"github.com/wippyai/go-jni/errors"
)

const (
	jniPath = "github.com/wippyai/go-jni"
	refPath = "github.com/wippyai/go-jni/ref"
)

// builtin reference categories the root package already declares.
var builtin = map[string]string{
	"java/lang/Object":    "ObjectRef",
	"java/lang/String":    "StringRef",
	"java/lang/Class":     "ClassRef",
	"java/lang/Throwable": "ThrowableRef",
}

var scalars = map[byte]string{
	'Z': "Boolean",
	'B': "Byte",
	'C': "Char",
	'S': "Short",
	'I': "Int",
	'J': "Long",
	'F': "Float",
	'D': "Double",
	'V': "Void",
}

// Skipped records a method left out of the generated table.
type Skipped struct {
	Name       string
	Descriptor string
	Reason     string
}

// Binding is the output of Bindings.
type Binding struct {
	Source  []byte
	Type    string
	Fields  []string
	Skipped []Skipped
}

// Bindings renders a method table for cls into package pkg: a reference
// category per referenced class, a struct holding one typed handle per
// public method and a Resolve function filling it in.
func Bindings(cls *classfile.Class, pkg string) (*Binding, error) {
	if cls == nil || cls.Name == "" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "class has no name")
	}
	if !token(pkg) {
		return nil, errors.InvalidInput(errors.PhaseGenerate, fmt.Sprintf("invalid package name %q", pkg))
	}

	g := &bindingGen{
		cls:   cls,
		base:  exported(simpleName(cls.Name)),
		refs:  map[string]string{},
		taken: map[string]bool{},
	}
	g.refName(cls.Name)

	out := &Binding{Type: g.base}
	var entries []entry
	for _, m := range g.methods() {
		if reason := skipReason(m); reason != "" {
			out.Skipped = append(out.Skipped, Skipped{m.Name, m.Descriptor, reason})
			continue
		}
		e, err := g.entry(m)
		if err != nil {
			out.Skipped = append(out.Skipped, Skipped{m.Name, m.Descriptor, err.Error()})
			continue
		}
		entries = append(entries, e)
	}
	nameFields(entries)

	f := jen.NewFile(pkg)
	f.HeaderComment(Header)
	f.ImportName(jniPath, "jni")
	f.ImportName(refPath, "ref")

	g.renderClass(f)
	g.renderRefs(f)
	g.renderTable(f, entries)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "render bindings for "+cls.Name)
	}
	out.Source = buf.Bytes()
	for _, e := range entries {
		out.Fields = append(out.Fields, e.field)
	}
	return out, nil
}

type entry struct {
	method classfile.Method
	field  string
	ret    *jen.Statement
	args   []*jen.Statement
}

type bindingGen struct {
	cls   *classfile.Class
	base  string
	refs  map[string]string // class name -> generated category
	order []string
	taken map[string]bool
}

// methods returns the class methods ordered by name, then descriptor.
func (g *bindingGen) methods() []classfile.Method {
	ms := append([]classfile.Method(nil), g.cls.Methods...)
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Name != ms[j].Name {
			return ms[i].Name < ms[j].Name
		}
		return ms[i].Descriptor < ms[j].Descriptor
	})
	return ms
}

func skipReason(m classfile.Method) string {
	switch {
	case m.IsConstructor(), m.IsClassInitializer():
		return "initializer"
	case m.Synthetic || m.Bridge:
		return "synthetic"
	case !m.Public:
		return "not public"
	}
	return ""
}

func (g *bindingGen) entry(m classfile.Method) (entry, error) {
	params, ret, err := jni.ParseMethodDescriptor(m.Descriptor)
	if err != nil {
		return entry{}, err
	}
	if len(params) > jni.MaxArity {
		return entry{}, errors.Unsupported(errors.PhaseGenerate,
			fmt.Sprintf("%d parameters exceed arity %d", len(params), jni.MaxArity))
	}

	e := entry{method: m}
	if e.ret, err = g.resultType(ret); err != nil {
		return entry{}, err
	}
	for _, p := range params {
		t, err := g.argType(p)
		if err != nil {
			return entry{}, err
		}
		e.args = append(e.args, t)
	}
	return e, nil
}

func (g *bindingGen) resultType(desc string) (*jen.Statement, error) {
	if name, ok := scalars[desc[0]]; ok && len(desc) == 1 {
		return jen.Qual(jniPath, name), nil
	}
	cat, err := g.category(desc)
	if err != nil {
		return nil, err
	}
	return jen.Op("*").Qual(refPath, "Local").Types(cat), nil
}

func (g *bindingGen) argType(desc string) (*jen.Statement, error) {
	if desc == "V" {
		return nil, errors.InvalidDescriptor(desc, 0, "void parameter")
	}
	return g.resultType(desc)
}

// category maps a reference descriptor to its RefType.
func (g *bindingGen) category(desc string) (*jen.Statement, error) {
	switch desc[0] {
	case '[':
		elem := desc[1:]
		if name, ok := scalars[elem[0]]; ok && len(elem) == 1 && elem != "V" {
			return jen.Qual(jniPath, "ArrayRef").Types(jen.Qual(jniPath, name)), nil
		}
		inner, err := g.category(elem)
		if err != nil {
			return nil, err
		}
		return jen.Qual(jniPath, "ArrayRef").Types(inner), nil
	case 'L':
		name := desc[1 : len(desc)-1]
		if b, ok := builtin[name]; ok {
			return jen.Qual(jniPath, b), nil
		}
		return jen.Id(g.refName(name)), nil
	}
	return nil, errors.InvalidDescriptor(desc, 0, "not a reference type")
}

// refName returns the generated category for class, declaring it on first
// use. Simple names that collide are qualified with their package.
func (g *bindingGen) refName(class string) string {
	if n, ok := g.refs[class]; ok {
		return n
	}
	n := exported(simpleName(class)) + "Ref"
	if g.taken[n] {
		n = qualifiedName(class) + "Ref"
	}
	for i := 2; g.taken[n]; i++ {
		n = qualifiedName(class) + strconv.Itoa(i) + "Ref"
	}
	g.taken[n] = true
	g.refs[class] = n
	g.order = append(g.order, class)
	return n
}

// nameFields assigns struct field names; overloads after the first get a
// numeric suffix in descriptor order.
func nameFields(entries []entry) {
	seen := map[string]int{}
	for i := range entries {
		base := exported(entries[i].method.Name)
		seen[base]++
		if n := seen[base]; n > 1 {
			entries[i].field = base + strconv.Itoa(n)
		} else {
			entries[i].field = base
		}
	}
}

func (g *bindingGen) renderClass(f *jen.File) {
	constName := g.base + "Class"
	f.Comment(fmt.Sprintf("%s is the binary name of %s.", constName, g.cls.DottedName())).Line().
		Const().Id(constName).Op("=").Lit(g.cls.Name)
	f.Line()

	f.Comment(fmt.Sprintf("Find%s looks up %s.", g.base, g.cls.DottedName())).Line().
		Func().Id("Find"+g.base).
		Params(jen.Id("env").Qual(jniPath, "Env")).
		Params(jen.Qual(jniPath, "Class"), jen.Error()).
		Block(jen.Return(jen.Qual(jniPath, "FindClass").Call(jen.Id("env"), jen.Id(constName))))
	f.Line()
}

func (g *bindingGen) renderRefs(f *jen.File) {
	for _, class := range g.order {
		name := g.refs[class]
		dotted := strings.ReplaceAll(class, "/", ".")
		f.Comment(fmt.Sprintf("%s is the reference category of %s.", name, dotted)).Line().
			Type().Id(name).Struct()
		f.Line()
		f.Func().Params(jen.Id(name)).Id("ClassName").Params().String().
			Block(jen.Return(jen.Lit(class)))
		f.Line()
		f.Func().Params(jen.Id(name)).Id("Descriptor").Params().String().
			Block(jen.Return(jen.Lit("L" + class + ";")))
		f.Line()
	}
}

func (g *bindingGen) renderTable(f *jen.File, entries []entry) {
	fields := make([]jen.Code, 0, len(entries))
	body := []jen.Code{
		jen.Var().Defs(
			jen.Id("t").Id(g.base),
			jen.Err().Error(),
		),
	}

	for _, e := range entries {
		handle := fmt.Sprintf("Method%d", len(e.args))
		if e.method.Static {
			handle = "Static" + handle
		}
		types := []jen.Code{e.ret.Clone()}
		for _, a := range e.args {
			types = append(types, a.Clone())
		}

		fields = append(fields,
			jen.Comment(e.method.Key()).Line().
				Id(e.field).Qual(jniPath, handle).Types(types...))

		body = append(body,
			jen.If(
				jen.List(jen.Id("t").Dot(e.field), jen.Err()).Op("=").
					Qual(jniPath, "Resolve"+handle).Types(types...).
					Call(jen.Id("env"), jen.Id("cls"), jen.Lit(e.method.Name)),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Nil(), jen.Err())))
	}
	body = append(body, jen.Return(jen.Op("&").Id("t"), jen.Nil()))

	f.Comment(fmt.Sprintf("%s holds resolved method handles for %s.", g.base, g.cls.DottedName())).Line().
		Type().Id(g.base).Struct(fields...)
	f.Line()

	f.Comment(fmt.Sprintf("Resolve%s looks up every bound method of %s on cls.", g.base, g.cls.DottedName())).Line().
		Func().Id("Resolve"+g.base).
		Params(jen.Id("env").Qual(jniPath, "Env"), jen.Id("cls").Qual(jniPath, "Class")).
		Params(jen.Op("*").Id(g.base), jen.Error()).
		Block(body...)
}

func simpleName(class string) string {
	if i := strings.LastIndexAny(class, "/$"); i >= 0 {
		return class[i+1:]
	}
	return class
}

func qualifiedName(class string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(class, func(r rune) bool { return r == '/' || r == '$' }) {
		b.WriteString(exported(part))
	}
	return b.String()
}

// exported turns a Java identifier into an exported Go identifier.
func exported(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	out := b.String()
	if out == "" || unicode.IsDigit(rune(out[0])) {
		out = "X" + out
	}
	return out
}

func token(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}
