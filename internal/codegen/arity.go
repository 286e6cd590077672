// Package codegen renders Go source with jennifer: the arity-specialized
// method handles of the root package and per-class binding tables.
package codegen

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"

	"github.com/wippyai/go-jni/errors"
)

// Header is the generated-file marker placed above the package clause.
const Header = "Code generated by jnigen; DO NOT EDIT."

// MaxArity bounds Arity so generated type parameter lists stay readable.
const MaxArity = 16

// Arity renders method_gen.go for package jni with handles for 0..n
// parameters.
func Arity(n int) ([]byte, error) {
	if n < 0 || n > MaxArity {
		return nil, errors.InvalidInput(errors.PhaseGenerate,
			fmt.Sprintf("arity %d out of range [0, %d]", n, MaxArity))
	}

	f := jen.NewFile("jni")
	f.HeaderComment(Header)

	for i := 0; i <= n; i++ {
		h := handle{arity: i}
		h.render(f)
		h.static = true
		h.render(f)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "render method handles")
	}
	return buf.Bytes(), nil
}

type handle struct {
	arity  int
	static bool
}

func (h handle) name() string {
	if h.static {
		return "StaticMethod" + strconv.Itoa(h.arity)
	}
	return "Method" + strconv.Itoa(h.arity)
}

func (h handle) arg(i int) string { return "A" + strconv.Itoa(i) }

func (h handle) param(i int) string { return "a" + strconv.Itoa(i) }

// typeParams is the constrained list: [R Result[R], A1 Arg, ...].
func (h handle) typeParams() []jen.Code {
	out := []jen.Code{jen.Id("R").Id("Result").Types(jen.Id("R"))}
	for i := 1; i <= h.arity; i++ {
		out = append(out, jen.Id(h.arg(i)).Id("Arg"))
	}
	return out
}

// typeArgs is the instantiation list: [R, A1, ...].
func (h handle) typeArgs() []jen.Code {
	out := []jen.Code{jen.Id("R")}
	for i := 1; i <= h.arity; i++ {
		out = append(out, jen.Id(h.arg(i)))
	}
	return out
}

func (h handle) self() *jen.Statement {
	return jen.Id(h.name()).Types(h.typeArgs()...)
}

func (h handle) render(f *jen.File) {
	name := h.name()

	kind, target, resolver, caller := "an instance method", "obj", "resolveMethod", "Call"
	if h.static {
		kind, target, resolver, caller = "a static method", "cls", "resolveStaticMethod", "CallStatic"
	}
	noun := "arguments"
	if h.arity == 1 {
		noun = "argument"
	}

	f.Comment(fmt.Sprintf("%s is a handle to %s taking %d %s.", name, kind, h.arity, noun)).Line().
		Type().Id(name).Types(h.typeParams()...).Struct(jen.Id("id").Id("MethodID"))
	f.Line()

	f.Comment(fmt.Sprintf("New%s wraps an already resolved method id. No lookup or check is done.", name)).Line().
		Func().Id("New"+name).Types(h.typeParams()...).
		Params(jen.Id("id").Id("MethodID")).
		Add(h.self()).
		Block(jen.Return(h.self().Values(jen.Dict{jen.Id("id"): jen.Id("id")})))
	f.Line()

	f.Comment(fmt.Sprintf("Resolve%s looks up name on cls with the descriptor derived from the type parameters.", name)).Line().
		Func().Id("Resolve"+name).Types(h.typeParams()...).
		Params(jen.Id("env").Id("Env"), jen.Id("cls").Id("Class"), jen.Id("name").String()).
		Params(h.self(), jen.Error()).
		Block(
			jen.List(jen.Id("id"), jen.Err()).Op(":=").Id(resolver).Call(
				jen.Id("env"), jen.Id("cls"), jen.Id("name"),
				h.self().Values().Dot("Signature").Call(),
			),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(h.self().Values(), jen.Err()),
			),
			jen.Return(h.self().Values(jen.Dict{jen.Id("id"): jen.Id("id")}), jen.Nil()),
		)
	f.Line()

	f.Comment("ID returns the held method id.").Line().
		Func().Params(jen.Id("m").Add(h.self())).Id("ID").Params().Id("MethodID").
		Block(jen.Return(jen.Id("m").Dot("id")))
	f.Line()

	f.Comment("Signature returns the JNI method descriptor.").Line().
		Func().Params(jen.Id("m").Add(h.self())).Id("Signature").Params().String().
		Block(h.signatureBody()...)
	f.Line()

	callDoc := "Call invokes the method on obj."
	if h.static {
		callDoc = "Call invokes the static method on cls."
	}
	params := []jen.Code{jen.Id("env").Id("Env"), jen.Id(target).Id("Referent")}
	for i := 1; i <= h.arity; i++ {
		params = append(params, jen.Id(h.param(i)).Id(h.arg(i)))
	}
	f.Comment(callDoc).Line().
		Func().Params(jen.Id("m").Add(h.self())).Id("Call").Params(params...).
		Params(jen.Id("R"), jen.Error()).
		Block(h.callBody(caller, target)...)
	f.Line()
}

func (h handle) signatureBody() []jen.Code {
	if h.arity == 0 {
		return []jen.Code{
			jen.Var().Id("r").Id("R"),
			jen.Return(jen.Id("MethodDescriptor").Call(jen.Id("r"))),
		}
	}
	defs := []jen.Code{jen.Id("r").Id("R")}
	args := []jen.Code{jen.Id("r")}
	for i := 1; i <= h.arity; i++ {
		defs = append(defs, jen.Id(h.param(i)).Id(h.arg(i)))
		args = append(args, jen.Id(h.param(i)))
	}
	return []jen.Code{
		jen.Var().Defs(defs...),
		jen.Return(jen.Id("MethodDescriptor").Call(args...)),
	}
}

func (h handle) callBody(caller, target string) []jen.Code {
	recv := jen.Id("handleOf").Call(jen.Id(target))
	if h.static {
		recv = jen.Id("Class").Call(recv)
	}
	call := func(args jen.Code) jen.Code {
		return jen.Return(jen.Id(caller).Types(jen.Id("R")).Call(
			jen.Id("env"), recv, jen.Id("m").Dot("id"), args))
	}

	if h.arity == 0 {
		return []jen.Code{call(jen.Nil())}
	}
	values := make([]jen.Code, 0, h.arity)
	for i := 1; i <= h.arity; i++ {
		values = append(values, jen.Id(h.param(i)).Dot("Value").Call())
	}
	return []jen.Code{
		jen.Id("args").Op(":=").Index(jen.Lit(h.arity)).Id("Value").Values(values...),
		call(jen.Id("args").Index(jen.Empty(), jen.Empty())),
	}
}
