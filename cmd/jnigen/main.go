package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/term"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/classfile"
	"github.com/wippyai/go-jni/internal/codegen"
)

func main() {
	var (
		classFile   = flag.String("class", "", "Path to a compiled .class file")
		list        = flag.Bool("list", false, "List declared methods and exit")
		gen         = flag.Bool("gen", false, "Generate a typed method table for -class")
		pkg         = flag.String("pkg", "", "Package name for -gen (default: lowercased class name)")
		check       = flag.String("check", "", "Verify the declarations in a TOML manifest")
		arity       = flag.Int("arity", -1, "Generate method handles up to this parameter count")
		out         = flag.String("out", "", "Output file for -gen and -arity (default: stdout)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive method browser")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			jni.SetLogger(logger)
			defer func() { _ = logger.Sync() }()
		}
	}

	var err error
	switch {
	case *arity >= 0:
		err = writeArity(*arity, *out)
	case *check != "":
		err = runCheck(os.Stdout, *check)
	case *classFile == "":
		usage()
		os.Exit(1)
	case *interactive:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err = fmt.Errorf("-i needs a terminal")
			break
		}
		err = runInteractive(*classFile)
	case *gen:
		err = writeBindings(*classFile, *pkg, *out)
	default:
		err = runList(os.Stdout, *classFile, *list)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: jnigen -class <File.class> [-list]")
	fmt.Fprintln(os.Stderr, "       jnigen -class <File.class> -gen [-pkg name] [-out file.go]")
	fmt.Fprintln(os.Stderr, "       jnigen -class <File.class> -i  (interactive mode)")
	fmt.Fprintln(os.Stderr, "       jnigen -check manifest.toml")
	fmt.Fprintln(os.Stderr, "       jnigen -arity 6 -out method_gen.go")
}

func writeArity(n int, out string) error {
	src, err := codegen.Arity(n)
	if err != nil {
		return err
	}
	return writeOutput(out, src)
}

func writeBindings(path, pkg, out string) error {
	cls, err := classfile.ParseFile(path)
	if err != nil {
		return err
	}
	if pkg == "" {
		pkg = defaultPackage(cls)
	}
	b, err := codegen.Bindings(cls, pkg)
	if err != nil {
		return err
	}
	for _, s := range b.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %s%s: %s\n", s.Name, s.Descriptor, s.Reason)
	}
	return writeOutput(out, b.Source)
}

func defaultPackage(cls *classfile.Class) string {
	name := cls.Name
	if i := strings.LastIndexAny(name, "/$"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

func writeOutput(path string, src []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func runList(w io.Writer, path string, methodsOnly bool) error {
	cls, err := classfile.ParseFile(path)
	if err != nil {
		return err
	}

	if !methodsOnly {
		fmt.Fprintf(w, "Class: %s\n", cls.DottedName())
		fmt.Fprintf(w, "Version: %d.%d (Java %s)\n", cls.Major, cls.Minor, cls.Release())
		if cls.Super != "" {
			fmt.Fprintf(w, "Super: %s\n", strings.ReplaceAll(cls.Super, "/", "."))
		}
		for _, i := range cls.Interfaces {
			fmt.Fprintf(w, "Implements: %s\n", strings.ReplaceAll(i, "/", "."))
		}
		fmt.Fprintf(w, "\nFields:\n")
		for _, f := range cls.Fields {
			fmt.Fprintf(w, "  %s %s  %s\n", classfile.JavaType(f.Descriptor), f.Name, f.Descriptor)
		}
	}

	fmt.Fprintf(w, "\nMethods:\n")
	for _, m := range cls.Methods {
		fmt.Fprintf(w, "  %s  %s\n", cls.JavaSignature(m), m.Descriptor)
	}
	return nil
}

// runCheck verifies every class in the manifest and reports all failures.
// Class files are resolved relative to the manifest.
func runCheck(w io.Writer, manifest string) error {
	m, err := classfile.LoadManifest(manifest)
	if err != nil {
		return err
	}
	dir := filepath.Dir(manifest)

	var result *multierror.Error
	for _, entry := range m.Classes {
		file := entry.File
		if file == "" {
			file = entry.Name + ".class"
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}

		cls, err := classfile.ParseFile(file)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if cls.Name != entry.Name {
			result = multierror.Append(result, fmt.Errorf("%s declares %s, manifest expects %s", file, cls.Name, entry.Name))
			continue
		}
		if err := cls.Verify(entry.Methods); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		fmt.Fprintf(w, "ok  %s (%d methods)\n", cls.DottedName(), len(entry.Methods))
	}
	return result.ErrorOrNil()
}
