package classfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	parser "github.com/wreulicke/classfile-parser"

	"github.com/wippyai/go-jni/errors"
)

// Class is the binding-relevant view of a .class file: its name, hierarchy
// and members with their JNI descriptors.
type Class struct {
	// Name is the binary name with slashes, as FindClass expects.
	Name       string
	Super      string
	Interfaces []string
	Methods    []Method
	Fields     []Field
	// Signature is the generic class signature attribute, if any.
	Signature  string
	Major      uint16
	Minor      uint16
	Public     bool
	Interface  bool
	Abstract   bool
	Deprecated bool
}

var releases = map[uint16]string{
	45: "1.1", 46: "1.2", 47: "1.3", 48: "1.4",
	49: "5", 50: "6", 51: "7", 52: "8",
	53: "9", 54: "10", 55: "11", 56: "12",
	57: "13", 58: "14", 59: "15", 60: "16",
	61: "17", 62: "18", 63: "19", 64: "20",
	65: "21", 66: "22", 67: "23", 68: "24",
}

// Release returns the Java release that emits this class file version.
func (c *Class) Release() string {
	if r, ok := releases[c.Major]; ok {
		return r
	}
	return fmt.Sprintf("unknown (%d)", c.Major)
}

// Method is a declared method.
type Method struct {
	Name       string
	Descriptor string
	// Signature is the generic signature attribute, if any.
	Signature  string
	Exceptions []string
	Static     bool
	Public     bool
	Synthetic  bool
	Bridge     bool
	Native     bool
	Abstract   bool
}

// Field is a declared field.
type Field struct {
	Name       string
	Descriptor string
	Signature  string
	Static     bool
	Public     bool
	Final      bool
}

// Key renders "name:descriptor".
func (m Method) Key() string { return m.Name + ":" + m.Descriptor }

// IsConstructor reports whether m is an instance initializer.
func (m Method) IsConstructor() bool { return m.Name == "<init>" }

// IsClassInitializer reports whether m is the static initializer.
func (m Method) IsClassInitializer() bool { return m.Name == "<clinit>" }

// DottedName returns the class name in Java source form.
func (c *Class) DottedName() string { return strings.ReplaceAll(c.Name, "/", ".") }

// Parse reads a class file.
func Parse(r io.Reader) (*Class, error) {
	cf, err := parser.New(r).Parse()
	if err != nil {
		return nil, errors.Load("malformed class file", err)
	}
	cp := cf.ConstantPool

	name, err := cf.ThisClassName()
	if err != nil {
		return nil, errors.Load("unreadable class name", err)
	}

	c := &Class{
		Name:       name,
		Interfaces: make([]string, 0, len(cf.Interfaces)),
		Major:      cf.MajorVersion,
		Minor:      cf.MinorVersion,
		Public:     cf.AccessFlags.Is(parser.ACC_PUBLIC),
		Interface:  cf.AccessFlags.Is(parser.ACC_INTERFACE),
		Abstract:   cf.AccessFlags.Is(parser.ACC_ABSTRACT),
		Deprecated: cf.Deprecated() != nil,
	}
	if sig := cf.Signature(); sig != nil {
		if utf8 := cp.LookupUtf8(sig.Signature); utf8 != nil {
			c.Signature = utf8.String()
		}
	}
	if cf.SuperClass != 0 {
		if c.Super, err = cf.SuperClassName(); err != nil {
			return nil, errors.Load("unreadable super class", err)
		}
	}
	for _, idx := range cf.Interfaces {
		iface, err := cp.GetClassName(idx)
		if err != nil {
			return nil, errors.Load("unreadable interface", err)
		}
		c.Interfaces = append(c.Interfaces, iface)
	}

	for _, f := range cf.Fields {
		fname, err := f.Name(cp)
		if err != nil {
			return nil, errors.Load("unreadable field name", err)
		}
		desc, err := f.Descriptor(cp)
		if err != nil {
			return nil, errors.Load("unreadable field descriptor", err)
		}
		field := Field{
			Name:       fname,
			Descriptor: desc,
			Static:     f.AccessFlags.Is(parser.ACC_STATIC),
			Public:     f.AccessFlags.Is(parser.ACC_PUBLIC),
			Final:      f.AccessFlags.Is(parser.ACC_FINAL),
		}
		if sig := f.Signature(); sig != nil {
			if utf8 := cp.LookupUtf8(sig.Signature); utf8 != nil {
				field.Signature = utf8.String()
			}
		}
		c.Fields = append(c.Fields, field)
	}

	for _, m := range cf.Methods {
		mname, err := m.Name(cp)
		if err != nil {
			return nil, errors.Load("unreadable method name", err)
		}
		desc, err := m.Descriptor(cp)
		if err != nil {
			return nil, errors.Load("unreadable method descriptor", err)
		}
		method := Method{
			Name:       mname,
			Descriptor: desc,
			Static:     m.AccessFlags.Is(parser.ACC_STATIC),
			Public:     m.AccessFlags.Is(parser.ACC_PUBLIC),
			Synthetic:  m.AccessFlags.Is(parser.ACC_SYNTHETIC),
			Bridge:     m.AccessFlags.Is(parser.ACC_BRIDGE),
			Native:     m.AccessFlags.Is(parser.ACC_NATIVE),
			Abstract:   m.AccessFlags.Is(parser.ACC_ABSTRACT),
		}
		if sig := m.Signature(); sig != nil {
			if utf8 := cp.LookupUtf8(sig.Signature); utf8 != nil {
				method.Signature = utf8.String()
			}
		}
		if exc := m.Exceptions(); exc != nil {
			for _, idx := range exc.ExceptionIndexes {
				if ename, err := cp.GetClassName(idx); err == nil {
					method.Exceptions = append(method.Exceptions, ename)
				}
			}
		}
		c.Methods = append(c.Methods, method)
	}

	return c, nil
}

// ParseBytes reads a class file from memory.
func ParseBytes(data []byte) (*Class, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile reads a class file from disk.
func ParseFile(path string) (*Class, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("cannot read "+path, err)
	}
	return ParseBytes(data)
}

// Lookup finds the method with the exact name and descriptor.
func (c *Class) Lookup(name, desc string) (Method, bool) {
	for _, m := range c.Methods {
		if m.Name == name && m.Descriptor == desc {
			return m, true
		}
	}
	return Method{}, false
}

// Overloads returns every method called name, ordered by descriptor.
func (c *Class) Overloads(name string) []Method {
	var out []Method
	for _, m := range c.Methods {
		if m.Name == name {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descriptor < out[j].Descriptor })
	return out
}
