package jni

import (
	"strings"

	"github.com/wippyai/go-jni/errors"
)

// DescriptorOf returns the field descriptor of T.
func DescriptorOf[T Type]() string {
	var t T
	return t.Descriptor()
}

// MethodDescriptor renders "(args)ret" from the given types' descriptors.
func MethodDescriptor(ret Type, args ...Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, a := range args {
		b.WriteString(a.Descriptor())
	}
	b.WriteByte(')')
	b.WriteString(ret.Descriptor())
	return b.String()
}

// ClassDescriptor renders the field descriptor for a binary class name.
// Array names are already descriptors and are returned unchanged.
func ClassDescriptor(name string) string {
	if strings.HasPrefix(name, "[") {
		return name
	}
	return "L" + name + ";"
}

// ParseMethodDescriptor splits "(IJLjava/lang/String;)[B" into its parameter
// and return field descriptors.
func ParseMethodDescriptor(desc string) (params []string, ret string, err error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, "", errors.InvalidDescriptor(desc, 0, "expected '('")
	}
	closeIdx := strings.IndexByte(desc, ')')
	if closeIdx < 0 {
		return nil, "", errors.InvalidDescriptor(desc, len(desc), "missing ')'")
	}

	params, err = splitFields(desc, 1, closeIdx)
	if err != nil {
		return nil, "", err
	}

	ret = desc[closeIdx+1:]
	if ret == "V" {
		return params, ret, nil
	}
	n, err := fieldLen(desc, closeIdx+1)
	if err != nil {
		return nil, "", err
	}
	if closeIdx+1+n != len(desc) {
		return nil, "", errors.InvalidDescriptor(desc, closeIdx+1+n, "trailing characters after return type")
	}
	return params, ret, nil
}

// SplitFieldDescriptors splits a concatenation of field descriptors.
func SplitFieldDescriptors(s string) ([]string, error) {
	return splitFields(s, 0, len(s))
}

func splitFields(desc string, start, end int) ([]string, error) {
	var out []string
	for i := start; i < end; {
		n, err := fieldLen(desc[:end], i)
		if err != nil {
			return nil, err
		}
		out = append(out, desc[i:i+n])
		i += n
	}
	return out, nil
}

// fieldLen returns the length of the field descriptor starting at desc[i].
func fieldLen(desc string, i int) (int, error) {
	start := i
	for i < len(desc) && desc[i] == '[' {
		i++
	}
	if i-start > 255 {
		return 0, errors.InvalidDescriptor(desc, start, "array has more than 255 dimensions")
	}
	if i >= len(desc) {
		return 0, errors.InvalidDescriptor(desc, i, "unexpected end of descriptor")
	}
	switch desc[i] {
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return i + 1 - start, nil
	case 'L':
		semi := strings.IndexByte(desc[i:], ';')
		if semi <= 1 {
			return 0, errors.InvalidDescriptor(desc, i, "unterminated class name")
		}
		return i + semi + 1 - start, nil
	default:
		return 0, errors.InvalidDescriptor(desc, i, "unknown type tag '"+string(desc[i])+"'")
	}
}
