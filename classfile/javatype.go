package classfile

import "strings"

var javaScalars = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// JavaType renders a field descriptor as Java source, e.g. "[Ljava/lang/String;"
// becomes "java.lang.String[]". Malformed input renders as "?".
func JavaType(desc string) string {
	pos := 0
	t := javaType(desc, &pos)
	if pos != len(desc) {
		return "?"
	}
	return t
}

func javaType(desc string, pos *int) string {
	if *pos >= len(desc) {
		return "?"
	}
	ch := desc[*pos]
	*pos++
	if s, ok := javaScalars[ch]; ok {
		return s
	}
	switch ch {
	case '[':
		return javaType(desc, pos) + "[]"
	case 'L':
		end := strings.IndexByte(desc[*pos:], ';')
		if end < 0 {
			*pos = len(desc) + 1
			return "?"
		}
		name := desc[*pos : *pos+end]
		*pos += end + 1
		return strings.ReplaceAll(name, "/", ".")
	}
	return "?"
}

// JavaSignature renders the method as a Java declaration without modifiers:
// "int add(int, int)". Constructors use the simple class name.
func (c *Class) JavaSignature(m Method) string {
	var params []string
	ret := "?"
	if len(m.Descriptor) > 0 && m.Descriptor[0] == '(' {
		pos := 1
		for pos < len(m.Descriptor) && m.Descriptor[pos] != ')' {
			params = append(params, javaType(m.Descriptor, &pos))
		}
		if pos < len(m.Descriptor) {
			pos++
			ret = javaType(m.Descriptor, &pos)
		}
	}

	var b strings.Builder
	if m.Static {
		b.WriteString("static ")
	}
	switch {
	case m.IsConstructor():
		name := c.Name
		if i := strings.LastIndexByte(name, '/'); i >= 0 {
			name = name[i+1:]
		}
		b.WriteString(name)
	case m.IsClassInitializer():
		return "static {}"
	default:
		b.WriteString(ret)
		b.WriteByte(' ')
		b.WriteString(m.Name)
	}
	b.WriteByte('(')
	b.WriteString(strings.Join(params, ", "))
	b.WriteByte(')')
	if len(m.Exceptions) > 0 {
		b.WriteString(" throws ")
		for i, e := range m.Exceptions {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strings.ReplaceAll(e, "/", "."))
		}
	}
	return b.String()
}
