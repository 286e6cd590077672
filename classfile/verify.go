package classfile

import (
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	jni "github.com/wippyai/go-jni"
	"github.com/wippyai/go-jni/errors"
)

// Decl is a method a binding expects the class to declare.
type Decl struct {
	Name       string `toml:"name"`
	Descriptor string `toml:"descriptor"`
	Static     bool   `toml:"static"`
}

// Manifest lists the declarations expected per class.
//
//	[[class]]
//	name = "java/lang/Integer"
//	file = "classes/java/lang/Integer.class"
//
//	[[class.method]]
//	name = "parseInt"
//	descriptor = "(Ljava/lang/String;)I"
//	static = true
type Manifest struct {
	Classes []ManifestClass `toml:"class"`
}

// ManifestClass is one class entry of a Manifest.
type ManifestClass struct {
	Name    string `toml:"name"`
	File    string `toml:"file"`
	Methods []Decl `toml:"method"`
}

// LoadManifest decodes a manifest file. Unknown keys are rejected.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, errors.Config("cannot decode "+path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Config(path+": unknown key "+undecoded[0].String(), nil)
	}
	for _, c := range m.Classes {
		if c.Name == "" {
			return nil, errors.Config(path+": class entry without name", nil)
		}
	}
	return &m, nil
}

// Verify checks every declaration against the class. All problems are
// reported together: malformed descriptors and static/instance or return
// type mismatches individually, absent methods as one MissingMethodsError.
func (c *Class) Verify(decls []Decl) error {
	var result *multierror.Error
	var missing []string

	for _, d := range decls {
		if _, _, err := jni.ParseMethodDescriptor(d.Descriptor); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if m, ok := c.Lookup(d.Name, d.Descriptor); ok {
			if m.Static != d.Static {
				result = multierror.Append(result, errors.Mismatch(
					[]string{c.Name, d.Name}, kind(d.Static), kind(m.Static)))
			}
			continue
		}
		if got, ok := c.sameParams(d); ok {
			result = multierror.Append(result, errors.Mismatch(
				[]string{c.Name, d.Name}, d.Descriptor, got.Descriptor))
			continue
		}
		missing = append(missing, c.Name+"#"+d.Name+":"+d.Descriptor)
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		result = multierror.Append(result, errors.NewMissingMethodsError(missing))
	}

	if err := result.ErrorOrNil(); err != nil {
		Logger().Debug("verification failed",
			zap.String("class", c.Name),
			zap.Int("errors", len(result.Errors)))
		return err
	}
	return nil
}

// sameParams finds an overload with the declared parameters but a different
// return type.
func (c *Class) sameParams(d Decl) (Method, bool) {
	want, _, _ := jni.ParseMethodDescriptor(d.Descriptor)
	for _, m := range c.Overloads(d.Name) {
		params, _, err := jni.ParseMethodDescriptor(m.Descriptor)
		if err != nil || len(params) != len(want) {
			continue
		}
		same := true
		for i := range params {
			if params[i] != want[i] {
				same = false
				break
			}
		}
		if same {
			return m, true
		}
	}
	return Method{}, false
}

func kind(static bool) string {
	if static {
		return "static"
	}
	return "instance"
}
