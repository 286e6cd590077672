package jvm

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/go-jni/errors"
)

// Options configures the VM created by Create.
type Options struct {
	// Properties become -Dkey=value system properties.
	Properties map[string]string `toml:"properties"`

	// ClassPath entries are joined with the platform list separator into
	// -Djava.class.path.
	ClassPath []string `toml:"class-path"`

	// Extra is passed through verbatim after the generated options.
	Extra []string `toml:"options"`

	// Version is the requested JNI version: "1.6", "1.8", "9", "10", "19",
	// "20" or "21".
	Version string `toml:"version"`

	// MaxHeap is the -Xmx value, e.g. "512m". Empty leaves the VM default.
	MaxHeap string `toml:"max-heap"`

	// CheckJNI enables -Xcheck:jni.
	CheckJNI bool `toml:"check-jni"`

	// IgnoreUnrecognized lets the VM skip options it does not know.
	IgnoreUnrecognized bool `toml:"ignore-unrecognized"`
}

var versions = map[string]int32{
	"1.1": 0x00010001,
	"1.2": 0x00010002,
	"1.4": 0x00010004,
	"1.6": 0x00010006,
	"1.8": 0x00010008,
	"9":   0x00090000,
	"10":  0x000a0000,
	"19":  0x00130000,
	"20":  0x00140000,
	"21":  0x00150000,
}

var heapSize = regexp.MustCompile(`^[1-9][0-9]*[kKmMgG]?$`)

// DefaultOptions returns the default VM configuration: JNI 1.8, no class
// path, VM default heap.
func DefaultOptions() Options {
	return Options{
		Version: "1.8",
	}
}

// LoadOptions reads a TOML file over DefaultOptions. Unknown keys are an
// error so that typos do not silently fall back to defaults.
//
//	version = "21"
//	class-path = ["build/classes", "lib/app.jar"]
//	max-heap = "256m"
//	check-jni = true
//
//	[properties]
//	"java.awt.headless" = "true"
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, errors.Config("cannot decode "+path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.Config(path+": unknown keys "+strings.Join(keys, ", "), nil)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the version and heap size.
func (o Options) Validate() error {
	if _, err := o.VersionCode(); err != nil {
		return err
	}
	if o.MaxHeap != "" && !heapSize.MatchString(o.MaxHeap) {
		return errors.Config("invalid max-heap "+o.MaxHeap, nil)
	}
	return nil
}

// VersionCode returns the JNI_VERSION_* constant for Version. Empty means
// the default.
func (o Options) VersionCode() (int32, error) {
	v := o.Version
	if v == "" {
		v = DefaultOptions().Version
	}
	code, ok := versions[v]
	if !ok {
		return 0, errors.Config("unsupported JNI version "+o.Version, nil)
	}
	return code, nil
}

// Args renders the VM option strings in a stable order.
func (o Options) Args() []string {
	var args []string
	if len(o.ClassPath) > 0 {
		args = append(args, "-Djava.class.path="+strings.Join(o.ClassPath, string(filepath.ListSeparator)))
	}
	if o.MaxHeap != "" {
		args = append(args, "-Xmx"+o.MaxHeap)
	}
	if o.CheckJNI {
		args = append(args, "-Xcheck:jni")
	}

	keys := make([]string, 0, len(o.Properties))
	for k := range o.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+o.Properties[k])
	}

	return append(args, o.Extra...)
}
