package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/sgostarter/libtabulated/tabulated"
)

// Format selects one of the three wire variants at runtime.
type Format int

const (
	FormatBare Format = iota
	FormatFactory
	FormatTagged
)

var formatNames = map[Format]string{
	FormatBare:    "bare",
	FormatFactory: "factory",
	FormatTagged:  "tagged",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	for format, name := range formatNames {
		if strings.EqualFold(s, name) {
			return format, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown format %q", tabulated.ErrConfiguration, s)
}

// Encode writes f in the given format; kind is only used by FormatTagged.
func Encode(w io.Writer, f tabulated.TabulatedFunction, format Format, kind tabulated.Kind) error {
	switch format {
	case FormatBare:
		return Write(w, f)
	case FormatFactory:
		return WriteWithFactory(w, f)
	case FormatTagged:
		return WriteTagged(w, f, kind)
	}

	return fmt.Errorf("%w: unknown format %v", tabulated.ErrConfiguration, format)
}

// Decode reads one function in the given format. A nil factory falls back to
// the registry default; a nil registry is the process-wide one.
func Decode(r io.Reader, format Format, factory tabulated.Factory,
	registry *tabulated.Registry) (tabulated.TabulatedFunction, error) {
	if registry == nil {
		registry = tabulated.StdRegistry()
	}

	switch format {
	case FormatBare:
		return Read(r)
	case FormatFactory:
		if factory == nil {
			factory = registry.DefaultFactory()
		}

		return ReadWithFactory(r, factory)
	case FormatTagged:
		return ReadTaggedFrom(r, registry)
	}

	return nil, fmt.Errorf("%w: unknown format %v", tabulated.ErrConfiguration, format)
}
