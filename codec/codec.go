package codec

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sgostarter/libtabulated/tabulated"
)

const maxPreallocatedPoints = 1024

func appendPoints(buf []byte, f tabulated.TabulatedFunction) ([]byte, error) {
	buf = strconv.AppendInt(buf, int64(f.PointsCount()), 10)

	for p := range f.Points() {
		for _, v := range [2]float64{p.X, p.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: cannot encode %v at %v", tabulated.ErrFormat, v, p)
			}

			buf = append(buf, ' ')
			buf = appendNumber(buf, v)
		}
	}

	return append(buf, '\n'), nil
}

func write(w io.Writer, prefix []byte, f tabulated.TabulatedFunction) error {
	if f == nil {
		return fmt.Errorf("%w: nil function", tabulated.ErrValidation)
	}

	buf, err := appendPoints(prefix, f)
	if err != nil {
		return err
	}

	_, err = w.Write(buf)

	return err
}

// Write emits "<count> <x0> <y0> ... <xN> <yN>\n".
func Write(w io.Writer, f tabulated.TabulatedFunction) error {
	return write(w, nil, f)
}

// WriteWithFactory produces the same bytes as Write; the factory only matters
// on the read side.
func WriteWithFactory(w io.Writer, f tabulated.TabulatedFunction) error {
	return write(w, nil, f)
}

// WriteTagged prefixes the point list with a backend kind. An empty kind
// means f.Kind(). The kind must be registered in the process-wide registry.
func WriteTagged(w io.Writer, f tabulated.TabulatedFunction, kind tabulated.Kind) error {
	return WriteTaggedTo(w, f, kind, tabulated.StdRegistry())
}

func WriteTaggedTo(w io.Writer, f tabulated.TabulatedFunction, kind tabulated.Kind, registry *tabulated.Registry) error {
	if f == nil {
		return fmt.Errorf("%w: nil function", tabulated.ErrValidation)
	}

	if kind == "" {
		kind = f.Kind()
	}

	if registry == nil {
		registry = tabulated.StdRegistry()
	}

	if _, err := registry.Factory(kind); err != nil {
		return err
	}

	prefix := make([]byte, 0, len(kind)+1)
	prefix = append(prefix, kind...)
	prefix = append(prefix, ' ')

	return write(w, prefix, f)
}

// Read parses the bare format and always builds an array backed function.
func Read(r io.Reader) (tabulated.TabulatedFunction, error) {
	return NewDecoder(r).Read()
}

func ReadWithFactory(r io.Reader, factory tabulated.Factory) (tabulated.TabulatedFunction, error) {
	return NewDecoder(r).ReadWithFactory(factory)
}

// ReadTagged resolves the leading kind through the process-wide registry.
func ReadTagged(r io.Reader) (tabulated.TabulatedFunction, error) {
	return NewDecoder(r).ReadTagged(tabulated.StdRegistry())
}

func ReadTaggedFrom(r io.Reader, registry *tabulated.Registry) (tabulated.TabulatedFunction, error) {
	return NewDecoder(r).ReadTagged(registry)
}

//
//
//

// Decoder reads consecutive functions from one stream. It buffers the
// underlying reader unless that already is an io.RuneScanner, so bytes past
// the last token read may be consumed from r.
type Decoder struct {
	tokens *tokenizer
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		tokens: newTokenizer(r),
	}
}

func (d *Decoder) Read() (tabulated.TabulatedFunction, error) {
	return d.ReadWithFactory(tabulated.ArrayFactory{})
}

func (d *Decoder) ReadWithFactory(factory tabulated.Factory) (tabulated.TabulatedFunction, error) {
	if err := tabulated.ValidateFactory(factory); err != nil {
		return nil, err
	}

	points, err := d.readPoints()
	if err != nil {
		return nil, err
	}

	if err = tabulated.CheckPoints(points); err != nil {
		return nil, err
	}

	return factory.FromPoints(points)
}

func (d *Decoder) ReadTagged(registry *tabulated.Registry) (tabulated.TabulatedFunction, error) {
	if registry == nil {
		registry = tabulated.StdRegistry()
	}

	tok, err := d.tokens.next()
	if err != nil {
		return nil, err
	}

	if tok.kind != tokenWord {
		return nil, fmt.Errorf("%w: expected backend kind, got %s", tabulated.ErrFormat, tok)
	}

	factory, err := registry.Factory(tabulated.Kind(tok.text))
	if err != nil {
		return nil, err
	}

	return d.ReadWithFactory(factory)
}

func (d *Decoder) word(what string) (string, error) {
	tok, err := d.tokens.next()
	if err != nil {
		return "", err
	}

	switch tok.kind {
	case tokenEOF:
		return "", fmt.Errorf("%w: unexpected end of input, expected %s", tabulated.ErrFormat, what)
	case tokenOrdinary:
		return "", fmt.Errorf("%w: unexpected character %q, expected %s", tabulated.ErrFormat, tok.text, what)
	}

	return tok.text, nil
}

func (d *Decoder) readCount() (int, error) {
	text, err := d.word("point count")
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: expected point count, got %q", tabulated.ErrFormat, text)
	}

	if count < 2 {
		return 0, fmt.Errorf("%w: point count %d is less than 2", tabulated.ErrFormat, count)
	}

	return count, nil
}

func (d *Decoder) readNumber(what string) (float64, error) {
	text, err := d.word(what)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: expected %s, got %q", tabulated.ErrFormat, what, text)
	}

	return v, nil
}

func (d *Decoder) readPoints() ([]tabulated.Point, error) {
	count, err := d.readCount()
	if err != nil {
		return nil, err
	}

	points := make([]tabulated.Point, 0, min(count, maxPreallocatedPoints))

	for i := 0; i < count; i++ {
		x, err := d.readNumber(fmt.Sprintf("x of point %d", i))
		if err != nil {
			return nil, err
		}

		y, err := d.readNumber(fmt.Sprintf("y of point %d", i))
		if err != nil {
			return nil, err
		}

		points = append(points, tabulated.NewPoint(x, y))
	}

	return points, nil
}
