package codec

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/sgostarter/libtabulated/tabulated"
	"github.com/stretchr/testify/assert"
)

func squares(t *testing.T, kind tabulated.Kind) tabulated.TabulatedFunction {
	f, err := tabulated.CreateKindFromPoints(kind, []tabulated.Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}, {4, 16}})
	assert.Nil(t, err)

	return f
}

func TestWriteBare(t *testing.T) {
	var buf bytes.Buffer

	f := squares(t, tabulated.KindArray)
	assert.Nil(t, Write(&buf, f))
	assert.Equal(t, "5 0.0 0.0 1.0 1.0 2.0 4.0 3.0 9.0 4.0 16.0\n", buf.String())
	assert.InDelta(t, 6.5, f.Evaluate(2.5), 1e-12)

	buf.Reset()
	assert.Nil(t, WriteWithFactory(&buf, squares(t, tabulated.KindLinkedList)))
	assert.Equal(t, "5 0.0 0.0 1.0 1.0 2.0 4.0 3.0 9.0 4.0 16.0\n", buf.String())
}

func TestWriteTagged(t *testing.T) {
	var buf bytes.Buffer

	assert.Nil(t, WriteTagged(&buf, squares(t, tabulated.KindLinkedList), ""))
	assert.Equal(t, "linkedlist 5 0.0 0.0 1.0 1.0 2.0 4.0 3.0 9.0 4.0 16.0\n", buf.String())

	buf.Reset()
	assert.Nil(t, WriteTagged(&buf, squares(t, tabulated.KindLinkedList), tabulated.KindArray))
	assert.True(t, strings.HasPrefix(buf.String(), "array 5 "))

	buf.Reset()
	err := WriteTagged(&buf, squares(t, tabulated.KindArray), "nope")
	assert.True(t, errors.Is(err, tabulated.ErrConfiguration))
	assert.EqualValues(t, 0, buf.Len())
}

func TestRoundTrip(t *testing.T) {
	for _, kind := range []tabulated.Kind{tabulated.KindArray, tabulated.KindLinkedList} {
		f, err := tabulated.CreateKindFromPoints(kind, []tabulated.Point{
			{-1e-5, 3.25}, {0, -0.0}, {0.001, 1e7}, {123.456, -9.999999e-4}, {2.5e10, math.MaxFloat64},
		})
		assert.Nil(t, err)

		for _, format := range []Format{FormatBare, FormatFactory, FormatTagged} {
			var buf bytes.Buffer

			assert.Nil(t, Encode(&buf, f, format, ""))

			factory, err := tabulated.LookupFactory(kind)
			assert.Nil(t, err)

			g, err := Decode(&buf, format, factory, nil)
			assert.Nil(t, err, "%v %v", kind, format)
			assert.True(t, f.Equal(g), "%v %v", kind, format)
			assert.Equal(t, tabulated.Collect(f), tabulated.Collect(g))

			switch format {
			case FormatBare:
				assert.Equal(t, tabulated.KindArray, g.Kind())
			default:
				assert.Equal(t, kind, g.Kind())
			}
		}
	}
}

func TestTaggedIntoBareReader(t *testing.T) {
	var buf bytes.Buffer

	assert.Nil(t, WriteTagged(&buf, squares(t, tabulated.KindArray), ""))
	stream := buf.String()

	_, err := Read(strings.NewReader(stream))
	assert.True(t, errors.Is(err, tabulated.ErrFormat))

	_, err = ReadWithFactory(strings.NewReader(stream), tabulated.LinkedListFactory{})
	assert.True(t, errors.Is(err, tabulated.ErrFormat))
}

func TestTaggedCustomKindIntoBareReader(t *testing.T) {
	r := tabulated.NewRegistry()
	assert.True(t, errors.Is(r.Register("2", tabulated.ArrayFactory{}), tabulated.ErrConfiguration))
	assert.Nil(t, r.Register("x2", tabulated.ArrayFactory{}))

	f, err := tabulated.CreateFromPoints([]tabulated.Point{{5, 7}, {9, 1}})
	assert.Nil(t, err)

	var buf bytes.Buffer

	assert.Nil(t, WriteTaggedTo(&buf, f, "x2", r))
	assert.Equal(t, "x2 2 5.0 7.0 9.0 1.0\n", buf.String())

	_, err = Read(strings.NewReader(buf.String()))
	assert.True(t, errors.Is(err, tabulated.ErrFormat))

	g, err := ReadTaggedFrom(strings.NewReader(buf.String()), r)
	assert.Nil(t, err)
	assert.True(t, f.Equal(g))
}

func TestBareIntoTaggedReader(t *testing.T) {
	_, err := ReadTagged(strings.NewReader("5 0.0 0.0 1.0 1.0 2.0 4.0 3.0 9.0 4.0 16.0"))
	assert.True(t, errors.Is(err, tabulated.ErrConfiguration))
}

func TestReadErrors(t *testing.T) {
	cases := map[string]error{
		"":                 tabulated.ErrFormat,
		"3 0 0 1 1":        tabulated.ErrFormat,
		"2 0 0 1":          tabulated.ErrFormat,
		"2 0 0 x 1":        tabulated.ErrFormat,
		"2 0 0 1 1e":       tabulated.ErrFormat,
		"2 0 0 , 1 1":      tabulated.ErrFormat,
		"2 0 0 1 1é":       tabulated.ErrFormat,
		"1 0 0":            tabulated.ErrFormat,
		"0":                tabulated.ErrFormat,
		"-3":               tabulated.ErrFormat,
		"2.5 0 0 1 1":      tabulated.ErrFormat,
		"2 0 0 NaN 1":      tabulated.ErrFormat,
		"2 0 0 1 Infinity": tabulated.ErrFormat,
		"2 1 0 0 1":        tabulated.ErrOrderViolation,
		"3 0 0 1 1 1 5":    tabulated.ErrOrderViolation,
	}

	for input, want := range cases {
		_, err := Read(strings.NewReader(input))
		assert.True(t, errors.Is(err, want), "%q: %v", input, err)
	}
}

func TestReadTaggedErrors(t *testing.T) {
	_, err := ReadTagged(strings.NewReader("btree 2 0 0 1 1"))
	assert.True(t, errors.Is(err, tabulated.ErrConfiguration))

	_, err = ReadTagged(strings.NewReader("# 2 0 0 1 1"))
	assert.True(t, errors.Is(err, tabulated.ErrFormat))

	_, err = ReadTagged(strings.NewReader(""))
	assert.True(t, errors.Is(err, tabulated.ErrFormat))

	_, err = ReadTagged(strings.NewReader("array 2 0 0"))
	assert.True(t, errors.Is(err, tabulated.ErrFormat))

	_, err = ReadTaggedFrom(strings.NewReader("array 2 1 0 0 0"), tabulated.NewRegistry())
	assert.True(t, errors.Is(err, tabulated.ErrOrderViolation))
}

func TestReadTaggedCustomRegistry(t *testing.T) {
	r := tabulated.NewRegistry()
	assert.Nil(t, r.Register("mirror", tabulated.LinkedListFactory{}))

	f, err := ReadTaggedFrom(strings.NewReader("mirror 2 0 0 1 1"), r)
	assert.Nil(t, err)
	assert.Equal(t, tabulated.KindLinkedList, f.Kind())

	_, err = ReadTagged(strings.NewReader("mirror 2 0 0 1 1"))
	assert.True(t, errors.Is(err, tabulated.ErrConfiguration))
}

func TestReadTieWithinTolerance(t *testing.T) {
	_, err := Read(strings.NewReader("3 0 0 1 1 1.00000000001 5"))
	assert.True(t, errors.Is(err, tabulated.ErrOrderViolation))
}

func TestReadWithFactoryNil(t *testing.T) {
	_, err := ReadWithFactory(strings.NewReader("2 0 0 1 1"), nil)
	assert.True(t, errors.Is(err, tabulated.ErrConfiguration))
}

func TestReadSeparators(t *testing.T) {
	f, err := Read(strings.NewReader("\r\n  2\t0.0\n0.0\r\n1.0E0 \t 2.5   "))
	assert.Nil(t, err)
	assert.Equal(t, []tabulated.Point{{0, 0}, {1, 2.5}}, tabulated.Collect(f))
}

func TestReadUnderlyingError(t *testing.T) {
	f, err := Read(iotest.OneByteReader(strings.NewReader("2 0 0 1 1")))
	assert.Nil(t, err)
	assert.EqualValues(t, 2, f.PointsCount())

	_, err = Read(iotest.ErrReader(errors.New("broken pipe")))
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, tabulated.ErrFormat))
}

func TestDecoderStream(t *testing.T) {
	var buf bytes.Buffer

	assert.Nil(t, Write(&buf, squares(t, tabulated.KindArray)))
	assert.Nil(t, WriteTagged(&buf, squares(t, tabulated.KindLinkedList), ""))

	d := NewDecoder(&buf)

	a, err := d.Read()
	assert.Nil(t, err)
	assert.Equal(t, tabulated.KindArray, a.Kind())

	l, err := d.ReadTagged(nil)
	assert.Nil(t, err)
	assert.Equal(t, tabulated.KindLinkedList, l.Kind())
	assert.True(t, a.Equal(l))

	_, err = d.Read()
	assert.True(t, errors.Is(err, tabulated.ErrFormat))
}

func TestWriteNonFinite(t *testing.T) {
	f := squares(t, tabulated.KindArray)
	assert.Nil(t, f.SetPointY(0, math.NaN()))

	var buf bytes.Buffer

	assert.True(t, errors.Is(Write(&buf, f), tabulated.ErrFormat))
	assert.EqualValues(t, 0, buf.Len())
}

func TestFormat(t *testing.T) {
	for _, format := range []Format{FormatBare, FormatFactory, FormatTagged} {
		parsed, err := ParseFormat(strings.ToUpper(format.String()))
		assert.Nil(t, err)
		assert.Equal(t, format, parsed)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.Is(err, tabulated.ErrConfiguration))

	assert.Equal(t, "Format(9)", Format(9).String())
	assert.True(t, errors.Is(Encode(&bytes.Buffer{}, squares(t, tabulated.KindArray), Format(9), ""),
		tabulated.ErrConfiguration))
}
