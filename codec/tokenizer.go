package codec

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/sgostarter/libtabulated/tabulated"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenWord
	tokenOrdinary
)

type token struct {
	kind tokenKind
	text string
}

func (t token) String() string {
	if t.kind == tokenEOF {
		return "end of input"
	}

	return t.text
}

// tokenizer splits a rune stream into words, single-rune ordinary tokens
// and EOF. Control characters and space separate tokens.
type tokenizer struct {
	r  io.RuneScanner
	sb strings.Builder
}

func newTokenizer(r io.Reader) *tokenizer {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}

	return &tokenizer{r: rs}
}

func isSeparator(c rune) bool {
	return c <= ' '
}

func (t *tokenizer) next() (token, error) {
	var c rune

	for {
		var err error

		c, _, err = t.r.ReadRune()
		if errors.Is(err, io.EOF) {
			return token{kind: tokenEOF}, nil
		}

		if err != nil {
			return token{}, err
		}

		if !isSeparator(c) {
			break
		}
	}

	if !tabulated.IsWordChar(c) {
		return token{kind: tokenOrdinary, text: string(c)}, nil
	}

	t.sb.Reset()
	t.sb.WriteRune(c)

	for {
		c, _, err := t.r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return token{}, err
		}

		if !tabulated.IsWordChar(c) {
			if !isSeparator(c) {
				_ = t.r.UnreadRune()
			}

			break
		}

		t.sb.WriteRune(c)
	}

	return token{kind: tokenWord, text: t.sb.String()}, nil
}
