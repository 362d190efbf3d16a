// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// readerSize fits a 10⁶-byte input line without growing.
const readerSize = 1 << 20

var (
	// ErrMissingToken indicates input ended before an expected value.
	ErrMissingToken = errors.New("cli: unexpected end of input")

	// ErrBadToken indicates a token that does not parse as a number.
	ErrBadToken = errors.New("cli: malformed number")
)

// Reader splits buffered input into whitespace-separated tokens or lines.
type Reader struct {
	r   *bufio.Reader
	buf []byte
}

// NewReader wraps r in a large buffer.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, readerSize)}
}

// Token returns the next whitespace-delimited token. The slice is only
// valid until the next call.
func (rd *Reader) Token() ([]byte, error) {
	rd.buf = rd.buf[:0]
	for {
		c, err := rd.r.ReadByte()
		if err == io.EOF {
			if len(rd.buf) == 0 {
				return nil, ErrMissingToken
			}

			return rd.buf, nil
		}
		if err != nil {
			return nil, err
		}
		if isSpace(c) {
			if len(rd.buf) == 0 {
				continue
			}

			return rd.buf, nil
		}
		rd.buf = append(rd.buf, c)
	}
}

// Int64 reads the next token as a base-10 int64.
func (rd *Reader) Int64() (int64, error) {
	tok, err := rd.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(string(tok), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return v, nil
}

// Int reads the next token as a base-10 int.
func (rd *Reader) Int() (int, error) {
	tok, err := rd.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(string(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return v, nil
}

// Uint64 reads the next token as a base-10 uint64.
func (rd *Reader) Uint64() (uint64, error) {
	tok, err := rd.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(string(tok), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return v, nil
}

// Line returns the rest of the current line without its "\n" or "\r\n"
// terminator. At end of input it returns "", io.EOF.
func (rd *Reader) Line() (string, error) {
	s, err := rd.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && s == "" {
		return "", io.EOF
	}
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
	}
	if n > 0 && s[n-1] == '\r' {
		n--
	}

	return s[:n], nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}
