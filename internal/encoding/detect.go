// Package encoding normalizes uploaded ledger files to UTF-8 before parsing.
// Finance exports from desktop spreadsheet tools regularly arrive as
// Windows-1252 or UTF-16 with a BOM.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

// NewUTF8Reader wraps r in a reader that yields UTF-8 text regardless of the
// source encoding. A UTF-8 BOM is stripped, UTF-16 BOMs select the matching
// decoder, valid UTF-8 passes through, and anything else goes through
// chardet with Windows-1252 as the final fallback.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if rd, ok := bomReader(br, head); ok {
		return rd, nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return transform.NewReader(br, sniffDecoder(head)), nil
}

// bomReader handles byte-order-marked input. The UTF-8 BOM is discarded so
// it can never end up glued to the first header cell.
func bomReader(br *bufio.Reader, head []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}):
		_, _ = br.Discard(3)
		return br, true
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

// sniffDecoder picks a legacy single-byte decoder for non-UTF-8 content.
func sniffDecoder(head []byte) transform.Transformer {
	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		switch result.Charset {
		case "ISO-8859-9":
			return charmap.ISO8859_9.NewDecoder()
		case "ISO-8859-15":
			return charmap.ISO8859_15.NewDecoder()
		}
	}

	// ISO-8859-1 is a strict subset of Windows-1252, so one decoder
	// covers both common cases.
	return charmap.Windows1252.NewDecoder()
}
