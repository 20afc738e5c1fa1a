// @focus: #persist { codec }
package document

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/glyph-painter/core"
)

// ErrFormat reports a malformed or truncated document
var ErrFormat = errors.New("malformed document")

// headerSize is the width byte plus the height byte
const headerSize = 2

// Wire layout, no version tag:
//
//	byte 0     width  (0 means 256)
//	byte 1     height (0 means 256)
//	bytes 2..  width*height cells, row-major, uint16 little-endian
//	           bits 0-7 glyph, 8-11 fg, 12-15 bg

func encodeDim(v int) byte {
	return byte(v) // 256 wraps to 0
}

func decodeDim(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}

// EncodedSize returns the byte length of a width x height document
func EncodedSize(width, height int) int {
	return headerSize + 2*width*height
}

// Encode writes the visible window of g
func Encode(w io.Writer, g *core.Grid) error {
	var row []core.Cell
	// EncodeCells walks row-major, fetch each row once
	return EncodeCells(w, g.Width(), g.Height(), func(x, y int) core.Cell {
		if x == 0 {
			row = g.Row(y)
		}
		return row[x]
	})
}

// EncodeCells writes a width x height region supplied by at
func EncodeCells(w io.Writer, width, height int, at func(x, y int) core.Cell) error {
	if width < 1 || width > core.MaxWidth || height < 1 || height > core.MaxHeight {
		return fmt.Errorf("encode %dx%d: %w", width, height, core.ErrInvalidResize)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write([]byte{encodeDim(width), encodeDim(height)}); err != nil {
		return err
	}
	var word [2]byte
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			binary.LittleEndian.PutUint16(word[:], at(x, y).Pack())
			if _, err := bw.Write(word[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// DecodeCells reads a document into its dimensions and row-major cells
// Short reads and trailing bytes fail closed with ErrFormat
func DecodeCells(r io.Reader) (width, height int, cells []core.Cell, err error) {
	br := bufio.NewReader(r)

	var hdr [headerSize]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return 0, 0, nil, fmt.Errorf("header: %w", formatErr(err))
	}
	width, height = decodeDim(hdr[0]), decodeDim(hdr[1])

	cells = make([]core.Cell, width*height)
	var word [2]byte
	for i := range cells {
		if _, err := io.ReadFull(br, word[:]); err != nil {
			return 0, 0, nil, fmt.Errorf("cell %d of %dx%d: %w", i, width, height, formatErr(err))
		}
		cells[i] = core.UnpackCell(binary.LittleEndian.Uint16(word[:]))
	}

	if _, err := br.ReadByte(); err == nil {
		return 0, 0, nil, fmt.Errorf("trailing data after %dx%d cells: %w", width, height, ErrFormat)
	} else if err != io.EOF {
		return 0, 0, nil, err
	}
	return width, height, cells, nil
}

// Decode reads a document into a new grid
func Decode(r io.Reader) (*core.Grid, error) {
	width, height, cells, err := DecodeCells(r)
	if err != nil {
		return nil, err
	}
	g := core.NewGrid(width, height)
	for i, c := range cells {
		if err := g.Set(i%width, i/width, c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// formatErr maps short reads to ErrFormat, keeping real IO failures
func formatErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrFormat
	}
	return err
}
