package gpu

import "fmt"

// CommandWord is an opaque 128-bit command word. Hi holds bits 127:64, Lo
// holds bits 63:0.
type CommandWord struct {
	Hi, Lo uint64
}

// Field names a bit range within a command word. Offset is the LSB position
// counted from bit 0 of the 128-bit word.
type Field struct {
	Offset, Width uint
}

// The fixed command word layout. Bits 26:0 are padding and have no field.
var (
	FieldShapeType  = Field{Offset: 124, Width: 4}
	FieldX0         = Field{Offset: 116, Width: 8}
	FieldY0         = Field{Offset: 108, Width: 8}
	FieldX1         = Field{Offset: 100, Width: 8}
	FieldY1         = Field{Offset: 92, Width: 8}
	FieldX2         = Field{Offset: 84, Width: 8}
	FieldY2         = Field{Offset: 76, Width: 8}
	FieldFillEnable = Field{Offset: 75, Width: 1}
	FieldColor      = Field{Offset: 51, Width: 24}
	FieldBgColor    = Field{Offset: 27, Width: 24}
)

// Extract returns the value of the given bit range. Fields can straddle the
// Hi/Lo boundary (the color field does).
func (w CommandWord) Extract(f Field) uint32 {
	mask := uint64(1)<<f.Width - 1

	var v uint64
	if f.Offset >= 64 {
		v = w.Hi >> (f.Offset - 64)
	} else {
		v = w.Lo >> f.Offset
		if f.Offset+f.Width > 64 {
			v |= w.Hi << (64 - f.Offset)
		}
	}

	return uint32(v & mask)
}

func (w CommandWord) withField(f Field, v uint32) CommandWord {
	val := uint64(v) & (uint64(1)<<f.Width - 1)

	if f.Offset >= 64 {
		w.Hi |= val << (f.Offset - 64)
	} else {
		w.Lo |= val << f.Offset
		if f.Offset+f.Width > 64 {
			w.Hi |= val >> (64 - f.Offset)
		}
	}

	return w
}

// String renders the word as 32 hex digits, MSB first.
func (w CommandWord) String() string {
	return fmt.Sprintf("%016x%016x", w.Hi, w.Lo)
}

// WordBuilder composes command words field by field. Unset fields stay zero.
type WordBuilder struct {
	word CommandWord
}

// WithShapeType sets the shape_type field.
func (b WordBuilder) WithShapeType(v uint8) WordBuilder {
	b.word = b.word.withField(FieldShapeType, uint32(v))
	return b
}

// WithP0 sets the (x0, y0) coordinate pair.
func (b WordBuilder) WithP0(x, y uint8) WordBuilder {
	b.word = b.word.withField(FieldX0, uint32(x))
	b.word = b.word.withField(FieldY0, uint32(y))
	return b
}

// WithP1 sets the (x1, y1) coordinate pair.
func (b WordBuilder) WithP1(x, y uint8) WordBuilder {
	b.word = b.word.withField(FieldX1, uint32(x))
	b.word = b.word.withField(FieldY1, uint32(y))
	return b
}

// WithP2 sets the (x2, y2) coordinate pair.
func (b WordBuilder) WithP2(x, y uint8) WordBuilder {
	b.word = b.word.withField(FieldX2, uint32(x))
	b.word = b.word.withField(FieldY2, uint32(y))
	return b
}

// WithFillEnable sets the fill_enable bit.
func (b WordBuilder) WithFillEnable(fill bool) WordBuilder {
	if fill {
		b.word = b.word.withField(FieldFillEnable, 1)
	}
	return b
}

// WithColor sets the 24-bit packed RGB color field.
func (b WordBuilder) WithColor(rgb uint32) WordBuilder {
	b.word = b.word.withField(FieldColor, rgb)
	return b
}

// WithBgColor sets the 24-bit packed RGB background color field.
func (b WordBuilder) WithBgColor(rgb uint32) WordBuilder {
	b.word = b.word.withField(FieldBgColor, rgb)
	return b
}

// Build creates the command word.
func (b WordBuilder) Build() CommandWord {
	return b.word
}
