package minit

// Block is one renderer-agnostic unit of document content. The composer emits
// an ordered slice of these; the renderer owns pagination and pixels.
type Block interface{ blockKind() string }

type Heading struct {
	Text  string
	Level int
}

// KVRow is one label/value line of a key-value table.
type KVRow struct {
	Label string
	Value string
}

type KeyValueTable struct {
	Rows []KVRow
}

// GridTable is a bordered table with a header row. ColWidths are in mm and
// positional per column.
type GridTable struct {
	Header    []string
	Rows      [][]string
	ColWidths []float64
}

type ParagraphStyle int

const (
	StyleNormal ParagraphStyle = iota
	StyleBold
	StyleSignature
)

type Paragraph struct {
	Text  string
	Style ParagraphStyle
}

// Spacer is vertical whitespace in mm.
type Spacer struct {
	Height float64
}

// Image is raw encoded image bytes with the print size in mm.
type Image struct {
	Data   []byte
	Width  float64
	Height float64
}

func (Heading) blockKind() string       { return "heading" }
func (KeyValueTable) blockKind() string { return "kv_table" }
func (GridTable) blockKind() string     { return "grid_table" }
func (Paragraph) blockKind() string     { return "paragraph" }
func (Spacer) blockKind() string        { return "spacer" }
func (Image) blockKind() string         { return "image" }
