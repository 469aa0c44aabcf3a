package minit

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func harianRecord() *Record {
	return &Record{
		TemplateID:     "Harian",
		SequenceNumber: "3",
		Date:           "2025-01-10",
		Time:           "9 pm",
		Venue:          "Pejabat",
		Attendees: []Attendee{
			{Seq: 1, Role: "Ketua Pemuda", Name: "Irsyad", Presence: Present},
			{Seq: 2, Role: "Setiausaha", Name: "Hakim", Presence: Absent},
			{Seq: 3, Role: "Bendahari", Name: "Izzuddin", Presence: Present},
		},
		AgendaItems: []AgendaItem{
			{Title: "Ucapan Aluan", DiscussionNotes: "1.1 Salam\n1.2 Aluan"},
		},
		ClosingRemarks: DefaultClosing,
		PreparedBy: PreparedBy{
			DisplayName:   "Muhammad Hakim bin Mokhtar",
			Position:      "Setiausaha DPPKR",
			SignatureName: "hakim",
		},
	}
}

// sectionParagraphs returns the paragraph blocks between the heading with the
// given text and the next heading.
func sectionParagraphs(t *testing.T, blocks []Block, heading string) []Paragraph {
	t.Helper()
	var out []Paragraph
	in := false
	for _, b := range blocks {
		switch blk := b.(type) {
		case Heading:
			if in {
				return out
			}
			in = blk.Text == heading
		case Paragraph:
			if in {
				out = append(out, blk)
			}
		}
	}
	if !in {
		t.Fatalf("heading %q not found", heading)
	}
	return out
}

func TestComposeIsDeterministic(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	a, warnA, errA := Compose(rec, tpl)
	b, warnB, errB := Compose(rec, tpl)
	req.NoError(errA)
	req.NoError(errB)
	req.Empty(warnA)
	req.Empty(warnB)
	req.True(reflect.DeepEqual(a, b))
}

func TestComposeNeverMutatesRecord(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	before := *rec
	beforeAttendees := append([]Attendee(nil), rec.Attendees...)
	_, _, err = Compose(rec, tpl)
	req.NoError(err)
	req.Equal(before.SequenceNumber, rec.SequenceNumber)
	req.Equal(before.ClosingRemarks, rec.ClosingRemarks)
	req.Equal(beforeAttendees, rec.Attendees)
}

func TestComposeBlankSequenceRendersPlaceholder(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.SequenceNumber = ""
	blocks, _, err := Compose(rec, tpl)
	req.NoError(err)

	var kv *KeyValueTable
	for _, b := range blocks {
		if tbl, ok := b.(KeyValueTable); ok {
			kv = &tbl
			break
		}
	}
	req.NotNil(kv)
	req.Equal("BIL.", kv.Rows[0].Label)
	req.Contains(kv.Rows[0].Value, "___")
}

func TestComposeWhitespaceSequenceRendersPlaceholder(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	for _, seq := range []string{" ", "   ", "\t"} {
		rec := harianRecord()
		rec.SequenceNumber = seq
		blocks, _, err := Compose(rec, tpl)
		req.NoError(err)

		var kv *KeyValueTable
		for _, b := range blocks {
			if tbl, ok := b.(KeyValueTable); ok {
				kv = &tbl
				break
			}
		}
		req.NotNil(kv)
		req.Contains(kv.Rows[0].Value, "___")
		req.Equal("x", rec.FileSequence())
		req.Equal("___", rec.DisplaySequence())
	}
}

func TestComposeAttendanceCountIndependentOfOrder(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	blocks, _, err := Compose(rec, tpl)
	req.NoError(err)

	rev := harianRecord()
	rev.Attendees = []Attendee{rec.Attendees[2], rec.Attendees[1], rec.Attendees[0]}
	revBlocks, _, err := Compose(rev, tpl)
	req.NoError(err)

	for _, bl := range [][]Block{blocks, revBlocks} {
		var grid *GridTable
		for _, b := range bl {
			if g, ok := b.(GridTable); ok {
				grid = &g
				break
			}
		}
		req.NotNil(grid)
		req.Len(grid.Rows, 3)
		req.Len(grid.Header, 5)

		paras := sectionParagraphs(t, bl, titleAttendance)
		req.Len(paras, 1)
		req.Equal("Jumlah kehadiran : 2 / 3", paras[0].Text)
	}
}

func TestComposeEmptyClosingRendersSingleDash(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.ClosingRemarks = ""
	blocks, _, err := Compose(rec, tpl)
	req.NoError(err)

	// The closing section runs to the end of the document, so the signature
	// paragraphs follow the closing text itself.
	paras := sectionParagraphs(t, blocks, titleClosing)
	req.Equal("-", paras[0].Text)
	dashes := 0
	for _, p := range paras {
		if p.Text == "-" {
			dashes++
		}
	}
	req.Equal(1, dashes)
}

func TestComposeFixedSectionOrder(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.OpenMatters = ""
	blocks, _, err := Compose(rec, tpl)
	req.NoError(err)

	var headings []string
	for _, b := range blocks {
		if h, ok := b.(Heading); ok {
			headings = append(headings, h.Text)
		}
	}
	req.Equal([]string{
		tpl.OrgLine, tpl.OrgSubLine, tpl.DocumentTitle,
		titleAttendance, titleAgenda, titleDiscussion, titleOpenMatters, titleClosing,
	}, headings)
}

func TestComposeUnknownTemplateIsFatal(t *testing.T) {
	req := require.New(t)
	_, err := Lookup("Tahunan")
	req.Error(err)
	var cerr *ConfigurationError
	req.ErrorAs(err, &cerr)

	_, _, err = Compose(harianRecord(), &Template{ID: "kosong"})
	req.ErrorAs(err, &cerr)
}

func TestComposeEndToEndScenario(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := &Record{
		TemplateID:     "Harian",
		SequenceNumber: "",
		Date:           "2025-01-10",
		Time:           "9pm",
		Venue:          "Office",
		Attendees: []Attendee{
			{Seq: 1, Role: "Ketua Pemuda", Name: "Irsyad", Presence: Present},
			{Seq: 2, Role: "Setiausaha", Name: "Hakim", Presence: Absent},
			{Seq: 3, Role: "Bendahari", Name: "Izzuddin", Presence: Present},
		},
		AgendaItems:    []AgendaItem{{Title: "Opening", DiscussionNotes: "1.1 Welcome\n1.2 Roll call"}},
		OpenMatters:    "",
		ClosingRemarks: "",
		PreparedBy:     PreparedBy{DisplayName: "Hakim", Position: "Setiausaha", SignatureName: "hakim"},
	}

	blocks, warns, err := Compose(rec, tpl)
	req.NoError(err)
	req.Empty(warns)

	// Header + meta.
	req.IsType(Heading{}, blocks[0])
	var kv KeyValueTable
	for _, b := range blocks {
		if tbl, ok := b.(KeyValueTable); ok {
			kv = tbl
			break
		}
	}
	req.Contains(kv.Rows[0].Value, "___")
	req.Equal("10 January 2025", kv.Rows[1].Value)

	// Attendance: header + 3 data rows, 2 / 3 present.
	var grid GridTable
	for _, b := range blocks {
		if g, ok := b.(GridTable); ok {
			grid = g
			break
		}
	}
	req.Len(grid.Rows, 3)
	req.Equal("/", grid.Rows[0][3])
	req.Equal("X", grid.Rows[1][3])
	att := sectionParagraphs(t, blocks, titleAttendance)
	req.Equal("Jumlah kehadiran : 2 / 3", att[0].Text)

	agenda := sectionParagraphs(t, blocks, titleAgenda)
	req.Len(agenda, 1)
	req.Equal("1) Opening", agenda[0].Text)

	disc := sectionParagraphs(t, blocks, titleDiscussion)
	req.Len(disc, 3)
	req.Equal(Paragraph{Text: "1. Opening", Style: StyleBold}, disc[0])
	req.Equal("1.1 Welcome", disc[1].Text)
	req.Equal("1.2 Roll call", disc[2].Text)

	open := sectionParagraphs(t, blocks, titleOpenMatters)
	req.Len(open, 1)
	req.Equal("-", open[0].Text)

	closing := sectionParagraphs(t, blocks, titleClosing)
	req.Len(closing, 6)
	req.Equal("-", closing[0].Text)
	req.Equal("Disediakan oleh:", closing[1].Text)
	req.Equal(Paragraph{Text: "hakim", Style: StyleSignature}, closing[2])
	req.Equal(signatureRule, closing[3].Text)
	req.Equal(Paragraph{Text: "Hakim", Style: StyleBold}, closing[4])
	req.Equal(Paragraph{Text: "Setiausaha", Style: StyleBold}, closing[5])
}

func TestSplitNoteLinesDropsBlankLines(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"A", "B", "C"}, SplitNoteLines("A\n\nB\n  \nC"))
	req.Nil(SplitNoteLines("   \n\t\n"))
	req.Nil(SplitNoteLines(""))
}

func TestFormatDate(t *testing.T) {
	req := require.New(t)
	req.Equal("10 January 2025", FormatDate("2025-01-10"))
	req.Equal("bukan-tarikh", FormatDate("bukan-tarikh"))
}
