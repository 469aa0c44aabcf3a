package minit

import (
	"fmt"
	"strings"
	"time"
)

// Section titles of the official minutes format.
const (
	titleAttendance  = "KEHADIRAN"
	titleAgenda      = "AGENDA"
	titleDiscussion  = "PERBINCANGAN"
	titleOpenMatters = "HAL-HAL BERBANGKIT"
	titleClosing     = "PENUTUP"
	labelPreparedBy  = "Disediakan oleh:"
	signatureRule    = "________________"

	// Every absent text field renders as this placeholder so each document
	// keeps the same section skeleton regardless of how much was filled in.
	placeholder = "-"
)

// Attendance grid column widths in mm, matching the official layout.
var attendanceColWidths = []float64{12, 70, 40, 18, 30}

// Compose maps one validated record plus its template into the ordered block
// sequence of the printable minutes. The order is fixed; content gaps degrade
// to placeholder blocks, never to missing sections. Warnings carry recoverable
// problems (an undecodable letterhead); the error return is reserved for
// malformed template configuration.
func Compose(r *Record, t *Template) ([]Block, []error, error) {
	if t == nil || len(t.Roster) == 0 {
		id := ""
		if t != nil {
			id = t.ID
		}
		return nil, nil, &ConfigurationError{TemplateID: id, Reason: "empty roster"}
	}

	var blocks []Block
	var warnings []error

	// 1. Letterhead, scaled to print width, never upscaled.
	if len(r.Letterhead) > 0 {
		lh, err := DecodeLetterhead(r.Letterhead)
		if err != nil {
			warnings = append(warnings, err)
		} else {
			w, h := lh.Fit(LetterheadMaxWidthMM)
			blocks = append(blocks, Image{Data: lh.Data, Width: w, Height: h})
		}
	}

	// 2. Organization header.
	blocks = append(blocks,
		Heading{Text: t.OrgLine, Level: 1},
		Heading{Text: t.OrgSubLine, Level: 1},
		Heading{Text: t.DocumentTitle, Level: 1},
		Spacer{Height: 3},
	)

	// 3. Meta table, rows per template order.
	blocks = append(blocks, KeyValueTable{Rows: metaRows(r, t)}, Spacer{Height: 3})

	// 4. Attendance.
	blocks = append(blocks, Heading{Text: titleAttendance, Level: 2})
	grid := GridTable{
		Header:    []string{"No", "Jawatan", "Nama", "Hadir", "Catatan"},
		ColWidths: attendanceColWidths,
	}
	present := 0
	for i, a := range r.Attendees {
		if a.Presence == Present {
			present++
		}
		grid.Rows = append(grid.Rows, []string{
			fmt.Sprintf("%d", i+1), a.Role, a.Name, a.Presence.Marker(), a.Note,
		})
	}
	blocks = append(blocks,
		grid,
		Spacer{Height: 2},
		Paragraph{Text: fmt.Sprintf("Jumlah kehadiran : %d / %d", present, len(r.Attendees))},
		Spacer{Height: 4},
	)

	// 5. Agenda listing.
	blocks = append(blocks, Heading{Text: titleAgenda, Level: 2})
	for i, ag := range r.AgendaItems {
		blocks = append(blocks, Paragraph{Text: fmt.Sprintf("%d) %s", i+1, ag.Title)})
	}
	blocks = append(blocks, Spacer{Height: 4})

	// 6. Discussion: bold item title, one paragraph per non-blank note line.
	blocks = append(blocks, Heading{Text: titleDiscussion, Level: 2})
	for i, ag := range r.AgendaItems {
		blocks = append(blocks, Paragraph{Text: fmt.Sprintf("%d. %s", i+1, ag.Title), Style: StyleBold})
		lines := SplitNoteLines(ag.DiscussionNotes)
		if len(lines) == 0 {
			blocks = append(blocks, Paragraph{Text: placeholder})
		}
		for _, ln := range lines {
			blocks = append(blocks, Paragraph{Text: ln})
		}
		blocks = append(blocks, Spacer{Height: 2})
	}

	// 7. Open matters.
	blocks = append(blocks, Heading{Text: titleOpenMatters, Level: 2})
	matters := SplitNoteLines(r.OpenMatters)
	if len(matters) == 0 {
		blocks = append(blocks, Paragraph{Text: placeholder})
	}
	for _, ln := range matters {
		blocks = append(blocks, Paragraph{Text: ln})
	}
	blocks = append(blocks, Spacer{Height: 4})

	// 8. Closing.
	closing := strings.TrimSpace(r.ClosingRemarks)
	if closing == "" {
		closing = placeholder
	}
	blocks = append(blocks,
		Heading{Text: titleClosing, Level: 2},
		Paragraph{Text: closing},
		Spacer{Height: 6},
	)

	// 9. Signature block.
	blocks = append(blocks,
		Paragraph{Text: labelPreparedBy},
		Spacer{Height: 8},
		Paragraph{Text: r.PreparedBy.SignatureName, Style: StyleSignature},
		Paragraph{Text: signatureRule},
		Spacer{Height: 3},
		Paragraph{Text: r.PreparedBy.DisplayName, Style: StyleBold},
		Paragraph{Text: r.PreparedBy.Position, Style: StyleBold},
	)

	return blocks, warnings, nil
}

// metaRows builds the key-value rows the template declares, in its order.
func metaRows(r *Record, t *Template) []KVRow {
	rows := make([]KVRow, 0, len(t.MetaFields))
	for _, f := range t.MetaFields {
		switch f {
		case MetaSequence:
			v := r.DisplaySequence()
			if t.Term != "" {
				v += " / " + t.Term
			}
			rows = append(rows, KVRow{Label: "BIL.", Value: v})
		case MetaDate:
			rows = append(rows, KVRow{Label: "Tarikh:", Value: FormatDate(r.Date)})
		case MetaTime:
			rows = append(rows, KVRow{Label: "Masa:", Value: orDash(r.Time)})
		case MetaVenue:
			rows = append(rows, KVRow{Label: "Tempat:", Value: orDash(r.Venue)})
		case MetaChair:
			rows = append(rows, KVRow{Label: "Pengerusi:", Value: orDash(r.Chair)})
		}
	}
	return rows
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// FormatDate renders a YYYY-MM-DD date as day month-name year, the format the
// printed minutes use. Unparseable input passes through untouched.
func FormatDate(d string) string {
	t, err := time.Parse(DateLayout, d)
	if err != nil {
		return d
	}
	return t.Format("02 January 2006")
}

// SplitNoteLines breaks raw multi-line text into trimmed non-blank lines.
// Numbering such as "1.1" stays caller-supplied plain text.
func SplitNoteLines(s string) []string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			out = append(out, ln)
		}
	}
	return out
}
