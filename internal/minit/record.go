package minit

import (
	"strings"
	"time"
)

// Presence is the attendance status of one roster slot. It is a strict
// two-valued enum; anything else is rejected at validation time.
type Presence string

const (
	Present Presence = "hadir"
	Absent  Presence = "tidak_hadir"
)

func (p Presence) Valid() bool { return p == Present || p == Absent }

// Marker is the literal cell value printed in the attendance table.
func (p Presence) Marker() string {
	if p == Present {
		return "/"
	}
	return "X"
}

type Attendee struct {
	Seq      int      `json:"seq"`
	Role     string   `json:"role"`
	Name     string   `json:"name"`
	Presence Presence `json:"presence"`
	Note     string   `json:"note"`
}

type AgendaItem struct {
	Title string `json:"title"`
	// DiscussionNotes is raw multi-line text; each non-blank line becomes one
	// paragraph. Numbering like "1.1" is caller-supplied text, not parsed.
	DiscussionNotes string `json:"discussion_notes"`
}

type PreparedBy struct {
	DisplayName   string `json:"display_name" validate:"required"`
	Position      string `json:"position" validate:"required"`
	SignatureName string `json:"signature_name" validate:"required"`
}

// Record holds every user-supplied field for one meeting. It is built fresh
// per request and never mutated by composition.
type Record struct {
	TemplateID     string       `json:"template_id" validate:"required"`
	SequenceNumber string       `json:"sequence_number"`
	Date           string       `json:"date" validate:"required"`
	Time           string       `json:"time"`
	Venue          string       `json:"venue"`
	Chair          string       `json:"chair"`
	Attendees      []Attendee   `json:"attendees"`
	AgendaItems    []AgendaItem `json:"agenda_items"`
	OpenMatters    string       `json:"open_matters"`
	ClosingRemarks string       `json:"closing_remarks"`
	PreparedBy     PreparedBy   `json:"prepared_by"`
	Letterhead     []byte       `json:"-"`
}

const (
	DateLayout = "2006-01-02"

	// DefaultClosing is the ceremonial phrase the original form pre-fills.
	DefaultClosing = "Mesyuarat diakhiri dengan tasbih kafarah & Surah Al-Asr"
)

// ApplyDefaults fills the date with today when the form left it empty. The
// closing remarks default is a form pre-fill (exposed via the template
// endpoint), not applied here: a deliberately blank closing renders as "-".
func (r *Record) ApplyDefaults() {
	if r.Date == "" {
		r.Date = time.Now().Format(DateLayout)
	}
}

// DisplaySequence is the sequence number as printed: blank (including
// whitespace-only input) becomes "___".
func (r *Record) DisplaySequence() string {
	seq := strings.TrimSpace(r.SequenceNumber)
	if seq == "" {
		return "___"
	}
	return seq
}

// FileSequence is the sequence number as used in the download filename.
func (r *Record) FileSequence() string {
	seq := strings.TrimSpace(r.SequenceNumber)
	if seq == "" {
		return "x"
	}
	return seq
}
