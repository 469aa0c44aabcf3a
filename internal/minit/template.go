package minit

// RosterSlot is one fixed attendee slot of a template.
type RosterSlot struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// MetaField selects which key-value rows a template shows, in order.
type MetaField string

const (
	MetaSequence MetaField = "bil"
	MetaDate     MetaField = "tarikh"
	MetaTime     MetaField = "masa"
	MetaVenue    MetaField = "tempat"
	MetaChair    MetaField = "pengerusi"
)

// Template is the static configuration one meeting type composes against.
// Registry entries are read-only; Compose and Validate never modify them.
type Template struct {
	ID            string `json:"id"`
	OrgLine       string `json:"org_line"`
	OrgSubLine    string `json:"org_sub_line"`
	DocumentTitle string `json:"document_title"`
	Term          string `json:"term"`

	Roster        []RosterSlot `json:"roster"`
	DefaultAgenda []string     `json:"default_agenda"`
	MetaFields    []MetaField  `json:"meta_fields"`

	// RequiredFields names the record fields validation insists on for this
	// template, keyed by the JSON field name.
	RequiredFields []string `json:"required_fields"`

	// FullPageLetterhead asks the renderer to paint the uploaded letterhead
	// as a page-1 background instead of an inline image.
	FullPageLetterhead bool `json:"full_page_letterhead"`
}

var registry = map[string]*Template{
	"Harian": {
		ID:            "Harian",
		OrgLine:       "Jabatan Setiausaha",
		OrgSubLine:    "Dewan Pemuda PAS Kawasan Rembau",
		DocumentTitle: "MINIT MESYUARAT AHLI JAWATANKUASA",
		Term:          "2025–2027",
		Roster: []RosterSlot{
			{Role: "Ketua Pemuda", Name: "Irsyad"},
			{Role: "Timbalan Ketua Pemuda", Name: "Zafreen"},
			{Role: "Naib Ketua Pemuda", Name: "Rahman"},
			{Role: "Setiausaha", Name: "Hakim"},
			{Role: "Penolong Setiausaha", Name: "Naim"},
			{Role: "Bendahari", Name: "Izzuddin"},
			{Role: "Penerangan", Name: "Afiq Asnawi"},
			{Role: "Jabatan Pembangunan Remaja", Name: "Muzammil"},
			{Role: "Pilihanraya & Kebajikan", Name: "Ma’az"},
			{Role: "Aktar", Name: "Arif Aiman"},
			{Role: "Jabatan Amal", Name: "Umair"},
			{Role: "Dakwah", Name: "Ust Zaid"},
			{Role: "Ketua DACS", Name: "Adhwa"},
			{Role: "Timbalan Ketua DACS", Name: "Azmil"},
			{Role: "Ekonomi", Name: "Aman"},
		},
		DefaultAgenda: []string{
			"Ucapan Aluan Pengerusi",
			"Pengesahan Minit Mesyuarat Lepas",
			"Perkara Berbangkit",
			"Laporan Biro",
			"Hal-hal Lain",
		},
		MetaFields:         []MetaField{MetaSequence, MetaDate, MetaTime, MetaVenue, MetaChair},
		RequiredFields:     []string{"time", "venue"},
		FullPageLetterhead: true,
	},
	"EXCO": {
		ID:            "EXCO",
		OrgLine:       "Jabatan Setiausaha",
		OrgSubLine:    "Dewan Pemuda PAS Kawasan Rembau",
		DocumentTitle: "MINIT MESYUARAT EXCO",
		Term:          "2025–2027",
		Roster: []RosterSlot{
			{Role: "Ketua Pemuda", Name: "Irsyad"},
			{Role: "Timbalan Ketua Pemuda", Name: "Zafreen"},
			{Role: "Naib Ketua Pemuda", Name: "Rahman"},
			{Role: "Setiausaha", Name: "Hakim"},
			{Role: "Bendahari", Name: "Izzuddin"},
		},
		DefaultAgenda: []string{
			"Ucapan Aluan Pengerusi",
			"Perancangan Program",
			"Hal-hal Lain",
		},
		MetaFields:         []MetaField{MetaSequence, MetaDate, MetaTime, MetaVenue},
		RequiredFields:     []string{"sequence_number", "time", "venue"},
		FullPageLetterhead: false,
	},
}

// Lookup returns the template for id. An unknown id or a template with an
// empty roster is a deployment defect and comes back as a ConfigurationError.
func Lookup(id string) (*Template, error) {
	t, ok := registry[id]
	if !ok {
		return nil, &ConfigurationError{TemplateID: id, Reason: "unknown template"}
	}
	if len(t.Roster) == 0 {
		return nil, &ConfigurationError{TemplateID: id, Reason: "empty roster"}
	}
	return t, nil
}

// Templates lists every registered template in a stable order.
func Templates() []*Template {
	ids := []string{"Harian", "EXCO"}
	out := make([]*Template, 0, len(ids))
	for _, id := range ids {
		out = append(out, registry[id])
	}
	return out
}

// DefaultAttendees expands the roster into attendee rows, all marked present,
// for form pre-fill.
func (t *Template) DefaultAttendees() []Attendee {
	rows := make([]Attendee, 0, len(t.Roster))
	for i, slot := range t.Roster {
		rows = append(rows, Attendee{Seq: i + 1, Role: slot.Role, Name: slot.Name, Presence: Present})
	}
	return rows
}

func (t *Template) requires(field string) bool {
	for _, f := range t.RequiredFields {
		if f == field {
			return true
		}
	}
	return false
}
