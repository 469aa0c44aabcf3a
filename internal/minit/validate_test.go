package minit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fieldNames(errs []FieldError) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)
	req.Empty(Validate(harianRecord(), tpl))
}

func TestValidateRequiredFieldsPerTemplate(t *testing.T) {
	req := require.New(t)

	harian, err := Lookup("Harian")
	req.NoError(err)
	exco, err := Lookup("EXCO")
	req.NoError(err)

	rec := harianRecord()
	rec.SequenceNumber = ""
	rec.Time = ""
	rec.Venue = "  "

	// Harian tolerates a blank sequence number (it prints as "___").
	names := fieldNames(Validate(rec, harian))
	req.NotContains(names, "sequence_number")
	req.Contains(names, "time")
	req.Contains(names, "venue")

	// EXCO insists on one.
	req.Contains(fieldNames(Validate(rec, exco)), "sequence_number")
}

func TestValidateOptionalFieldsNeverFail(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.OpenMatters = ""
	rec.Letterhead = nil
	rec.Chair = ""
	req.Empty(Validate(rec, tpl))
}

func TestValidateRejectsMalformedDate(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.Date = "10/01/2025"
	req.Contains(fieldNames(Validate(rec, tpl)), "date")
}

func TestValidateRejectsUnknownPresence(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.Attendees[1].Presence = "mungkin"
	errs := Validate(rec, tpl)
	req.Len(errs, 1)
	req.Equal("attendees[1].presence", errs[0].Field)
}

func TestValidatePresenceMarkersNotAcceptedAsInput(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.Attendees[0].Presence = "/"
	req.NotEmpty(Validate(rec, tpl))
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.Attendees[2].Name = rec.Attendees[0].Name
	req.Contains(fieldNames(Validate(rec, tpl)), "attendees[2].name")
}

func TestValidateEnforcesAgendaBound(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	for i := 0; i <= MaxAgendaItems; i++ {
		rec.AgendaItems = append(rec.AgendaItems, AgendaItem{Title: "Agenda tambahan"})
	}
	req.Contains(fieldNames(Validate(rec, tpl)), "agenda_items")
}

func TestValidateRejectsEmptyRoster(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.Attendees = nil
	req.Contains(fieldNames(Validate(rec, tpl)), "attendees")
}

func TestValidateRequiresPreparedBy(t *testing.T) {
	req := require.New(t)
	tpl, err := Lookup("Harian")
	req.NoError(err)

	rec := harianRecord()
	rec.PreparedBy = PreparedBy{}
	names := fieldNames(Validate(rec, tpl))
	req.Contains(names, "display_name")
	req.Contains(names, "position")
	req.Contains(names, "signature_name")
}

func TestPresenceMarkers(t *testing.T) {
	req := require.New(t)
	req.Equal("/", Present.Marker())
	req.Equal("X", Absent.Marker())
	req.True(Present.Valid())
	req.False(Presence("hadir kot").Valid())
}
