package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"minit-mesyuarat/internal/config"
	"minit-mesyuarat/internal/logger"
	"minit-mesyuarat/internal/minit"
	"minit-mesyuarat/internal/model"
	"minit-mesyuarat/internal/render"
)

type MinutesService struct {
	db      *gorm.DB
	render  config.RenderConfig
	archive config.ArchiveConfig
}

func NewMinutesService(db *gorm.DB, r config.RenderConfig, a config.ArchiveConfig) *MinutesService {
	return &MinutesService{db: db, render: r, archive: a}
}

// Templates lists the registered meeting templates for form prefill.
func (s *MinutesService) Templates() []model.TemplateInfo {
	var out []model.TemplateInfo
	for _, t := range minit.Templates() {
		out = append(out, model.TemplateInfo{
			ID:             t.ID,
			DocumentTitle:  t.DocumentTitle,
			Roster:         t.DefaultAttendees(),
			DefaultAgenda:  append([]string(nil), t.DefaultAgenda...),
			RequiredFields: append([]string(nil), t.RequiredFields...),
			DefaultClosing: minit.DefaultClosing,
		})
	}
	return out
}

// Generate runs the full pipeline for one record: template lookup, defaults,
// validation, composition and rendering. The archive write afterwards is
// best-effort and never fails the request.
func (s *MinutesService) Generate(ctx context.Context, rec *minit.Record) (*model.GenerateResult, error) {
	tpl, err := minit.Lookup(rec.TemplateID)
	if err != nil {
		return nil, err
	}

	rec.ApplyDefaults()
	if len(rec.Attendees) == 0 {
		rec.Attendees = tpl.DefaultAttendees()
	}

	if fieldErrs := minit.Validate(rec, tpl); len(fieldErrs) > 0 {
		return nil, &minit.ValidationError{Fields: fieldErrs}
	}

	blocks, warns, err := minit.Compose(rec, tpl)
	if err != nil {
		return nil, err
	}

	spec := render.DefaultPageSpec()
	if s.render.MarginMM > 0 {
		spec.MarginMM = s.render.MarginMM
	}
	spec.SignatureFontPath = s.render.SignatureFont
	spec.FullPageLetterhead = tpl.FullPageLetterhead

	pdf, err := render.PDF(blocks, spec)
	if err != nil {
		return nil, err
	}

	res := &model.GenerateResult{
		Filename: fmt.Sprintf("minit_BIL%s_%s.pdf", rec.FileSequence(), rec.Date),
		PDF:      pdf,
	}
	for _, w := range warns {
		res.Warnings = append(res.Warnings, w.Error())
	}

	if s.archive.Enabled && s.db != nil {
		if err := s.saveArchive(ctx, rec); err != nil {
			logger.Warn("archive write failed", "bil", rec.FileSequence(), "date", rec.Date, "err", err)
			res.Warnings = append(res.Warnings, "record was not archived")
		}
	}
	return res, nil
}

func (s *MinutesService) saveArchive(ctx context.Context, rec *minit.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	present := 0
	for _, a := range rec.Attendees {
		if a.Presence == minit.Present {
			present++
		}
	}
	row := model.MinuteArchive{
		TemplateID:     rec.TemplateID,
		SequenceNumber: rec.SequenceNumber,
		MeetingDate:    rec.Date,
		BilKey:         rec.FileSequence(),
		Venue:          rec.Venue,
		PresentCount:   present,
		TotalCount:     len(rec.Attendees),
		PreparedBy:     rec.PreparedBy.DisplayName,
		Payload:        string(payload),
	}

	var existing model.MinuteArchive
	err = s.db.WithContext(ctx).
		Where("bil_key = ? AND meeting_date = ?", row.BilKey, row.MeetingDate).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return s.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return fmt.Errorf("query archive: %w", err)
	}
	return s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"template_id":     row.TemplateID,
		"sequence_number": row.SequenceNumber,
		"venue":           row.Venue,
		"present_count":   row.PresentCount,
		"total_count":     row.TotalCount,
		"prepared_by":     row.PreparedBy,
		"payload":         row.Payload,
	}).Error
}

func (s *MinutesService) Archives(ctx context.Context) ([]model.MinuteArchive, error) {
	var rows []model.MinuteArchive
	err := s.db.WithContext(ctx).Order("meeting_date DESC, bil_key").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query archives: %w", err)
	}
	return rows, nil
}

// ExportArchive writes the archive index to an XLSX workbook under the export
// dir and returns its path and download title.
func (s *MinutesService) ExportArchive(ctx context.Context) (path, title string, err error) {
	rows, err := s.Archives(ctx)
	if err != nil {
		return "", "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Arkib Minit"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"BIL", "Tarikh", "Template", "Tempat", "Kehadiran", "Disediakan Oleh", "Direkod Pada"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", "", fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			r.BilKey, r.MeetingDate, r.TemplateID, r.Venue,
			fmt.Sprintf("%d / %d", r.PresentCount, r.TotalCount),
			r.PreparedBy, r.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := os.MkdirAll(s.archive.ExportDir, 0755); err != nil {
		return "", "", fmt.Errorf("create export dir: %w", err)
	}
	title = fmt.Sprintf("arkib_minit_%s_%s.xlsx", time.Now().Format("20060102"), uuid.NewString()[:8])
	path = filepath.Join(s.archive.ExportDir, title)
	if err := f.SaveAs(path); err != nil {
		return "", "", fmt.Errorf("save workbook: %w", err)
	}
	logger.Info("archive exported", "file", path, "rows", len(rows))
	return path, title, nil
}
