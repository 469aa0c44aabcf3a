package model

import "time"

type Member struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// MinuteArchive is one generated meeting record kept for the organization's
// books, keyed by sequence number and date. Payload is the full record JSON.
type MinuteArchive struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	TemplateID     string    `json:"template_id"`
	SequenceNumber string    `json:"sequence_number"`
	MeetingDate    string    `gorm:"type:date;uniqueIndex:uk_bil_date" json:"meeting_date"`
	BilKey         string    `gorm:"uniqueIndex:uk_bil_date" json:"bil_key"`
	Venue          string    `json:"venue"`
	PresentCount   int       `json:"present_count"`
	TotalCount     int       `json:"total_count"`
	PreparedBy     string    `json:"prepared_by"`
	Payload        string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Member) TableName() string        { return "members" }
func (MinuteArchive) TableName() string { return "minute_archives" }
