package reports

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	FormatPDF = "pdf"
	FormatCSV = "csv"

	KindMealPlan = "meal-plan"
	KindMealLog  = "meal-log"
)

// Report is a generated export. Data is only held when no blob store is
// configured; otherwise ObjectKey points at the uploaded copy.
type Report struct {
	ID          uuid.UUID
	Kind        string
	Format      string
	From        string // YYYY-MM-DD, meal log only
	To          string
	FileName    string
	ContentType string
	ObjectKey   *string
	SizeBytes   int64
	CreatedAt   time.Time
	Data        []byte
}

// ReportDTO is returned when the report was uploaded and can be fetched by URL.
type ReportDTO struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Format      string    `json:"format"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	FileName    string    `json:"fileName"`
	DownloadURL string    `json:"downloadUrl"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Options configure where generated reports go.
type Options struct {
	MaxRangeDays    int
	PresignTTL      int
	PublicBaseURL   string
	PreferPublicURL bool
}

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidDateRange = errors.New("from date must be before to date")
	ErrRangeTooLarge    = errors.New("date range too large")
	ErrNoSavedPlan      = errors.New("no saved meal plan")
)

func contentTypeFor(format string) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}
