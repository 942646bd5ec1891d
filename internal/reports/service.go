package reports

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fdg312/thali/internal/blob"
	"github.com/fdg312/thali/internal/mealplans"
	"github.com/fdg312/thali/internal/session"
	"github.com/google/uuid"
)

const DefaultMaxRangeDays = 90

// SavedPlanReader is satisfied by the meal plan service.
type SavedPlanReader interface {
	GetSaved(ctx context.Context, userID string) (mealplans.SavedPlan, bool, error)
}

// Service generates meal plan and meal log exports
type Service struct {
	sessions        *session.Manager
	plans           SavedPlanReader
	blobStore       blob.Store
	maxRangeDays    int
	presignTTL      int
	localMode       bool   // true if no S3 configured
	publicBaseURL   string // S3 public base URL (if prefer_public_url mode)
	preferPublicURL bool   // if true, use public URLs instead of presigned
	now             func() time.Time
}

// NewService creates a new reports service. A nil blobStore means reports
// are returned inline.
func NewService(sessions *session.Manager, plans SavedPlanReader, blobStore blob.Store, opts Options) *Service {
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = DefaultMaxRangeDays
	}
	if opts.PresignTTL <= 0 {
		opts.PresignTTL = 900
	}
	return &Service{
		sessions:        sessions,
		plans:           plans,
		blobStore:       blobStore,
		maxRangeDays:    opts.MaxRangeDays,
		presignTTL:      opts.PresignTTL,
		localMode:       blobStore == nil,
		publicBaseURL:   opts.PublicBaseURL,
		preferPublicURL: opts.PreferPublicURL,
		now:             time.Now,
	}
}

// LocalMode reports whether generated files are streamed back directly.
func (s *Service) LocalMode() bool {
	return s.localMode
}

func (s *Service) MaxRangeDays() int {
	return s.maxRangeDays
}

func validFormat(format string) bool {
	return format == FormatPDF || format == FormatCSV
}

// MealPlanReport exports the user's saved meal plan.
func (s *Service) MealPlanReport(ctx context.Context, userID, format string) (*Report, error) {
	if format == "" {
		format = FormatPDF
	}
	if !validFormat(format) {
		return nil, ErrInvalidFormat
	}

	plan, found, err := s.plans.GetSaved(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSavedPlan
	}

	var data []byte
	if format == FormatCSV {
		data, err = MealPlanCSV(plan)
	} else {
		data, err = MealPlanPDF(plan)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	report := &Report{
		Kind:     KindMealPlan,
		Format:   format,
		FileName: fmt.Sprintf("meal_plan_%dd.%s", len(plan.Days), format),
	}
	return s.finish(ctx, userID, report, data)
}

// MealLogReport exports logged meals dated within [from, to]. Empty bounds
// default to the user's today.
func (s *Service) MealLogReport(ctx context.Context, userID, format, from, to string) (*Report, error) {
	if format == "" {
		format = FormatPDF
	}
	if !validFormat(format) {
		return nil, ErrInvalidFormat
	}

	sess, err := s.sessions.Open(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := sess.Meals.Today()
	if from == "" {
		from = today
	}
	if to == "" {
		to = today
	}

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, ErrInvalidDate
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}
	if int(toDate.Sub(fromDate).Hours()/24) > s.maxRangeDays {
		return nil, ErrRangeTooLarge
	}

	meals := sess.Meals.Between(from, to)

	var data []byte
	if format == FormatCSV {
		data, err = MealLogCSV(meals)
	} else {
		data, err = MealLogPDF(meals, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	report := &Report{
		Kind:     KindMealLog,
		Format:   format,
		From:     from,
		To:       to,
		FileName: fmt.Sprintf("meal_log_%s_%s.%s", from, to, format),
	}
	return s.finish(ctx, userID, report, data)
}

func (s *Service) finish(ctx context.Context, userID string, report *Report, data []byte) (*Report, error) {
	report.ID = uuid.New()
	report.ContentType = contentTypeFor(report.Format)
	report.SizeBytes = int64(len(data))
	report.CreatedAt = s.now().UTC()

	if s.localMode {
		report.Data = data
		return report, nil
	}

	objectKey := fmt.Sprintf("reports/%s/%s.%s", userID, report.ID.String(), report.Format)
	if _, err := s.blobStore.PutObject(ctx, objectKey, data, report.ContentType); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}
	report.ObjectKey = &objectKey
	return report, nil
}

// DownloadURL returns a URL for an uploaded report.
func (s *Service) DownloadURL(ctx context.Context, report *Report) (string, error) {
	if report.ObjectKey == nil {
		return "", fmt.Errorf("object key is missing")
	}

	if s.preferPublicURL && s.publicBaseURL != "" {
		return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + *report.ObjectKey, nil
	}

	presignedURL, err := s.blobStore.PresignGet(ctx, *report.ObjectKey, s.presignTTL)
	if err != nil {
		// nobody can reach the object without a link
		if derr := s.blobStore.DeleteObject(ctx, *report.ObjectKey); derr != nil {
			log.Printf("WARN reports: cleanup of %s failed: %v", *report.ObjectKey, derr)
		}
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return presignedURL, nil
}
