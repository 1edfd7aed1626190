package attendance

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAlreadyMarked means the student already has a record for today.
	ErrAlreadyMarked = errors.New("attendance already marked for today")
	// ErrBadStatus means the status is outside the known set.
	ErrBadStatus = errors.New("invalid attendance status")
)

const dateLayout = "2006-01-02"

func validStatus(s string) bool {
	return s == "present" || s == "late" || s == "absent"
}

// Service coordinates daily attendance submissions.
type Service struct {
	repo *Repository
	now  func() time.Time
}

// NewService creates a service backed by a repository.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Today returns the current calendar day in UTC, the day submissions key on.
func (s *Service) Today() string {
	return s.now().UTC().Format(dateLayout)
}

// Submit records today's attendance for a student. Status defaults to
// "present"; a second submission on the same day fails with ErrAlreadyMarked.
func (s *Service) Submit(ctx context.Context, studentID int64, status, notes string) (Record, error) {
	if status == "" {
		status = "present"
	}
	if !validStatus(status) {
		return Record{}, ErrBadStatus
	}
	rec := Record{
		StudentID: studentID,
		Date:      s.Today(),
		Status:    status,
	}
	if notes != "" {
		rec.Notes = &notes
	}
	return s.repo.Insert(ctx, rec)
}

// TodayStatus reports whether the student has a record for the current day.
func (s *Service) TodayStatus(ctx context.Context, studentID int64) (*Record, error) {
	return s.repo.GetForDate(ctx, studentID, s.Today())
}

// ListFor returns the records visible to the caller: students see their own,
// staff see everyone's.
func (s *Service) ListFor(ctx context.Context, studentID int64, staff bool) ([]Record, error) {
	if staff {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByStudent(ctx, studentID)
}
