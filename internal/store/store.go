package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"cochera-backend/internal/fare"
	"cochera-backend/internal/model"
)

// ErrSessionNotFound is returned when a parking session id does not
// exist in the active set. A second withdrawal of the same session hits
// this error, which callers treat as a safe no-op.
var ErrSessionNotFound = errors.New("parking session not found")

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB
	CreateSession(ctx context.Context, session *model.ParkingSession) error
	GetSession(ctx context.Context, id int64) (model.ParkingSession, error)
	ListSessions(ctx context.Context, plateFilter string) ([]model.ParkingSession, error)
	FinalizeSession(ctx context.Context, id int64, exitedAt time.Time) (model.WithdrawalRecord, error)
	ListWithdrawals(ctx context.Context) ([]model.WithdrawalRecord, error)
	DrainWithdrawals(ctx context.Context) ([]model.WithdrawalRecord, error)
}

// gormStore implements the Store interface using GORM. Fare-relevant
// timestamps are converted to the lot's timezone before computation,
// since the day/night thresholds are minute-of-local-day rules.
type gormStore struct {
	db  *gorm.DB
	loc *time.Location
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB, loc *time.Location) Store {
	if loc == nil {
		loc = time.Local
	}
	return &gormStore{db: db, loc: loc}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// NormalizePlate trims and uppercases a raw plate number. Uniqueness is
// deliberately not enforced: the same plate may have several active
// sessions (re-entry before the previous withdrawal was processed).
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// CreateSession registers a vehicle entry.
func (s *gormStore) CreateSession(ctx context.Context, session *model.ParkingSession) error {
	session.PlateNumber = NormalizePlate(session.PlateNumber)
	if session.EnteredAt.IsZero() {
		session.EnteredAt = time.Now().In(s.loc)
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create parking session: %w", err)
	}
	return nil
}

func (s *gormStore) GetSession(ctx context.Context, id int64) (model.ParkingSession, error) {
	var session model.ParkingSession
	err := s.db.WithContext(ctx).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ParkingSession{}, ErrSessionNotFound
	}
	if err != nil {
		return model.ParkingSession{}, fmt.Errorf("failed to load parking session %d: %w", id, err)
	}
	return session, nil
}

// ListSessions returns the active sessions, newest entry first. A
// non-empty plateFilter narrows the list to plates containing the
// normalized filter (the live-search box).
func (s *gormStore) ListSessions(ctx context.Context, plateFilter string) ([]model.ParkingSession, error) {
	q := s.db.WithContext(ctx).Order("entered_at DESC")
	if filter := NormalizePlate(plateFilter); filter != "" {
		q = q.Where("plate_number LIKE ?", "%"+filter+"%")
	}

	var sessions []model.ParkingSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list parking sessions: %w", err)
	}
	return sessions, nil
}

// FinalizeSession converts an active session into a withdrawal record.
// Record creation and session deletion happen in one transaction, and
// the delete must affect a row, so a session id is finalized at most
// once even under double submission.
func (s *gormStore) FinalizeSession(ctx context.Context, id int64, exitedAt time.Time) (model.WithdrawalRecord, error) {
	var record model.WithdrawalRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session model.ParkingSession
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to load parking session %d: %w", id, err)
		}

		session.EnteredAt = session.EnteredAt.In(s.loc)
		record = fare.Finalize(session, exitedAt.In(s.loc))

		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal record for session %d: %w", id, err)
		}

		res := tx.Delete(&model.ParkingSession{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete parking session %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		return model.WithdrawalRecord{}, err
	}
	return record, nil
}

// ListWithdrawals returns the export queue, newest exit first.
func (s *gormStore) ListWithdrawals(ctx context.Context) ([]model.WithdrawalRecord, error) {
	var records []model.WithdrawalRecord
	if err := s.db.WithContext(ctx).Order("exited_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list withdrawal records: %w", err)
	}
	return records, nil
}

// DrainWithdrawals snapshots and clears the export queue in one
// transaction. If the caller fails to deliver the export, the
// transaction has already committed; callers must therefore write the
// response from the returned snapshot only after this succeeds.
func (s *gormStore) DrainWithdrawals(ctx context.Context) ([]model.WithdrawalRecord, error) {
	var records []model.WithdrawalRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("exited_at DESC").Find(&records).Error; err != nil {
			return fmt.Errorf("failed to snapshot withdrawal records: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.WithdrawalRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear withdrawal records: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
