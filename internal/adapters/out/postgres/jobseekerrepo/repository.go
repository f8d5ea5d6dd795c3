package jobseekerrepo

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobseekerRepository implements JobseekerRepository using GORM.
type GormJobseekerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobseekerRepository creates a new GORM jobseeker repository.
func NewGormJobseekerRepository(db *gorm.DB, tracker aggregateTracker) *GormJobseekerRepository {
	return &GormJobseekerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new jobseeker to the database.
func (r *GormJobseekerRepository) Add(ctx context.Context, aggregate *jobseeker.Jobseeker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing jobseeker to the database.
func (r *GormJobseekerRepository) Update(ctx context.Context, aggregate *jobseeker.Jobseeker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a jobseeker by ID.
func (r *GormJobseekerRepository) Get(ctx context.Context, id kernel.UUID) (*jobseeker.Jobseeker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobseekerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobseeker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAppUserID retrieves the jobseeker profile owned by the given account.
func (r *GormJobseekerRepository) GetByAppUserID(ctx context.Context, appUserID kernel.UUID) (*jobseeker.Jobseeker, error) {
	if err := appUserID.Validate(); err != nil {
		return nil, err
	}

	var dto JobseekerDTO
	if err := r.db.WithContext(ctx).First(&dto, "app_user_id = ?", appUserID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobseeker", appUserID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAppUserIDs retrieves all jobseekers owned by accounts in the given set.
// IDs without a matching row are skipped; the result carries no ordering.
func (r *GormJobseekerRepository) GetByAppUserIDs(ctx context.Context, appUserIDs []kernel.UUID) ([]*jobseeker.Jobseeker, error) {
	if len(appUserIDs) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(appUserIDs))
	for _, id := range appUserIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []JobseekerDTO
	if err := r.db.WithContext(ctx).Where("app_user_id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetRecent retrieves the most recently registered jobseekers, newest first.
func (r *GormJobseekerRepository) GetRecent(ctx context.Context, limit int) ([]*jobseeker.Jobseeker, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []JobseekerDTO
	if err := r.db.WithContext(ctx).Order("register_date DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every jobseeker.
func (r *GormJobseekerRepository) GetAll(ctx context.Context) ([]*jobseeker.Jobseeker, error) {
	var dtos []JobseekerDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []JobseekerDTO) ([]*jobseeker.Jobseeker, error) {
	jobseekers := make([]*jobseeker.Jobseeker, 0, len(dtos))
	for _, dto := range dtos {
		js, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobseekers = append(jobseekers, js)
	}
	return jobseekers, nil
}
