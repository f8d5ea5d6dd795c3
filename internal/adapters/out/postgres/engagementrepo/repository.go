package engagementrepo

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormJobApplicationRepository implements JobApplicationRepository using GORM.
type GormJobApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormJobApplicationRepository creates a new GORM job application repository.
func NewGormJobApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormJobApplicationRepository {
	return &GormJobApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job application to the database.
func (r *GormJobApplicationRepository) Add(ctx context.Context, aggregate *engagement.JobApplication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := applicationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job application to the database.
func (r *GormJobApplicationRepository) Update(ctx context.Context, aggregate *engagement.JobApplication) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := applicationFromDomain(aggregate)
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

// Get retrieves a job application by ID.
func (r *GormJobApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*engagement.JobApplication, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobApplication", id.String())
		}
		return nil, err
	}

	return applicationToDomain(dto)
}

// GetByVacancyID retrieves all applications submitted to a vacancy.
func (r *GormJobApplicationRepository) GetByVacancyID(ctx context.Context, vacancyID kernel.UUID) ([]*engagement.JobApplication, error) {
	if err := vacancyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobApplicationDTO
	if err := r.db.WithContext(ctx).Where("vacancy_id = ?", vacancyID.Bytes()).Order("creation_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return applicationsToDomain(dtos)
}

// GetByJobseekerID retrieves all applications submitted by a jobseeker.
func (r *GormJobApplicationRepository) GetByJobseekerID(ctx context.Context, jobseekerID kernel.UUID) ([]*engagement.JobApplication, error) {
	if err := jobseekerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobApplicationDTO
	if err := r.db.WithContext(ctx).Where("jobseeker_id = ?", jobseekerID.Bytes()).Order("creation_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return applicationsToDomain(dtos)
}

func applicationsToDomain(dtos []JobApplicationDTO) ([]*engagement.JobApplication, error) {
	applications := make([]*engagement.JobApplication, 0, len(dtos))
	for _, dto := range dtos {
		a, err := applicationToDomain(dto)
		if err != nil {
			return nil, err
		}
		applications = append(applications, a)
	}
	return applications, nil
}

// GormOfferRepository implements OfferRepository using GORM.
type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOfferRepository creates a new GORM offer repository.
func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new offer to the database.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *engagement.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := offerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing offer to the database.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *engagement.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := offerFromDomain(aggregate)
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

// Get retrieves an offer by ID.
func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*engagement.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, err
	}

	return offerToDomain(dto)
}

// GetByJobseekerID retrieves all offers sent to a jobseeker.
func (r *GormOfferRepository) GetByJobseekerID(ctx context.Context, jobseekerID kernel.UUID) ([]*engagement.Offer, error) {
	if err := jobseekerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).Where("jobseeker_id = ?", jobseekerID.Bytes()).Order("creation_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return offersToDomain(dtos)
}

// GetByVacancyID retrieves all offers sent for a vacancy.
func (r *GormOfferRepository) GetByVacancyID(ctx context.Context, vacancyID kernel.UUID) ([]*engagement.Offer, error) {
	if err := vacancyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OfferDTO
	if err := r.db.WithContext(ctx).Where("vacancy_id = ?", vacancyID.Bytes()).Order("creation_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return offersToDomain(dtos)
}

func offersToDomain(dtos []OfferDTO) ([]*engagement.Offer, error) {
	offers := make([]*engagement.Offer, 0, len(dtos))
	for _, dto := range dtos {
		o, err := offerToDomain(dto)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, nil
}
