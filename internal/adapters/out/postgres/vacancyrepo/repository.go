package vacancyrepo

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVacancyRepository implements VacancyRepository using GORM.
type GormVacancyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVacancyRepository creates a new GORM vacancy repository.
func NewGormVacancyRepository(db *gorm.DB, tracker aggregateTracker) *GormVacancyRepository {
	return &GormVacancyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vacancy to the database.
func (r *GormVacancyRepository) Add(ctx context.Context, aggregate *vacancy.Vacancy) error {
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

// Update saves an existing vacancy to the database.
func (r *GormVacancyRepository) Update(ctx context.Context, aggregate *vacancy.Vacancy) error {
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

// Delete removes a vacancy from the database.
func (r *GormVacancyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&VacancyDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vacancy", id.String())
	}
	return nil
}

// Get retrieves a vacancy by ID.
func (r *GormVacancyRepository) Get(ctx context.Context, id kernel.UUID) (*vacancy.Vacancy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VacancyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vacancy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves all vacancies whose ID is in the given set.
// IDs without a matching row are skipped; the result carries no ordering.
func (r *GormVacancyRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*vacancy.Vacancy, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []VacancyDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByCompanyID retrieves all vacancies published by the given company.
func (r *GormVacancyRepository) GetByCompanyID(ctx context.Context, companyID kernel.UUID) ([]*vacancy.Vacancy, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VacancyDTO
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID.Bytes()).Order("publish_date DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetRecent retrieves the most recently published vacancies, newest first.
func (r *GormVacancyRepository) GetRecent(ctx context.Context, limit int) ([]*vacancy.Vacancy, error) {
	if limit < 1 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []VacancyDTO
	if err := r.db.WithContext(ctx).Order("publish_date DESC").Limit(limit).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every vacancy.
func (r *GormVacancyRepository) GetAll(ctx context.Context) ([]*vacancy.Vacancy, error) {
	var dtos []VacancyDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []VacancyDTO) ([]*vacancy.Vacancy, error) {
	vacancies := make([]*vacancy.Vacancy, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, nil
}
