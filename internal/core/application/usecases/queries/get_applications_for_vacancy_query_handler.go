package queries

import (
	"context"

	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/ports"
)

// GetApplicationsForVacancyQueryHandler lists the applications to one vacancy.
type GetApplicationsForVacancyQueryHandler struct {
	applicationRepo ports.JobApplicationRepository
}

// NewGetApplicationsForVacancyQueryHandler creates a handler for application listings.
func NewGetApplicationsForVacancyQueryHandler(
	applicationRepo ports.JobApplicationRepository,
) GetApplicationsForVacancyQueryHandler {
	return GetApplicationsForVacancyQueryHandler{applicationRepo: applicationRepo}
}

// Handle returns the vacancy's applications, newest first.
func (h GetApplicationsForVacancyQueryHandler) Handle(
	ctx context.Context,
	query GetApplicationsForVacancyQuery,
) ([]*engagement.JobApplication, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.applicationRepo.GetByVacancyID(ctx, query.VacancyID())
}
