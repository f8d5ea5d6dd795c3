package queries

import (
	"context"

	"jobboard/internal/core/domain/model/company"
	"jobboard/internal/core/ports"
)

// GetCompanyByUserIDQueryHandler resolves an account to its company profile.
type GetCompanyByUserIDQueryHandler struct {
	companyRepo ports.CompanyRepository
}

// NewGetCompanyByUserIDQueryHandler creates a handler for company profile lookups.
func NewGetCompanyByUserIDQueryHandler(companyRepo ports.CompanyRepository) GetCompanyByUserIDQueryHandler {
	return GetCompanyByUserIDQueryHandler{companyRepo: companyRepo}
}

// Handle returns the company profile owned by the account.
func (h GetCompanyByUserIDQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyByUserIDQuery,
) (*company.Company, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.companyRepo.GetByAppUserID(ctx, query.AppUserID())
}
