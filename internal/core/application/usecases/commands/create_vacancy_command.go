package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrCreateVacancyCommandIsNotConstructed = errors.New(
	"CreateVacancyCommand must be created via NewCreateVacancyCommand constructor",
)

// CreateVacancyCommand represents a request to publish a new vacancy.
//
// Example:
//
//	vacancyID := kernel.NewUUID()
//	cmd, err := NewCreateVacancyCommand(
//	    vacancyID, companyID, "Senior Go Developer", "Build backend services",
//	    "Independent engineer", "Backend Developer", 50000, 90000,
//	    vacancy.WorkModeRemote, "",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid vacancy data: %w", err)
//	}
//
//	handler := NewCreateVacancyCommandHandler(uowFactory, index)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to publish vacancy: %w", err)
//	}
type CreateVacancyCommand struct { //nolint:recvcheck //using for validation
	vacancyID            kernel.UUID
	companyID            kernel.UUID
	title                string
	description          string
	candidateDescription string
	position             string
	salaryMin            float64
	salaryMax            float64
	workMode             vacancy.WorkMode
	livingConditions     string

	guard guard.ConstructorGuard
}

// NewCreateVacancyCommand creates a command to publish a vacancy.
func NewCreateVacancyCommand(
	vacancyID kernel.UUID,
	companyID kernel.UUID,
	title string,
	description string,
	candidateDescription string,
	position string,
	salaryMin float64,
	salaryMax float64,
	workMode vacancy.WorkMode,
	livingConditions string,
) (CreateVacancyCommand, error) {
	cmd := CreateVacancyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVacancyID(vacancyID),
		cmd.setCompanyID(companyID),
		cmd.setTitle(title),
		cmd.setPosition(position),
		cmd.setSalaryRange(salaryMin, salaryMax),
		cmd.setWorkMode(workMode),
	); err != nil {
		return CreateVacancyCommand{}, err
	}

	cmd.description = description
	cmd.candidateDescription = candidateDescription
	cmd.livingConditions = livingConditions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVacancyCommand) Validate() error {
	return c.guard.Validate(ErrCreateVacancyCommandIsNotConstructed)
}

// VacancyID returns the identifier for the new vacancy.
func (c CreateVacancyCommand) VacancyID() kernel.UUID {
	return c.vacancyID
}

// CompanyID returns the identifier of the publishing company.
func (c CreateVacancyCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// Title returns the vacancy title.
func (c CreateVacancyCommand) Title() string {
	return c.title
}

// Description returns the vacancy description.
func (c CreateVacancyCommand) Description() string {
	return c.description
}

// CandidateDescription returns the description of the desired candidate.
func (c CreateVacancyCommand) CandidateDescription() string {
	return c.candidateDescription
}

// Position returns the advertised position name.
func (c CreateVacancyCommand) Position() string {
	return c.position
}

// SalaryMin returns the lower bound of the advertised salary.
func (c CreateVacancyCommand) SalaryMin() float64 {
	return c.salaryMin
}

// SalaryMax returns the upper bound of the advertised salary.
func (c CreateVacancyCommand) SalaryMax() float64 {
	return c.salaryMax
}

// WorkMode returns the advertised work mode.
func (c CreateVacancyCommand) WorkMode() vacancy.WorkMode {
	return c.workMode
}

// LivingConditions returns the free-form living conditions text.
func (c CreateVacancyCommand) LivingConditions() string {
	return c.livingConditions
}

func (c *CreateVacancyCommand) setVacancyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vacancyID = id
	return nil
}

func (c *CreateVacancyCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.companyID = id
	return nil
}

func (c *CreateVacancyCommand) setTitle(title string) error {
	if title == "" {
		return vacancy.ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateVacancyCommand) setPosition(position string) error {
	if position == "" {
		return vacancy.ErrPositionIsRequired
	}

	c.position = position
	return nil
}

func (c *CreateVacancyCommand) setSalaryRange(salaryMin, salaryMax float64) error {
	if salaryMin < 0 || salaryMin > vacancy.SalaryCap {
		return errs.NewValueIsOutOfRangeError("salaryMin", salaryMin, 0, vacancy.SalaryCap)
	}
	if salaryMax < 0 || salaryMax > vacancy.SalaryCap {
		return errs.NewValueIsOutOfRangeError("salaryMax", salaryMax, 0, vacancy.SalaryCap)
	}
	if salaryMin > salaryMax {
		return vacancy.ErrSalaryRangeIsInvalid
	}

	c.salaryMin = salaryMin
	c.salaryMax = salaryMax
	return nil
}

func (c *CreateVacancyCommand) setWorkMode(mode vacancy.WorkMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.workMode = mode
	return nil
}
