package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/vacancy"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrEditVacancyCommandIsNotConstructed = errors.New(
	"EditVacancyCommand must be created via NewEditVacancyCommand constructor",
)

// EditVacancyCommand represents a request to update a published vacancy.
type EditVacancyCommand struct { //nolint:recvcheck //using for validation
	vacancyID            kernel.UUID
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

// NewEditVacancyCommand creates a command to update a vacancy.
func NewEditVacancyCommand(
	vacancyID kernel.UUID,
	title string,
	description string,
	candidateDescription string,
	position string,
	salaryMin float64,
	salaryMax float64,
	workMode vacancy.WorkMode,
	livingConditions string,
) (EditVacancyCommand, error) {
	cmd := EditVacancyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVacancyID(vacancyID),
		cmd.setTitle(title),
		cmd.setPosition(position),
		cmd.setSalaryRange(salaryMin, salaryMax),
		cmd.setWorkMode(workMode),
	); err != nil {
		return EditVacancyCommand{}, err
	}

	cmd.description = description
	cmd.candidateDescription = candidateDescription
	cmd.livingConditions = livingConditions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditVacancyCommand) Validate() error {
	return c.guard.Validate(ErrEditVacancyCommandIsNotConstructed)
}

// VacancyID returns the identifier of the vacancy to update.
func (c EditVacancyCommand) VacancyID() kernel.UUID {
	return c.vacancyID
}

// Title returns the new title.
func (c EditVacancyCommand) Title() string {
	return c.title
}

// Description returns the new description.
func (c EditVacancyCommand) Description() string {
	return c.description
}

// CandidateDescription returns the new candidate description.
func (c EditVacancyCommand) CandidateDescription() string {
	return c.candidateDescription
}

// Position returns the new position name.
func (c EditVacancyCommand) Position() string {
	return c.position
}

// SalaryMin returns the new lower salary bound.
func (c EditVacancyCommand) SalaryMin() float64 {
	return c.salaryMin
}

// SalaryMax returns the new upper salary bound.
func (c EditVacancyCommand) SalaryMax() float64 {
	return c.salaryMax
}

// WorkMode returns the new work mode.
func (c EditVacancyCommand) WorkMode() vacancy.WorkMode {
	return c.workMode
}

// LivingConditions returns the new living conditions text.
func (c EditVacancyCommand) LivingConditions() string {
	return c.livingConditions
}

func (c *EditVacancyCommand) setVacancyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vacancyID = id
	return nil
}

func (c *EditVacancyCommand) setTitle(title string) error {
	if title == "" {
		return vacancy.ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *EditVacancyCommand) setPosition(position string) error {
	if position == "" {
		return vacancy.ErrPositionIsRequired
	}

	c.position = position
	return nil
}

func (c *EditVacancyCommand) setSalaryRange(salaryMin, salaryMax float64) error {
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

func (c *EditVacancyCommand) setWorkMode(mode vacancy.WorkMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.workMode = mode
	return nil
}
