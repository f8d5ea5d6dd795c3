package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// ClearIndexCommandHandler wipes every document from both search indexes.
type ClearIndexCommandHandler struct {
	jobseekerIndex ports.JobseekerIndex
	vacancyIndex   ports.VacancyIndex
}

// NewClearIndexCommandHandler creates a handler for index wipes.
func NewClearIndexCommandHandler(
	jobseekerIndex ports.JobseekerIndex,
	vacancyIndex ports.VacancyIndex,
) ClearIndexCommandHandler {
	return ClearIndexCommandHandler{
		jobseekerIndex: jobseekerIndex,
		vacancyIndex:   vacancyIndex,
	}
}

// Handle processes the index wipe command and reports the removed counts.
func (h *ClearIndexCommandHandler) Handle(ctx context.Context, cmd ClearIndexCommand) (ClearIndexReport, error) {
	if err := cmd.Validate(); err != nil {
		return ClearIndexReport{}, err
	}

	report := ClearIndexReport{}

	jobseekers, err := h.jobseekerIndex.RemoveAll(ctx)
	if err != nil {
		return report, err
	}
	report.Jobseekers = jobseekers

	vacancies, err := h.vacancyIndex.RemoveAll(ctx)
	if err != nil {
		return report, err
	}
	report.Vacancies = vacancies

	return report, nil
}
