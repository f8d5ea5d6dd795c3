package commands

import (
	"context"

	"jobboard/internal/core/ports"
)

// ReindexAllCommandHandler rebuilds both search indexes from the primary
// store. For each entity type: ensure the index exists, read every canonical
// record, map it to its search document and bulk-upsert the batch. Documents
// for deleted records are not removed here; upserts overwrite the live ones
// and drifted leftovers are dropped at query time during hydration.
type ReindexAllCommandHandler struct {
	uowFactory     CatalogUoWFactory
	jobseekerIndex ports.JobseekerIndex
	vacancyIndex   ports.VacancyIndex
}

// NewReindexAllCommandHandler creates a handler for full reindex runs.
func NewReindexAllCommandHandler(
	uowFactory CatalogUoWFactory,
	jobseekerIndex ports.JobseekerIndex,
	vacancyIndex ports.VacancyIndex,
) ReindexAllCommandHandler {
	return ReindexAllCommandHandler{
		uowFactory:     uowFactory,
		jobseekerIndex: jobseekerIndex,
		vacancyIndex:   vacancyIndex,
	}
}

// Handle processes the reindex command and reports how many documents of
// each type were written.
func (h *ReindexAllCommandHandler) Handle(ctx context.Context, cmd ReindexAllCommand) (ReindexAllReport, error) {
	if err := cmd.Validate(); err != nil {
		return ReindexAllReport{}, err
	}

	uow := h.uowFactory.Create()

	report := ReindexAllReport{}

	jobseekerCount, err := h.reindexJobseekers(ctx, uow)
	if err != nil {
		return report, err
	}
	report.Jobseekers = jobseekerCount

	vacancyCount, err := h.reindexVacancies(ctx, uow)
	if err != nil {
		return report, err
	}
	report.Vacancies = vacancyCount

	return report, nil
}

func (h *ReindexAllCommandHandler) reindexJobseekers(ctx context.Context, uow CatalogUoW) (int, error) {
	if err := h.jobseekerIndex.EnsureIndexExists(ctx); err != nil {
		return 0, err
	}

	jobseekers, err := uow.JobseekerRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(jobseekers) == 0 {
		return 0, nil
	}

	documents := make([]ports.JobseekerDocument, 0, len(jobseekers))
	for _, js := range jobseekers {
		documents = append(documents, ports.NewJobseekerDocument(js))
	}

	if err = h.jobseekerIndex.UpsertBulk(ctx, documents); err != nil {
		return 0, err
	}

	return len(documents), nil
}

func (h *ReindexAllCommandHandler) reindexVacancies(ctx context.Context, uow CatalogUoW) (int, error) {
	if err := h.vacancyIndex.EnsureIndexExists(ctx); err != nil {
		return 0, err
	}

	vacancies, err := uow.VacancyRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(vacancies) == 0 {
		return 0, nil
	}

	documents := make([]ports.VacancyDocument, 0, len(vacancies))
	for _, v := range vacancies {
		documents = append(documents, ports.NewVacancyDocument(v))
	}

	if err = h.vacancyIndex.UpsertBulk(ctx, documents); err != nil {
		return 0, err
	}

	return len(documents), nil
}
