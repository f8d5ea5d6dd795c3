package commands_test

import (
	"errors"
	"testing"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bulkJobseekerEntries() []commands.BulkJobseekerEntry {
	return []commands.BulkJobseekerEntry{
		{
			Username: "anna", Email: "anna@example.com", Password: "secret",
			Profession: "Backend Developer", Experience: 4,
			Education: jobseeker.DegreeBachelor, Location: "Berlin",
		},
		{
			Username: "boris", Email: "boris@example.com", Password: "secret",
			Profession: "Data Engineer", Experience: 6,
			Education: jobseeker.DegreeMaster, Location: "Munich",
			Biography: jobseeker.Biography{SelfDescription: "Pipelines and warehouses"},
		},
	}
}

func TestNewBulkJobseekersCommand_EmptyBatch(t *testing.T) {
	_, err := commands.NewBulkJobseekersCommand(nil)
	require.ErrorIs(t, err, commands.ErrNoJobseekersToImport)
}

func TestBulkJobseekersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkJobseekersCommand(bulkJobseekerEntries())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	jobseekerRepo := new(MockJobseekerRepository)
	uow := new(MockUnitOfWork)
	index := new(MockJobseekerIndex)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("JobseekerRepository").Return(jobseekerRepo).Once()
	userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.AppUser")).Return(nil).Times(2)
	jobseekerRepo.On("Add", mock.Anything, mock.AnythingOfType("*jobseeker.Jobseeker")).Return(nil).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	// One bulk request for the whole batch, issued only after the commit.
	index.On("UpsertBulk", mock.Anything, mock.MatchedBy(func(docs []ports.JobseekerDocument) bool {
		return len(docs) == 2 && docs[0].Profession == "Backend Developer" && docs[1].Profession == "Data Engineer"
	})).Return(nil).Once()

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkJobseekersCommandHandler(factory, index)
	require.NoError(t, h.Handle(ctx, cmd))
	userRepo.AssertExpectations(t)
	jobseekerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestBulkJobseekersCommandHandler_Handle_WriteErrorRollsBackWholeBatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkJobseekersCommand(bulkJobseekerEntries())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	jobseekerRepo := new(MockJobseekerRepository)
	uow := new(MockUnitOfWork)
	index := new(MockJobseekerIndex)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("JobseekerRepository").Return(jobseekerRepo).Once()
	userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.AppUser")).Return(nil).Once()
	jobseekerRepo.On("Add", mock.Anything, mock.AnythingOfType("*jobseeker.Jobseeker")).
		Return(errors.New("constraint violation")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkJobseekersCommandHandler(factory, index)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	index.AssertNotCalled(t, "UpsertBulk", mock.Anything, mock.Anything)
}

func TestBulkJobseekersCommandHandler_Handle_IndexFailureAfterCommit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewBulkJobseekersCommand(bulkJobseekerEntries())
	require.NoError(t, err)

	indexErr := ports.NewJobseekerIndexError("bulk upsert", "*", errors.New("engine down"))

	userRepo := new(MockUserRepository)
	jobseekerRepo := new(MockJobseekerRepository)
	uow := new(MockUnitOfWork)
	index := new(MockJobseekerIndex)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("JobseekerRepository").Return(jobseekerRepo).Once()
	userRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.AppUser")).Return(nil).Times(2)
	jobseekerRepo.On("Add", mock.Anything, mock.AnythingOfType("*jobseeker.Jobseeker")).Return(nil).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	index.On("UpsertBulk", mock.Anything, mock.AnythingOfType("[]ports.JobseekerDocument")).Return(indexErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRosterUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkJobseekersCommandHandler(factory, index)
	err = h.Handle(ctx, cmd)

	// The committed batch stays; only the stale index is reported.
	require.ErrorIs(t, err, ports.ErrIndexSyncFailed)
	uow.AssertCalled(t, "Commit", ctx)
}
