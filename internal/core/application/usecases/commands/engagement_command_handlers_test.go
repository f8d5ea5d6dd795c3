package commands_test

import (
	"testing"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/engagement"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateJobApplicationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateJobApplicationCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobApplicationRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobApplicationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(a *engagement.JobApplication) bool {
			return a.Status() == engagement.StatusPending
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEngagementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateJobApplicationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateJobApplicationStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	applicationID := kernel.NewUUID()
	stored, err := engagement.NewJobApplication(applicationID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateJobApplicationStatusCommand(applicationID, engagement.StatusAccepted, "Welcome aboard")
	require.NoError(t, err)

	repo := new(MockJobApplicationRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobApplicationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, applicationID).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEngagementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateJobApplicationStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, engagement.StatusAccepted, stored.Status())
	assert.Equal(t, "Welcome aboard", stored.CompanyResponse())
}

func TestUpdateJobApplicationStatusCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	applicationID := kernel.NewUUID()
	stored, err := engagement.NewJobApplication(applicationID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, stored.Resolve(engagement.StatusRejected, "Not a fit"))

	cmd, err := commands.NewUpdateJobApplicationStatusCommand(applicationID, engagement.StatusAccepted, "")
	require.NoError(t, err)

	repo := new(MockJobApplicationRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobApplicationRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, applicationID).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEngagementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateJobApplicationStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, engagement.ErrAlreadyResolved)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOfferCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Join us")
	require.NoError(t, err)

	repo := new(MockOfferRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(o *engagement.Offer) bool {
			return o.Status() == engagement.StatusPending && o.CompanyMessage() == "Join us"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEngagementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOfferCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestSetOfferReactionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	offerID := kernel.NewUUID()
	stored, err := engagement.NewOffer(offerID, kernel.NewUUID(), kernel.NewUUID(), "Join us")
	require.NoError(t, err)

	cmd, err := commands.NewSetOfferReactionCommand(offerID, engagement.StatusRejected, "Happy where I am")
	require.NoError(t, err)

	repo := new(MockOfferRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, offerID).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockEngagementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOfferReactionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, engagement.StatusRejected, stored.Status())
	assert.Equal(t, "Happy where I am", stored.JobseekerResponse())
}
