package commands_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/domain/services"
	"gasdelivery/internal/pkg/errs"
	"gasdelivery/internal/pkg/keyedlock"
)

func newStatusHandler(
	factory commands.OrderUoWFactory,
	locker commands.OrderLocker,
	notifier commands.EventNotifier,
) commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		factory, services.NewAuthorizationGuard(), locker, product.DefaultCatalog(), notifier,
	)
}

func expectLoadUpdateCommit(ctx any, uow *MockUoW, orderRepo *MockOrderRepository, eventRepo *MockEventRepository, o *order.Order) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestUpdateOrderStatusCommandHandler_Handle_AssigneeAdvances(t *testing.T) {
	ctx := t.Context()
	deliveryPerson := newTestActor(t, actor.RoleDelivery)
	accepted := newPendingOrderFor(t, kernel.NewUUID())
	require.NoError(t, accepted.Assign(deliveryPerson.ID()))

	cmd, err := commands.NewUpdateOrderStatusCommand(accepted.ID(), deliveryPerson, order.StatusOutForDelivery)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	expectLoadUpdateCommit(ctx, uow, orderRepo, eventRepo, accepted)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("order.Event")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusHandler(factory, noopLocker{}, notifier)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, updated.Status())

	event := notifier.Calls[0].Arguments.Get(1).(order.Event)
	assert.Equal(t, order.StatusOutForDelivery.String(), event.Status)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OwnerCancelsPending(t *testing.T) {
	ctx := t.Context()
	owner := newTestActor(t, actor.RoleCustomer)
	pending := newPendingOrderFor(t, owner.ID())

	cmd, err := commands.NewUpdateOrderStatusCommand(pending.ID(), owner, order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	expectLoadUpdateCommit(ctx, uow, orderRepo, eventRepo, pending)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("order.Event")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusHandler(factory, noopLocker{}, notifier)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, updated.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_OwnerCannotCancelAccepted(t *testing.T) {
	ctx := t.Context()
	owner := newTestActor(t, actor.RoleCustomer)
	accepted := newPendingOrderFor(t, owner.ID())
	require.NoError(t, accepted.Assign(kernel.NewUUID()))

	cmd, err := commands.NewUpdateOrderStatusCommand(accepted.ID(), owner, order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, accepted.ID()).Return(accepted, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	h := newStatusHandler(factory, noopLocker{}, notifier)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrOperationForbidden)
	assert.Equal(t, order.StatusAccepted, accepted.Status())
	notifier.AssertNotCalled(t, "Notify")
}

func TestUpdateOrderStatusCommandHandler_Handle_AdminCancelsOutForDelivery(t *testing.T) {
	ctx := t.Context()
	admin := newTestActor(t, actor.RoleAdmin)
	o := newPendingOrderFor(t, kernel.NewUUID())
	require.NoError(t, o.Assign(kernel.NewUUID()))
	require.NoError(t, o.Depart())

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), admin, order.StatusCancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	expectLoadUpdateCommit(ctx, uow, orderRepo, eventRepo, o)
	notifier.On("Notify", mock.Anything, mock.AnythingOfType("order.Event")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusHandler(factory, noopLocker{}, notifier)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, updated.Status())
	require.NotNil(t, updated.AssignedTo(), "cancellation keeps the assignee")
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	deliveryPerson := newTestActor(t, actor.RoleDelivery)
	delivered := newPendingOrderFor(t, kernel.NewUUID())
	require.NoError(t, delivered.Assign(deliveryPerson.ID()))
	require.NoError(t, delivered.Depart())
	require.NoError(t, delivered.Complete())

	cmd, err := commands.NewUpdateOrderStatusCommand(delivered.ID(), deliveryPerson, order.StatusOutForDelivery)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, delivered.ID()).Return(delivered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newStatusHandler(factory, noopLocker{}, new(MockNotifier))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusDelivered, delivered.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

// Two concurrent transitions on the same order: exactly one wins, the loser
// conflicts without touching storage.
func TestUpdateOrderStatusCommandHandler_Handle_ConcurrentConflict(t *testing.T) {
	ctx := t.Context()
	deliveryPerson := newTestActor(t, actor.RoleDelivery)
	accepted := newPendingOrderFor(t, kernel.NewUUID())
	require.NoError(t, accepted.Assign(deliveryPerson.ID()))

	cmd, err := commands.NewUpdateOrderStatusCommand(accepted.ID(), deliveryPerson, order.StatusOutForDelivery)
	require.NoError(t, err)

	started := make(chan struct{})
	finish := make(chan struct{})

	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("EventRepository").Return(eventRepo)
	orderRepo.On("Get", mock.Anything, accepted.ID()).
		Run(func(mock.Arguments) { close(started); <-finish }).
		Return(accepted, nil).Once()
	orderRepo.On("Update", mock.Anything, accepted).Return(nil)
	eventRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything)

	h := newStatusHandler(factory, keyedlock.NewKeyedLock(50*time.Millisecond), notifier)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = h.Handle(ctx, cmd)
	}()

	<-started
	_, secondErr := h.Handle(ctx, cmd)
	close(finish)
	wg.Wait()

	require.NoError(t, firstErr)
	require.ErrorIs(t, secondErr, errs.ErrConcurrencyConflict)
	orderRepo.AssertNumberOfCalls(t, "Update", 1)
}
