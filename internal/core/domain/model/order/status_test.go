package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusPending,
		order.StatusAccepted,
		order.StatusOutForDelivery,
		order.StatusDelivered,
		order.StatusCancelled,
	}
}

// legalEdges mirrors the lifecycle graph the implementation must enforce.
func legalEdges() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.StatusPending:        {order.StatusAccepted, order.StatusCancelled},
		order.StatusAccepted:       {order.StatusOutForDelivery, order.StatusCancelled},
		order.StatusOutForDelivery: {order.StatusDelivered, order.StatusCancelled},
		order.StatusDelivered:      {},
		order.StatusCancelled:      {},
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all lifecycle statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		for _, s := range []string{"", "Pending", "shipped", "out for delivery"} {
			_, err := order.StatusFromString(s)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatusTransitionTable(t *testing.T) {
	edges := legalEdges()

	for _, from := range allStatuses() {
		for _, to := range allStatuses() {
			legal := false
			for _, next := range edges[from] {
				if next == to {
					legal = true
				}
			}

			t.Run(from.String()+"_to_"+to.String(), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if legal {
					require.NoError(t, err)
					assert.Equal(t, to, next)
				} else {
					require.Error(t, err)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
				}
			})
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.StatusPending.IsTerminal())
	assert.False(t, order.StatusAccepted.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
}

func TestTerminalStatusesRejectEverything(t *testing.T) {
	for _, terminal := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
		for _, target := range allStatuses() {
			_, err := terminal.TransitionTo(target)

			require.Error(t, err, "%s -> %s must fail", terminal, target)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	}
}

func TestStatusTransitionHelpers(t *testing.T) {
	t.Run("Accept", func(t *testing.T) {
		next, err := order.StatusPending.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, next)

		_, err = order.StatusOutForDelivery.Accept()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Depart", func(t *testing.T) {
		next, err := order.StatusAccepted.Depart()
		require.NoError(t, err)
		assert.Equal(t, order.StatusOutForDelivery, next)

		_, err = order.StatusPending.Depart()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Complete", func(t *testing.T) {
		next, err := order.StatusOutForDelivery.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, next)

		_, err = order.StatusAccepted.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Cancel", func(t *testing.T) {
		for _, from := range []order.Status{
			order.StatusPending, order.StatusAccepted, order.StatusOutForDelivery,
		} {
			next, err := from.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.StatusCancelled, next)
		}

		_, err := order.StatusDelivered.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatusValidateAssignee(t *testing.T) {
	t.Run("pending must be unassigned", func(t *testing.T) {
		require.NoError(t, order.StatusPending.ValidateAssignee(false))
		require.Error(t, order.StatusPending.ValidateAssignee(true))
	})

	t.Run("active and delivered must be assigned", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusAccepted, order.StatusOutForDelivery, order.StatusDelivered,
		} {
			require.NoError(t, s.ValidateAssignee(true))
			require.Error(t, s.ValidateAssignee(false))
		}
	})

	t.Run("cancelled accepts both", func(t *testing.T) {
		require.NoError(t, order.StatusCancelled.ValidateAssignee(true))
		require.NoError(t, order.StatusCancelled.ValidateAssignee(false))
	})
}
