// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence, with the outbox row written in the
// same transaction as the aggregate.
package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ActorRepoFactory provides access to the actor repository within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// EventRepoFactory provides access to the outbox within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// OrderUoW manages transactions for order mutations. Every order write
	// carries an outbox row, so the event repository is always in scope.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ActorUoW manages transactions for actor-only operations.
	ActorUoW interface {
		TxManager
		ActorRepoFactory
	}

	// ActorUoWFactory creates new actor unit of work instances.
	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// UoW manages transactions that span order and actor aggregates, such as
	// assignment, which checks the target actor's role before writing the order.
	UoW interface {
		TxManager
		OrderRepoFactory
		ActorRepoFactory
		EventRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// EventNotifier receives the committed event for fan-out. Called strictly
// after commit; failures inside are the notifier's problem, never the
// command's.
type EventNotifier interface {
	Notify(ctx context.Context, event order.Event)
}

// OrderLocker serializes mutations per order ID. The returned release
// function must be called exactly when the mutation is finished.
type OrderLocker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}
