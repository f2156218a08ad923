// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"pocketmart/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories its workflow
// touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ClientRepoFactory provides access to the client-profile repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// PersonnelRepoFactory provides access to the personnel repository within a transaction.
	PersonnelRepoFactory interface {
		PersonnelRepository() ports.PersonnelRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OnboardingUoW manages the personnel-onboarding transaction:
	// a credential insert followed by a personnel insert, atomically.
	OnboardingUoW interface {
		TxManager
		UserRepoFactory
		PersonnelRepoFactory
	}

	// OnboardingUoWFactory creates onboarding unit of work instances.
	OnboardingUoWFactory interface {
		Create() OnboardingUoW
	}

	// RegistrationUoW manages the client-registration transaction:
	// a credential insert followed by a profile insert, atomically.
	RegistrationUoW interface {
		TxManager
		UserRepoFactory
		ClientRepoFactory
	}

	// RegistrationUoWFactory creates registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages the assignment transaction, which spans the
	// delivery, order, and personnel aggregates.
	AssignmentUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		PersonnelRepoFactory
	}

	// AssignmentUoWFactory creates assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CompletionUoW manages the delivery-completion transaction,
	// spanning the order and delivery aggregates.
	CompletionUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// CompletionUoWFactory creates completion unit of work instances.
	CompletionUoWFactory interface {
		Create() CompletionUoW
	}

	// PersonnelUoW manages transactions for personnel-only operations,
	// such as the daily counter reset.
	PersonnelUoW interface {
		TxManager
		PersonnelRepoFactory
	}

	// PersonnelUoWFactory creates personnel unit of work instances.
	PersonnelUoWFactory interface {
		Create() PersonnelUoW
	}
)
