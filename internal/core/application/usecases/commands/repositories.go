// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DeliverymanRepoFactory provides access to the deliveryman repository within a transaction.
	DeliverymanRepoFactory interface {
		DeliverymanRepository() ports.DeliverymanRepository
	}

	// RecipientRepoFactory provides access to the recipient repository within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// ProblemRepoFactory provides access to the problem repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// FileRepoFactory provides access to the stored-file repository within a transaction.
	FileRepoFactory interface {
		FileRepository() ports.FileRepository
	}

	// RecipientUoW manages transactions for recipient operations. The
	// delivery repository is included so removal can check for open
	// deliveries.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
		DeliveryRepoFactory
	}

	// RecipientUoWFactory creates new recipient unit of work instances.
	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// DeliverymanUoW manages transactions for deliveryman operations. The
	// delivery repository backs the open-delivery removal check; the file
	// repository backs avatar validation.
	DeliverymanUoW interface {
		TxManager
		DeliverymanRepoFactory
		DeliveryRepoFactory
		FileRepoFactory
	}

	// DeliverymanUoWFactory creates new deliveryman unit of work instances.
	DeliverymanUoWFactory interface {
		Create() DeliverymanUoW
	}

	// DeliveryUoW manages transactions for delivery lifecycle operations.
	// Recipient and deliveryman repositories back the reference checks on
	// creation and reassignment; the file repository backs signature
	// validation on completion.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		DeliverymanRepoFactory
		RecipientRepoFactory
		FileRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ProblemUoW manages transactions for problem reports and for canceling a
	// delivery over a reported problem, which loads the delivery and its
	// participants to build the notification.
	ProblemUoW interface {
		TxManager
		ProblemRepoFactory
		DeliveryRepoFactory
		DeliverymanRepoFactory
		RecipientRepoFactory
	}

	// ProblemUoWFactory creates new problem unit of work instances.
	ProblemUoWFactory interface {
		Create() ProblemUoW
	}

	// FileUoW manages transactions for stored-file metadata.
	FileUoW interface {
		TxManager
		FileRepoFactory
	}

	// FileUoWFactory creates new file unit of work instances.
	FileUoWFactory interface {
		Create() FileUoW
	}
)
