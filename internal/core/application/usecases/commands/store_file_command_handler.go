package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/file"
)

// StoreFileCommandHandler persists uploaded-file metadata.
type StoreFileCommandHandler struct {
	uowFactory FileUoWFactory
}

// NewStoreFileCommandHandler creates a handler for file uploads.
func NewStoreFileCommandHandler(uowFactory FileUoWFactory) StoreFileCommandHandler {
	return StoreFileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the file upload command.
func (h *StoreFileCommandHandler) Handle(ctx context.Context, cmd StoreFileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := file.NewStoredFile(cmd.FileID(), cmd.Name(), cmd.StoredName(),
		cmd.URL(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.FileRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
