package commands

import (
	"context"

	"postal/internal/core/domain/model/office"
)

// CreateOfficeCommandHandler handles registration of network offices.
type CreateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewCreateOfficeCommandHandler creates a handler for office registration.
func NewCreateOfficeCommandHandler(uowFactory OfficeUoWFactory) CreateOfficeCommandHandler {
	return CreateOfficeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the office creation command. The parent office, when
// given, must already exist.
func (h *CreateOfficeCommandHandler) Handle(ctx context.Context, cmd CreateOfficeCommand) error {
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

	repo := uow.OfficeRepository()
	if parentID := cmd.ParentID(); parentID != nil {
		if _, err := repo.Get(ctx, *parentID); err != nil {
			return err
		}
	}

	aggregate, err := office.NewOffice(
		cmd.OfficeID(),
		cmd.Name(),
		cmd.OfficeType(),
		cmd.RegionID(),
		cmd.ProvinceCode(),
		cmd.WardCode(),
		cmd.ParentID(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
