package http

import (
	"net/http"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOfficeRequest is the payload for registering a postal office.
type CreateOfficeRequest struct {
	Name         string  `json:"name"`
	OfficeType   string  `json:"officeType"`
	RegionID     int     `json:"regionId"`
	ProvinceCode *string `json:"provinceCode,omitempty"`
	WardCode     *string `json:"wardCode,omitempty"`
	ParentID     *string `json:"parentId,omitempty"`
}

// CreateOfficeResponse carries the identifier of the created office.
type CreateOfficeResponse struct {
	ID string `json:"id"`
}

// CreateOffice handles POST /api/v1/offices.
func (s *Server) CreateOffice(ctx echo.Context) error {
	var req CreateOfficeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	officeType, err := parseOfficeType(req.OfficeType)
	if err != nil {
		return respondError(ctx, err)
	}

	regionID, err := kernel.NewRegionID(req.RegionID)
	if err != nil {
		return respondError(ctx, err)
	}

	var provinceCode *kernel.ProvinceCode
	if req.ProvinceCode != nil {
		code, codeErr := kernel.NewProvinceCode(*req.ProvinceCode)
		if codeErr != nil {
			return respondError(ctx, codeErr)
		}
		provinceCode = &code
	}

	var wardCode *kernel.WardCode
	if req.WardCode != nil {
		code, codeErr := kernel.NewWardCode(*req.WardCode)
		if codeErr != nil {
			return respondError(ctx, codeErr)
		}
		wardCode = &code
	}

	var parentID *kernel.UUID
	if req.ParentID != nil {
		id, idErr := kernel.UUIDFromString(*req.ParentID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		parentID = &id
	}

	officeID := kernel.NewUUID()
	cmd, err := commands.NewCreateOfficeCommand(officeID, req.Name, officeType,
		regionID, provinceCode, wardCode, parentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateOffice.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOfficeResponse{ID: officeID.String()})
}
