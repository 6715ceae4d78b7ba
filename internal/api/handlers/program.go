package handlers

import (
	"net/http"

	"bugbounty-platform-backend/internal/auth"
	"bugbounty-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProgramHandler handles HTTP requests for program operations
type ProgramHandler struct {
	programService service.ProgramServiceInterface
	accessService  service.AccessServiceInterface
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(programService service.ProgramServiceInterface, accessService service.AccessServiceInterface) *ProgramHandler {
	return &ProgramHandler{
		programService: programService,
		accessService:  accessService,
	}
}

// ReplaceProgram handles PUT /programs
// @Summary Create or replace the calling company's program
// @Description Replaces the company's existing program, if any, with the given definition in one transaction
// @Tags programs
// @Accept json
// @Produce json
// @Param request body service.CreateProgramRequest true "Program definition"
// @Success 201 {object} service.ProgramResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 403 {object} ErrorResponse "Caller is not a company"
// @Security BearerAuth
// @Router /programs [put]
func (h *ProgramHandler) ReplaceProgram(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}

	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.programService.Replace(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetProgram handles GET /programs/:id
// @Summary Get a program
// @Description Returns the program with its pricing aggregate and prohibited actions
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} service.ProgramResponse
// @Failure 404 {object} ErrorResponse "Program not found"
// @Security BearerAuth
// @Router /programs/{id} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	if _, ok := resolveCaller(c, h.accessService, auth.Principal(c)); !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	resp, err := h.programService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine handles GET /programs
// @Summary List the calling company's programs
// @Tags programs
// @Produce json
// @Success 200 {array} service.ProgramResponse
// @Failure 403 {object} ErrorResponse "Caller is not a company"
// @Security BearerAuth
// @Router /programs [get]
func (h *ProgramHandler) ListMine(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}

	resp, err := h.programService.ListForCompany(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllAssets handles GET /programs/:id/assets
// @Summary List all scannable assets of a program
// @Description Flattens the asset entries of all four severity tiers into one list
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {array} service.AssetEntryPayload
// @Failure 404 {object} ErrorResponse "Program not found"
// @Security BearerAuth
// @Router /programs/{id}/assets [get]
func (h *ProgramHandler) GetAllAssets(c *gin.Context) {
	if _, ok := resolveCaller(c, h.accessService, auth.Principal(c)); !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	resp, err := h.programService.GetAllAssets(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplaceAggregate handles PUT /programs/:id/assets
// @Summary Replace a program's pricing aggregate
// @Description Swaps the four-tier aggregate for a new one in a single transaction
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param request body service.AggregatePayload true "New aggregate"
// @Success 200 {object} service.ProgramResponse
// @Failure 403 {object} ErrorResponse "Caller does not own the program"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Security BearerAuth
// @Router /programs/{id}/assets [put]
func (h *ProgramHandler) ReplaceAggregate(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var payload service.AggregatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.programService.ReplaceAggregate(caller, id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteProgram handles DELETE /programs/:id
// @Summary Delete a program
// @Description Deletes the program with its aggregate, prohibited actions and all reports submitted against it
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 204 "Program deleted"
// @Failure 403 {object} ErrorResponse "Caller does not own the program"
// @Failure 404 {object} ErrorResponse "Program not found"
// @Security BearerAuth
// @Router /programs/{id} [delete]
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	caller, ok := resolveCaller(c, h.accessService, auth.Principal(c))
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.programService.Delete(caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
