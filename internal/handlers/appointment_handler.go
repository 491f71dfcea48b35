package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/PamperedPaws01/groom-scheduler/internal/domain/appointment"
	"github.com/PamperedPaws01/groom-scheduler/internal/httperr"
	"github.com/PamperedPaws01/groom-scheduler/internal/httpresp"
	ucAppointment "github.com/PamperedPaws01/groom-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	getAvailability *ucAppointment.GetAvailability
	create          *ucAppointment.CreateAppointment
	update          *ucAppointment.UpdateAppointment
	delete          *ucAppointment.DeleteAppointment
	listByDate      *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	getAvailability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		getAvailability: getAvailability,
		create:          create,
		update:          update,
		delete:          del,
		listByDate:      listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StaffID       uint     `json:"staff_id" binding:"required"`
	CustomerName  string   `json:"customer_name" binding:"required"`
	CustomerPhone string   `json:"customer_phone" binding:"required"`
	CustomerEmail string   `json:"customer_email"`
	PetName       string   `json:"pet_name" binding:"required"`
	PetBreed      string   `json:"pet_breed"`
	Services      []string `json:"services" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	Notes         string   `json:"notes"`

	OverrideConflict bool `json:"override_conflict"`
}

type UpdateAppointmentRequest struct {
	Date     *string  `json:"date"`
	Time     *string  `json:"time"`
	Services []string `json:"services"`
	Status   *string  `json:"status"`
	Notes    *string  `json:"notes"`

	OverrideConflict bool `json:"override_conflict"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// GET /availability?staff_id=&date=&duration_min=
func (h *AppointmentHandler) GetAvailability(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Query("staff_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return
	}

	durationMin, err := strconv.Atoi(c.Query("duration_min"))
	if err != nil {
		httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		StaffID:     uint(staffID),
		Date:        c.Query("date"),
		DurationMin: durationMin,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		StaffID:          req.StaffID,
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		CustomerEmail:    req.CustomerEmail,
		PetName:          req.PetName,
		PetBreed:         req.PetBreed,
		Services:         req.Services,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
		OverrideConflict: req.OverrideConflict,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Result(c, 201, res.Appointment, res.Warnings())
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.update.Execute(c.Request.Context(), c.Param("id"), ucAppointment.UpdateAppointmentInput{
		Date:             req.Date,
		Time:             req.Time,
		Services:         req.Services,
		Status:           req.Status,
		Notes:            req.Notes,
		OverrideConflict: req.OverrideConflict,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Result(c, 200, res.Appointment, res.Warnings())
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	res, err := h.delete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Result(c, 200, gin.H{"deleted": true}, res.Warnings())
}

// ======================================================
// LIST (agenda do dia)
// ======================================================

// GET /appointments?staff_id=&date=
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Query("staff_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_staff_id", "Profissional inválido.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), uint(staffID), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, out)
}
