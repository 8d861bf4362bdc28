package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/errors"
	meetingDTO "github.com/johnquangdev/meeting-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	meetingUsecase "github.com/johnquangdev/meeting-tracker/internal/usecase/meeting"
)

// Meeting handles meeting CRUD HTTP requests
type Meeting struct {
	service *meetingUsecase.Service
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		service: service,
		logger:  logger,
	}
}

// List handles GET /meetings
// @Summary      List meetings
// @Description  Lists meetings with optional search and status filter
// @Tags         Meetings
// @Produce      json
// @Param        search  query  string  false  "Case-insensitive match on title or stakeholder"
// @Param        status  query  string  false  "Meeting status filter"
// @Success      200  {object}  meeting.MeetingListResponse
// @Router       /meetings [get]
func (h *Meeting) List(c echo.Context) error {
	var req meetingDTO.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	filters := repositories.MeetingFilters{Search: req.Search}
	if req.Status != nil {
		status := entities.MeetingStatus(*req.Status)
		filters.Status = &status
	}

	meetings, err := h.service.ListMeetings(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// Create handles POST /meetings
// @Summary      Create a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body  meeting.SaveMeetingRequest  true  "Meeting"
// @Success      201  {object}  meeting.MeetingResponse
// @Router       /meetings [post]
func (h *Meeting) Create(c echo.Context) error {
	input, err := bindSaveRequest(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.CreateMeeting(c.Request().Context(), *input)
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, ""))
	}

	if h.logger != nil {
		h.logger.Info("meeting created",
			zap.String("meeting_id", m.ID),
			zap.String("stakeholder", m.Stakeholder),
		)
	}
	return c.JSON(http.StatusCreated, presenter.ToMeetingResponse(m))
}

// Get handles GET /meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	id := c.Param("id")

	m, err := h.service.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, id))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Update handles PUT /meetings/:id. The body carries the full record.
func (h *Meeting) Update(c echo.Context) error {
	id := c.Param("id")

	input, err := bindSaveRequest(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.UpdateMeeting(c.Request().Context(), id, *input)
	if err != nil {
		return HandleError(h.logger, c, mapServiceError(err, id))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// Delete handles DELETE /meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.service.DeleteMeeting(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, mapServiceError(err, id))
	}

	if h.logger != nil {
		h.logger.Info("meeting deleted", zap.String("meeting_id", id))
	}
	return HandleSuccess(h.logger, c, map[string]string{"id": id})
}

// Stats handles GET /meetings/stats
func (h *Meeting) Stats(c echo.Context) error {
	stats, err := h.service.GetStats(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, stats)
}

// bindSaveRequest binds and validates the shared create/update body and
// converts it to usecase input.
func bindSaveRequest(c echo.Context) (*meetingUsecase.MeetingInput, error) {
	var req meetingDTO.SaveMeetingRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}

	agenda := make([]meetingUsecase.AgendaItemInput, len(req.Agenda))
	for i, item := range req.Agenda {
		agenda[i] = meetingUsecase.AgendaItemInput{
			Title:       item.Title,
			Description: item.Description,
			Status:      entities.AgendaItemStatus(item.Status),
			Assignee:    item.Assignee,
		}
	}

	return &meetingUsecase.MeetingInput{
		Title:       req.Title,
		Stakeholder: req.Stakeholder,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Status:      entities.MeetingStatus(req.Status),
		Location:    req.Location,
		Attendees:   req.Attendees,
		Agenda:      agenda,
		Notes:       req.Notes,
		NextMeeting: req.NextMeeting,
	}, nil
}
