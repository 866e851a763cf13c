package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZivNavon/customer-management-tool/internal/app"
	"github.com/ZivNavon/customer-management-tool/internal/transport/http/response"
)

type MeetingHandler struct {
	meetingService *app.MeetingService
}

type CreateMeetingRequest struct {
	MeetingDate string `json:"meeting_date" binding:"required,datetime=2006-01-02"`
	TitleHint   string `json:"title_hint" binding:"max=255"`
	RawNotes    string `json:"raw_notes"`
}

func NewMeetingHandler(meetingService *app.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

func (h *MeetingHandler) ListByCustomer(c *gin.Context) {
	meetings, err := h.meetingService.ListMeetings(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "list meetings failed")
		}
		return
	}
	response.OK(c, meetings)
}

func (h *MeetingHandler) Create(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	meetingDate, err := time.Parse("2006-01-02", req.MeetingDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid meeting_date")
		return
	}

	userID, _ := getUserIDFromContext(c)
	meeting, err := h.meetingService.CreateMeeting(app.CreateMeetingInput{
		CustomerID:  c.Param("id"),
		MeetingDate: meetingDate,
		TitleHint:   req.TitleHint,
		RawNotes:    req.RawNotes,
		CreatedBy:   userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrCustomerNotFound):
			response.Error(c, http.StatusNotFound, response.CodeCustomerNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "create meeting failed")
		}
		return
	}
	response.OK(c, meeting)
}

func (h *MeetingHandler) Get(c *gin.Context) {
	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMeetingNotFound):
			response.Error(c, http.StatusNotFound, response.CodeMeetingNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "fetch meeting failed")
		}
		return
	}
	response.OK(c, meeting)
}

// UploadAsset accepts a multipart form with field "file". The whole payload
// is read into memory before the write.
func (h *MeetingHandler) UploadAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "missing file (form field 'file')")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "failed to open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "failed to read uploaded file")
		return
	}

	asset, err := h.meetingService.UploadAsset(c.Request.Context(), app.UploadAssetInput{
		MeetingID:   c.Param("id"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
		case errors.Is(err, app.ErrMeetingNotFound):
			response.Error(c, http.StatusNotFound, response.CodeMeetingNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "upload asset failed")
		}
		return
	}

	response.OK(c, gin.H{
		"message":  "Asset uploaded successfully",
		"asset_id": asset.ID,
		"kind":     asset.Kind,
	})
}

func (h *MeetingHandler) Summarize(c *gin.Context) {
	summary, err := h.meetingService.GenerateSummary(c.Request.Context(), c.Param("id"), c.DefaultQuery("language", "en"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMeetingNotFound):
			response.Error(c, http.StatusNotFound, response.CodeMeetingNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "generate summary failed")
		}
		return
	}

	response.OK(c, gin.H{
		"summary_id": summary.ID,
		"version":    summary.Version,
		"language":   summary.Language,
	})
}

func (h *MeetingHandler) DraftEmail(c *gin.Context) {
	draft, err := h.meetingService.GenerateEmailDraft(c.Request.Context(), c.Param("id"), c.DefaultQuery("language", "en"))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMeetingNotFound):
			response.Error(c, http.StatusNotFound, response.CodeMeetingNotFound, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "generate email draft failed")
		}
		return
	}

	response.OK(c, gin.H{
		"email_draft_id": draft.ID,
		"version":        draft.Version,
		"subject":        draft.Subject,
	})
}
