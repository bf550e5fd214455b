package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/domains/media"
	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/internal/shared/response"
)

type MediaHandler struct {
	service media.MediaService
}

func NewMediaHandler(svc media.MediaService) *MediaHandler {
	return &MediaHandler{service: svc}
}

// Upload accepts a multipart form: "file" plus alt/caption/category fields.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	req := &media.UploadMediaReq{
		Filename: fileHeader.Filename,
		Alt:      strings.TrimSpace(c.PostForm("alt")),
		Category: media.MediaCategory(c.PostForm("category")),
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
	}
	if caption := strings.TrimSpace(c.PostForm("caption")); caption != "" {
		req.Caption = &caption
	}

	resp, err := h.service.Upload(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		response.ErrorResponse(c, media.GetHTTPStatusCode(err), "MEDIA_UPLOAD_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *MediaHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, media.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, media.GetHTTPStatusCode(err), "MEDIA_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *MediaHandler) GetAll(c *gin.Context) {
	filter := &media.MediaFilter{Limit: 20, Search: strings.TrimSpace(c.Query("search"))}
	if v := c.Query("category"); v != "" {
		category := media.MediaCategory(v)
		filter.Category = &category
	}
	if v := c.Query("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if v := c.Query("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	resp, err := h.service.GetAll(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		response.ErrorResponse(c, media.GetHTTPStatusCode(err), "MEDIA_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *MediaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, media.ErrInvalidID.Error())
		return
	}
	var req media.UpdateMediaReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, media.GetHTTPStatusCode(err), "MEDIA_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, media.ErrInvalidID.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		response.ErrorResponse(c, media.GetHTTPStatusCode(err), "MEDIA_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
