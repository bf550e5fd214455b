package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/domains/news"
	"ralhum-backend/internal/lifecycle"
	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/internal/shared/response"
)

type NewsHandler struct {
	service news.NewsService
}

func NewNewsHandler(svc news.NewsService) *NewsHandler {
	return &NewsHandler{service: svc}
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req news.CreateNewsReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *NewsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, news.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *NewsHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}
	resp, err := h.service.GetBySlug(c.Request.Context(), middleware.ActorFromContext(c), slug)
	if err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *NewsHandler) GetAll(c *gin.Context) {
	filter := &news.NewsFilter{
		Limit:    20,
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if v := c.Query("status"); v != "" {
		status := lifecycle.NewsStatus(v)
		filter.Status = &status
	}
	if v := c.Query("featured"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.Featured = &b
		}
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
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, news.ErrInvalidID.Error())
		return
	}
	var req news.UpdateNewsReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *NewsHandler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, news.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.Publish(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_PUBLISH_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *NewsHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, news.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.Archive(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_ARCHIVE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, news.ErrInvalidID.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		response.ErrorResponse(c, news.GetHTTPStatusCode(err), "NEWS_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
