package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/domains/sitecontent"
	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/internal/shared/response"
)

type SiteContentHandler struct {
	service sitecontent.SiteContentService
}

func NewSiteContentHandler(svc sitecontent.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{service: svc}
}

func (h *SiteContentHandler) CreateSection(c *gin.Context) {
	var req sitecontent.CreateSectionReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.CreateSection(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "SECTION_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *SiteContentHandler) GetSectionByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, sitecontent.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.GetSectionByID(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "SECTION_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *SiteContentHandler) GetSectionBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}
	resp, err := h.service.GetSectionBySlug(c.Request.Context(), middleware.ActorFromContext(c), slug)
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "SECTION_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *SiteContentHandler) GetAllSections(c *gin.Context) {
	resp, err := h.service.GetAllSections(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "SECTION_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *SiteContentHandler) UpdateSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, sitecontent.ErrInvalidID.Error())
		return
	}
	var req sitecontent.UpdateSectionReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.UpdateSection(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "SECTION_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *SiteContentHandler) DeleteSection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, sitecontent.ErrInvalidID.Error())
		return
	}
	if err := h.service.DeleteSection(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "SECTION_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *SiteContentHandler) GetHomepage(c *gin.Context) {
	resp, err := h.service.GetHomepage(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "HOMEPAGE_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *SiteContentHandler) SaveHomepage(c *gin.Context) {
	var req sitecontent.SaveHomepageReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.SaveHomepage(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		response.ErrorResponse(c, sitecontent.GetHTTPStatusCode(err), "HOMEPAGE_SAVE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}
