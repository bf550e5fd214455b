package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/domains/brand"
	"ralhum-backend/internal/shared/middleware"
	"ralhum-backend/internal/shared/response"
)

type BrandHandler struct {
	service brand.BrandService
}

func NewBrandHandler(svc brand.BrandService) *BrandHandler {
	return &BrandHandler{service: svc}
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req brand.CreateBrandReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), &req)
	if err != nil {
		response.ErrorResponse(c, brand.GetHTTPStatusCode(err), "BRAND_CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, resp)
}

func (h *BrandHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, brand.ErrInvalidID.Error())
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		response.ErrorResponse(c, brand.GetHTTPStatusCode(err), "BRAND_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *BrandHandler) GetBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		response.BadRequest(c, "invalid slug")
		return
	}
	resp, err := h.service.GetBySlug(c.Request.Context(), middleware.ActorFromContext(c), slug)
	if err != nil {
		response.ErrorResponse(c, brand.GetHTTPStatusCode(err), "BRAND_NOT_FOUND", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *BrandHandler) GetAll(c *gin.Context) {
	filter := &brand.BrandFilter{Limit: 20}
	if statusStr := c.Query("status"); statusStr != "" {
		status := brand.Status(statusStr)
		filter.Status = &status
	}
	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		filter.Featured = &featured
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filter.Offset = o
		}
	}

	resp, err := h.service.GetAll(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		response.ErrorResponse(c, brand.GetHTTPStatusCode(err), "BRAND_LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *BrandHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, brand.ErrInvalidID.Error())
		return
	}
	var req brand.UpdateBrandReq
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, brand.GetHTTPStatusCode(err), "BRAND_UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, brand.ErrInvalidID.Error())
		return
	}
	if err := h.service.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		response.ErrorResponse(c, brand.GetHTTPStatusCode(err), "BRAND_DELETE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
