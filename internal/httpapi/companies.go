package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblist/api-service/internal/company"
)

type companyHandler struct {
	svc *company.Service
}

// list handles GET /companies.
func (h *companyHandler) list(c *gin.Context) {
	f := company.Filters{
		Name:         c.Query("name"),
		MinEmployees: c.Query("minEmployees"),
		MaxEmployees: c.Query("maxEmployees"),
	}

	companies, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

// get handles GET /companies/:handle.
func (h *companyHandler) get(c *gin.Context) {
	co, err := h.svc.Get(c.Request.Context(), c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": co})
}

// create handles POST /companies (admin).
func (h *companyHandler) create(c *gin.Context) {
	var p company.CreateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	co, err := h.svc.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": co})
}

// update handles PATCH /companies/:handle (admin).
func (h *companyHandler) update(c *gin.Context) {
	var p company.UpdateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	co, err := h.svc.Update(c.Request.Context(), c.Param("handle"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": co})
}

// remove handles DELETE /companies/:handle (admin).
func (h *companyHandler) remove(c *gin.Context) {
	handle := c.Param("handle")
	if err := h.svc.Remove(c.Request.Context(), handle); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
