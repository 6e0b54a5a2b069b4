package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"joblist/api-service/internal/job"
)

type jobHandler struct {
	svc *job.Service
}

// list handles GET /jobs. Filters come straight off the query string; the
// service parses and validates the numeric ones.
func (h *jobHandler) list(c *gin.Context) {
	f := job.Filters{
		Title:     c.Query("title"),
		MinSalary: c.Query("minSalary"),
		HasEquity: c.Query("hasEquity"),
	}

	jobs, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// get handles GET /jobs/:title.
func (h *jobHandler) get(c *gin.Context) {
	j, err := h.svc.Get(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

// create handles POST /jobs (admin).
func (h *jobHandler) create(c *gin.Context) {
	var p job.CreateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	j, err := h.svc.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": j})
}

// update handles PATCH /jobs/:title (admin).
func (h *jobHandler) update(c *gin.Context) {
	var p job.UpdateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	j, err := h.svc.Update(c.Request.Context(), c.Param("title"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

// remove handles DELETE /jobs/:title (admin).
func (h *jobHandler) remove(c *gin.Context) {
	title := c.Param("title")
	if err := h.svc.Remove(c.Request.Context(), title); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": title})
}
