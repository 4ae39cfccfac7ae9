package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Upload resume
// @Description  Multipart form with a single "file" part; only .pdf, .docx and .doc are accepted
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  map[string]string  "path"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      415  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/resume [post]
// @Security     BearerAuth
func (h *Handler) uploadResume(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resume file"})
		return
	}

	path, err := h.services.Resume.Upload(c.Request.Context(), fh)
	if err != nil {
		h.respondError(c, err, "resume_upload_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"path": path, "message": "Resume uploaded"})
}

// @Summary      Get resume status
// @Tags         resume
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "exists, path"
// @Failure      500  {object}  map[string]string
// @Router       /api/resume [get]
func (h *Handler) getResume(c *gin.Context) {
	path, exists, err := h.services.Resume.Current(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "resume_get_failed")
		return
	}
	if !exists {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": true, "path": path})
}

// @Summary      Delete resume
// @Tags         resume
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/resume [delete]
// @Security     BearerAuth
func (h *Handler) deleteResume(c *gin.Context) {
	if err := h.services.Resume.Delete(c.Request.Context()); err != nil {
		h.respondError(c, err, "resume_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted"})
}
