package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [get]
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "projects_list_failed")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  models.Project
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *Handler) getProject(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	project, err := h.services.Projects.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "project_get_failed")
		return
	}
	c.JSON(http.StatusOK, project)
}

// projectForm reads the multipart fields shared by create and update.
// tags arrives as a JSON string (e.g. `["web","design"]`).
func (h *Handler) projectForm(c *gin.Context) (service.ProjectInput, bool) {
	in := service.ProjectInput{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Link:        c.PostForm("link"),
		ImagePath:   c.PostForm("image_path"),
	}

	if raw := c.PostForm("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Tags); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tags must be a JSON array of strings"})
			return service.ProjectInput{}, false
		}
	}

	if raw := c.PostForm("sort_order"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sort_order must be an integer"})
			return service.ProjectInput{}, false
		}
		in.SortOrder = n
	}

	// Optional image payload; absence is fine.
	if fh, err := c.FormFile("image"); err == nil {
		in.ImageFile = fh
	}

	return in, true
}

// @Summary      Create project
// @Description  Multipart form: title, category, description, tags (JSON string), link, sort_order, image_path, image (file)
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "id, image"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	in, ok := h.projectForm(c)
	if !ok {
		return
	}

	id, image, err := h.services.Projects.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "project_create_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "image": image, "message": "Project created"})
}

// @Summary      Update project
// @Description  Full replace of mutable fields; the stored image is kept when neither a file nor image_path is supplied
// @Tags         projects
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  map[string]interface{}  "image"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	in, ok := h.projectForm(c)
	if !ok {
		return
	}

	image, err := h.services.Projects.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err, "project_update_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image, "message": "Project updated"})
}

// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.services.Projects.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "project_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
