package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gearshare/gearshare/internal/application"
	"github.com/gearshare/gearshare/internal/interface/middleware"
	"github.com/gearshare/gearshare/pkg/response"
	"github.com/gearshare/gearshare/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// imageFromForm opens the optional "image" part of a multipart request.
// The caller must invoke the returned closer when done (a no-op when no
// file was sent).
func imageFromForm(c *gin.Context) (*application.ImageUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// no file part is fine
		return nil, func() {}, nil
	}
	return openImage(fh)
}

func openImage(fh *multipart.FileHeader) (*application.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	img := &application.ImageUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return img, func() { _ = f.Close() }, nil
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// Create POST /api/posts (multipart: content, optional image)
func (h *PostHandler) Create(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	content := c.PostForm("content")

	img, closeImg, err := imageFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid image", nil)
		return
	}
	defer closeImg()

	p, err := h.Svc.Create(c.Request.Context(), uid, content, img)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "post created", nil)
}

// List GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	views, err := h.Svc.Feed(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load posts", nil)
		return
	}
	response.Success(c, http.StatusOK, views, "posts", nil)
}

// MyPosts GET /api/posts/my-posts
func (h *PostHandler) MyPosts(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	views, err := h.Svc.MyPosts(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load posts", nil)
		return
	}
	response.Success(c, http.StatusOK, views, "my posts", nil)
}

// Favorites GET /api/posts/favorites
func (h *PostHandler) Favorites(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	views, err := h.Svc.Favorites(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load favorites", nil)
		return
	}
	response.Success(c, http.StatusOK, views, "favorites", nil)
}

// Get GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	v, err := h.Svc.Get(c.Request.Context(), uid, id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "post not found", nil)
		return
	}
	response.Success(c, http.StatusOK, v, "post", nil)
}

type toggleLikeRequest struct {
	PostID int64 `json:"post_id" binding:"required,gt=0"`
}

// ToggleLike POST /api/posts/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	var req toggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	liked, err := h.Svc.ToggleLike(c.Request.Context(), uid, req.PostID)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "post not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to toggle like", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"liked": liked}, "like toggled", nil)
}

// Edit PUT /api/posts/:id (multipart: content, optional image)
func (h *PostHandler) Edit(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	content := c.PostForm("content")

	img, closeImg, err := imageFromForm(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid image", nil)
		return
	}
	defer closeImg()

	p, err := h.Svc.Edit(c.Request.Context(), uid, id, content, img)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "post not found", nil)
		case errors.Is(err, application.ErrForbidden):
			response.Error(c, http.StatusForbidden, "not your post", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to update post", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, p, "post updated", nil)
}

// Delete DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	uid, _ := middleware.UserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), uid, id); err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "post not found", nil)
		case errors.Is(err, application.ErrForbidden):
			response.Error(c, http.StatusForbidden, "not your post", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "failed to delete post", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "post deleted", nil)
}
