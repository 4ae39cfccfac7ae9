package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken    string
	loginUsername string
	loginErr      error
	parseIdentity service.Identity
	parseErr      error
	changeErr     error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
	lastChangeUserID  int
	lastOldPassword   string
	lastNewPassword   string
}

func (m *mockAuth) Login(username, password string) (string, string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginUsername, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdentity, m.parseErr
}

func (m *mockAuth) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	m.lastChangeUserID = userID
	m.lastOldPassword = oldPassword
	m.lastNewPassword = newPassword
	return m.changeErr
}

type mockProjects struct {
	listResp    []models.Project
	listErr     error
	getResp     models.Project
	getErr      error
	createID    int
	createImage string
	createErr   error
	updateImage string
	updateErr   error
	deleteErr   error

	lastCreateInput service.ProjectInput
	lastUpdateInput service.ProjectInput
	lastUpdateID    int
	lastDeleteID    int
	createCalls     int
}

func (m *mockProjects) List(ctx context.Context) ([]models.Project, error) {
	return m.listResp, m.listErr
}

func (m *mockProjects) Get(ctx context.Context, id int) (models.Project, error) {
	return m.getResp, m.getErr
}

func (m *mockProjects) Create(ctx context.Context, in service.ProjectInput) (int, string, error) {
	m.createCalls++
	m.lastCreateInput = in
	return m.createID, m.createImage, m.createErr
}

func (m *mockProjects) Update(ctx context.Context, id int, in service.ProjectInput) (string, error) {
	m.lastUpdateID = id
	m.lastUpdateInput = in
	return m.updateImage, m.updateErr
}

func (m *mockProjects) Delete(ctx context.Context, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

type mockResume struct {
	uploadPath string
	uploadErr  error
	current    string
	exists     bool
	currentErr error
	deleteErr  error

	lastUploadName string
}

func (m *mockResume) Upload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	m.lastUploadName = fh.Filename
	return m.uploadPath, m.uploadErr
}

func (m *mockResume) Current(ctx context.Context) (string, bool, error) {
	return m.current, m.exists, m.currentErr
}

func (m *mockResume) Delete(ctx context.Context) error {
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, "")
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
