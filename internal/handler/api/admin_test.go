//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"agenda-web/internal/handler/api"
	resdto "agenda-web/internal/handler/dto/response"
	"agenda-web/internal/handler/middleware"
	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/config"
	"agenda-web/internal/pkg/cookie"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/pkg/jwt"
	"agenda-web/internal/usecase/admin"
	"agenda-web/tests/common/httptest"
	adminmock "agenda-web/tests/mock/admin"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockUseCase  *adminmock.MockUseCase
	liveToken    string
	expiredToken string
}

func signAdminToken(s *suite.Suite, exp time.Time) string {
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"id":    7,
		"email": "laura@example.com",
		"exp":   exp.Unix(),
	}).SignedString([]byte("backend-secret"))
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = adminmock.NewMockUseCase(s.mockCtrl)

	cfg := config.NewTestConfig()
	handler := api.NewAdminHandler(s.mockUseCase, cfg)
	auth := middleware.NewAdminAuthMiddleware(jwt.NewInspector(clock.NewMockClock(now), 0), cfg)

	s.liveToken = signAdminToken(&s.Suite, now.Add(time.Hour))
	s.expiredToken = signAdminToken(&s.Suite, now.Add(-time.Hour))

	group := s.router.Group("/api/admin")
	group.POST("/login", handler.Login)
	group.POST("/logout", handler.Logout)

	authRequired := group.Group("")
	authRequired.Use(auth.RequireAdmin())
	authRequired.GET("/me", handler.Verify)
	authRequired.GET("/stats", handler.Stats)
	authRequired.GET("/appointments", handler.ListAppointments)
	authRequired.PATCH("/appointments/:id/status", handler.ChangeStatus)
	authRequired.DELETE("/appointments/:id", handler.DeleteAppointment)
	authRequired.POST("/password", handler.ChangePassword)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AdminHandlerTestSuite) TestLogin() {
	body := map[string]string{"email": "laura@example.com", "password": "secreto"}

	s.Run("success: sets the admin cookie", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "laura@example.com", "secreto").
			Return(&admin.Session{Token: s.liveToken, Admin: admin.Profile{ID: 7, Name: "Laura", Email: "laura@example.com"}}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/login", body, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(int64(7), res.Admin.ID)

		c := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(c)
		s.Equal(s.liveToken, c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing credentials",
				err:            admin.ErrMissingCredentials,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Por favor ingresa tu email y contraseña",
			},
			{
				name:           "backend refuses credentials",
				err:            errs.WithHint(errs.Mark(errs.New("401"), errs.ErrUnauthorized), "Credenciales incorrectas"),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Credenciales incorrectas",
			},
			{
				name:           "backend refuses without a message",
				err:            errs.Mark(errs.New("401"), errs.ErrUnauthorized),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Credenciales inválidas",
			},
			{
				name:           "backend unreachable",
				err:            errs.Mark(errs.New("dial tcp"), errs.ErrBackendUnavailable),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Error de conexión",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/login", body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRequireAdmin
// ================================================================================

func (s *AdminHandlerTestSuite) TestRequireAdmin() {
	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Token de acceso requerido")
	})

	s.Run("error: expired JWT never reaches the backend", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/stats", nil, s.expiredToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "expiró")
	})

	s.Run("success: opaque tokens are left to the backend", func() {
		s.mockUseCase.EXPECT().Verify(gomock.Any(), "opaque-token").
			Return(&admin.Profile{ID: 1, Name: "Laura"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/me", nil, "opaque-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: cookie token is forwarded", func() {
		s.mockUseCase.EXPECT().Verify(gomock.Any(), s.liveToken).
			Return(&admin.Profile{ID: 7, Name: "Laura"}, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: s.liveToken}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/admin/me", nil, cookies, "")

		var res struct {
			Admin resdto.AdminResponse `json:"admin"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Laura", res.Admin.Name)
	})

	s.Run("error: backend rejection clears the cookie", func() {
		s.mockUseCase.EXPECT().Verify(gomock.Any(), s.liveToken).
			Return(nil, errs.Mark(errs.New("403"), errs.ErrUnauthorized)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/me", nil, s.liveToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")

		httptest.AssertCookieCleared(s.T(), rec, cookie.AdminTokenCookieName)
	})
}

// ================================================================================
// TestAppointments
// ================================================================================

func (s *AdminHandlerTestSuite) TestAppointments() {
	s.Run("success: stats", func() {
		s.mockUseCase.EXPECT().Stats(gomock.Any(), s.liveToken).
			Return(&admin.Stats{TotalAppointments: 40, Today: 3, ThisWeek: 12, TotalClients: 25}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/stats", nil, s.liveToken)

		var res struct {
			Stats resdto.StatsResponse `json:"estadisticas"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.StatsResponse{TotalAppointments: 40, Today: 3, ThisWeek: 12, TotalClients: 25}, res.Stats)
	})

	s.Run("success: list with filters and labels", func() {
		s.mockUseCase.EXPECT().
			ListAppointments(gomock.Any(), s.liveToken, admin.TabAll, admin.Filter{From: "2026-10-01", Status: admin.StatusPending}).
			Return([]admin.Appointment{{
				ID:         9,
				Date:       "2026-10-20T03:00:00.000Z",
				Time:       "14:00:00",
				ClientName: "Ana",
				Service:    "Barba",
				Status:     admin.StatusPending,
			}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/admin/appointments?tab=todas&fecha_inicio=2026-10-01&estado=pendiente", nil, s.liveToken)

		var res struct {
			Items []resdto.AppointmentResponse `json:"citas"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Items, 1)
		s.Equal("20/10/2026", res.Items[0].DateLabel)
		s.Equal("14:00", res.Items[0].Time)
		s.Equal("Ana", res.Items[0].ClientName)
	})

	s.Run("success: tab defaults to today", func() {
		s.mockUseCase.EXPECT().
			ListAppointments(gomock.Any(), s.liveToken, admin.TabToday, admin.Filter{}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/appointments", nil, s.liveToken)

		var res struct {
			Items []resdto.AppointmentResponse `json:"citas"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.NotNil(res.Items)
		s.Empty(res.Items)
	})

	s.Run("success: change status", func() {
		s.mockUseCase.EXPECT().ChangeStatus(gomock.Any(), s.liveToken, int64(9), admin.StatusConfirmed).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/api/admin/appointments/9/status",
			map[string]string{"estado": "Confirmada"}, s.liveToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: invalid appointment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/appointments/abc", nil, s.liveToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cita inválida")
	})

	s.Run("success: delete", func() {
		s.mockUseCase.EXPECT().DeleteAppointment(gomock.Any(), s.liveToken, int64(9)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/appointments/9", nil, s.liveToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the backend does not know the appointment", func() {
		s.mockUseCase.EXPECT().DeleteAppointment(gomock.Any(), s.liveToken, int64(10)).
			Return(errs.Mark(errs.New("404"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/admin/appointments/10", nil, s.liveToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cita no encontrada")
	})
}

// ================================================================================
// TestChangePassword
// ================================================================================

func (s *AdminHandlerTestSuite) TestChangePassword() {
	s.Run("success", func() {
		s.mockUseCase.EXPECT().ChangePassword(gomock.Any(), s.liveToken, "viejo", "nuevo123", "nuevo123").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/password", map[string]string{
			"currentPassword": "viejo",
			"newPassword":     "nuevo123",
			"confirmPassword": "nuevo123",
		}, s.liveToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 with the validation message", func() {
		s.mockUseCase.EXPECT().ChangePassword(gomock.Any(), s.liveToken, "viejo", "nuevo123", "otro").
			Return(admin.ErrPasswordMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/password", map[string]string{
			"currentPassword": "viejo",
			"newPassword":     "nuevo123",
			"confirmPassword": "otro",
		}, s.liveToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Las contraseñas no coinciden")
	})

	s.Run("error: 400 without the current password", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/password",
			map[string]string{"newPassword": "nuevo123"}, s.liveToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AdminHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	httptest.AssertCookieCleared(s.T(), rec, cookie.AdminTokenCookieName)
}
