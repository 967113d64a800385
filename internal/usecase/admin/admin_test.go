//go:build unit

package admin_test

import (
	"context"
	"testing"

	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/usecase/admin"
	adminmock "agenda-web/tests/mock/admin"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const token = "admin-token"

type AdminUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	backend  *adminmock.MockBackend
	uc       admin.UseCase
}

func (s *AdminUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.backend = adminmock.NewMockBackend(s.mockCtrl)
	s.uc = admin.NewUseCase(s.backend, nil)
}

func (s *AdminUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AdminUseCaseTestSuite))
}

func (s *AdminUseCaseTestSuite) TestLogin() {
	s.Run("success: trims the email before forwarding", func() {
		want := &admin.Session{Token: token, Admin: admin.Profile{ID: 1, Name: "Laura"}}
		s.backend.EXPECT().Login(gomock.Any(), "laura@example.com", "secret").Return(want, nil).Times(1)

		got, err := s.uc.Login(context.Background(), "  laura@example.com ", "secret")
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("error: missing fields never reach the backend", func() {
		_, err := s.uc.Login(context.Background(), " ", "secret")
		s.True(errs.Is(err, admin.ErrMissingCredentials))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: backend refusal keeps its message", func() {
		refusal := errs.WithHint(errs.Mark(errs.New("status 401"), errs.ErrUnauthorized), "Credenciales inválidas")
		s.backend.EXPECT().Login(gomock.Any(), "laura@example.com", "wrong").Return(nil, refusal).Times(1)

		_, err := s.uc.Login(context.Background(), "laura@example.com", "wrong")
		s.True(errs.Is(err, errs.ErrUnauthorized))
		s.Equal("Credenciales inválidas", errs.UserHint(err))
	})
}

func (s *AdminUseCaseTestSuite) TestListAppointments() {
	s.Run("success: filters are dropped outside the all tab", func() {
		s.backend.EXPECT().ListAppointments(gomock.Any(), token, admin.TabToday, admin.Filter{}).Return(nil, nil).Times(1)

		_, err := s.uc.ListAppointments(context.Background(), token, admin.TabToday, admin.Filter{From: "garbage"})
		s.NoError(err)
	})

	s.Run("success: empty tab lists everything with filters", func() {
		filter := admin.Filter{From: "2026-10-01", To: "2026-10-31", Status: admin.StatusPending}
		want := []admin.Appointment{{ID: 7, Date: "2026-10-20", Time: "14:00:00", Status: admin.StatusPending}}
		s.backend.EXPECT().ListAppointments(gomock.Any(), token, admin.TabAll, filter).Return(want, nil).Times(1)

		got, err := s.uc.ListAppointments(context.Background(), token, "", filter)
		s.Require().NoError(err)
		s.Equal(want, got)
	})

	s.Run("error: invalid input is rejected locally", func() {
		testCases := []struct {
			name   string
			tab    admin.Tab
			filter admin.Filter
			expect error
		}{
			{name: "unknown tab", tab: "ayer", expect: admin.ErrInvalidTab},
			{name: "malformed date", tab: admin.TabAll, filter: admin.Filter{From: "01/10/2026"}, expect: admin.ErrInvalidFilter},
			{name: "inverted range", tab: admin.TabAll, filter: admin.Filter{From: "2026-10-31", To: "2026-10-01"}, expect: admin.ErrInvalidFilter},
			{name: "unknown status", tab: admin.TabAll, filter: admin.Filter{Status: "borrada"}, expect: admin.ErrInvalidFilter},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				_, err := s.uc.ListAppointments(context.Background(), token, tc.tab, tc.filter)
				s.True(errs.Is(err, tc.expect), "got %v", err)
			})
		}
	})
}

func (s *AdminUseCaseTestSuite) TestChangeStatus() {
	s.Run("success: confirm and cancel are forwarded", func() {
		s.backend.EXPECT().ChangeStatus(gomock.Any(), token, int64(3), admin.StatusConfirmed).Return(nil).Times(1)
		s.backend.EXPECT().ChangeStatus(gomock.Any(), token, int64(3), admin.StatusCancelled).Return(nil).Times(1)

		s.NoError(s.uc.ChangeStatus(context.Background(), token, 3, admin.StatusConfirmed))
		s.NoError(s.uc.ChangeStatus(context.Background(), token, 3, admin.StatusCancelled))
	})

	s.Run("error: other statuses and ids are rejected", func() {
		s.True(errs.Is(s.uc.ChangeStatus(context.Background(), token, 3, admin.StatusPending), admin.ErrInvalidStatus))
		s.True(errs.Is(s.uc.ChangeStatus(context.Background(), token, 0, admin.StatusConfirmed), admin.ErrInvalidAppointmentID))
	})
}

func (s *AdminUseCaseTestSuite) TestDeleteAppointment() {
	s.backend.EXPECT().DeleteAppointment(gomock.Any(), token, int64(9)).Return(errs.ErrNotFound).Times(1)

	err := s.uc.DeleteAppointment(context.Background(), token, 9)
	s.True(errs.Is(err, errs.ErrNotFound))
	s.True(errs.Is(s.uc.DeleteAppointment(context.Background(), token, -1), admin.ErrInvalidAppointmentID))
}

func (s *AdminUseCaseTestSuite) TestChangePassword() {
	testCases := []struct {
		name     string
		current  string
		next     string
		confirm  string
		expect   error
		expectUI string
	}{
		{name: "confirmation mismatch", current: "old", next: "abcdef", confirm: "abcdeg", expect: admin.ErrPasswordMismatch, expectUI: "Las contraseñas no coinciden"},
		{name: "five characters", current: "old", next: "abcde", confirm: "abcde", expect: admin.ErrPasswordTooShort, expectUI: "La contraseña debe tener al menos 6 caracteres"},
		{name: "missing current", current: "", next: "abcdef", confirm: "abcdef", expect: admin.ErrMissingPassword, expectUI: "Por favor ingresa tu contraseña actual y la nueva contraseña"},
		{name: "missing new", current: "old", next: "", confirm: "", expect: admin.ErrMissingPassword, expectUI: "Por favor ingresa tu contraseña actual y la nueva contraseña"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.uc.ChangePassword(context.Background(), token, tc.current, tc.next, tc.confirm)
			s.True(errs.Is(err, tc.expect))
			s.True(errs.Is(err, errs.ErrValidation))
			s.False(errs.Is(err, admin.ErrMissingCredentials))
			if tc.expectUI != "" {
				s.Equal(tc.expectUI, errs.UserHint(err))
			}
		})
	}

	s.Run("success: six characters are enough", func() {
		s.backend.EXPECT().ChangePassword(gomock.Any(), token, "old", "abcdef").Return(nil).Times(1)
		s.NoError(s.uc.ChangePassword(context.Background(), token, "old", "abcdef", "abcdef"))
	})
}
