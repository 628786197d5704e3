//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/tests/common/builder"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type checkoutHandlerSuite struct {
	handlerSuite
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(checkoutHandlerSuite))
}

func (s *checkoutHandlerSuite) TestUpdateForm() {
	form := builder.NewCheckoutFormBuilder()

	s.Run("trims the form and reports the pending state", func() {
		padded := testutil.DtoMap(s.T(), form.BuildRequestDTO(), testutil.Field("email", "  dana@example.com "))
		s.tracker.EXPECT().UpdateForm(gomock.Any(), s.shopperID, form.BuildDomain()).
			Return(&commands.CheckoutStatus{State: checkout.StatePending}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/checkout/form", padded, s.token)

		var res response.CheckoutStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("pending", res.State)
		s.Nil(res.SessionID)
		s.Empty(res.Problems)
		s.False(res.Emitted)
	})

	s.Run("incomplete form lists the problems", func() {
		partial := form.With(func(f *builder.CheckoutFormBuilder) { f.Phone = "" })
		s.tracker.EXPECT().UpdateForm(gomock.Any(), s.shopperID, partial.BuildDomain()).
			Return(&commands.CheckoutStatus{State: checkout.StateIdle, Problems: []string{checkout.ErrPhoneRequired.Error()}}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/checkout/form", partial.BuildRequestDTO(), s.token)

		var res response.CheckoutStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("idle", res.State)
		s.Equal([]string{"phone is required"}, res.Problems)
	})

	s.Run("oversized field is rejected", func() {
		long := make([]byte, 300)
		for i := range long {
			long[i] = 'a'
		}
		body := testutil.DtoMap(s.T(), form.BuildRequestDTO(), testutil.Field("name", string(long)))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/checkout/form", body, s.token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *checkoutHandlerSuite) TestFlush() {
	sessionID := uuid.New()

	tests := []struct {
		name       string
		body       any
		setupMock  func()
		wantStatus int
		wantErr    string
	}{
		{
			name: "visibility change starts the checkout",
			body: request.FlushRequest{Reason: "visibility_hidden"},
			setupMock: func() {
				s.tracker.EXPECT().Flush(gomock.Any(), s.shopperID, commands.FlushVisibilityHidden).
					Return(builder.StartedStatus(sessionID), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unload starts the checkout",
			body: request.FlushRequest{Reason: "beforeunload"},
			setupMock: func() {
				s.tracker.EXPECT().Flush(gomock.Any(), s.shopperID, commands.FlushBeforeUnload).
					Return(builder.StartedStatus(sessionID), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown reason",
			body:       request.FlushRequest{Reason: "tab_closed"},
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Invalid request format",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMock()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout/flush", tt.body, s.token)

			if tt.wantErr != "" {
				httptest.AssertErrorResponse(s.T(), w, tt.wantStatus, tt.wantErr)
				return
			}
			var res response.CheckoutStatusResponse
			httptest.AssertSuccessResponse(s.T(), w, tt.wantStatus, &res)
			s.Equal("started", res.State)
			s.Require().NotNil(res.SessionID)
			s.Equal(sessionID.String(), *res.SessionID)
			s.True(res.Emitted)
		})
	}
}

func (s *checkoutHandlerSuite) TestDismissAndStatus() {
	s.tracker.EXPECT().Dismiss(gomock.Any(), s.shopperID).Return(builder.IdleStatus(), nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout/dismiss", nil, s.token)

	var dismissed response.CheckoutStatusResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &dismissed)
	s.Equal("idle", dismissed.State)
	s.NotNil(dismissed.Problems)

	sessionID := uuid.New()
	s.tracker.EXPECT().Status(gomock.Any(), s.shopperID).
		Return(&commands.CheckoutStatus{State: checkout.StateStarted, SessionID: sessionID}, nil)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/checkout", nil, s.token)

	var status response.CheckoutStatusResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &status)
	s.Equal("started", status.State)
	s.Equal(sessionID.String(), *status.SessionID)
}

func (s *checkoutHandlerSuite) TestComplete() {
	s.Run("returns the completed session", func() {
		sessionID := uuid.New()
		s.tracker.EXPECT().Complete(gomock.Any(), s.shopperID).Return(&commands.CompletionResult{
			SessionID:    sessionID,
			Total:        decimal.RequireFromString("89.7"),
			CouponCode:   "PARTNER15",
			AffiliateRef: "aff-042",
		}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout/complete", nil, s.token)

		var res response.CompletionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(sessionID.String(), res.SessionID)
		s.Equal("89.70", res.Total)
		s.Equal("PARTNER15", res.CouponCode)
		s.Equal("aff-042", res.AffiliateRef)
	})

	s.Run("no checkout in progress", func() {
		s.tracker.EXPECT().Complete(gomock.Any(), s.shopperID).
			Return(nil, errs.Mark(errs.New("idle"), errs.ErrNoActiveSession))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/checkout/complete", nil, s.token)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "No checkout in progress")
	})
}
