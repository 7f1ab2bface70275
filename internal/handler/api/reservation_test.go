//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fitness-booking/internal/domain/capacity"
	"fitness-booking/internal/domain/reservation"
	"fitness-booking/internal/handler/api"
	resdto "fitness-booking/internal/handler/dto/response"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/commands"
	"fitness-booking/tests/common/builder"
	"fitness-booking/tests/common/httptest"
	"fitness-booking/tests/common/testutil"
	commandsmock "fitness-booking/tests/mock/commands"
	queriesmock "fitness-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.DELETE("/reservations/:id", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func reservationResult(b *builder.ReservationBuilder) *commands.ReservationResult {
	v := b.BuildView()
	return &commands.ReservationResult{
		ID:                  v.ID,
		MemberID:            v.MemberID,
		ClassID:             v.ClassID,
		PaidPrice:           v.PaidPrice,
		MembershipFactor:    v.MembershipFactor,
		PeakFactor:          v.PeakFactor,
		SurgeFactor:         v.SurgeFactor,
		OccupancyRateBefore: v.OccupancyRateBefore,
		Status:              v.Status,
		RefundAmount:        v.RefundAmount,
		RefundRatio:         v.RefundRatio,
		CancelledAt:         v.CancelledAt,
		CreatedAt:           v.CreatedAt,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder().WithPaidPrice(132.6)
	reqBody := b.BuildCreateRequestDTO()
	result := reservationResult(b)

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody, (*uuid.UUID)(nil)).
			Return(&commands.ReserveResult{Reservation: result}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(result.ID, body.ID)
		s.Equal(132.6, body.PaidPrice)
		s.False(body.IsCancelled)
		s.Nil(body.CancelledAt)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":            "/api/reservations/" + result.ID.String(),
			"Idempotent-Replayed": "",
		})
	})

	s.Run("success: passes the Idempotency-Key through", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody, &key).
			Return(&commands.ReserveResult{Reservation: result}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: replay returns 200 with Idempotent-Replayed", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), reqBody, &key).
			Return(&commands.ReserveResult{Reservation: result, Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()})

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(result.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on malformed Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing field: member_id", mutate: testutil.Field("member_id", nil)},
		{name: "missing field: class_id", mutate: testutil.Field("class_id", nil)},
		{name: "invalid member_id", mutate: testutil.Field("member_id", "abc")},
		{name: "nil class_id", mutate: testutil.Field("class_id", uuid.Nil.String())},
		{name: "numeric class_id", mutate: testutil.Field("class_id", 1)},
	}
	for _, tc := range validation {
		s.Run("error: 400 on "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	failures := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "class full", err: capacity.ErrClassFull, expectCode: http.StatusConflict, expectMsg: "class capacity full"},
		{name: "member missing", err: errs.ErrMemberNotFound, expectCode: http.StatusNotFound, expectMsg: "member not found"},
		{name: "class missing", err: errs.ErrClassNotFound, expectCode: http.StatusNotFound, expectMsg: "class not found"},
		{name: "key reused", err: errs.ErrIdempotencyKeyReused, expectCode: http.StatusUnprocessableEntity, expectMsg: "idempotency key"},
		{name: "key in progress", err: errs.ErrIdempotencyInProgress, expectCode: http.StatusConflict, expectMsg: "in progress"},
		{name: "database failure", err: errs.Mark(errs.New("connection reset"), errs.ErrDatabaseOperationFailed), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		{name: "unclassified failure", err: errs.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range failures {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/42", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	cancelledAt := time.Date(2025, 1, 13, 10, 0, 0, 0, time.UTC)
	b := builder.NewReservationBuilder().AsCancelled(cancelledAt, 90, 0.9)
	result := reservationResult(b)

	s.Run("success: returns the cancelled reservation with its refund", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), result.ID).
			Return(&commands.CancelResult{Reservation: result}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+result.ID.String(), nil, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.IsCancelled)
		s.Equal("cancelled", body.Status)
		s.Equal(90.0, body.RefundAmount)
		s.Equal(0.9, body.RefundRatio)
		s.Require().NotNil(body.CancelledAt)
		s.True(cancelledAt.Equal(*body.CancelledAt))
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(nil, reservation.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+uuid.NewString(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reservation already cancelled")
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+uuid.NewString(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/abc", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
