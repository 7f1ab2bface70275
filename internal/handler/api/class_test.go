//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fitness-booking/internal/domain/capacity"
	"fitness-booking/internal/domain/fitnessclass"
	"fitness-booking/internal/handler/api"
	resdto "fitness-booking/internal/handler/dto/response"
	"fitness-booking/internal/pkg/errs"
	"fitness-booking/internal/usecase/commands"
	"fitness-booking/internal/usecase/queries"
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

type ClassHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClassCommands
	mockQueries  *queriesmock.MockClassQueries
	handler      *api.ClassHandler
}

func (s *ClassHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClassCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClassQueries(s.mockCtrl)
	s.handler = api.NewClassHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/classes", s.handler.Schedule)
	s.router.GET("/classes", s.handler.List)
	s.router.GET("/classes/:id", s.handler.Get)
	s.router.GET("/classes/:id/quote", s.handler.Quote)
}

func (s *ClassHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClassHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClassHandlerTestSuite))
}

// ================================================================================
// TestSchedule
// ================================================================================

func (s *ClassHandlerTestSuite) TestSchedule() {
	url := "/classes"
	b := builder.NewClassBuilder()
	reqBody := b.BuildScheduleRequestDTO()
	result := &commands.ClassResult{
		ID:         b.ID,
		Name:       b.Name,
		Instructor: b.Instructor,
		Capacity:   b.Capacity,
		StartsAt:   b.StartsAt,
		BasePrice:  b.BasePrice,
		CreatedAt:  b.CreatedAt,
	}

	s.Run("success: returns 201 Created with every seat available", func() {
		s.mockCommands.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(b.Capacity, body.Available)
		s.Equal(0, body.Reserved)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/classes/" + b.ID.String()})
	})

	cases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "capacity boundary OK (1)", mutate: testutil.Field("capacity", 1), expectCode: http.StatusCreated},
		{name: "capacity boundary OK (200)", mutate: testutil.Field("capacity", 200), expectCode: http.StatusCreated},
		{name: "capacity boundary invalid (0)", mutate: testutil.Field("capacity", 0), expectCode: http.StatusBadRequest},
		{name: "capacity boundary invalid (201)", mutate: testutil.Field("capacity", 201), expectCode: http.StatusBadRequest},
		{name: "base price OK (0)", mutate: testutil.Field("base_price", 0), expectCode: http.StatusCreated},
		{name: "base price OK (10000)", mutate: testutil.Field("base_price", 10000), expectCode: http.StatusCreated},
		{name: "base price invalid (-0.01)", mutate: testutil.Field("base_price", -0.01), expectCode: http.StatusBadRequest},
		{name: "base price invalid (10000.5)", mutate: testutil.Field("base_price", 10000.5), expectCode: http.StatusBadRequest},
		{name: "missing field: base_price", mutate: testutil.Field("base_price", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: starts_at", mutate: testutil.Field("starts_at", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: instructor", mutate: testutil.Field("instructor", nil), expectCode: http.StatusBadRequest},
		{name: "malformed starts_at", mutate: testutil.Field("starts_at", "tomorrow"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 400 with the domain message", func() {
		s.mockCommands.EXPECT().Schedule(gomock.Any(), gomock.Any()).Return(nil, fitnessclass.ErrInvalidInstructor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "instructor")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ClassHandlerTestSuite) TestList() {
	views := []*queries.ClassView{
		builder.NewClassBuilder().WithReserved(3).BuildView(),
		builder.NewClassBuilder().WithStartsAt(time.Date(2025, 1, 16, 19, 0, 0, 0, time.UTC)).BuildView(),
	}

	s.Run("success: returns items with occupancy", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*queries.Cursor)(nil), queries.DefaultListLimit).Return(views, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes", nil, nil)

		var body resdto.ClassListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal(3, body.Items[0].Reserved)
		s.Equal(7, body.Items[0].Available)
		s.Nil(body.NextCursor)
	})

	s.Run("success: empty list renders an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*queries.ClassView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"next_cursor":null}`, rec.Body.String())
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), &queries.Cursor{After: "bogus"}, gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes?cursor=bogus", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("error: 400 on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes?limit=ten", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ClassHandlerTestSuite) TestGet() {
	s.Run("success: returns the class", func() {
		view := builder.NewClassBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/"+view.ID.String(), nil, nil)

		var body resdto.ClassResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrClassNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/"+uuid.NewString(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "class not found")
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *ClassHandlerTestSuite) TestQuote() {
	classID, memberID := uuid.New(), uuid.New()
	url := "/classes/" + classID.String() + "/quote?member_id=" + memberID.String()

	s.Run("success: returns the price breakdown", func() {
		quote := &queries.QuoteView{
			ClassID:          classID,
			MemberID:         memberID,
			Membership:       "student",
			BasePrice:        100,
			MembershipFactor: 0.85,
			PeakFactor:       1.2,
			SurgeFactor:      1.3,
			OccupancyRate:    0.9,
			FinalPrice:       132.6,
		}
		s.mockQueries.EXPECT().Quote(gomock.Any(), classID, memberID).Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(132.6, body.FinalPrice)
		s.Equal(1.3, body.SurgeFactor)
	})

	s.Run("error: 409 when full", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), classID, memberID).Return(nil, capacity.ErrClassFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "class capacity full")
	})

	s.Run("error: 400 without member_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/classes/"+classID.String()+"/quote", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "member_id")
	})
}
