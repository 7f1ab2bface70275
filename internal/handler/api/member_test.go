//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"fitness-booking/internal/domain/member"
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

type MemberHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockMemberCommands
	mockQueries      *queriesmock.MockMemberQueries
	mockReservations *queriesmock.MockReservationQueries
	handler          *api.MemberHandler
}

func (s *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMemberCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMemberQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewMemberHandler(s.mockCommands, s.mockQueries, s.mockReservations)

	s.router.POST("/members", s.handler.Register)
	s.router.GET("/members/:id", s.handler.Get)
	s.router.GET("/members/:id/reservations", s.handler.ListReservations)
}

func (s *MemberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *MemberHandlerTestSuite) TestRegister() {
	url := "/members"
	b := builder.NewMemberBuilder()
	reqBody := b.BuildRegisterRequestDTO()
	result := &commands.MemberResult{ID: b.ID, Name: b.Name, Membership: b.Membership, CreatedAt: b.CreatedAt}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal("standard", body.Membership)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/members/" + b.ID.String()})
	})

	cases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "membership student OK", mutate: testutil.Field("membership", "student"), expectCode: http.StatusCreated},
		{name: "membership premium OK", mutate: testutil.Field("membership", "premium"), expectCode: http.StatusCreated},
		{name: "name length OK (100 chars)", mutate: testutil.Field("name", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "name length invalid (101 chars)", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "unknown membership", mutate: testutil.Field("membership", "gold"), expectCode: http.StatusBadRequest},
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: membership", mutate: testutil.Field("membership", nil), expectCode: http.StatusBadRequest},
		{name: "empty name", mutate: testutil.Field("name", ""), expectCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)
			}

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 400 with the domain message for a blank name", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, member.ErrInvalidName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "   ")), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "name")
	})

	s.Run("error: 500 on database failure", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection refused"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *MemberHandlerTestSuite) TestGet() {
	view := builder.NewMemberBuilder().BuildView()

	s.Run("success: returns the member", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/members/"+view.ID.String(), nil, nil)

		var body resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrMemberNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/members/"+uuid.NewString(), nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "member not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/members/1", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *MemberHandlerTestSuite) TestListReservations() {
	memberID := uuid.New()
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithMemberID(memberID).BuildView(),
		builder.NewReservationBuilder().WithMemberID(memberID).BuildView(),
	}
	url := "/members/" + memberID.String() + "/reservations"

	s.Run("success: default limit and next cursor", func() {
		next := &queries.Cursor{After: "djE6MTIzXzQ1Ng"}
		s.mockReservations.EXPECT().ListByMember(gomock.Any(), memberID, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Require().NotNil(body.NextCursor)
		s.Equal(next.After, *body.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded", func() {
		s.mockReservations.EXPECT().ListByMember(gomock.Any(), memberID, &queries.Cursor{After: "abc"}, 5).
			Return(views[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=abc&limit=5", nil, nil)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=500", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockReservations.EXPECT().ListByMember(gomock.Any(), memberID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=not-a-cursor", nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})

	s.Run("error: 404 for unknown member", func() {
		s.mockReservations.EXPECT().ListByMember(gomock.Any(), memberID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.ErrMemberNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "member not found")
	})
}
