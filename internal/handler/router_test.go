//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"meter-reading-api/internal/handler"
	"meter-reading-api/internal/handler/api"
	resdto "meter-reading-api/internal/handler/dto/response"
	"meter-reading-api/internal/handler/middleware"
	"meter-reading-api/internal/pkg/config"
	"meter-reading-api/internal/pkg/errs"
	"meter-reading-api/internal/usecase/commands"
	"meter-reading-api/tests/common/builder"
	"meter-reading-api/tests/common/httptest"
	commandsmock "meter-reading-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	engine       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReadingCommands
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReadingCommands(s.mockCtrl)
	s.engine = gin.New()

	err := handler.NewRouter(s.engine, cfg, middleware.NewLogger(cfg.Log), api.NewReadingHandler(s.mockCommands))
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestHealth() {
	var body map[string]string
	w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/health", nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("ok", body["status"])
}

func (s *RouterTestSuite) TestUploadRoute() {
	b := builder.NewReadingBuilder()
	origin := map[string]string{"Origin": "http://frontend.example.com"}

	s.Run("success through the full middleware chain", func() {
		s.mockCommands.EXPECT().Upload(gomock.Any(), b.BuildCommand()).Return(b.BuildResult(), nil).Times(1)

		var body resdto.UploadReadingResponse
		w := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/upload", b.BuildUploadRequestDTO(), origin)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Access-Control-Allow-Origin": "*"})
		httptest.AssertHeaderPresent(s.T(), w, "X-Request-ID")
		s.Equal(float64(123), body.MeasureValue)
	})

	s.Run("preflight allows any origin", func() {
		headers := map[string]string{
			"Origin":                         "http://frontend.example.com",
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Content-Type",
		}
		w := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodOptions, "/upload", nil, headers)
		s.Equal(http.StatusNoContent, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Access-Control-Allow-Origin": "*"})
	})

	s.Run("validation failure keeps CORS headers", func() {
		req := b.BuildUploadRequestDTO()
		req.MeasureType = "OIL"

		w := httptest.PerformRequestWithHeaders(s.T(), s.engine, http.MethodPost, "/upload", req, origin)
		httptest.AssertInvalidDataResponse(s.T(), w, http.StatusBadRequest, `"measure_type" must be one of [WATER, GAS]`)
		httptest.AssertHeaders(s.T(), w, map[string]string{"Access-Control-Allow-Origin": "*"})
	})

	s.Run("processing failure", func() {
		s.mockCommands.EXPECT().Upload(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("recognition service responded 502"), commands.ErrProcessingFailed)).Times(1)

		w := httptest.PerformRequest(s.T(), s.engine, http.MethodPost, "/upload", b.BuildUploadRequestDTO())
		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Failed to process the image")
	})

	s.Run("unknown route", func() {
		w := httptest.PerformRequest(s.T(), s.engine, http.MethodGet, "/upload", nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
