//go:build unit

package api_test

import (
	"log/slog"
	"net/http/httptest"

	"storefront-checkout/internal/handler"
	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/tests/common/shoppertest"
	mock_commands "storefront-checkout/tests/mock/commands"
	mock_queries "storefront-checkout/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type handlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	cartCommands *mock_commands.MockCartCommands
	cartQueries  *mock_queries.MockCartQueries
	coupons      *mock_commands.MockCouponResolver
	tracker      *mock_commands.MockCheckoutTracker
	router       *gin.Engine
	shopperID    uuid.UUID
	token        string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.cartCommands = mock_commands.NewMockCartCommands(s.ctrl)
	s.cartQueries = mock_queries.NewMockCartQueries(s.ctrl)
	s.coupons = mock_commands.NewMockCouponResolver(s.ctrl)
	s.tracker = mock_commands.NewMockCheckoutTracker(s.ctrl)

	cfg := config.NewTestConfig()
	tokens := shoppertest.NewTokenHelper(cfg.Shopper)
	logger := slog.New(slog.NewTextHandler(httptest.NewRecorder(), nil))

	s.router = gin.New()
	handler.NewRouter(
		s.router,
		cfg,
		middleware.NewLogger(cfg.Log),
		handler.Handlers{
			Cart:     api.NewCartHandler(s.cartCommands, s.cartQueries),
			Coupon:   api.NewCouponHandler(s.coupons),
			Checkout: api.NewCheckoutHandler(s.tracker),
		},
		middleware.NewShopperMiddleware(tokens.Service(), cfg, logger),
	)

	s.shopperID = uuid.New()
	s.token = tokens.GenerateToken(s.T(), s.shopperID)
}

func (s *handlerSuite) TearDownTest() {
	s.ctrl.Finish()
}
