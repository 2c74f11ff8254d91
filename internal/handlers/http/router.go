package http

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cynric/familymanagement-backend/docs"
	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	"github.com/cynric/familymanagement-backend/internal/handlers/dto"
	"github.com/cynric/familymanagement-backend/internal/handlers/middleware"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/i18n"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/metrics"
	"github.com/cynric/familymanagement-backend/internal/services"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Health *HealthHandler
	DBTest *DBTestHandler
	Users  *UserHandler
}

// RouterOptions configura os middlewares globais
type RouterOptions struct {
	BaseURL        string
	AllowedOrigins string
	Version        string
	I18n           *i18n.Service
	Metrics        *metrics.Metrics // nil desliga /metrics
	Logger         ports.Logger
	EnableSwagger  bool
}

// NewRouter monta o engine gin com middlewares e rotas
func NewRouter(opts RouterOptions, h Handlers) *gin.Engine {
	dto.UseJSONFieldNames()
	registerBindingValidations()

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.Logger != nil {
		router.Use(middleware.RequestLogger(opts.Logger))
	}
	router.Use(middleware.RequestMetrics(opts.Metrics))
	router.Use(middleware.BaseURL(opts.BaseURL))
	router.Use(middleware.NewI18nMiddleware(opts.I18n).DetectLanguage())
	router.Use(middleware.CORS(opts.AllowedOrigins))

	RegisterRoutes(router, h)

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	if opts.EnableSwagger {
		docs.SwaggerInfo.Version = opts.Version
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}

// RegisterRoutes registra as rotas da API
func RegisterRoutes(r gin.IRouter, h Handlers) {
	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Health)
		api.GET("/welcome", h.Health.Welcome)

		dbTest := api.Group("/db-test")
		{
			dbTest.GET("/test", h.DBTest.TestConnection)
			dbTest.GET("/tables", h.DBTest.ListTables)
		}

		users := api.Group("/users")
		{
			users.POST("/register", h.Users.Register)
			users.GET("/by-username/:username", h.Users.GetByUsername)
			users.GET("/:id", h.Users.GetUser)
			users.PATCH("/:id", h.Users.UpdateProfile)
			users.DELETE("/:id", h.Users.DeleteUser)
		}
	}
}

var bindingValidationsOnce sync.Once

// registerBindingValidations expõe ao binding do gin as mesmas tags do UserService
func registerBindingValidations() {
	bindingValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := services.RegisterValidations(v); err != nil {
			panic(err)
		}
	})
}
