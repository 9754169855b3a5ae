package router

import (
	"net/http"
	"strings"

	"github.com/budgetbook/backend/internal/config"
	"github.com/budgetbook/backend/internal/controllers"
	"github.com/budgetbook/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Overridden for release builds with
// -ldflags "-X github.com/budgetbook/backend/internal/router.version=..."
var version = "0.0.0"

// Router controls the routes for the API.
func Router(cfg *config.Config) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, _ zerolog.Logger) zerolog.Logger {
			// The middleware itself logs method, path, status,
			// latency, user_agent and body_size on completion;
			// only the request-id needs to be added here.
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Logger()
		})))

	// CORS settings
	if cfg.CORSAllowOrigins != "" {
		log.Debug().Str("allowOrigins", cfg.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.Register(r, "debug/pprof")
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	api := r.Group("/api")
	{
		api.GET("", GetAPI)
		api.OPTIONS("", OptionsAPI)
	}

	controllers.RegisterUserRoutes(api.Group("/users"))
	controllers.RegisterBudgetRoutes(api.Group("/budgets"))
	controllers.RegisterIncomeRoutes(api.Group("/incomes"))
	controllers.RegisterExpenseRoutes(api.Group("/expenses"))
	controllers.RegisterSavingsRoutes(api.Group("/savings"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Message string    `json:"message" example:"Budget API is running"`
	Links   RootLinks `json:"links"`
}

type RootLinks struct {
	Version string `json:"version" example:"https://example.com/version"`
	API     string `json:"api" example:"https://example.com/api"`
}

// GetRoot is the entrypoint for the API, listing the top level
// endpoints.
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Message: "Budget API is running",
		Links: RootLinks{
			Version: url + "/version",
			API:     url + "/api",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the software version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type APIResponse struct {
	Links APILinks `json:"links"`
}

type APILinks struct {
	Users    string `json:"users" example:"https://example.com/api/users"`
	Budgets  string `json:"budgets" example:"https://example.com/api/budgets"`
	Incomes  string `json:"incomes" example:"https://example.com/api/incomes"`
	Expenses string `json:"expenses" example:"https://example.com/api/expenses"`
	Savings  string `json:"savings" example:"https://example.com/api/savings"`
}

// GetAPI returns general information about the API and its resource
// collections.
func GetAPI(c *gin.Context) {
	url := httputil.RequestHost(c) + "/api"

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Users:    url + "/users",
			Budgets:  url + "/budgets",
			Incomes:  url + "/incomes",
			Expenses: url + "/expenses",
			Savings:  url + "/savings",
		},
	})
}

func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
