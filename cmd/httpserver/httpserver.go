// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/interest-bank/internal/bank"
	"github.com/go-petr/interest-bank/internal/bankdelivery"
	"github.com/go-petr/interest-bank/internal/bankservice"
	"github.com/go-petr/interest-bank/internal/middleware"
	"github.com/go-petr/interest-bank/pkg/clockpkg"
	"github.com/go-petr/interest-bank/pkg/configpkg"
	"github.com/go-petr/interest-bank/pkg/sequencepkg"
)

// Server holds the bank, handlers router and configuration.
type Server struct {
	Bank    *bank.Bank
	Service *bankservice.Service
	Engine  *gin.Engine
	Config  configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(clock clockpkg.Clock, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	first := config.FirstAccountNumber
	if first < 1 {
		first = 1
	}

	b := bank.New()
	bankService := bankservice.New(b, clock, sequencepkg.New(first))
	bankHandler := bankdelivery.NewHandler(bankService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	bankHandler.Register(engine)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := bankdelivery.RegisterValidations(v); err != nil {
			return nil, errors.New("cannot register bank validators")
		}
	}

	server := &Server{
		Bank:    b,
		Service: bankService,
		Engine:  engine,
		Config:  config,
	}

	return server, nil
}
