// Package bankdelivery manages delivery layer of customers and accounts.
package bankdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/interest-bank/internal/domain"
	"github.com/go-petr/interest-bank/pkg/errorspkg"
	"github.com/go-petr/interest-bank/pkg/web"
)

// Service provides service layer interface needed by bank delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package bankdelivery
type Service interface {
	CreateCustomer(ctx context.Context, name string) (domain.CustomerView, error)
	GetCustomer(ctx context.Context, name string) (domain.CustomerView, error)
	OpenAccount(ctx context.Context, customerName string, accountType domain.AccountType) (domain.AccountView, error)
	GetAccount(ctx context.Context, id int32) (domain.AccountView, error)
	Deposit(ctx context.Context, id int32, amount, description string) (domain.AccountView, error)
	Withdraw(ctx context.Context, id int32, amount, description string) (domain.AccountView, error)
	Statement(ctx context.Context, customerName string) (string, error)
	Summary(ctx context.Context) (domain.BankSummary, error)
}

// Handler facilitates bank delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns bank handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type customerData struct {
	Customer domain.CustomerView `json:"customer"`
}

type accountData struct {
	Account domain.AccountView `json:"account"`
}

type statementData struct {
	Statement string `json:"statement"`
}

type summaryData struct {
	Bank domain.BankSummary `json:"bank"`
}

func bindingError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	errMsg := errorspkg.ErrInvalidRequest.Error()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		errMsg = field.Field() + web.GetErrorMsg(field)
	}

	l.Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})
}

func serviceError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrUnknownAccountType):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrCustomerAlreadyExists):
		gctx.JSON(http.StatusConflict, web.Error(err))
	default:
		_ = gctx.Error(err)
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type createCustomerRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// CreateCustomer handles http request to create a customer.
func (h *Handler) CreateCustomer(gctx *gin.Context) {
	var req createCustomerRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	c, err := h.service.CreateCustomer(gctx.Request.Context(), req.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: customerData{c}})
}

type customerURI struct {
	Name string `uri:"name" binding:"required"`
}

// GetCustomer handles http request to get a customer.
func (h *Handler) GetCustomer(gctx *gin.Context) {
	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, err)
		return
	}

	c, err := h.service.GetCustomer(gctx.Request.Context(), uri.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: customerData{c}})
}

// Statement handles http request to get a customer statement.
func (h *Handler) Statement(gctx *gin.Context) {
	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, err)
		return
	}

	statement, err := h.service.Statement(gctx.Request.Context(), uri.Name)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: statementData{statement}})
}

type openAccountRequest struct {
	Type string `json:"type" binding:"required,accounttype"`
}

// OpenAccount handles http request to open an account for a customer.
func (h *Handler) OpenAccount(gctx *gin.Context) {
	var uri customerURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, err)
		return
	}

	var req openAccountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	accountType, err := domain.ParseAccountType(req.Type)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	a, err := h.service.OpenAccount(gctx.Request.Context(), uri.Name, accountType)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: accountData{a}})
}

type accountURI struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// GetAccount handles http request to get an account.
func (h *Handler) GetAccount(gctx *gin.Context) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, err)
		return
	}

	a, err := h.service.GetAccount(gctx.Request.Context(), uri.ID)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{a}})
}

type transactionRequest struct {
	Amount      string `json:"amount" binding:"required,amount"`
	Description string `json:"description" binding:"max=140"`
}

type transactionFunc func(ctx context.Context, id int32, amount, description string) (domain.AccountView, error)

func (h *Handler) transaction(gctx *gin.Context, fn transactionFunc) {
	var uri accountURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, err)
		return
	}

	var req transactionRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, err)
		return
	}

	a, err := fn(gctx.Request.Context(), uri.ID, req.Amount, req.Description)
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: accountData{a}})
}

// Deposit handles http request to deposit money to an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.transaction(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw money from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.transaction(gctx, h.service.Withdraw)
}

// Summary handles http request to get the bank summary.
func (h *Handler) Summary(gctx *gin.Context) {
	s, err := h.service.Summary(gctx.Request.Context())
	if err != nil {
		serviceError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: summaryData{s}})
}

// Register mounts the bank routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers/:name", h.GetCustomer)
	r.GET("/customers/:name/statement", h.Statement)
	r.POST("/customers/:name/accounts", h.OpenAccount)

	r.GET("/accounts/:id", h.GetAccount)
	r.POST("/accounts/:id/deposits", h.Deposit)
	r.POST("/accounts/:id/withdrawals", h.Withdraw)

	r.GET("/bank/summary", h.Summary)
}
