package test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/suite"

	"github.com/pixology/backend/config"
	"github.com/pixology/backend/internal/buildinfo"
	gwHttp "github.com/pixology/backend/internal/gateway/http"
	"github.com/pixology/backend/internal/pkg/crypto"
	"github.com/pixology/backend/internal/pkg/slogtest"
	"github.com/pixology/backend/internal/user/repository"
	"github.com/pixology/backend/internal/user/usecase"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type accountSuite struct {
	suite.Suite

	// suite level
	logger         *slog.Logger
	cfg            *config.Config
	passwordHasher crypto.PasswordHasher
	client         *resty.Client

	// test level, fields could be grouped and stored in thread safe structure to run tests in parallel
	accountRepo repository.SQLiteStorage
	httpAddress string
	testClosers []func() error
}

func TestAccountSuite(t *testing.T) {
	suite.Run(t, new(accountSuite))
}

func (s *accountSuite) SetupSuite() {
	s.logger = slogtest.NullLogger()

	var err error
	s.cfg, err = config.Parse("config.yaml")
	s.Require().NoError(err)

	s.passwordHasher = crypto.NewPasswordHasher(s.cfg.Password.Cost)
	s.client = resty.New()
}

func (s *accountSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	port, err := getFreePort()
	s.Require().NoError(err, "unable to get free port")
	s.cfg.HTTPServer.Address = fmt.Sprintf(":%d", port)
	s.T().Log("found free port", port)

	s.accountRepo, err = repository.New(ctx, s.cfg.Storage.SQLitePath)
	s.Require().NoError(err)
	s.testClosers = append(s.testClosers, func() error {
		return s.accountRepo.Close()
	})
	s.T().Log("created sqlite memory storage")

	useCase := usecase.NewUseCase(&s.accountRepo, s.passwordHasher, s.logger)

	httpServer := gwHttp.NewAccountServer(s.cfg.HTTPServer, useCase, buildinfo.New())
	s.testClosers = append(s.testClosers, func() error {
		return httpServer.Shutdown(ctx)
	})
	go func() {
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.T().Log("http server error: " + err.Error())
		}
	}()
	s.httpAddress = fmt.Sprintf("http://localhost:%d", port)

	// wait server ready
	err = waitServer(s.httpAddress)
	s.Require().NoError(err)
	s.T().Log("http server ready")
}

func (s *accountSuite) TearDownTest() {
	for _, c := range s.testClosers {
		s.Assert().NoError(c())
	}
	s.testClosers = s.testClosers[:0]
}

func (s *accountSuite) TestRegisterAccount() {
	tests := []struct {
		name       string
		body       registerRequest
		statusCode int
		resAccount accountResponse
		resError   string
	}{
		{
			name: "normal",
			body: registerRequest{
				Username: "alice",
				Email:    "Alice@Example.com",
				Password: "hunter22",
			},
			statusCode: http.StatusCreated,
			resAccount: accountResponse{Username: "alice", Email: "alice@example.com"},
		},
		{
			name: "username already exists",
			body: registerRequest{
				Username: "alice",
				Email:    "second@example.com",
				Password: "hunter22",
			},
			statusCode: http.StatusConflict,
			resError:   "username already exists",
		},
		{
			name: "email already exists, case differs",
			body: registerRequest{
				Username: "bob",
				Email:    "ALICE@example.com",
				Password: "hunter22",
			},
			statusCode: http.StatusConflict,
			resError:   "email already exists",
		},
		{
			name: "bad email",
			body: registerRequest{
				Username: "bob",
				Email:    "bob",
				Password: "hunter22",
			},
			statusCode: http.StatusBadRequest,
		},
		{
			name: "empty password",
			body: registerRequest{
				Username: "bob",
				Email:    "bob@x.com",
				Password: "",
			},
			statusCode: http.StatusBadRequest,
			resError:   "password is required",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.client.R().
				SetBody(tt.body).
				SetResult(&accountResponse{}).
				SetError(&errorResponse{}).
				Post(s.httpAddress + "/api/users/register")

			s.Require().NoError(err)
			s.Require().Equal(tt.statusCode, resp.StatusCode(), resp.Error())

			if tt.statusCode >= 300 {
				if tt.resError != "" {
					s.Equal(tt.resError, resp.Error().(*errorResponse).Error)
				}
				return
			}
			res := resp.Result().(*accountResponse)
			s.Equal(tt.resAccount.Username, res.Username)
			s.Equal(tt.resAccount.Email, res.Email)
			s.NotEmpty(res.ID)
		})
	}
}

func (s *accountSuite) TestRegisterLoginAccount() {
	// register one account to test login
	const (
		password = "hunter22"
		email    = "Alice@Example.com"
	)
	resp, err := s.client.R().
		SetBody(registerRequest{
			Username: "alice",
			Email:    email,
			Password: password,
		}).
		SetResult(&accountResponse{}).
		SetError(&errorResponse{}).
		Post(s.httpAddress + "/api/users/register")

	s.Require().NoError(err)
	s.Require().Equal(http.StatusCreated, resp.StatusCode(), resp.Error())
	registeredID := resp.Result().(*accountResponse).ID
	s.Require().NotEmpty(registeredID)

	tests := []struct {
		name       string
		body       loginRequest
		statusCode int
	}{
		{
			name: "normal, email case differs",
			body: loginRequest{
				Email:    "ALICE@example.com",
				Password: password,
			},
			statusCode: http.StatusOK,
		},
		{
			name: "wrong password",
			body: loginRequest{
				Email:    "alice@example.com",
				Password: "wrong",
			},
			statusCode: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			body: loginRequest{
				Email:    "nobody@example.com",
				Password: password,
			},
			statusCode: http.StatusUnauthorized,
		},
		{
			name: "empty password",
			body: loginRequest{
				Email:    "alice@example.com",
				Password: "",
			},
			statusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.client.R().
				SetBody(tt.body).
				SetResult(&accountResponse{}).
				SetError(&errorResponse{}).
				Post(s.httpAddress + "/api/users/login")

			s.Require().NoError(err)
			s.Require().Equal(tt.statusCode, resp.StatusCode(), resp.Error())

			if tt.statusCode >= 300 {
				s.Equal("Invalid credentials", resp.Error().(*errorResponse).Error)
				return
			}
			res := resp.Result().(*accountResponse)
			s.Equal(registeredID, res.ID)
			s.Equal("alice@example.com", res.Email)
		})
	}
}
