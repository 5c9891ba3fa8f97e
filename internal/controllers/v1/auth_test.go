package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/condoboard/backend/internal/controllers/v1"
	"github.com/condoboard/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	session := registerTestUser(suite.T(), "mario")
	assert.Equal(suite.T(), "mario", session.Username)
	assert.NotEmpty(suite.T(), session.Token)
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"broken body", `{ "username": `, http.StatusBadRequest},
		{"no username", `{ "username": "", "password": "correct horse battery staple" }`, http.StatusBadRequest},
		{"password too short", `{ "username": "mario", "password": "short" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterUsernameTaken() {
	_ = registerTestUser(suite.T(), "mario")

	body := marshal(suite.T(), v1.Credentials{Username: "mario", Password: "correct horse battery staple"})
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", body)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "already taken")
}

func (suite *TestSuiteStandard) TestLogin() {
	_ = registerTestUser(suite.T(), "mario")

	body := marshal(suite.T(), v1.Credentials{Username: "mario", Password: "correct horse battery staple"})
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", body)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.LoginResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotEmpty(suite.T(), response.Data.Token)
}

// TestLoginFailed verifies that a wrong password and an unknown user
// produce the same response.
func (suite *TestSuiteStandard) TestLoginFailed() {
	_ = registerTestUser(suite.T(), "mario")

	tests := []struct {
		name string
		body v1.Credentials
	}{
		{"wrong password", v1.Credentials{Username: "mario", Password: "wrong password"}},
		{"unknown user", v1.Credentials{Username: "luigi", Password: "correct horse battery staple"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", marshal(t, tt.body))
			test.AssertHTTPStatus(t, http.StatusUnauthorized, &r)

			var response v1.LoginResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "the username or password is incorrect", *response.Error)
		})
	}
}

// TestAuthenticationRequired verifies that the resource routes reject
// requests without a valid token.
func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no header", nil},
		{"not a bearer token", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}},
		{"garbage token", map[string]string{"Authorization": "Bearer not-a-token"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/buildings", "", tt.headers)
			test.AssertHTTPStatus(t, http.StatusUnauthorized, &r)
		})
	}
}
