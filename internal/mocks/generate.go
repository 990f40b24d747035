// Package mocks holds go:generate directives for gomock.
package mocks

// Generate gomock types for the capabilities the gsutil executor consumes.
// NOTE: run `go generate ./...` from repo root to (re)create mocks.
// Requires: go install go.uber.org/mock/mockgen@latest

//go:generate mockgen -destination=runner_mock.go -package=mocks github.com/leoferlopes/google-cloud-tfs/pkg/runner ToolRunner
//go:generate mockgen -destination=endpoint_mock.go -package=mocks github.com/leoferlopes/google-cloud-tfs/pkg/endpoint Endpoint
