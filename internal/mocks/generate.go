// Package mocks provides mock implementations for testing the suilance services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	store := mocks.NewMockJobStore(ctrl)
//	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&job, nil)
package mocks

// Generate mock for JobStore interface from internal/core package.
// This creates MockJobStore with methods for all JobStore interface methods:
// List, Create, Update
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_store_mock.go github.com/suilance/suilance-ui-api/internal/core JobStore

// Generate mock for ReputationStore interface from internal/core package.
// This creates MockReputationStore with methods for all ReputationStore interface methods:
// List, Create
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=reputation_store_mock.go github.com/suilance/suilance-ui-api/internal/core ReputationStore

// Generate mock for ChainBridge interface from internal/core package.
// This creates MockChainBridge with methods for all ChainBridge interface methods:
// Call
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=chain_bridge_mock.go github.com/suilance/suilance-ui-api/internal/core ChainBridge

// Generate mock for SessionStore interface from internal/ports package.
// This creates MockSessionStore with methods for all SessionStore interface methods:
// Save, Get, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/suilance/suilance-ui-api/internal/ports SessionStore
