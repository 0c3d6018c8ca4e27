package ports_test

import (
	"testing"

	"github.com/suilance/suilance-ui-api/internal/core"
	"github.com/suilance/suilance-ui-api/internal/mocks"
	"github.com/suilance/suilance-ui-api/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.SessionStore = (*mocks.MockSessionStore)(nil)
	var _ core.JobStore = (*mocks.MockJobStore)(nil)
	var _ core.ReputationStore = (*mocks.MockReputationStore)(nil)
	var _ core.ChainBridge = (*mocks.MockChainBridge)(nil)
}
