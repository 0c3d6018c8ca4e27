package walletauth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/suilance/suilance-ui-api/internal/domain/auth"
)

func TestProvider_Resolve_NormalizesInput(t *testing.T) {
	p := NewProvider(Config{})

	wallet, role, err := p.Resolve("  0xABCDEF12  ", " Client ")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdef12", wallet)
	assert.Equal(t, domainauth.RoleClient, role)
}

func TestProvider_Resolve_RejectsBadWallet(t *testing.T) {
	p := NewProvider(Config{})

	tests := []string{"abc", "0x", "0xzz11", "12345"}
	for _, wallet := range tests {
		t.Run(wallet, func(t *testing.T) {
			_, _, err := p.Resolve(wallet, "client")
			assert.Error(t, err)
		})
	}
}

func TestProvider_Resolve_RejectsBadRole(t *testing.T) {
	p := NewProvider(Config{})

	_, _, err := p.Resolve("0xabcdef12", "admin")
	assert.Error(t, err)
}

func TestProvider_Resolve_EmptyWallet(t *testing.T) {
	t.Run("rejected by default", func(t *testing.T) {
		p := NewProvider(Config{})
		_, _, err := p.Resolve("", "freelancer")
		assert.Error(t, err)
	})

	t.Run("generated when allowed", func(t *testing.T) {
		p := NewProvider(Config{AllowGenerated: true})
		wallet, role, err := p.Resolve("", "freelancer")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(wallet, "0x"))
		assert.Len(t, wallet, 66)
		assert.True(t, domainauth.ValidWallet(wallet))
		assert.Equal(t, domainauth.RoleFreelancer, role)
	})
}

func TestProvider_Resolve_GeneratedWalletsAreUnique(t *testing.T) {
	p := NewProvider(Config{AllowGenerated: true})

	a, _, err := p.Resolve("", "client")
	require.NoError(t, err)
	b, _, err := p.Resolve("", "client")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
