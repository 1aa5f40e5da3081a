package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProviders(t *testing.T) {
	tests := []struct {
		name     string
		registry string
		want     []ProviderConfig
		wantErr  bool
	}{
		{
			name:     "empty registry",
			registry: "",
			want:     nil,
		},
		{
			name:     "single provider",
			registry: "alpha=http://localhost:9001|CASH,CREDIT_CARD",
			want: []ProviderConfig{
				{Name: "alpha", Address: "http://localhost:9001", Methods: []string{"CASH", "CREDIT_CARD"}},
			},
		},
		{
			name:     "registration order preserved",
			registry: "alpha=http://localhost:9001|CASH;beta=http://localhost:9002|CASH,BANK_TRANSFER",
			want: []ProviderConfig{
				{Name: "alpha", Address: "http://localhost:9001", Methods: []string{"CASH"}},
				{Name: "beta", Address: "http://localhost:9002", Methods: []string{"CASH", "BANK_TRANSFER"}},
			},
		},
		{
			name:     "missing address separator",
			registry: "alpha|CASH",
			wantErr:  true,
		},
		{
			name:     "missing methods separator",
			registry: "alpha=http://localhost:9001",
			wantErr:  true,
		},
		{
			name:     "no methods",
			registry: "alpha=http://localhost:9001|",
			wantErr:  true,
		},
		{
			name:     "empty name",
			registry: "=http://localhost:9001|CASH",
			wantErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseProviders(test.registry)

			if test.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
