//go:build unit

package rescode_test

import (
	"strings"
	"testing"

	"campus-reserve/internal/pkg/rescode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code, err := rescode.Generate()
		require.NoError(t, err)
		assert.True(t, rescode.Valid(code), "generated code %q must match the wire format", code)
		assert.True(t, strings.HasPrefix(code, rescode.Prefix))
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 95, "codes should be effectively unique")
}

func TestValid(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"RES-7K2M9QXZ", true},
		{"RES-AAAAAAAA", true},
		{"RES-00000000", true},
		{"res-7k2m9qxz", false},
		{"RES-7K2M9QX", false},
		{"RES-7K2M9QXZZ", false},
		{"RSV-7K2M9QXZ", false},
		{"RES-7K2M9QX!", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, rescode.Valid(c.code), c.code)
	}
}
