package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/validate"
)

func TestID(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want bool
	}{
		{"battle-42", true},
		{" 3f2c1a9e-0b1d-4e5f-8a7b-1c2d3e4f5a6b ", true},
		{"cozy-towel.v2", true},
		{"", false},
		{"a:b", false},
		{"a b", false},
	}
	for _, tc := range cases {
		_, ok := validate.ID(tc.in)
		require.Equal(t, tc.want, ok, tc.in)
	}
}

func TestQ(t *testing.T) {
	t.Parallel()
	q, ok := validate.Q("  Cotton Towel ")
	require.True(t, ok)
	require.Equal(t, "Cotton Towel", q)

	q, ok = validate.Q("")
	require.True(t, ok)
	require.Empty(t, q)

	_, ok = validate.Q("<script>")
	require.False(t, ok)
}

func TestCategoryKeyURLLimit(t *testing.T) {
	t.Parallel()
	_, ok := validate.Category("02")
	require.True(t, ok)
	_, ok = validate.Category("2")
	require.False(t, ok)

	_, ok = validate.MetaKey("agent_config")
	require.True(t, ok)
	_, ok = validate.MetaKey("Bad Key")
	require.False(t, ok)

	_, ok = validate.URL("http://localhost:9000")
	require.True(t, ok)
	_, ok = validate.URL("ftp://host")
	require.False(t, ok)
	_, ok = validate.URL("not a url")
	require.False(t, ok)

	require.Equal(t, 50, validate.Limit("", 50))
	require.Equal(t, 10, validate.Limit("10", 50))
	require.Equal(t, 200, validate.Limit("1000", 50))
	require.Equal(t, 50, validate.Limit("-3", 50))
}
