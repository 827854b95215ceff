package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNormalizer(t *testing.T) {
	n := DefaultNormalizer()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"HER>pl", "HER>pl"},
		{";", "Ä"},
		{"|", "Ö"},
		{"A;B|C;;||", "AÄBÖCÄÄÖÖ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.in), tt.in)
	}
}

func TestNormalizer_AppliesInOrder(t *testing.T) {
	n, err := NewNormalizer(Substitution{From: "a", To: "b"}, Substitution{From: "b", To: "c"})
	require.NoError(t, err)

	assert.Equal(t, "cc", n.Normalize("ab"))
}

func TestNewNormalizer_RejectsEmptyDesignator(t *testing.T) {
	_, err := NewNormalizer(Substitution{From: "", To: "x"})
	assert.Error(t, err)
}

func TestNormalizer_SubstitutionsIsCopy(t *testing.T) {
	n := DefaultNormalizer()
	subs := n.Substitutions()
	subs[0].To = "?"

	assert.Equal(t, "Ä", n.Normalize(";"))
	assert.Equal(t, DefaultSubstitutions, n.Substitutions())
}

func TestNormalizer_Empty(t *testing.T) {
	n, err := NewNormalizer()
	require.NoError(t, err)
	assert.Equal(t, "a;b|", n.Normalize("a;b|"))
}
