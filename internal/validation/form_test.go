package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titled struct {
	Title string `validate:"required,max=5" label:"titre"`
	Note  string `validate:"max=3"`
}

func TestStructRequired(t *testing.T) {
	err := New().Struct(titled{})
	require.Error(t, err)
	var ve *Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "titre", ve.Field)
	assert.Equal(t, "required", ve.Rule)
	assert.Equal(t, "le champ titre est obligatoire", ve.Error())
}

func TestStructMaxCountsRunes(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(titled{Title: "ééééé"}))

	err := v.Struct(titled{Title: "abcdef"})
	require.Error(t, err)
	assert.Equal(t, "le champ titre ne doit pas dépasser 5 caractères", err.Error())

	err = v.Struct(titled{Title: "ok", Note: "long"})
	require.Error(t, err)
	assert.Equal(t, "le champ note ne doit pas dépasser 3 caractères", err.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", Invalid("genre", "exists", "genre inconnu"))))
	assert.False(t, IsValidation(errors.New("boom")))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize("   \t\n"))
	// e + combining acute composes to a single rune
	got := Normalize("  Cafe\u0301 ")
	assert.Equal(t, "Café", got)
	assert.Equal(t, 4, len([]rune(got)))
	assert.Equal(t, 200, len([]rune(Normalize(strings.Repeat("a", 200)))))
}
