package logic

import (
	"errors"
	"testing"

	"github.com/cuihairu/ludotheque/internal/ports"
	"github.com/cuihairu/ludotheque/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag(t *testing.T) {
	for _, v := range []string{"on", "ON", "true", "1", "yes", " Yes "} {
		assert.True(t, parseFlag(v), v)
	}
	for _, v := range []string{"", "off", "false", "0", "no", "checked"} {
		assert.False(t, parseFlag(v), v)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("date de sortie", "")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDate("date de sortie", "2017-03-03")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 2017, d.Year())

	_, err = parseDate("date de sortie", "03/03/2017")
	assert.True(t, validation.IsValidation(err))
}

func TestParseID(t *testing.T) {
	id, err := parseID(entityGame, "12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := parseID(entityGame, raw)
		assert.ErrorIs(t, err, ports.ErrNotFound, raw)
		assert.Equal(t, "jeu introuvable", err.Error())
	}
}

func TestMissingWrapsOnlyNotFound(t *testing.T) {
	err := missing(entityPublisher, ports.ErrNotFound)
	var me *MissingError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "éditeur introuvable", me.Error())

	boom := errors.New("boom")
	assert.Same(t, boom, missing(entityPublisher, boom))
}
