package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montge/bannerkit/banner"
)

func TestNewParseView(t *testing.T) {
	b, err := banner.Parse("TOP SECRET//SI-TK ALFA BRAVO//SAR-BP/GB//NOFORN/ORCON")
	require.NoError(t, err)

	view := newParseView(b)
	assert.Equal(t, "TOP SECRET", view.Classification)
	assert.Equal(t, "TOP SECRET//SI-TK ALFA BRAVO//SAR-BP/GB//NOFORN/ORCON", view.Canonical)

	require.Len(t, view.Sci, 1)
	assert.Equal(t, "SI", view.Sci[0].Control)
	assert.Equal(t, map[string][]string{"TK": {"ALFA", "BRAVO"}}, view.Sci[0].Compartments)

	require.NotNil(t, view.Sap)
	assert.Equal(t, []string{"BP", "GB"}, view.Sap.Programs)
	assert.False(t, view.Sap.Multiple)

	assert.Equal(t, []string{"NOFORN", "ORCON"}, view.Dissem)
	assert.Empty(t, view.Other)
}

func TestNewParseViewSentinels(t *testing.T) {
	b, err := banner.Parse("SECRET//HVSACO")
	require.NoError(t, err)

	view := newParseView(b)
	require.NotNil(t, view.Sap)
	assert.True(t, view.Sap.Hvsaco)
	assert.Empty(t, view.Sap.Programs)
	assert.Nil(t, view.Sci)
}
