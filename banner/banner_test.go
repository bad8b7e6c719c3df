package banner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montge/bannerkit/errors"
	"github.com/montge/bannerkit/marking"
)

func TestParse(t *testing.T) {
	b, err := Parse("TOP SECRET//SI-TK ALFA BRAVO//NOFORN/ORCON")
	require.NoError(t, err)

	assert.Equal(t, marking.TopSecret, b.Classification)

	require.Len(t, b.Sci, 1)
	assert.Equal(t, "SI", b.Sci[0].Control())
	subs, ok := b.Sci[0].Compartments().Subs("TK")
	require.True(t, ok)
	assert.Equal(t, []string{"ALFA", "BRAVO"}, subs)

	assert.Equal(t, []marking.DisseminationControl{marking.DissemNOFORN, marking.DissemORCON}, b.Dissem)
	assert.Nil(t, b.Sap)
}

func TestParseSapSegments(t *testing.T) {
	b, err := Parse("SECRET//SAR-BP/GB/TC")
	require.NoError(t, err)
	require.NotNil(t, b.Sap)
	assert.Equal(t, []string{"BP", "GB", "TC"}, b.Sap.Programs())

	b, err = Parse("SECRET//HVSACO")
	require.NoError(t, err)
	require.NotNil(t, b.Sap)
	assert.True(t, b.Sap.IsHvsaco())

	b, err = Parse("TOP SECRET//SAR-MULTIPLE PROGRAMS")
	require.NoError(t, err)
	require.NotNil(t, b.Sap)
	assert.True(t, b.Sap.IsMultiple())
}

func TestParseRunStyleControls(t *testing.T) {
	// Run-style controls swallow the whole segment, slashes included.
	b, err := Parse("SECRET//REL TO USA/GBR")
	require.NoError(t, err)
	assert.Equal(t, []string{"REL TO USA/GBR"}, b.FreeText)
	assert.Empty(t, b.Dissem)

	b, err = Parse("SECRET//AUS/GBR EYES ONLY")
	require.NoError(t, err)
	assert.Equal(t, []string{"AUS/GBR EYES ONLY"}, b.FreeText)

	b, err = Parse("CONFIDENTIAL//ACCM-NICKNAME")
	require.NoError(t, err)
	assert.Equal(t, []string{"ACCM-NICKNAME"}, b.FreeText)
}

func TestParseOtherDissem(t *testing.T) {
	b, err := Parse("UNCLASSIFIED//LES NOFORN")
	require.NoError(t, err)
	assert.Equal(t, []marking.OtherDissemControl{marking.OtherDissemLESNoforn}, b.Other)

	b, err = Parse("SECRET//EXDIS/NODIS")
	require.NoError(t, err)
	assert.Equal(t, []marking.OtherDissemControl{marking.OtherDissemEXDIS, marking.OtherDissemNODIS}, b.Other)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.True(t, errors.Is(err, errors.ErrEmptyBanner))

	_, err = Parse("SORT OF SECRET//NOFORN")
	assert.True(t, errors.Is(err, errors.ErrUnknownClassification))

	_, err = Parse("SECRET//NOFORN/BIGOT")
	assert.True(t, errors.Is(err, errors.ErrUnknownSegment))
	assert.Contains(t, err.Error(), `"BIGOT"`)
}

func TestBannerString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "classification only",
			in:   "SECRET",
			want: "SECRET",
		},
		{
			name: "full banner round-trips",
			in:   "TOP SECRET//SI-TK ALFA BRAVO//SAR-BP/GB//NOFORN/ORCON",
			want: "TOP SECRET//SI-TK ALFA BRAVO//SAR-BP/GB//NOFORN/ORCON",
		},
		{
			name: "sci compartments canonicalized",
			in:   "TOP SECRET//SI-Z-Y-X//NOFORN",
			want: "TOP SECRET//SI-X-Y-Z//NOFORN",
		},
		{
			name: "secondary alias rendered as primary name",
			in:   "SECRET//NOT RELEASABLE TO FOREIGN NATIONALS",
			want: "SECRET//NOFORN",
		},
		{
			name: "rel run kept verbatim",
			in:   "SECRET//REL TO USA/GBR",
			want: "SECRET//REL TO USA/GBR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
		})
	}
}
