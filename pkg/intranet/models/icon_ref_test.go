package models_test

import (
	"encoding/json"
	"testing"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIconRef(t *testing.T) {
	cases := []struct {
		in   string
		want models.IconRef
	}{
		{"", models.IconRef{}},
		{"🚀", models.IconRef{Kind: models.IconEmoji, Glyph: "🚀"}},
		{"FAQ", models.IconRef{Kind: models.IconEmoji, Glyph: "FAQ"}},
		{"/uploads/icons/x.png", models.IconRef{Kind: models.IconImage, Path: "/uploads/icons/x.png"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, models.ParseIconRef(c.in), "input %q", c.in)
	}
}

func TestIconRef_ValueScanRoundTrip(t *testing.T) {
	for _, in := range []string{"", "🚀", "/uploads/icons/x.png"} {
		orig := models.ParseIconRef(in)
		v, err := orig.Value()
		require.NoError(t, err)

		var back models.IconRef
		require.NoError(t, back.Scan(v))
		assert.Equal(t, orig, back, "input %q", in)
	}
}

func TestIconRef_ScanBytesAndNil(t *testing.T) {
	var ref models.IconRef
	require.NoError(t, ref.Scan([]byte("/uploads/icons/x.png")))
	assert.Equal(t, models.IconImage, ref.Kind)

	require.NoError(t, ref.Scan(nil))
	assert.True(t, ref.IsZero())

	assert.Error(t, ref.Scan(42))
}

func TestIconRef_JSONStaysFlat(t *testing.T) {
	out, err := json.Marshal(models.IconRef{Kind: models.IconImage, Path: "/uploads/icons/x.png"})
	require.NoError(t, err)
	assert.JSONEq(t, `"/uploads/icons/x.png"`, string(out))

	var ref models.IconRef
	require.NoError(t, json.Unmarshal([]byte(`"🚀"`), &ref))
	assert.Equal(t, models.IconEmoji, ref.Kind)
	assert.Equal(t, "🚀", ref.Glyph)
}
