package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/kwash-dashboard/internal/db"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

var perspectiveEq = cmp.Comparer(func(a, b survey.Perspective) bool { return a == b })

func TestDefault_EmbeddedDataset(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Floating Population", c.Stakeholder)
	assert.Len(t, c.Access, 6)
	assert.Len(t, c.Psychosocial, 12)
	assert.Equal(t, []string{
		"Affinity towards hygiene practices",
		"Awareness of WaSH practices",
		"Satisfaction with WaSH services",
	}, survey.Indicators(c.Psychosocial))

	holistic := 0
	for _, d := range c.Psychosocial {
		if d.Perspective.IsHolistic() {
			holistic++
		}
	}
	assert.Equal(t, 3, holistic)

	assert.Len(t, c.Infrastructure.FiguresIn(SectionToilets), 4)
	assert.Len(t, c.Operations.WasteCollection, 45)
	assert.Equal(t, "2025-01-13", c.Operations.WasteCollection[0].Date.Format("2006-01-02"))
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	doc := "title: x\nstakeholder: y\ncolour: blue\n"
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParse_ValidationErrors(t *testing.T) {
	doc := `
access:
  - title: "A"
    icon: rocket
    chart: donut
    values: []
psychosocial:
  - indicator: ""
    perspective: age
    groups: []
`
	_, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrInvalid)
	for _, want := range []string{`unknown chart kind "donut"`, `unknown icon "rocket"`, "access[0]: no values", "psychosocial[0]: missing indicator"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestParse_DoesNotNormaliseDistributions(t *testing.T) {
	doc := `
psychosocial:
  - indicator: X
    perspective: Holistic
    groups:
      - group: All
        responses: {strongly_disagree: 10, disagree: 10, neutral: 10, agree: 10, strongly_agree: 10}
`
	c, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 10.0, c.Psychosocial[0].Groups[0].Responses.Agree)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kwash.yaml")
	require.NoError(t, os.WriteFile(path, Embedded(), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Psychosocial, 12)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFacilityImages(t *testing.T) {
	assert.Equal(t, "indicators/water-atm.png", FacilityWaterATM.Image())
	assert.Equal(t, "indicators/Liner Bags.png", FacilityLinerBag.Image())
	assert.Equal(t, FallbackImage, FacilityKind("borewell").Image())
	assert.False(t, FacilityKind("borewell").Known())

	assert.Equal(t, "💧", IconWater.Glyph())
	assert.Equal(t, "ℹ", Icon("").Glyph())
}

func TestSQLStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:"+filepath.Join(t.TempDir(), "kwash.db"))
	require.NoError(t, err)
	defer conn.Close()

	store := NewSQLStore(conn)
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, ErrNotSeeded)

	want, err := Default()
	require.NoError(t, err)
	require.NoError(t, store.Seed(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, perspectiveEq); diff != "" {
		t.Fatalf("catalog mismatch after round trip (-want +got):\n%s", diff)
	}

	// reseeding replaces instead of appending
	smaller := *want
	smaller.Psychosocial = want.Psychosocial[:1]
	require.NoError(t, store.Seed(ctx, &smaller))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Psychosocial, 1)
}

func TestNewSource(t *testing.T) {
	s, err := NewSource("", "", nil)
	require.NoError(t, err)
	assert.IsType(t, EmbeddedSource{}, s)

	_, err = NewSource(SourceFile, "", nil)
	assert.Error(t, err)
	_, err = NewSource(SourceSQL, "", nil)
	assert.Error(t, err)
	_, err = NewSource("ftp", "", nil)
	assert.Error(t, err)

	c, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, c.Access)
}
