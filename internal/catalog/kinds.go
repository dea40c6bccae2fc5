package catalog

// Image and icon selection is table driven: each enumerated kind maps to
// exactly one asset, independent of label wording.

type FacilityKind string

const (
	FacilityPipeline  FacilityKind = "pipeline"
	FacilityWaterATM  FacilityKind = "water_atm"
	FacilityTap       FacilityKind = "tap"
	FacilityStandpost FacilityKind = "standpost"
	FacilityTubewell  FacilityKind = "tubewell"
	FacilityDustbin   FacilityKind = "dustbin"
	FacilityCompactor FacilityKind = "compactor"
	FacilityTipper    FacilityKind = "tipper"
	FacilityLinerBag  FacilityKind = "liner_bag"
)

// FallbackImage is served for kinds without a dedicated picture.
const FallbackImage = "file.svg"

var facilityImages = map[FacilityKind]string{
	FacilityPipeline:  "indicators/piplinepic.png",
	FacilityWaterATM:  "indicators/water-atm.png",
	FacilityTap:       "indicators/tap.png",
	FacilityStandpost: "indicators/standpost.png",
	FacilityTubewell:  "indicators/tubewell.png",
	FacilityDustbin:   "indicators/Dustbins.png",
	FacilityCompactor: "indicators/Compactors.png",
	FacilityTipper:    "indicators/Tippers.png",
	FacilityLinerBag:  "indicators/Liner Bags.png",
}

func (k FacilityKind) Known() bool {
	_, ok := facilityImages[k]
	return ok
}

// Image returns the asset path for the kind.
func (k FacilityKind) Image() string {
	if p, ok := facilityImages[k]; ok {
		return p
	}
	return FallbackImage
}

// Icon is the symbol shown next to an access indicator title.
type Icon string

const (
	IconProximity     Icon = "proximity"
	IconAccessibility Icon = "accessibility"
	IconWater         Icon = "water"
	IconSanitation    Icon = "sanitation"
	IconHealth        Icon = "health"
	IconWaste         Icon = "waste"
)

var iconGlyphs = map[Icon]string{
	IconProximity:     "📍",
	IconAccessibility: "♿",
	IconWater:         "💧",
	IconSanitation:    "🛡",
	IconHealth:        "❤",
	IconWaste:         "🗑",
}

func (i Icon) Known() bool {
	_, ok := iconGlyphs[i]
	return ok
}

// Glyph returns the symbol for the icon, "ℹ" when it has none.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return "ℹ"
}

type FigureSection string

const (
	SectionToilets    FigureSection = "toilets"
	SectionDisposal   FigureSection = "disposal"
	SectionCollection FigureSection = "collection"
	SectionSignage    FigureSection = "signage"
)

var figureSections = map[FigureSection]bool{
	SectionToilets:    true,
	SectionDisposal:   true,
	SectionCollection: true,
	SectionSignage:    true,
}
