package classify

// Race is the closed enumeration of demographic group keys the upstream
// data producer may emit. Adding a server-side key without extending this
// enumeration (and the palette in internal/render) is a schema mismatch
// and surfaces as UnknownCategoryError at the parse boundary.
type Race string

const (
	RaceBlack    Race = "black"
	RaceWhite    Race = "white"
	RaceHispanic Race = "hispanic"
	RaceAsian    Race = "asian"
	RaceOther    Race = "other"
)

// Races lists all known race keys in display order.
var Races = []Race{RaceBlack, RaceWhite, RaceHispanic, RaceAsian, RaceOther}

// ParseRace converts an upstream string key to the closed enumeration.
func ParseRace(key string) (Race, error) {
	switch Race(key) {
	case RaceBlack, RaceWhite, RaceHispanic, RaceAsian, RaceOther:
		return Race(key), nil
	}
	return "", &UnknownCategoryError{Kind: "race", Key: key}
}

// Classification returns the display label and style token for the group.
func (r Race) Classification() (Classification, error) {
	switch r {
	case RaceBlack:
		return Classification{Label: "Black", Token: "race-black"}, nil
	case RaceWhite:
		return Classification{Label: "White", Token: "race-white"}, nil
	case RaceHispanic:
		return Classification{Label: "Hispanic", Token: "race-hispanic"}, nil
	case RaceAsian:
		return Classification{Label: "Asian", Token: "race-asian"}, nil
	case RaceOther:
		return Classification{Label: "Other", Token: "race-other"}, nil
	}
	return Classification{}, &UnknownCategoryError{Kind: "race", Key: string(r)}
}

// Region is the closed enumeration of rural-urban region codes, derived
// upstream from RUCA commuting-area codes.
type Region string

const (
	RegionUrban    Region = "urban"
	RegionSuburban Region = "suburban"
	RegionRural    Region = "rural"
)

// Regions lists all known region keys in display order.
var Regions = []Region{RegionUrban, RegionSuburban, RegionRural}

// ParseRegion converts an upstream string key to the closed enumeration.
func ParseRegion(key string) (Region, error) {
	switch Region(key) {
	case RegionUrban, RegionSuburban, RegionRural:
		return Region(key), nil
	}
	return "", &UnknownCategoryError{Kind: "region", Key: key}
}

// Classification returns the display label and style token for the region.
func (r Region) Classification() (Classification, error) {
	switch r {
	case RegionUrban:
		return Classification{Label: "Urban", Token: "region-urban"}, nil
	case RegionSuburban:
		return Classification{Label: "Suburban", Token: "region-suburban"}, nil
	case RegionRural:
		return Classification{Label: "Rural", Token: "region-rural"}, nil
	}
	return Classification{}, &UnknownCategoryError{Kind: "region", Key: string(r)}
}

// Party is the closed enumeration of party keys.
type Party string

const (
	PartyDemocratic Party = "Democratic"
	PartyRepublican Party = "Republican"
)

// Parties lists all known party keys in display order.
var Parties = []Party{PartyDemocratic, PartyRepublican}

// ParseParty converts an upstream string key to the closed enumeration.
func ParseParty(key string) (Party, error) {
	switch Party(key) {
	case PartyDemocratic, PartyRepublican:
		return Party(key), nil
	}
	return "", &UnknownCategoryError{Kind: "party", Key: key}
}

// Classification returns the display label and style token for the party.
func (p Party) Classification() (Classification, error) {
	switch p {
	case PartyDemocratic:
		return Classification{Label: "Democratic", Token: "party-dem"}, nil
	case PartyRepublican:
		return Classification{Label: "Republican", Token: "party-rep"}, nil
	}
	return Classification{}, &UnknownCategoryError{Kind: "party", Key: string(p)}
}
