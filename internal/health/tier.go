package health

// Tier is the colour band a score falls into
type Tier int

const (
	TierTop Tier = iota
	TierSecond
	TierThird
	TierLowest
)

// Tier breakpoints, inclusive
const (
	TopTierMin    = 90
	SecondTierMin = 75
	ThirdTierMin  = 60
)

// TierForScore maps a 0-100 score onto its tier
func TierForScore(score int) Tier {
	switch {
	case score >= TopTierMin:
		return TierTop
	case score >= SecondTierMin:
		return TierSecond
	case score >= ThirdTierMin:
		return TierThird
	default:
		return TierLowest
	}
}

// String returns the tier name
func (t Tier) String() string {
	switch t {
	case TierTop:
		return "top"
	case TierSecond:
		return "second"
	case TierThird:
		return "third"
	default:
		return "lowest"
	}
}

// Tone returns the colour family used for the tier
func (t Tier) Tone() Tone {
	switch t {
	case TierTop:
		return ToneGreen
	case TierSecond:
		return ToneBlue
	case TierThird:
		return ToneAmber
	default:
		return ToneRed
	}
}
