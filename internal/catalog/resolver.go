package catalog

import "errors"

// ErrNoCommonPlacement means the selected channels share no placement, so
// nothing can be scheduled across all of them.
var ErrNoCommonPlacement = errors.New("selected channels have no placement in common")

// CommonPlacements folds the selection down to the placements every channel
// supports, keeping the first channel's order.
func CommonPlacements(channels []Channel) []Placement {
	if len(channels) == 0 {
		return []Placement{}
	}

	common := SupportedPlacements(channels[0])
	for _, ch := range channels[1:] {
		kept := common[:0]
		for _, p := range common {
			if Supports(ch, p) {
				kept = append(kept, p)
			}
		}
		common = kept
	}
	if common == nil {
		return []Placement{}
	}
	return common
}

// ResolvePlacements is CommonPlacements with the empty intersection of a
// non-empty selection reported as ErrNoCommonPlacement.
func ResolvePlacements(channels []Channel) ([]Placement, error) {
	common := CommonPlacements(channels)
	if len(channels) > 0 && len(common) == 0 {
		return common, ErrNoCommonPlacement
	}
	return common, nil
}

func ContainsPlacement(placements []Placement, p Placement) bool {
	for _, candidate := range placements {
		if candidate == p {
			return true
		}
	}
	return false
}
