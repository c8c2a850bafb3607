package competition

// PopularCodes is the allow-list of competitions shown on the home screen.
var PopularCodes = []string{"PL", "PD", "SA", "BL1", "FL1", "ELC", "PPL", "DED", "CL", "EC", "WC"}

// FallbackSize is how many source entries are shown when nothing matches the allow-list.
const FallbackSize = 10

var popularSet = func() map[string]struct{} {
	out := make(map[string]struct{}, len(PopularCodes))
	for _, code := range PopularCodes {
		out[code] = struct{}{}
	}
	return out
}()

func IsPopular(code string) bool {
	_, ok := popularSet[code]
	return ok
}

// FilterPopular keeps allow-listed competitions in source order. When none
// match, the first FallbackSize entries of items are returned instead so a
// non-empty source never renders as an empty list.
func FilterPopular(items []Competition) []Competition {
	out := make([]Competition, 0, len(items))
	for _, item := range items {
		if IsPopular(item.Code) {
			out = append(out, item)
		}
	}
	if len(out) > 0 {
		return out
	}

	n := min(len(items), FallbackSize)
	out = append(out, items[:n]...)
	return out
}
