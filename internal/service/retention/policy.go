package retention

import (
	"slices"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

// EvaluateDedup keeps the oldest photo of every group and marks the rest as
// excess. Photos with equal CreatedAt keep their input order.
func EvaluateDedup(groups []Group) []Group {
	return keepOldest(groups, 1)
}

// EvaluateCap keeps the maxCount oldest photos of every group and marks the
// newer ones as excess.
func EvaluateCap(groups []Group, maxCount int) ([]Group, error) {
	if err := validateMaxCount(maxCount); err != nil {
		return nil, err
	}
	return keepOldest(groups, maxCount), nil
}

func validateMaxCount(n int) error {
	if n < 1 {
		return domain.NewValidationError("max_count", "must be at least 1")
	}
	return nil
}

// keepOldest returns evaluated copies of groups; the input is not modified.
func keepOldest(groups []Group, keep int) []Group {
	out := make([]Group, len(groups))

	for i, g := range groups {
		sorted := sortedByCreatedAt(g.Photos)
		n := min(keep, len(sorted))

		out[i] = Group{
			Key:       g.Key,
			Photos:    g.Photos,
			Survivors: sorted[:n:n],
			Excess:    sorted[n:],
		}
	}

	return out
}

func sortedByCreatedAt(photos []domain.InspectionPhoto) []domain.InspectionPhoto {
	sorted := slices.Clone(photos)
	slices.SortStableFunc(sorted, func(a, b domain.InspectionPhoto) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return sorted
}
