package retention

import (
	"github.com/google/uuid"

	"github.com/VictorCainj/doc-forge-buddy-sub007/internal/domain"
)

// IdentityKind says which attribute a GroupKey's identity was taken from.
// Keys of different kinds never compare equal, so a fingerprint can never
// collide with a URL that happens to hold the same text.
type IdentityKind string

const (
	IdentityFingerprint IdentityKind = "fingerprint"
	IdentitySource      IdentityKind = "source"
	// IdentityRecord marks a photo with neither fingerprint nor source; it is
	// keyed by its own ID and always forms a group of one.
	IdentityRecord IdentityKind = "record"
	// IdentityNone is used by annotation groups, which ignore identity.
	IdentityNone IdentityKind = ""
)

// GroupKey identifies a set of photos that are copies of each other within
// one inspection, annotation and phase.
type GroupKey struct {
	InspectionID uuid.UUID
	AnnotationID string
	Phase        domain.InspectionPhase
	Kind         IdentityKind
	Identity     string
}

// Group is a set of photos sharing a key. Survivors and Excess are filled
// by the policy evaluators; Photos keeps the input order.
type Group struct {
	Key       GroupKey
	Photos    []domain.InspectionPhoto
	Survivors []domain.InspectionPhoto
	Excess    []domain.InspectionPhoto
}

// DedupKey returns the duplicate-detection key of a photo. The fingerprint
// wins over the source URL when both are present. Identities compare by
// exact value; blank values only decide presence.
func DedupKey(p domain.InspectionPhoto) GroupKey {
	k := GroupKey{
		InspectionID: p.InspectionID,
		AnnotationID: p.AnnotationID,
		Phase:        p.Phase,
	}

	switch {
	case p.HasFingerprint():
		k.Kind = IdentityFingerprint
		k.Identity = *p.Fingerprint
	case p.HasSource():
		k.Kind = IdentitySource
		k.Identity = p.SourceURL
	default:
		k.Kind = IdentityRecord
		k.Identity = p.ID.String()
	}

	return k
}

// AnnotationKey returns the key used by the cap policy.
func AnnotationKey(p domain.InspectionPhoto) GroupKey {
	return GroupKey{
		InspectionID: p.InspectionID,
		AnnotationID: p.AnnotationID,
		Phase:        p.Phase,
		Kind:         IdentityNone,
	}
}

// GroupByDedupKey partitions photos into duplicate groups. Groups are
// returned in order of first appearance.
func GroupByDedupKey(photos []domain.InspectionPhoto) []Group {
	return groupBy(photos, DedupKey)
}

// GroupByAnnotation partitions photos by inspection, annotation and phase.
func GroupByAnnotation(photos []domain.InspectionPhoto) []Group {
	return groupBy(photos, AnnotationKey)
}

func groupBy(photos []domain.InspectionPhoto, keyFn func(domain.InspectionPhoto) GroupKey) []Group {
	index := make(map[GroupKey]int, len(photos))
	groups := make([]Group, 0)

	for _, p := range photos {
		k := keyFn(p)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Photos = append(groups[i].Photos, p)
	}

	return groups
}
