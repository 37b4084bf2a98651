package importer

import (
	"regexp"
	"strings"

	"github.com/clinicasansebastianips-ship-it/ganaderia/internal/entity"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// AnimalResolver maps free-text animal references (ear-tag numbers or names)
// to the ids assigned by the animal importer. It is built once after the
// animal importer runs and is read-only afterwards.
type AnimalResolver struct {
	byTag  map[string]string
	byName map[string]string
}

func NewAnimalResolver(animals []entity.Animal) *AnimalResolver {
	r := &AnimalResolver{
		byTag:  make(map[string]string, len(animals)),
		byName: make(map[string]string, len(animals)),
	}
	// duplicate tags or names let the later animal win
	for _, a := range animals {
		if a.Tag != "" {
			r.byTag[a.Tag] = a.ID
		}
		if a.Name != "" {
			r.byName[strings.ToLower(a.Name)] = a.ID
		}
	}
	return r
}

// Resolve returns the animal id for ref, or "" when nothing matches. The tag
// table is tried first with every non-digit stripped (so "A-045" finds tag
// "045"), then with the verbatim text, then the name table case-insensitively.
func (r *AnimalResolver) Resolve(ref string) string {
	s := strings.TrimSpace(ref)
	if s == "" {
		return ""
	}
	if digits := nonDigitRe.ReplaceAllString(s, ""); digits != "" {
		if id, ok := r.byTag[digits]; ok {
			return id
		}
	}
	if id, ok := r.byTag[s]; ok {
		return id
	}
	if id, ok := r.byName[strings.ToLower(s)]; ok {
		return id
	}
	return ""
}

// ResolveAny returns the id of the first reference that resolves.
func (r *AnimalResolver) ResolveAny(refs ...string) string {
	for _, ref := range refs {
		if id := r.Resolve(ref); id != "" {
			return id
		}
	}
	return ""
}
