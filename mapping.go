package mdxport

import (
	"encoding/json"
	"io"
	"sort"
)

// Placement locates a document within the information architecture:
// which category and subcategory it belongs to, and its display title.
type Placement struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Title       string `json:"title"`
}

// Mapping maps source filenames to their IA placement. The table is
// configuration data maintained alongside the export, never baked into
// code, so the conversion pipeline can be tested against any document set.
type Mapping map[string]Placement

// LoadMapping reads a filename-to-placement table from JSON.
func LoadMapping(r io.Reader) (Mapping, error) {
	var m Mapping
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, Errorf(EINVALID, "invalid mapping JSON: %v", err)
	}
	for filename, placement := range m {
		if placement.Category == "" || placement.Title == "" {
			return nil, Errorf(EINVALID, "mapping entry %q missing category or title", filename)
		}
	}
	return m, nil
}

// Lookup returns the placement for a source filename.
// Returns EUNMAPPED if the filename has no known destination.
func (m Mapping) Lookup(filename string) (Placement, error) {
	placement, ok := m[filename]
	if !ok {
		return Placement{}, Errorf(EUNMAPPED, "no placement for %q", filename)
	}
	return placement, nil
}

// Hierarchy returns the category/subcategory/title tree implied by the
// mapping, with categories and subcategories sorted alphabetically and
// titles sorted within each subcategory. Used for navigation generation.
func (m Mapping) Hierarchy() []Category {
	type key struct{ category, subcategory string }
	groups := make(map[key][]Placement)
	for _, placement := range m {
		k := key{placement.Category, placement.Subcategory}
		groups[k] = append(groups[k], placement)
	}

	byCategory := make(map[string][]Subcategory)
	for k, placements := range groups {
		sort.Slice(placements, func(i, j int) bool { return placements[i].Title < placements[j].Title })
		byCategory[k.category] = append(byCategory[k.category], Subcategory{
			Name:  k.subcategory,
			Pages: placements,
		})
	}

	categories := make([]Category, 0, len(byCategory))
	for name, subs := range byCategory {
		sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
		categories = append(categories, Category{Name: name, Subcategories: subs})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	return categories
}

// Category is one top-level group in the IA hierarchy.
type Category struct {
	Name          string
	Subcategories []Subcategory
}

// Subcategory is one nested group of pages in the IA hierarchy.
type Subcategory struct {
	Name  string
	Pages []Placement
}
