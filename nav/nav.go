// Package nav patches Mintlify docs.json navigation structures. All edits
// go through gjson/sjson path operations so keys outside the navigation
// tree survive untouched.
package nav

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/mdxport"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// TitleLookup resolves a navigation page path (relative, no extension) to
// its display title. The second return reports whether a title was found.
type TitleLookup func(pagePath string) (string, bool)

type tab struct {
	Tab    string  `json:"tab"`
	Groups []group `json:"groups"`
}

type group struct {
	Group string   `json:"group"`
	Pages []string `json:"pages"`
}

// Generate rebuilds the navigation tabs of a docs.json document from the
// mapping's category/subcategory hierarchy. With an empty tabName every
// tab is regenerated; with a tabName only that category's tab is replaced
// (or appended if absent). Keys outside navigation.tabs are preserved.
func Generate(docsJSON []byte, mapping mdxport.Mapping, tabName string) ([]byte, error) {
	if !gjson.ValidBytes(docsJSON) {
		return nil, mdxport.Errorf(mdxport.EINVALID, "docs.json is not valid JSON")
	}

	tabs := buildTabs(mapping, tabName)

	if tabName == "" {
		raw, err := json.Marshal(tabs)
		if err != nil {
			return nil, err
		}
		return sjson.SetRawBytes(docsJSON, "navigation.tabs", raw)
	}

	if len(tabs) == 0 {
		return nil, mdxport.Errorf(mdxport.ENOTFOUND, "no mapping entries for tab %q", tabName)
	}

	raw, err := json.Marshal(tabs[0])
	if err != nil {
		return nil, err
	}

	idx := findTab(docsJSON, tabName)
	if idx < 0 {
		return sjson.SetRawBytes(docsJSON, "navigation.tabs.-1", raw)
	}
	return sjson.SetRawBytes(docsJSON, fmt.Sprintf("navigation.tabs.%d", idx), raw)
}

// ApplyLabels rewrites string page entries as {"page", "label"} objects
// using the lookup's titles, so Mintlify shows the document title instead
// of a group-prefixed path. Entries whose title cannot be resolved are
// left untouched; existing page objects get their label refreshed.
func ApplyLabels(docsJSON []byte, lookup TitleLookup) ([]byte, error) {
	if !gjson.ValidBytes(docsJSON) {
		return nil, mdxport.Errorf(mdxport.EINVALID, "docs.json is not valid JSON")
	}

	out := docsJSON
	tabs := gjson.GetBytes(docsJSON, "navigation.tabs")

	var outerErr error
	tabs.ForEach(func(ti, tabVal gjson.Result) bool {
		tabVal.Get("groups").ForEach(func(gi, groupVal gjson.Result) bool {
			groupVal.Get("pages").ForEach(func(pi, pageVal gjson.Result) bool {
				path := fmt.Sprintf("navigation.tabs.%d.groups.%d.pages.%d", ti.Int(), gi.Int(), pi.Int())

				switch {
				case pageVal.Type == gjson.String:
					title, ok := lookup(pageVal.String())
					if !ok {
						return true
					}
					raw, err := json.Marshal(struct {
						Page  string `json:"page"`
						Label string `json:"label"`
					}{Page: pageVal.String(), Label: title})
					if err != nil {
						outerErr = err
						return false
					}
					out, err = sjson.SetRawBytes(out, path, raw)
					if err != nil {
						outerErr = err
						return false
					}

				case pageVal.IsObject():
					pagePath := pageVal.Get("page").String()
					if pagePath == "" {
						return true
					}
					title, ok := lookup(pagePath)
					if !ok {
						return true
					}
					var err error
					out, err = sjson.SetBytes(out, path+".label", title)
					if err != nil {
						outerErr = err
						return false
					}
				}
				return true
			})
			return outerErr == nil
		})
		return outerErr == nil
	})

	if outerErr != nil {
		return nil, outerErr
	}
	return out, nil
}

// buildTabs converts the mapping hierarchy into navigation tabs. A
// non-empty tabName restricts the result to that category.
func buildTabs(mapping mdxport.Mapping, tabName string) []tab {
	var tabs []tab
	for _, category := range mapping.Hierarchy() {
		if tabName != "" && category.Name != tabName {
			continue
		}
		t := tab{Tab: category.Name}
		for _, sub := range category.Subcategories {
			g := group{Group: sub.Name}
			for _, placement := range sub.Pages {
				g.Pages = append(g.Pages, PagePath(placement))
			}
			t.Groups = append(t.Groups, g)
		}
		tabs = append(tabs, t)
	}
	return tabs
}

// findTab returns the index of the named tab in navigation.tabs, or -1.
func findTab(docsJSON []byte, tabName string) int {
	idx := -1
	gjson.GetBytes(docsJSON, "navigation.tabs").ForEach(func(i, v gjson.Result) bool {
		if v.Get("tab").String() == tabName {
			idx = int(i.Int())
			return false
		}
		return true
	})
	return idx
}

// PagePath returns a placement's navigation page path: the MDX file path
// relative to the docs root, without the extension.
func PagePath(p mdxport.Placement) string {
	segments := []string{p.Category}
	if p.Subcategory != "" {
		segments = append(segments, p.Subcategory)
	}
	segments = append(segments, mdxport.SanitizeTitle(p.Title))
	return strings.Join(segments, "/")
}
