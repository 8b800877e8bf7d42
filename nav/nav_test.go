package nav_test

import (
	"testing"

	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	mapping := mdxport.Mapping{
		"calendar.txt": {Category: "Front Office", Subcategory: "Calendar", Title: "Getting Started"},
		"filter.txt":   {Category: "Front Office", Subcategory: "Calendar", Title: "Filter the View"},
		"notes.txt":    {Category: "Provider Workflows", Subcategory: "Chart Notes", Title: "Navigating the Chart Note"},
	}

	t.Run("builds tabs from mapping hierarchy", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"name": "Docs", "navigation": {"tabs": []}}`)
		out, err := nav.Generate(docsJSON, mapping, "")
		require.NoError(t, err)

		tabs := gjson.GetBytes(out, "navigation.tabs")
		require.Equal(t, 2, len(tabs.Array()))
		assert.Equal(t, "Front Office", tabs.Get("0.tab").String())
		assert.Equal(t, "Calendar", tabs.Get("0.groups.0.group").String())
		assert.Equal(t, "Front Office/Calendar/filter-the-view", tabs.Get("0.groups.0.pages.0").String())
		assert.Equal(t, "Front Office/Calendar/getting-started", tabs.Get("0.groups.0.pages.1").String())
		assert.Equal(t, "Provider Workflows", tabs.Get("1.tab").String())
	})

	t.Run("preserves keys outside navigation.tabs", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"name": "Docs", "theme": "mint", "navigation": {"tabs": [], "global": {"anchors": []}}}`)
		out, err := nav.Generate(docsJSON, mapping, "")
		require.NoError(t, err)

		assert.Equal(t, "mint", gjson.GetBytes(out, "theme").String())
		assert.True(t, gjson.GetBytes(out, "navigation.global.anchors").Exists())
	})

	t.Run("replaces only the named tab", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"navigation": {"tabs": [{"tab": "Front Office", "groups": []}, {"tab": "Billing", "groups": [{"group": "Reports", "pages": ["Billing/Reports/ar-reports"]}]}]}}`)
		out, err := nav.Generate(docsJSON, mapping, "Front Office")
		require.NoError(t, err)

		tabs := gjson.GetBytes(out, "navigation.tabs")
		require.Equal(t, 2, len(tabs.Array()))
		assert.Equal(t, "Calendar", tabs.Get("0.groups.0.group").String())
		// untouched tab survives byte-for-byte in structure
		assert.Equal(t, "Billing/Reports/ar-reports", tabs.Get("1.groups.0.pages.0").String())
	})

	t.Run("appends the named tab when absent", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"navigation": {"tabs": [{"tab": "Billing", "groups": []}]}}`)
		out, err := nav.Generate(docsJSON, mapping, "Provider Workflows")
		require.NoError(t, err)

		tabs := gjson.GetBytes(out, "navigation.tabs")
		require.Equal(t, 2, len(tabs.Array()))
		assert.Equal(t, "Provider Workflows", tabs.Get("1.tab").String())
	})

	t.Run("returns not found for unknown tab name", func(t *testing.T) {
		t.Parallel()

		_, err := nav.Generate([]byte(`{}`), mapping, "No Such Tab")
		require.Error(t, err)
		assert.Equal(t, mdxport.ENOTFOUND, mdxport.ErrorCode(err))
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := nav.Generate([]byte(`{not json`), mapping, "")
		require.Error(t, err)
		assert.Equal(t, mdxport.EINVALID, mdxport.ErrorCode(err))
	})
}

func TestApplyLabels(t *testing.T) {
	t.Parallel()

	t.Run("converts string pages to labeled objects", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"navigation": {"tabs": [{"tab": "Front Office", "groups": [{"group": "Calendar", "pages": ["Front Office/Calendar/getting-started", "Front Office/Calendar/filter-the-view"]}]}]}}`)
		titles := map[string]string{
			"Front Office/Calendar/getting-started": "Getting Started",
			"Front Office/Calendar/filter-the-view": "Filter the View",
		}

		out, err := nav.ApplyLabels(docsJSON, func(pagePath string) (string, bool) {
			title, ok := titles[pagePath]
			return title, ok
		})
		require.NoError(t, err)

		pages := gjson.GetBytes(out, "navigation.tabs.0.groups.0.pages")
		assert.Equal(t, "Front Office/Calendar/getting-started", pages.Get("0.page").String())
		assert.Equal(t, "Getting Started", pages.Get("0.label").String())
		assert.Equal(t, "Filter the View", pages.Get("1.label").String())
	})

	t.Run("leaves unresolved pages untouched", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"navigation": {"tabs": [{"tab": "T", "groups": [{"group": "G", "pages": ["missing/page"]}]}]}}`)
		out, err := nav.ApplyLabels(docsJSON, func(string) (string, bool) { return "", false })
		require.NoError(t, err)

		page := gjson.GetBytes(out, "navigation.tabs.0.groups.0.pages.0")
		assert.Equal(t, gjson.String, page.Type)
		assert.Equal(t, "missing/page", page.String())
	})

	t.Run("refreshes labels on existing page objects", func(t *testing.T) {
		t.Parallel()

		docsJSON := []byte(`{"navigation": {"tabs": [{"tab": "T", "groups": [{"group": "G", "pages": [{"page": "a/b/c", "label": "Stale"}]}]}]}}`)
		out, err := nav.ApplyLabels(docsJSON, func(string) (string, bool) { return "Fresh", true })
		require.NoError(t, err)

		assert.Equal(t, "Fresh", gjson.GetBytes(out, "navigation.tabs.0.groups.0.pages.0.label").String())
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := nav.ApplyLabels([]byte(`[`), func(string) (string, bool) { return "", false })
		require.Error(t, err)
		assert.Equal(t, mdxport.EINVALID, mdxport.ErrorCode(err))
	})
}

func TestPagePath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Front Office/Calendar/getting-started", nav.PagePath(mdxport.Placement{
		Category: "Front Office", Subcategory: "Calendar", Title: "Getting Started",
	}))
	assert.Equal(t, "Guides/intro", nav.PagePath(mdxport.Placement{
		Category: "Guides", Title: "Intro!",
	}))
}
