package mdxport

import "regexp"

// frontmatterTitleRe matches the title field of a leading frontmatter
// block. The title may be bare, single-quoted, or double-quoted.
var frontmatterTitleRe = regexp.MustCompile(`^---\s*\ntitle:\s*["']?(.*?)["']?\s*\n`)

// ExtractFrontmatterTitle returns the title field of a leading frontmatter
// block, or "" when the content has no frontmatter title.
func ExtractFrontmatterTitle(content string) string {
	match := frontmatterTitleRe.FindStringSubmatch(content)
	if match == nil {
		return ""
	}
	return match[1]
}

// UpdateFrontmatterTitle replaces the title field of a leading frontmatter
// block. Content without a frontmatter title is returned unchanged.
func UpdateFrontmatterTitle(content, title string) string {
	if !frontmatterTitleRe.MatchString(content) {
		return content
	}
	return frontmatterTitleRe.ReplaceAllLiteralString(content, "---\ntitle: \""+title+"\"\n")
}
