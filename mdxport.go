// Package mdxport converts Framer-exported HTML documentation into
// Mintlify-flavored MDX. It parses two-part export files (title + HTML
// body), downloads referenced images, converts the HTML to Markdown, and
// patches the generated navigation metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/).
package mdxport
