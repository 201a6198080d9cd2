// Package frontmatter splits a content document into its YAML metadata
// block and body, and serializes the pair back into document form.
// The on-disk format is the gray-matter convention used by hand-authored
// MDX files:
//
//	---
//	title: ...
//	---
//
//	body text
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Parse splits src into metadata and body. A document without a leading
// frontmatter block yields an empty metadata map and the full document as
// body. An unterminated block is treated the same way rather than as an
// error, matching how hand-authored files degrade.
func Parse(src []byte) (map[string]any, string, error) {
	meta := map[string]any{}
	doc := string(src)

	rest, ok := strings.CutPrefix(doc, delimiter+"\n")
	if !ok {
		return meta, doc, nil
	}

	var block, body string
	if idx := strings.Index(rest, "\n"+delimiter+"\n"); idx >= 0 {
		block = rest[:idx+1]
		body = strings.TrimPrefix(rest[idx+len(delimiter)+2:], "\n")
	} else if tail, ok := strings.CutSuffix(rest, "\n"+delimiter); ok {
		block = tail + "\n"
	} else {
		return meta, doc, nil
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, "", fmt.Errorf("invalid frontmatter block: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, body, nil
}

// Stringify serializes meta and body back into document form. Parse of the
// result returns the same metadata and body for well-formed inputs.
func Stringify(body string, meta any) (string, error) {
	out, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.Write(out)
	b.WriteString(delimiter + "\n\n")
	b.WriteString(body)
	return b.String(), nil
}
