package hook

import "strings"

// NormalizeExtensions returns extensions with a leading dot and without
// empty entries or duplicates, preserving order.
func NormalizeExtensions(extensions []string) []string {
	seen := make(map[string]bool, len(extensions))
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}

// Filter keeps the paths whose name ends with one of extensions, in their
// original order. Matching is case-sensitive.
func Filter(paths, extensions []string) []string {
	exts := NormalizeExtensions(extensions)
	var out []string
	for _, p := range paths {
		for _, ext := range exts {
			if strings.HasSuffix(p, ext) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
