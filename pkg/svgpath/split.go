package svgpath

import "strings"

// SplitSubPaths splits d immediately before every move-to letter ('M' or
// 'm'), with the first piece starting at the beginning of d. Pieces are
// trimmed and empty ones dropped. Nothing is validated, so a malformed
// prefix before the first move-to comes back verbatim.
func SplitSubPaths(d string) []string {
	bounds := []int{0}
	for i := 0; i < len(d); i++ {
		if d[i] == 'M' || d[i] == 'm' {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, len(d))

	var pieces []string
	for i := 0; i < len(bounds)-1; i++ {
		piece := strings.TrimSpace(d[bounds[i]:bounds[i+1]])
		if piece != "" {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}
