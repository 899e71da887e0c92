package search

import "strings"

// Lines splits contents into lines.
// Lines end with "\n" or "\r\n". A final terminator does not start
// an extra empty line.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)

	for len(contents) > 0 {
		var line string
		if i := strings.IndexByte(contents, '\n'); i >= 0 {
			line = contents[:i]
			contents = contents[i+1:]
		} else {
			line = contents
			contents = ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}

	return lines
}
