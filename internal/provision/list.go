package provision

import (
	"strings"
)

// FilterPackageList returns the rows of `pip list` output whose package name
// contains any filter, case-insensitively. The header and its dashed rule are
// dropped; rows keep their original column layout.
func FilterPackageList(listing string, filters []string) []string {
	var rows []string
	for _, line := range strings.Split(listing, "\n") {
		line = strings.TrimRight(line, " \t\r")
		fields := strings.Fields(line)
		if len(fields) == 0 || isListHeader(fields) {
			continue
		}
		name := strings.ToLower(fields[0])
		for _, filter := range filters {
			filter = strings.ToLower(strings.TrimSpace(filter))
			if filter != "" && strings.Contains(name, filter) {
				rows = append(rows, line)
				break
			}
		}
	}
	return rows
}

func isListHeader(fields []string) bool {
	if strings.EqualFold(fields[0], "package") && len(fields) > 1 && strings.EqualFold(fields[1], "version") {
		return true
	}
	return strings.Trim(fields[0], "-") == ""
}
