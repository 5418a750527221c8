package utils

import (
	"fmt"
	"sort"
	"strings"
)

// EncodeCSV renders export records the same way the dashboard always has:
// headers come from the first record, string values are wrapped in quotes,
// everything else is printed as-is. Embedded quotes and delimiters are not
// escaped.
func EncodeCSV(records []map[string]interface{}) string {
	if len(records) == 0 {
		return ""
	}

	headers := make([]string, 0, len(records[0]))
	for key := range records[0] {
		headers = append(headers, key)
	}
	sort.Strings(headers)

	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))
	sb.WriteString("\n")

	for i, record := range records {
		cells := make([]string, 0, len(headers))
		for _, key := range headers {
			value := record[key]
			if s, ok := value.(string); ok {
				cells = append(cells, `"`+s+`"`)
				continue
			}
			if value == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("%v", value))
		}
		sb.WriteString(strings.Join(cells, ","))
		if i < len(records)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
