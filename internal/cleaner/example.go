package cleaner

import "fmt"

// DefaultExampleLines is the size of the sample document.
const DefaultExampleLines = 120

// Example builds a deterministic sample document with n numbered lines that
// exercises every removal operation: upper-case lines for case-insensitive
// matching, whitespace-only lines for trim and remove-empty, and templated
// lines that are repeated at the end for dedupe.
func Example(n int) string {
	lines := make([]string, 0, max(n, 0)+3)
	for i := 1; i <= n; i++ {
		switch {
		case i%10 == 0:
			lines = append(lines, fmt.Sprintf("LÍNEA %d - ejemplO con MAYÚSCULAS", i))
		case i%7 == 0:
			lines = append(lines, "  ")
		case i%5 == 0:
			lines = append(lines, fmt.Sprintf("linea-%d-duplicada", i))
		default:
			lines = append(lines, fmt.Sprintf("línea de ejemplo número %d", i))
		}
	}

	lines = append(lines,
		"linea-5-duplicada",
		"linea-10-duplicada",
		"linea-5-duplicada",
	)

	return Join(lines)
}
