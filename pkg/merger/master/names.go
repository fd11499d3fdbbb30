package master

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// spreadsheetExt matches a trailing spreadsheet file extension.
var spreadsheetExt = regexp.MustCompile(`(?i)\.(xlsx|xlsm|xls)$`)

// invalidSheetChars replaces characters Excel forbids in sheet names.
var invalidSheetChars = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	"?", "_",
	"*", "_",
	"[", "_",
	"]", "_",
)

// maxSheetNameLen keeps resolved names short enough that a collision
// suffix still fits Excel's 31-character sheet name limit.
const maxSheetNameLen = 25

// ResolveSheetName turns a source file name into a sheet name that does
// not collide with any entry of existing. Collision checks are exact
// (case-sensitive) string matches; existing is not mutated, so callers
// must record each chosen name before resolving the next.
func ResolveSheetName(baseName string, existing []string) string {
	clean := spreadsheetExt.ReplaceAllString(baseName, "")
	clean = invalidSheetChars.Replace(clean)
	if runes := []rune(clean); len(runes) > maxSheetNameLen {
		clean = string(runes[:maxSheetNameLen])
	}
	if clean == "" {
		clean = "Sheet"
	}

	if !slices.Contains(existing, clean) {
		return clean
	}
	for counter := 2; ; counter++ {
		candidate := fmt.Sprintf("%s_%d", clean, counter)
		if !slices.Contains(existing, candidate) {
			return candidate
		}
	}
}
