package parse

import "strings"

// nameForms maps between formal and diminutive first-name spellings in
// both directions. Entries were collected by diffing FootyWire names
// against player_details.
var nameForms = map[string]string{
	"Thomas":      "Tom",
	"Timothy":     "Tim",
	"Nicholas":    "Nick",
	"Nic":         "Nick",
	"Joshua":      "Josh",
	"Oliver":      "Ollie",
	"Cameron":     "Cam",
	"Zachary":     "Zac",
	"Mitchell":    "Mitch",
	"Mitchito":    "Mitch",
	"Jeremy":      "Jerm",
	"Jackson":     "Jack",
	"Anthony":     "Tony",
	"William":     "Will",
	"Christopher": "Chris",
	"Benjamin":    "Ben",
	"Matthew":     "Matt",
	"Jonathan":    "Jon",
	"Alexander":   "Alex",
	"Michael":     "Mick",
	"Bradley":     "Brad",
	"Samuel":      "Sam",
	"Dominic":     "Dom",
	"Nikolas":     "Nik",
	"Joseph":      "Joe",
	"Daniel":      "Dan",
	"Nick":        "Nicholas",
	"Ollie":       "Oliver",
	"Mitch":       "Mitchell",
	"Nik":         "Nikolas",
	"Joe":         "Joseph",
	"Dan":         "Daniel",
	"Tom":         "Thomas",
}

// nameVariants is the reverse expansion table: every spelling a given
// first name is known to appear under in the reference data.
var nameVariants = map[string][]string{
	"Nick":     {"Nicholas", "Nic"},
	"Nicholas": {"Nick", "Nic"},
	"Nic":      {"Nicholas", "Nick"},
	"Ollie":    {"Oliver"},
	"Oliver":   {"Ollie"},
	"Mitch":    {"Mitchell", "Mitchito"},
	"Mitchell": {"Mitch"},
	"Mitchito": {"Mitch", "Mitchell"},
	"Nik":      {"Nikolas"},
	"Nikolas":  {"Nik"},
	"Joe":      {"Joseph"},
	"Joseph":   {"Joe"},
	"Dan":      {"Daniel"},
	"Daniel":   {"Dan"},
	"Tom":      {"Thomas"},
	"Thomas":   {"Tom"},
	"Josh":     {"Joshua"},
	"Joshua":   {"Josh"},
	"Cam":      {"Cameron"},
	"Cameron":  {"Cam"},
	"Zac":      {"Zachary"},
	"Zachary":  {"Zac"},
	"Brad":     {"Bradley"},
	"Bradley":  {"Brad"},
	"Sam":      {"Samuel"},
	"Samuel":   {"Sam"},
}

// NormalizeName maps a name onto the spelling most likely to appear in
// player_details: surname spacing repairs for Mc/Mac/O' prefixes, the
// hyphenation heuristic for surnames the boundary detector split in
// two, then the first-name forms table.
func NormalizeName(name string) string {
	if name == "" {
		return name
	}

	name = strings.ReplaceAll(name, "Mc ", "Mc")
	name = strings.ReplaceAll(name, "Mac ", "Mac")
	name = strings.ReplaceAll(name, "O' ", "O'")

	// A two-word name that isn't a known first-name form is usually a
	// hyphenated surname the capital-run tokenizer split apart, e.g.
	// "Neal Bullen" -> "Neal-Bullen".
	if parts := strings.Split(name, " "); len(parts) == 2 {
		if _, known := nameForms[name]; !known && len(parts[0]) > 2 && len(parts[1]) > 2 {
			name = parts[0] + "-" + parts[1]
		}
	}

	if mapped, ok := nameForms[name]; ok {
		return mapped
	}
	return name
}

// NameVariants returns every spelling worth trying for a first name:
// the original first, its normalized form if different, then the
// expansion table entries, deduplicated preserving order.
func NameVariants(name string) []string {
	if name == "" {
		return []string{name}
	}

	variants := []string{name}
	if normalized := NormalizeName(name); normalized != name {
		variants = append(variants, normalized)
	}
	variants = append(variants, nameVariants[name]...)

	seen := make(map[string]struct{}, len(variants))
	out := make([]string, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
