package texlist

import "strings"

// ============================================================================
// IPA NORMALIZATION — Typesetting cleanup for field-notes transcriptions
// ============================================================================
// The raw sheet mixes tie-bar digraphs and plain digraphs for affricates.
// Both forms collapse to the single-codepoint ligatures the paper typesets,
// and a few ad-hoc markers become LaTeX macros.
// ============================================================================

var ipaReplacer = strings.NewReplacer(
	"t͡ɕ", "ʨ",
	"t͡s", "ʦ",
	"t͡ʃ", "ʧ",
	"d͡ʑ", "ʥ",
	"d͡ʒ", "ʤ",
	"d͡z", "ʣ",
	"tʃ", "ʧ",
	"tɕ", "ʨ",
	"ts", "ʦ",
	"dʒ", "ʤ",
	"dʑ", "ʥ",
	"dz", "ʣ",
	"ɴ", "N",
	"nan", "NA",
	"⪤", `\af `,
	"~", `\wave `,
)

// normalizeIPA rewrites a lexeme for LaTeX output.
func normalizeIPA(s string) string {
	return ipaReplacer.Replace(s)
}
