// Package classifier implements the email triage pipeline: strong
// lexical rules, the zero-shot decision policy with its confidence
// fallback, and reply template selection.
package classifier

import (
	"regexp"
)

// strongImprodutivoPatterns are high-precision signals that the email
// is social, promotional or otherwise non-actionable. Any hit decides
// the classification without model inference: the rule vocabulary is
// unambiguous enough that a stable answer beats an expensive and
// possibly drifting model call.
//
// Each pattern is compiled independently so it can be unit-tested and
// extended without touching the decision policy.
var strongImprodutivoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bparab[eé]ns\b`),
	regexp.MustCompile(`\bfeliz\s+anivers[aá]rio\b`),
	regexp.MustCompile(`\bboas\s+festas\b`),
	regexp.MustCompile(`\bnewsletter\b`),
	regexp.MustCompile(`\bunsubscribe\b`),
	regexp.MustCompile(`\boferta(s)?\b`),
	regexp.MustCompile(`\bpromo(ção|coes?)\b`),
	regexp.MustCompile(`\bdesconto(s)?\b`),
	regexp.MustCompile(`\bsorteio(s)?\b`),
	regexp.MustCompile(`\bmarketing\b`),
	regexp.MustCompile(`\bdivulga(ção|coes?)\b`),
	regexp.MustCompile(`\bconvite\b.*\bhappy\s*hour\b`),
	regexp.MustCompile(`\bmeme(s)?\b`),
	regexp.MustCompile(`\bconvite\b`),
	regexp.MustCompile(`\binscrição\b`),
	regexp.MustCompile(`\bwebinar\b`),
}

// mildProdutivoPatterns are weaker work signals consulted only when the
// model is below the confidence threshold.
var mildProdutivoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bchamado\b`),
	regexp.MustCompile(`\bprojeto\b`),
	regexp.MustCompile(`\breuni[aã]o\b`),
	regexp.MustCompile(`\bdeadline\b`),
	regexp.MustCompile(`\bstatus\b`),
	regexp.MustCompile(`\bentrega(s)?\b`),
	regexp.MustCompile(`\bticket\b`),
	regexp.MustCompile(`\bsuporte\b`),
}

// MatchesStrongImprodutivo reports whether any strong non-actionable
// pattern matches. Input must already be normalized and lowercased.
// Pattern order never changes the boolean result.
func MatchesStrongImprodutivo(lower string) bool {
	return anyMatch(strongImprodutivoPatterns, lower)
}

// matchesMildProdutivo reports whether any weak work signal matches.
func matchesMildProdutivo(lower string) bool {
	return anyMatch(mildProdutivoPatterns, lower)
}

// RulePatterns returns the source of every compiled rule, keyed by
// tier. Read-only; used by the admin API for operability.
func RulePatterns() map[string][]string {
	return map[string][]string{
		"strong_improdutivo": patternSources(strongImprodutivoPatterns),
		"mild_produtivo":     patternSources(mildProdutivoPatterns),
	}
}

func patternSources(patterns []*regexp.Regexp) []string {
	sources := make([]string, len(patterns))
	for i, p := range patterns {
		sources[i] = p.String()
	}
	return sources
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
