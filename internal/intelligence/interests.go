package intelligence

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alexanderramin/scotty/internal/domain"
)

// InterestVocabulary is the fixed list of topics recognised in free text.
var InterestVocabulary = []string{
	"cloud computing",
	"machine learning",
	"systems",
	"AI",
	"artificial intelligence",
	"networking",
	"security",
	"NLP",
	"natural language processing",
	"databases",
	"robotics",
	"computer vision",
	"data science",
	"web development",
	"distributed systems",
	"algorithms",
	"cybersecurity",
}

var interestPattern = compileVocabulary(InterestVocabulary)

// compileVocabulary builds a case-insensitive alternation with longer terms
// first, so "distributed systems" wins over "systems" at the same offset.
func compileVocabulary(terms []string) *regexp.Regexp {
	ordered := make([]string, len(terms))
	copy(ordered, terms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	quoted := make([]string, len(ordered))
	for i, t := range ordered {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// ExtractInterests returns every vocabulary term found in text, case-folded
// and de-duplicated. Empty text yields an empty set.
func ExtractInterests(text string) domain.InterestSet {
	if text == "" {
		return domain.NewInterestSet()
	}
	return domain.NewInterestSet(interestPattern.FindAllString(text, -1)...)
}
