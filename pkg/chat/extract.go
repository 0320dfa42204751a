package chat

import (
	"regexp"
	"strconv"
	"strings"
)

// MatchParams is what the assistant can pull out of a free-form project
// description before calling the matching API.
type MatchParams struct {
	Description  string
	Skills       []string
	BudgetMin    int
	BudgetMax    int
	TimelineDays int
	Complexity   string
}

var (
	skillsListPattern   = regexp.MustCompile(`(?i)skills?:?\s*\[?([^\]\n.]+)\]?`)
	skillsPhrasePattern = regexp.MustCompile(`(?i)(?:expert in|experienced in|using|with)\s+([A-Za-z0-9+#.]+(?:\s*,\s*[A-Za-z0-9+#.]+)*)`)
	budgetRangePattern  = regexp.MustCompile(`(?i)\$?(\d+)(k?)\s*(?:-|to)\s*\$?(\d+)(k?)`)
	budgetSinglePattern = regexp.MustCompile(`(?i)budget(?:\s+of)?\s*:?\s*\$?(\d+)(k?)`)
	daysPattern         = regexp.MustCompile(`(?i)(\d+)\s+days?`)
	weeksPattern        = regexp.MustCompile(`(?i)(\d+)\s+weeks?`)
	monthsPattern       = regexp.MustCompile(`(?i)(\d+)\s+months?`)
	complexityPattern   = regexp.MustCompile(`(?i)complexity:?\s*(low|medium|high)`)
)

// extractMatchParams mines a project description for structured matching
// inputs. Anything it cannot find stays zero; the matching API applies
// its own defaults.
func extractMatchParams(message string) MatchParams {
	p := MatchParams{Description: message}

	if m := skillsListPattern.FindStringSubmatch(message); m != nil {
		p.Skills = splitSkills(m[1])
	} else if m := skillsPhrasePattern.FindStringSubmatch(message); m != nil {
		p.Skills = splitSkills(m[1])
	}

	if m := budgetRangePattern.FindStringSubmatch(message); m != nil {
		p.BudgetMin = parseAmount(m[1], m[2])
		p.BudgetMax = parseAmount(m[3], m[4])
	} else if m := budgetSinglePattern.FindStringSubmatch(message); m != nil {
		p.BudgetMax = parseAmount(m[1], m[2])
	}

	switch {
	case daysPattern.MatchString(message):
		p.TimelineDays = atoiSubmatch(daysPattern, message)
	case weeksPattern.MatchString(message):
		p.TimelineDays = atoiSubmatch(weeksPattern, message) * 7
	case monthsPattern.MatchString(message):
		p.TimelineDays = atoiSubmatch(monthsPattern, message) * 30
	}

	if m := complexityPattern.FindStringSubmatch(message); m != nil {
		p.Complexity = strings.ToLower(m[1])
	}

	return p
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, s := range parts {
		s = strings.TrimSpace(s)
		// Stop at filler words that follow a trailing comma
		if s == "" || strings.ContainsRune(s, ' ') {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

func parseAmount(digits, suffix string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	if strings.EqualFold(suffix, "k") {
		n *= 1000
	}
	return n
}

func atoiSubmatch(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
