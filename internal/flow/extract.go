package flow

import "strings"

// The extraction helpers are deliberately shallow heuristics. They run on
// short conversational replies where the first token and a keyword scan
// get it right often enough; anything fancier belongs behind an NLP
// service, not here.

func extractName(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "there"
	}
	return strings.Trim(fields[0], ".,!")
}

type companyInfo struct {
	Company  string
	Size     string
	Industry string
}

func extractCompanyInfo(input string) companyInfo {
	company := "Your organization"
	if fields := strings.Fields(input); len(fields) > 0 {
		company = strings.Trim(fields[0], ".,!")
	}
	return companyInfo{
		Company:  company,
		Size:     detectCompanySize(input),
		Industry: detectIndustry(input),
	}
}

var challengeKeywords = []string{
	"efficiency", "costs", "customer experience", "competition",
	"automation", "data", "innovation", "transformation",
}

func extractChallenges(input string) []string {
	lower := strings.ToLower(input)
	var found []string
	for _, keyword := range challengeKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	if len(found) == 0 {
		return []string{"achieving AI transformation"}
	}
	return found
}

func detectCompanySize(input string) string {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "small") || strings.Contains(lower, "startup") || strings.Contains(lower, "smb"):
		return "Small"
	case strings.Contains(lower, "enterprise") || strings.Contains(lower, "large") || strings.Contains(lower, "global"):
		return "Enterprise"
	default:
		return "Medium"
	}
}

var industries = []string{
	"Technology", "Healthcare", "Finance", "Retail", "Manufacturing",
	"Education", "Government", "Services",
}

func detectIndustry(input string) string {
	lower := strings.ToLower(input)
	for _, industry := range industries {
		if strings.Contains(lower, strings.ToLower(industry)) {
			return industry
		}
	}
	return "General"
}
