// Package scamshield analyzes job postings for scam signals and ghost
// listings using rule-based checks, producing a trust score and
// actionable recommendations. No network calls, fully deterministic.
package scamshield

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Risk levels derived from the trust score.
const (
	RiskSafe     = "Safe"
	RiskCaution  = "Caution"
	RiskHighRisk = "High Risk"
)

const (
	safeThreshold    = 80
	cautionThreshold = 50
)

// Posting is the job listing under analysis.
type Posting struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Salary          string `json:"salary,omitempty"`
	Company         string `json:"company" validate:"required"`
	CompanyVerified bool   `json:"company_verified"`
	PostDate        string `json:"post_date,omitempty"`
	URL             string `json:"url,omitempty"`
}

// Report is the trust analysis for one posting.
type Report struct {
	JobTitle        string    `json:"job_title,omitempty"`
	Company         string    `json:"company,omitempty"`
	TrustScore      int       `json:"trust_score"`
	RiskLevel       string    `json:"risk_level"`
	RedFlags        []string  `json:"red_flags"`
	Recommendations []string  `json:"recommendations"`
	AnalyzedAt      time.Time `json:"analysis_timestamp"`
}

var (
	suspiciousSalaryRe = regexp.MustCompile(`(?i)\$\d{3,}k|100k\+|200k\+|hiring immediately`)
	emailRe            = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	experienceInflRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)5\+?\s*years`),
		regexp.MustCompile(`(?i)7\+?\s*years`),
		regexp.MustCompile(`(?i)10\+?\s*years`),
	}
)

var scamIndicators = []string{"send money", "pay upfront", "wire transfer", "western union", "gift card"}

var urgencyWords = []string{"urgent", "immediate hire", "start today", "limited spots"}

var entryLevelTerms = []string{"entry", "junior", "associate", "intern"}

var unrealisticPerks = []string{
	"unlimited vacation",
	"work 2 hours",
	"no experience required",
	"make $10000",
	"passive income",
	"get rich",
}

// Analyze runs every rule against the posting and returns the report.
// Starts at full trust and subtracts per red flag; the floor is zero.
func Analyze(posting Posting) Report {
	title := strings.ToLower(posting.Title)
	description := strings.ToLower(posting.Description)
	salary := strings.ToLower(posting.Salary)

	score := 100
	var redFlags, recommendations []string

	if suspiciousSalaryRe.MatchString(salary + " " + description) {
		redFlags = append(redFlags, "Unrealistic or suspiciously high salary mentioned")
		score -= 30
		recommendations = append(recommendations, "Research typical salaries for this role on Glassdoor")
	}

	if len(description) < 100 {
		redFlags = append(redFlags, "Job description is too vague or minimal")
		score -= 20
		recommendations = append(recommendations, "Ask for detailed job responsibilities during interview")
	}

	if !posting.CompanyVerified {
		redFlags = append(redFlags, "Company is not verified on this platform")
		score -= 25
		recommendations = append(recommendations, "Search company on LinkedIn and verify their website")
	}

	if n := countScamIndicators(description + " " + title); n > 0 {
		redFlags = append(redFlags, fmt.Sprintf("Contains %d potential scam indicators", n))
		score -= n * 15
		recommendations = append(recommendations, "NEVER send money or personal financial info during application")
	}

	if containsAny(description+" "+title, urgencyWords) {
		redFlags = append(redFlags, "Uses high-pressure or urgency tactics")
		score -= 15
		recommendations = append(recommendations, "Legitimate companies rarely rush hiring decisions")
	}

	if !hasProperContact(posting.Description, posting.Company) {
		redFlags = append(redFlags, "Missing proper company contact information")
		score -= 10
		recommendations = append(recommendations, "Verify company email domain matches their website")
	}

	if experienceInflated(title, description) {
		redFlags = append(redFlags, "Entry-level position requiring excessive experience")
		score -= 10
		recommendations = append(recommendations, "This might be a 'ghost job' - apply but keep searching")
	}

	if containsAny(description, unrealisticPerks) {
		redFlags = append(redFlags, "Promises unusually generous perks or benefits")
		score -= 15
		recommendations = append(recommendations, "If it sounds too good to be true, it probably is")
	}

	if score < 0 {
		score = 0
	}

	riskLevel := RiskHighRisk
	switch {
	case score >= safeThreshold:
		riskLevel = RiskSafe
	case score >= cautionThreshold:
		riskLevel = RiskCaution
	}

	if score >= safeThreshold {
		recommendations = append(recommendations, "✓ This posting appears legitimate - proceed with confidence")
	}

	return Report{
		TrustScore:      score,
		RiskLevel:       riskLevel,
		RedFlags:        redFlags,
		Recommendations: recommendations,
		AnalyzedAt:      time.Now().UTC(),
	}
}

// AnalyzeBatch analyzes multiple postings concurrently and returns the
// reports sorted by trust score, most trustworthy first.
func AnalyzeBatch(ctx context.Context, postings []Posting) ([]Report, error) {
	reports := make([]Report, len(postings))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, posting := range postings {
		g.Go(func() error {
			report := Analyze(posting)
			report.JobTitle = posting.Title
			report.Company = posting.Company
			if report.JobTitle == "" {
				report.JobTitle = "Unknown"
			}
			if report.Company == "" {
				report.Company = "Unknown"
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TrustScore > reports[j].TrustScore
	})
	return reports, nil
}

func countScamIndicators(text string) int {
	count := 0
	for _, indicator := range scamIndicators {
		if strings.Contains(text, indicator) {
			count++
		}
	}
	return count
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func hasProperContact(description, company string) bool {
	return emailRe.MatchString(description) || len(company) > 2
}

func experienceInflated(title, description string) bool {
	if !containsAny(title, entryLevelTerms) {
		return false
	}
	for _, re := range experienceInflRes {
		if re.MatchString(description) {
			return true
		}
	}
	return false
}
