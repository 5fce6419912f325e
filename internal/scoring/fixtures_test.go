package scoring

import "strings"

// wellFormedResume has headings, bullets, contact details, metrics and vocabulary terms.
const wellFormedResume = `JANE DOE
Senior Software Engineer
jane.doe@example.com
(555) 123-4567

SUMMARY
Backend engineer focused on reliable payment platforms and developer tooling.

EXPERIENCE
Acme Payments, Staff Engineer, 2019 to 2024
- Led migration of billing services to Kubernetes, cutting deploy time by 40%
- Built a Python fraud pipeline handling 2M transactions per day
- Reduced cloud spend by $120K per year through AWS rightsizing
- Designed Docker based test environments used by 12 engineers
- Mentored 6 engineers and improved onboarding time by 30%

Globex, Software Engineer, 2015 to 2019
- Developed Go microservices for order routing with 99.9% uptime
- Optimized PostgreSQL queries, lowering p95 latency from 800ms to 120ms
- Automated release checks with Terraform and Jenkins pipelines

EDUCATION
B.S. Computer Science, State University, 2015

SKILLS
Python, Go, AWS, Docker, Kubernetes, PostgreSQL, Terraform, Jenkins, Git, Linux
`

const weakResume = "Worked on various projects and helped team."

// padLines appends filler lines until text has n lines.
func padLines(text string, n int) string {
	lines := strings.Split(text, "\n")
	for len(lines) < n {
		lines = append(lines, "filler line")
	}
	return strings.Join(lines, "\n")
}

func strPtr(s string) *string {
	return &s
}
