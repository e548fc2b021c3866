package assist

import "fmt"

const (
	experienceSystemPrompt = "You are an expert career advisor. Generate professional, achievement-focused bullet points for a job experience. Focus on quantifiable results and action verbs. Return 3-5 bullet points."
	summarySystemPrompt    = "You are an expert career advisor. Generate a compelling professional summary that highlights key strengths and career objectives."
)

func experiencePrompt(position, company, description string) string {
	if description == "" {
		description = "None provided"
	}
	return fmt.Sprintf(`Generate professional bullet points for this role:
Position: %s
Company: %s
Current description: %s

Generate 3-5 achievement-focused bullet points that:
- Start with strong action verbs
- Include quantifiable results when possible
- Are ATS-friendly
- Highlight key responsibilities and achievements`, position, company, description)
}

func summaryPrompt(fullName, title, highlights string) string {
	if highlights == "" {
		highlights = "Various professional experiences"
	}
	return fmt.Sprintf(`Generate a professional summary for:
Name: %s
Title: %s
Experience highlights: %s

Generate a 2-3 sentence professional summary that is:
- Compelling and professional
- Highlights key strengths
- ATS-friendly
- Forward-looking`, fullName, title, highlights)
}
