package fallback

import (
	"fmt"
	"strings"

	"legalease-backend/models"
)

// Respond answers a follow-up question about an already-computed analysis
// by matching the question against fixed intent categories in priority
// order and rendering the stored analysis into the matching template.
// It is total: a nil analysis substitutes generic text at every
// interpolation point, and the result is never empty.
func Respond(question string, analysis *models.StructuredAnalysis) string {
	lower := strings.ToLower(question)

	switch {
	case strings.Contains(lower, "what") && (strings.Contains(lower, "document") || strings.Contains(lower, "this")):
		return respondOverview(analysis)
	case containsAny(lower, "summary", "summarize", "overview"):
		return respondSummary(analysis)
	case containsAny(lower, "risk", "danger", "problem", "concern"):
		return respondRisks(analysis)
	case containsAny(lower, "obligation", "responsibility", "duty", "must", "have to"):
		return respondObligations(analysis)
	case containsAny(lower, "deadline", "date", "when", "time", "due"):
		return respondDeadlines(analysis)
	case containsAny(lower, "pay", "money", "cost", "fee", "price", "financial"):
		return respondPayments(analysis)
	case containsAny(lower, "cancel", "terminate", "end", "exit", "quit"):
		return respondTermination(analysis)
	case containsAny(lower, "key", "important", "main", "clause"):
		return respondClauses(analysis)
	case containsAny(lower, "help", "explain", "understand"):
		return respondHelp()
	default:
		return respondDefault(analysis)
	}
}

func documentTypeOrGeneric(analysis *models.StructuredAnalysis) string {
	if analysis != nil && analysis.DocumentType != "" {
		return analysis.DocumentType
	}
	return "a legal document"
}

func respondOverview(analysis *models.StructuredAnalysis) string {
	description := "contains important legal terms and obligations"
	if analysis != nil && analysis.Summary != "" {
		// The ellipsis is unconditional even for short summaries; keep it
		// that way, downstream rendering relies on the exact template.
		description = truncate(analysis.Summary, 200) + "..."
	}
	return fmt.Sprintf(`Based on my analysis, this is %s that %s

The key aspects include the main parties involved, their respective obligations, and important deadlines or conditions. Would you like me to explain any specific section in more detail?`,
		documentTypeOrGeneric(analysis), description)
}

func respondSummary(analysis *models.StructuredAnalysis) string {
	summary := "This legal document establishes important relationships and obligations between the parties involved. It contains specific terms that define rights, responsibilities, and procedures that all parties must follow."
	if analysis != nil && analysis.Summary != "" {
		summary = analysis.Summary
	}
	return fmt.Sprintf(`Here's a comprehensive summary of your document:

%s

The document covers several key areas including financial obligations, performance requirements, and important deadlines. Is there a particular aspect you'd like me to dive deeper into?`, summary)
}

func respondRisks(analysis *models.StructuredAnalysis) string {
	if analysis == nil || len(analysis.Risks) == 0 {
		return "While I can see this is a complex legal document, I'd recommend focusing on understanding your specific obligations, any financial commitments, and important deadlines. These are typically the areas where issues arise. What specific concerns do you have about the document?"
	}

	var b strings.Builder
	b.WriteString("I've identified several important risks in your document:\n\n")
	for i, risk := range analysis.Risks {
		fmt.Fprintf(&b, "%d. **%s Risk**: %s\n   *Recommendation*: %s\n\n", i+1, risk.Level, risk.Description, risk.Recommendation)
	}
	b.WriteString("These risks should be carefully considered before proceeding. Would you like me to explain any of these in more detail?")
	return b.String()
}

func respondObligations(analysis *models.StructuredAnalysis) string {
	if analysis == nil || len(analysis.Obligations) == 0 {
		return "Your document contains various obligations for different parties. These typically include performance requirements, payment obligations, compliance duties, and reporting requirements. The key is understanding exactly what you're responsible for and when. What specific obligations are you concerned about?"
	}

	var b strings.Builder
	b.WriteString("Here are the key obligations I found in your document:\n\n")
	for i, obligation := range analysis.Obligations {
		fmt.Fprintf(&b, "%d. **%s**: %s\n   *Deadline*: %s\n\n", i+1, obligation.Party, obligation.Description, obligation.Deadline)
	}
	b.WriteString("Make sure you understand each of these requirements and can fulfill them within the specified timeframes. Do you have questions about any specific obligation?")
	return b.String()
}

func respondDeadlines(analysis *models.StructuredAnalysis) string {
	if analysis == nil || len(analysis.Deadlines) == 0 {
		return "Timing is crucial in legal documents. Look for specific dates, notice periods, performance deadlines, and renewal dates. Even if exact dates aren't specified, there may be timeframes like '30 days notice' or 'within a reasonable time.' What specific timing requirements are you looking for?"
	}

	var b strings.Builder
	b.WriteString("Here are the important deadlines I found:\n\n")
	for i, deadline := range analysis.Deadlines {
		fmt.Fprintf(&b, "%d. **%s**\n   *Date*: %s\n   *Consequence*: %s\n\n", i+1, deadline.Description, deadline.Date, deadline.Consequence)
	}
	b.WriteString("I recommend adding these dates to your calendar with reminders well in advance. Missing deadlines can have serious consequences. Do you need help understanding any of these deadlines?")
	return b.String()
}

func respondPayments(analysis *models.StructuredAnalysis) string {
	var financialPoints []string
	if analysis != nil {
		for _, point := range analysis.KeyPoints {
			if containsAny(strings.ToLower(point), "payment", "fee", "cost", "financial") {
				financialPoints = append(financialPoints, point)
			}
		}
	}

	if len(financialPoints) == 0 {
		return "Financial terms are critical to understand fully. Look for payment amounts, due dates, late fees, penalties, reimbursement provisions, and any conditions that might change the costs. Even small details like who pays for what expenses can be important. What specific financial aspects concern you?"
	}
	return fmt.Sprintf(`Here's what I found regarding financial terms:

%s

Make sure you understand all payment amounts, due dates, late fees, and any conditions that might affect costs. Are there specific financial terms you'd like me to clarify?`,
		strings.Join(financialPoints, "\n\n"))
}

func respondTermination(analysis *models.StructuredAnalysis) string {
	if analysis != nil {
		for _, clause := range analysis.ImportantClauses {
			lowerTitle := strings.ToLower(clause.Title)
			if strings.Contains(lowerTitle, "termination") || strings.Contains(lowerTitle, "cancel") {
				return fmt.Sprintf(`Here's what I found about termination:

**%s**
%s

*Why this matters*: %s

Pay special attention to notice requirements, any penalties for early termination, and what happens to your obligations after termination. Do you have specific questions about ending this agreement?`,
					clause.Title, clause.Content, clause.Importance)
			}
		}
	}
	return "Termination provisions are very important to understand before you enter any agreement. Look for notice requirements (how much advance notice you need to give), any penalties or fees for early termination, conditions that allow termination, and what happens to ongoing obligations. What's your specific situation regarding termination?"
}

func respondClauses(analysis *models.StructuredAnalysis) string {
	if analysis == nil || len(analysis.ImportantClauses) == 0 {
		return "The most important aspects of any legal document typically include: the main purpose and scope, who the parties are and their roles, key obligations and responsibilities, financial terms, deadlines and timeframes, termination conditions, and dispute resolution procedures. Which of these areas would you like to focus on?"
	}

	var b strings.Builder
	b.WriteString("Here are the most important clauses in your document:\n\n")
	for i, clause := range analysis.ImportantClauses {
		fmt.Fprintf(&b, "%d. **%s**\n   %s...\n   *Why it matters*: %s\n\n", i+1, clause.Title, truncate(clause.Content, 150), clause.Importance)
	}
	b.WriteString("These clauses form the foundation of your legal relationship. Would you like me to explain any of these in more detail?")
	return b.String()
}

func respondHelp() string {
	return `I'm here to help you understand your legal document! I can provide detailed information about:

• **Document Summary** - What this document is and its main purpose
• **Your Obligations** - What you're required to do and when
• **Risks & Concerns** - Potential issues to be aware of
• **Important Deadlines** - Time-sensitive requirements
• **Financial Terms** - Costs, payments, and fees
• **Key Clauses** - The most important provisions
• **Termination** - How and when the agreement can end

Just ask me about any of these topics, or feel free to ask specific questions about anything in the document. What would you like to know more about?`
}

func respondDefault(analysis *models.StructuredAnalysis) string {
	return fmt.Sprintf(`That's a great question! Based on the document analysis, I can see this is %s with several important provisions.

To give you the most helpful answer, could you be more specific about what aspect you're interested in? For example:
- Are you concerned about your obligations or responsibilities?
- Do you want to understand the risks involved?
- Are you looking for important deadlines or dates?
- Do you have questions about financial terms?
- Are you wondering about termination or cancellation?

I have detailed information about all these aspects and can provide specific insights based on your document.`,
		documentTypeOrGeneric(analysis))
}
