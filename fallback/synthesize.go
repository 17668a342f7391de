package fallback

import (
	"regexp"
	"strings"

	"legalease-backend/models"
)

const (
	maxKeyPoints        = 8
	maxObligations      = 6
	maxMatchedDeadlines = 4
	maxDeadlines        = 5
)

var (
	// Numeric date, word date, or short duration ("30 days") inside a sentence.
	obligationDeadlinePattern = regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+days?|\d{1,2}\s+weeks?|\d{1,2}\s+months?)\b`)

	// Date or duration expressions scanned over the full text for the
	// deadline synthesizer.
	deadlineDatePattern = regexp.MustCompile(`(?i)\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\w+\s+\d{1,2},?\s+\d{4}|\d{1,2}\s+(?:days?|weeks?|months?|years?))\b`)
)

// synthesizeSummary builds the summary paragraph from fixed template
// fragments. Conditional fragments contribute only when the matching
// signal was extracted; the two closing sentences are always appended.
func synthesizeSummary(text string, sentences []string) string {
	lower := strings.ToLower(text)

	parties := extractParties(text)
	amounts := extractAmounts(text)
	dates := extractDates(text)
	purposes := extractPurposes(sentences)

	var b strings.Builder

	switch {
	case strings.Contains(lower, "agreement") || strings.Contains(lower, "contract"):
		b.WriteString("This is a legal agreement that establishes binding obligations between the parties involved. ")
	case strings.Contains(lower, "policy"):
		b.WriteString("This document outlines policies and procedures that govern specific activities or behaviors. ")
	default:
		b.WriteString("This legal document contains terms and conditions that create legal relationships and obligations. ")
	}

	if len(parties) > 0 {
		b.WriteString("The primary parties include: " + strings.Join(head(parties, 3), ", ") + ". ")
	}
	if len(amounts) > 0 {
		b.WriteString("Key financial terms include amounts such as " + strings.Join(head(amounts, 2), " and ") + ". ")
	}
	if len(dates) > 0 {
		b.WriteString("Important dates mentioned include " + strings.Join(head(dates, 2), " and ") + ". ")
	}
	if len(purposes) > 0 {
		b.WriteString("The document primarily addresses: " + strings.Join(head(purposes, 2), " and ") + ". ")
	}

	b.WriteString("All parties should carefully review their respective obligations, deadlines, and potential consequences before proceeding. ")
	b.WriteString("The document contains specific terms that may have significant legal and financial implications for all involved parties.")

	return b.String()
}

// synthesizeKeyPoints evaluates the keyword rules in fixed relevance order:
// financial, performance, termination, confidentiality, liability, IP,
// compliance, then generic fillers when fewer than five points fired.
func synthesizeKeyPoints(text string, sentences []string) []string {
	lower := strings.ToLower(text)
	var points []string

	if containsAny(lower, "payment", "fee", "cost") {
		amounts := extractAmounts(text)
		if len(amounts) > 0 {
			points = append(points, "Financial obligations include "+strings.Join(amounts, ", "))
		} else {
			points = append(points, "Financial obligations include various fees and payments as specified")
		}
	}

	performance := 0
	for _, sentence := range sentences {
		if performance == 3 {
			break
		}
		if containsAny(strings.ToLower(sentence), "shall", "must", "required", "obligation", "responsible", "duty") {
			points = append(points, ellipsize(strings.TrimSpace(sentence), 120))
			performance++
		}
	}

	if containsAny(lower, "termination", "cancel") {
		points = append(points, "Document contains specific termination or cancellation provisions that define when and how the agreement can be ended")
	}
	if containsAny(lower, "confidential", "proprietary") {
		points = append(points, "Confidentiality obligations are established, requiring protection of sensitive information")
	}
	if containsAny(lower, "liable", "liability", "damages") {
		points = append(points, "Liability provisions allocate risk and potential damages between parties")
	}
	if containsAny(lower, "intellectual property", "copyright", "trademark") {
		points = append(points, "Intellectual property rights and ownership are addressed in the document")
	}
	if containsAny(lower, "comply", "regulation", "law") {
		points = append(points, "Compliance with applicable laws and regulations is required")
	}

	if len(points) < 5 {
		points = append(points,
			"All parties must understand their respective rights and obligations",
			"Specific performance standards and expectations are established",
			"Clear procedures for dispute resolution may be included",
			"Regular review of terms and conditions is recommended",
		)
	}

	return head(points, maxKeyPoints)
}

// synthesizeRisks evaluates six keyword rules in fixed priority order.
// Rules are independent and can co-fire; when none fires a single generic
// Medium risk is returned so the list is never empty.
func synthesizeRisks(lower string) []models.Risk {
	var risks []models.Risk

	if containsAny(lower, "penalty", "fine", "liquidated damages") {
		risks = append(risks, models.Risk{
			Level:          models.RiskHigh,
			Description:    "Significant financial penalties are specified for non-compliance or breach of contract terms",
			Recommendation: "Carefully review all penalty clauses and ensure you can meet all requirements to avoid financial exposure",
		})
	}
	if containsAny(lower, "personal guarantee", "personally liable") {
		risks = append(risks, models.Risk{
			Level:          models.RiskHigh,
			Description:    "Personal liability or guarantees may expose individual assets beyond business assets",
			Recommendation: "Consider the full extent of personal exposure and seek legal counsel before accepting personal liability",
		})
	}
	if containsAny(lower, "termination", "breach") {
		risks = append(risks, models.Risk{
			Level:          models.RiskMedium,
			Description:    "Contract termination provisions could result in loss of benefits or early termination penalties",
			Recommendation: "Understand all circumstances that could trigger termination and associated consequences",
		})
	}
	if containsAny(lower, "confidential", "non-disclosure") {
		risks = append(risks, models.Risk{
			Level:          models.RiskMedium,
			Description:    "Confidentiality breaches could result in legal action and damages",
			Recommendation: "Establish clear procedures for handling confidential information and train relevant personnel",
		})
	}
	if containsAny(lower, "indemnify", "hold harmless") {
		risks = append(risks, models.Risk{
			Level:          models.RiskMedium,
			Description:    "Indemnification clauses may require you to cover costs and damages for the other party",
			Recommendation: "Review indemnification scope carefully and consider insurance coverage for potential exposures",
		})
	}
	if containsAny(lower, "dispute", "arbitration") {
		risks = append(risks, models.Risk{
			Level:          models.RiskLow,
			Description:    "Dispute resolution procedures may limit legal options or require specific processes",
			Recommendation: "Understand the dispute resolution process and associated costs before conflicts arise",
		})
	}

	if len(risks) == 0 {
		risks = append(risks, models.Risk{
			Level:          models.RiskMedium,
			Description:    "Complex legal document with multiple obligations and potential consequences",
			Recommendation: "Conduct thorough review of all terms and consider professional legal consultation for complete understanding",
		})
	}
	return risks
}

// synthesizeObligations scans sentences for obligation keywords, infers the
// bound party from the first matching role keyword, and pulls the first
// date or duration expression as the deadline.
func synthesizeObligations(sentences []string) []models.Obligation {
	var obligations []models.Obligation

	for _, sentence := range sentences {
		if len(obligations) == maxObligations {
			break
		}
		lower := strings.ToLower(sentence)
		if !containsAny(lower, "shall", "must", "required", "obligation", "responsible", "duty", "agree to") {
			continue
		}

		party := "Specified party"
		switch {
		case containsAny(lower, "client", "customer"):
			party = "Client/Customer"
		case containsAny(lower, "contractor", "vendor"):
			party = "Contractor/Vendor"
		case strings.Contains(lower, "employee"):
			party = "Employee"
		case strings.Contains(lower, "employer"):
			party = "Employer"
		case strings.Contains(lower, "company"):
			party = "Company"
		}

		deadline := "As specified in document"
		if match := obligationDeadlinePattern.FindString(sentence); match != "" {
			deadline = match
		}

		obligations = append(obligations, models.Obligation{
			Party:       party,
			Description: ellipsize(strings.TrimSpace(sentence), 150),
			Deadline:    deadline,
		})
	}

	if len(obligations) == 0 {
		obligations = append(obligations, models.Obligation{
			Party:       "All parties",
			Description: "Comply with all terms and conditions as outlined in the document",
			Deadline:    "Throughout the term of the agreement",
		})
	}
	return obligations
}

// synthesizeClauses evaluates the four clause rules in fixed order. Payment
// and termination clauses quote up to two matching sentences; liability and
// confidentiality use fixed descriptions.
func synthesizeClauses(text string, sentences []string) []models.Clause {
	lower := strings.ToLower(text)
	var clauses []models.Clause

	if containsAny(lower, "payment", "fee", "cost") {
		clauses = append(clauses, models.Clause{
			Title:      "Payment and Financial Terms",
			Content:    joinMatchingSentences(sentences, "payment", "fee"),
			Importance: "Defines all financial obligations, payment schedules, late fees, and consequences of non-payment",
		})
	}
	if containsAny(lower, "termination", "cancel") {
		clauses = append(clauses, models.Clause{
			Title:      "Termination and Cancellation",
			Content:    joinMatchingSentences(sentences, "termination", "cancel"),
			Importance: "Specifies conditions, notice requirements, and consequences for ending the agreement",
		})
	}
	if containsAny(lower, "liable", "liability", "damages") {
		clauses = append(clauses, models.Clause{
			Title:      "Liability and Risk Allocation",
			Content:    "Provisions addressing liability, damages, and risk allocation between parties",
			Importance: "Determines who is responsible for various types of damages and losses",
		})
	}
	if containsAny(lower, "confidential", "proprietary") {
		clauses = append(clauses, models.Clause{
			Title:      "Confidentiality and Non-Disclosure",
			Content:    "Requirements for protecting confidential and proprietary information",
			Importance: "Establishes legal obligations to protect sensitive business information",
		})
	}

	if len(clauses) == 0 {
		clauses = append(clauses, models.Clause{
			Title:      "General Terms and Conditions",
			Content:    "Various terms and conditions governing the relationship between parties",
			Importance: "Establishes the legal framework and expectations for all parties involved",
		})
	}
	return clauses
}

// joinMatchingSentences joins up to two sentences containing either
// keyword, truncated to 300 characters with a trailing ellipsis.
func joinMatchingSentences(sentences []string, keywords ...string) string {
	matched := make([]string, 0, 2)
	for _, sentence := range sentences {
		if len(matched) == 2 {
			break
		}
		if containsAny(strings.ToLower(sentence), keywords...) {
			matched = append(matched, sentence)
		}
	}
	return truncate(strings.Join(matched, " "), 300) + "..."
}

// synthesizeDeadlines scans the full text for date and duration
// expressions, classifies each by its surrounding context, and always
// appends the synthetic review entry last. Matched entries are capped
// before appending so the review entry is never truncated away.
func synthesizeDeadlines(text string) []models.Deadline {
	var deadlines []models.Deadline

	locations := deadlineDatePattern.FindAllStringIndex(text, -1)
	if len(locations) > maxMatchedDeadlines {
		locations = locations[:maxMatchedDeadlines]
	}
	for _, loc := range locations {
		start, end := loc[0], loc[1]

		contextStart := start - 100
		if contextStart < 0 {
			contextStart = 0
		}
		contextEnd := start + 100
		if contextEnd > len(text) {
			contextEnd = len(text)
		}
		context := strings.ToLower(text[contextStart:contextEnd])

		description := "Time-sensitive requirement identified"
		consequence := "Review document for specific consequences"
		switch {
		case strings.Contains(context, "payment"):
			description = "Payment deadline"
			consequence = "Late fees or penalties may apply"
		case strings.Contains(context, "notice"):
			description = "Notice requirement deadline"
			consequence = "Failure to provide timely notice may affect rights"
		case strings.Contains(context, "termination"):
			description = "Termination notice deadline"
			consequence = "May affect ability to terminate agreement"
		case strings.Contains(context, "renewal"):
			description = "Renewal or extension deadline"
			consequence = "Agreement may automatically renew or expire"
		}

		deadlines = append(deadlines, models.Deadline{
			Description: description,
			Date:        text[start:end],
			Consequence: consequence,
		})
	}

	deadlines = append(deadlines, models.Deadline{
		Description: "Complete document review and understanding",
		Date:        "Before signing or agreeing to terms",
		Consequence: "Legal obligations become binding upon agreement",
	})

	if len(deadlines) > maxDeadlines {
		deadlines = deadlines[:maxDeadlines]
	}
	return deadlines
}
