package markettrends

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const systemPrompt = `Vous êtes un expert en rémunération et en marché du travail, spécialisé dans les rôles TI au Canada.
Vous fournissez une analyse de marché objective, fondée sur le marché canadien, pour évaluer la rentabilité interne d'une société de conseil en TI.

Répondez UNIQUEMENT avec un objet JSON valide respectant exactement ce schéma:
{
  "salaryRangeByLevel": {
    "junior": { "min": number, "max": number, "currency": "CAD" },
    "intermediate": { "min": number, "max": number, "currency": "CAD" },
    "senior": { "min": number, "max": number, "currency": "CAD" }
  },
  "freelanceRateRangeByLevel": {
    "junior": { "min": number, "max": number, "currency": "CAD" },
    "intermediate": { "min": number, "max": number, "currency": "CAD" },
    "senior": { "min": number, "max": number, "currency": "CAD" }
  },
  "salaryRange": { "min": number, "max": number, "currency": "CAD" },
  "freelanceRateRange": { "min": number, "max": number, "currency": "CAD" },
  "employeePositioning": "far_below" | "below" | "in_line" | "above" | "far_above",
  "freelancePositioning": "far_below" | "below" | "in_line" | "above" | "far_above",
  "marketDemand": "low" | "medium" | "high" | "very_high",
  "riskLevel": "low" | "medium" | "high",
  "summary": "string",
  "recommendation": "string"
}

Directives:
- salaryRangeByLevel: salaire annuel brut en CAD pour chaque niveau (junior, intermediate, senior)
- freelanceRateRangeByLevel: taux horaire facturable en CAD pour chaque niveau
- salaryRange et freelanceRateRange: fourchettes pour le niveau demandé (intermediate si non précisé)
- employeePositioning / freelancePositioning: position du salaire ou du taux proposé par rapport au marché
- marketDemand: demande actuelle pour ce profil
- riskLevel: risque d'attrition ou de difficulté d'embauche au niveau proposé
- summary: aperçu du marché en 2-3 phrases, en français
- recommendation: recommandation commerciale en 1-2 phrases, en français

Tous les montants sont en dollars canadiens (CAD). N'incluez aucun texte en dehors de l'objet JSON.`

var amountPrinter = message.NewPrinter(language.English)

func isEmployeeType(resourceType string) bool {
	return strings.EqualFold(resourceType, "Employee") || strings.EqualFold(resourceType, "Salarie")
}

func optional(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func buildUserPrompt(req TrendsRequest) string {
	resourceType := "Freelancer"
	if isEmployeeType(req.ResourceType) {
		resourceType = "Employee"
	}

	location := optional(req.Location)
	if location == "" {
		location = "Canada"
	}

	seniority := optional(req.Seniority)
	if seniority == "" {
		seniority = "Not specified - provide data for all levels"
	}

	lines := []string{
		"Analyze the market trends for the following IT professional profile in the Canadian market:",
		"- Role: " + strings.TrimSpace(req.Role),
		"- Seniority: " + seniority,
		"- Resource Type: " + resourceType,
		"- Location: " + location,
		"- Currency: CAD (Canadian Dollar)",
	}

	if req.ProposedAnnualSalary != nil {
		lines = append(lines, amountPrinter.Sprintf("- Proposed Annual Salary: %.0f CAD", *req.ProposedAnnualSalary))
	}
	if req.ProposedBillRate != nil {
		lines = append(lines, amountPrinter.Sprintf("- Proposed Hourly Bill Rate: %.0f CAD", *req.ProposedBillRate))
	}
	if name := optional(req.ClientName); name != "" {
		lines = append(lines, "- Client: "+name)
	}
	if bu := optional(req.BusinessUnit); bu != "" {
		lines = append(lines, "- Business Unit: "+bu)
	}

	lines = append(lines,
		"",
		"Provide a comprehensive market analysis for the CANADIAN market comparing the proposed compensation to current market rates.",
		"Include salary ranges and freelance rate ranges for ALL THREE seniority levels: junior, intermediate, and senior.",
		"Base your analysis on Canadian cities such as Toronto, Montreal, Vancouver, Calgary, and Ottawa.",
		"",
		"IMPORTANT: All monetary values must be in Canadian Dollars (CAD).",
		"Respond with valid JSON only, following the specified schema exactly.",
	)

	return strings.Join(lines, "\n")
}
