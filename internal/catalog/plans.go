package catalog

import "fwsr-hub/internal/domain"

var plans = []domain.Plan{
	{
		ID:    "survey",
		Name:  "Eligibility Roadmap",
		Price: 19,
		Features: []string{
			"Personalized Eligibility Report",
			"Size-specific Requirement Mapping",
			"Technical Roadmap PDF",
		},
	},
	{
		ID:    "chat",
		Name:  "Knowledge Hub",
		Price: 89,
		Features: []string{
			"AI Compliance Chatbot Access",
			"Brand Brief Technical Review",
			"Standard-Specific Advice",
		},
	},
	{
		ID:    "auditor",
		Name:  "The Auditor",
		Price: 595,
		Features: []string{
			"End-to-end Compliance Guidance",
			"Drafting Social CoC & RSL",
			"Validated BFW Dossier Export",
		},
	},
}
