package catalog

import (
	"fmt"

	"fwsr-hub/internal/domain"
)

var pillars = buildPillars()

func buildPillars() []domain.Pillar {
	out := []domain.Pillar{
		{
			ID:      "01",
			Title:   "Sustainability Strategy",
			Summary: "Formally approved strategy covering environmental and social considerations.",
			Details: []string{
				"Share your sustainability/ESG strategy covering both environmental and social aspects.",
				"Strategy must include commitments to international pledges (e.g., SBTI, UNGC, ILO).",
				"Indicate approval by management, board, or c-suite.",
				"Describe review and monitoring processes (e.g., annual reports, internal check-ins).",
				"Identify the team responsible for delivery on strategy and targets.",
			},
			Questions: []domain.Question{
				{
					ID:   "q1_1",
					Text: "Do you have a formal sustainability strategy document that covers both environmental and social aspects?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, fully documented", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "In progress / Draft only", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskHigh},
					},
				},
				{
					ID:   "q1_2",
					Text: "Is this strategy formally approved by C-level management or the Board?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, signed off", Risk: domain.RiskNone},
						{Value: domain.ValueNo, Label: "No formal approval", Risk: domain.RiskMedium},
					},
				},
				{
					ID:   "q1_3",
					Text: "Does your strategy include specific, measurable targets for 2026?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, clear targets defined", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "General goals but no specific metrics", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No targets defined", Risk: domain.RiskHigh},
					},
				},
			},
		},
		{
			ID:      "02",
			Title:   "DEIB Guidelines",
			Summary: "Guidelines and structures for equal opportunities and hiring processes.",
			Details: []string{
				"Share DEIB policy (e.g., company handbook, targets/commitments).",
				"Documentation should link to inclusive hiring, bias training, or structures enabling equal opportunity.",
				"Identify departments or roles that have received training for inclusive hiring.",
			},
			Questions: []domain.Question{
				{
					ID:   "q2_1",
					Text: "Do you have a written Diversity, Equity, Inclusion and Belonging (DEIB) policy?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, written and shared with staff", Risk: domain.RiskNone},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskHigh},
					},
				},
				{
					ID:   "q2_2",
					Text: "Have your hiring managers received specific training on inclusive hiring and bias reduction?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, all managers trained", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "Some / Ad-hoc training", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No training provided", Risk: domain.RiskHigh},
					},
				},
			},
		},
		{
			ID:      "03",
			Title:   "Zero Inventory Destruction",
			Summary: "Prohibition of destroying unsold clothes and samples from previous collections.",
			Details: []string{
				"Process in place for leftovers and unsold inventory.",
				"Destruction of unsold clothes includes landfill elimination.",
			},
			Questions: []domain.Question{
				{
					ID:   "q3_1",
					Text: "Do you destroy (burn or landfill) any unsold inventory or samples?",
					Options: []domain.Option{
						{Value: domain.ValueNo, Label: "No, never", Risk: domain.RiskNone},
						{Value: domain.ValueYes, Label: "Yes", Risk: domain.RiskHigh},
					},
				},
				{
					ID:   "q3_2",
					Text: "Do you have a documented process for managing leftovers (e.g., resell, donation, recycling)?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, formalized process", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "Ad-hoc process", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No process", Risk: domain.RiskHigh},
					},
				},
			},
		},
		{
			ID:      "04",
			Title:   "Quality & Longevity",
			Summary: "Criteria to ensure product durability and informing customers of its value.",
			Details: []string{
				"Inform on selection criteria when sourcing materials regarding longevity and durability.",
			},
			Questions: []domain.Question{
				{
					ID:   "q4_1",
					Text: "Do you conduct physical durability testing (e.g., wash tests, pilling) on your fabrics?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, routine testing", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "Occasional testing", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No testing", Risk: domain.RiskHigh},
					},
				},
				{
					ID:   "q4_2",
					Text: "Do you actively communicate care instructions and repair options to customers?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes", Risk: domain.RiskNone},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskMedium},
					},
				},
			},
		},
		{
			ID:      "05",
			Title:   "Circularity Implementation",
			Summary: "Integration of circular principles into operations.",
			Details: []string{"Implementation of collection schemes or resell/reuse options."},
			Questions: []domain.Question{
				{
					ID:   "q5_1",
					Text: "Do you offer a take-back, resale, or repair service for your products?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "Planning/Pilot stage", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskHigh},
					},
				},
			},
		},
		{
			ID:      "06",
			Title:   "Preferred Materials List",
			Summary: "A list considering environmental and social impacts of material choices.",
			Details: []string{"Maintain a link to your preferred materials list."},
			Questions: []domain.Question{
				{
					ID:   "q6_1",
					Text: "Do you maintain a formal 'Preferred Materials List' that guides sourcing decisions?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes", Risk: domain.RiskNone},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskHigh},
					},
				},
			},
		},
		{
			ID:      "07",
			Title:   "60% Certified Fiber Threshold",
			Summary: "At least 60% of collection must be certified, preferred, or deadstock.",
			Details: []string{"Share list of materials used and their quantities in % of the collection."},
			Questions: []domain.Question{
				{
					ID:   "q7_1",
					Text: "Does at least 60% of your collection (by weight or SKU) consist of certified sustainable or deadstock materials?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes, >60%", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "Close (40-59%)", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No (<40%)", Risk: domain.RiskHigh},
					},
				},
			},
		},
		{
			ID:      "08",
			Title:   "REACH-Compliant RSL",
			Summary: "List of restricted substances following EU REACH Directive.",
			Details: []string{"Share Restricted Substances List (RSL) or Code of Conduct."},
			Questions: []domain.Question{
				{
					ID:   "q8_1",
					Text: "Do you require all suppliers to sign a Restricted Substances List (RSL) compliant with EU REACH?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes", Risk: domain.RiskNone},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskHigh},
					},
				},
			},
		},
	}

	// Standards 09-19 share the generic documentation check until their
	// questionnaires are authored.
	for num := 9; num <= 19; num++ {
		out = append(out, domain.Pillar{
			ID:      fmt.Sprintf("%02d", num),
			Title:   fmt.Sprintf("Standard %d", num),
			Summary: "Compliance requirement.",
			Details: []string{"Verify compliance."},
			Questions: []domain.Question{
				{
					ID:   fmt.Sprintf("q%d_1", num),
					Text: "Do you have documentation proving compliance with this standard?",
					Options: []domain.Option{
						{Value: domain.ValueYes, Label: "Yes", Risk: domain.RiskNone},
						{Value: domain.ValuePartial, Label: "In progress", Risk: domain.RiskMedium},
						{Value: domain.ValueNo, Label: "No", Risk: domain.RiskHigh},
					},
				},
			},
		})
	}

	return out
}
