package catalog

import "fwsr-hub/internal/domain"

var posts = []domain.BlogPost{
	{
		ID:       "1",
		Title:    "The Copenhagen Legacy: Why Berlin is Adopting the 19 Standards",
		Excerpt:  "Explore the transition from the Nordic pilots to the mandatory German regulatory framework for July 2026.",
		Content:  "After three successful seasons of testing in Copenhagen, the 19 Minimum Standards for Sustainability are no longer an experiment. Berlin Fashion Week has officially integrated these requirements into their showcase mandate. This harmonization ensures that designers who meet the Berlin criteria are automatically aligned with the gold standard of global sustainable fashion.",
		Date:     "Oct 12, 2025",
		Author:   "FWSR Editorial Team",
		ReadTime: "6 min",
		Category: "Regulatory",
	},
	{
		ID:       "2",
		Title:    "Navigating Requirement 07: The 60% Material Threshold",
		Excerpt:  "A deep dive into third-party certifications like GOTS and GRS required for the July 2026 submission.",
		Content:  "One of the primary hurdles for emerging designers is the 60% preferred material threshold. By July 2026, every brand on the official BFW schedule must prove that over half of their total production volume utilizes fibers certified by bodies like the Global Organic Textile Standard. Documentation must be presented as a verified dossier.",
		Date:     "Sep 28, 2025",
		Author:   "Compliance Team",
		ReadTime: "8 min",
		Category: "Sourcing",
	},
	{
		ID:       "3",
		Title:    "Social Responsibility in Tier 4: Beyond the Showroom",
		Excerpt:  "How the new Human Rights Due Diligence (HRDD) affects brands under the Supply Chain Act.",
		Content:  "Visibility often stops at the first tier of manufacturing, but the BFW mandate requires transparency down to the raw material level. Brands must now implement signed Codes of Conduct that include ILO core labor standards for every partner involved in the value chain.",
		Date:     "Sep 15, 2025",
		Author:   "Human Rights Lead",
		ReadTime: "5 min",
		Category: "Social Ethics",
	},
}
