// Package catalog holds the static reference data of the hub: the 19
// minimum standards, the service plans, and the news posts. Everything here
// is loaded once at process start and never mutated.
package catalog

import (
	"fmt"

	"fwsr-hub/internal/domain"
)

var questionTotal int

func init() {
	if err := validate(); err != nil {
		panic(err)
	}
	for _, p := range pillars {
		questionTotal += len(p.Questions)
	}
}

// validate checks catalog integrity once at startup. A broken catalog is a
// programming error, not a runtime condition.
func validate() error {
	seenPillar := map[string]bool{}
	seenQuestion := map[string]bool{}
	for _, p := range pillars {
		if seenPillar[p.ID] {
			return fmt.Errorf("catalog: duplicate pillar id %s", p.ID)
		}
		seenPillar[p.ID] = true
		if len(p.Questions) == 0 {
			return fmt.Errorf("catalog: pillar %s has no questions", p.ID)
		}
		for _, q := range p.Questions {
			if seenQuestion[q.ID] {
				return fmt.Errorf("catalog: duplicate question id %s", q.ID)
			}
			seenQuestion[q.ID] = true
			if len(q.Options) < 2 {
				return fmt.Errorf("catalog: question %s has fewer than two options", q.ID)
			}
		}
	}
	return nil
}

// Pillars returns the ordered 19-pillar catalog.
func Pillars() []domain.Pillar {
	return pillars
}

// PillarByID looks up a pillar by its zero-padded id ("01".."19").
func PillarByID(id string) (domain.Pillar, bool) {
	for _, p := range pillars {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Pillar{}, false
}

// QuestionCount is the total number of questions across all pillars.
func QuestionCount() int {
	return questionTotal
}

// Plans returns the fixed-price service tiers in display order.
func Plans() []domain.Plan {
	return plans
}

// PlanByID looks up a plan.
func PlanByID(id string) (domain.Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}

// Posts returns the static news posts.
func Posts() []domain.BlogPost {
	return posts
}

// PostByID looks up a news post.
func PostByID(id string) (domain.BlogPost, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BlogPost{}, false
}
