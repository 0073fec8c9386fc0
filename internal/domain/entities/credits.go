package entities

// Credit costs per generation kind. Charged before the provider call and
// refunded when the call yields nothing usable.
const (
	CostArticleGeneration = 5
	CostBlockRefinement   = 1
	CostChapterGeneration = 5
	CostChapterPolish     = 5
)
