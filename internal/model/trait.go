package model

// Trait is one of the six RIASEC interest codes.
type Trait string

const (
	TraitRealistic     Trait = "R"
	TraitInvestigative Trait = "I"
	TraitArtistic      Trait = "A"
	TraitSocial        Trait = "S"
	TraitEnterprising  Trait = "E"
	TraitConventional  Trait = "C"

	// TraitRefine tags answers to LLM-generated refinement statements.
	// It is not a real trait and never enters per-trait normalization.
	TraitRefine Trait = "REFINE"
)

// Traits lists the six real codes in enumeration order. The order matters:
// TopTraits breaks score ties by position in this slice.
var Traits = []Trait{
	TraitRealistic,
	TraitInvestigative,
	TraitArtistic,
	TraitSocial,
	TraitEnterprising,
	TraitConventional,
}

var traitNames = map[Trait]string{
	TraitRealistic:     "Realistic",
	TraitInvestigative: "Investigative",
	TraitArtistic:      "Artistic",
	TraitSocial:        "Social",
	TraitEnterprising:  "Enterprising",
	TraitConventional:  "Conventional",
}

// Name returns the spoken name for a trait code, or the code itself if unknown.
func (t Trait) Name() string {
	if name, ok := traitNames[t]; ok {
		return name
	}
	return string(t)
}

// IsReal reports whether t is one of the six RIASEC codes.
func (t Trait) IsReal() bool {
	_, ok := traitNames[t]
	return ok
}

// TraitScore pairs a trait with its normalized score.
type TraitScore struct {
	Trait Trait   `json:"trait" bson:"trait"`
	Score float64 `json:"score" bson:"score"`
}
