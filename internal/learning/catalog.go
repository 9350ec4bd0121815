package learning

import "time"

// ClauseRef identifies one article or section within a law.
type ClauseRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Concept is a daily-rotation legal concept card.
type Concept struct {
	Title       string `json:"title"`
	Law         string `json:"law"`
	Clause      string `json:"clause"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

var lawOrder = []string{"Constitution of India", "IPC", "CrPC", "Contract Act"}

var lawCatalog = map[string][]ClauseRef{
	"Constitution of India": {
		{ID: "Article 14", Title: "Equality before law"},
		{ID: "Article 19", Title: "Protection of certain rights regarding freedom of speech"},
		{ID: "Article 21", Title: "Protection of life and personal liberty"},
	},
	"IPC": {
		{ID: "Section 300", Title: "Murder"},
		{ID: "Section 378", Title: "Theft"},
		{ID: "Section 420", Title: "Cheating and dishonestly inducing delivery of property"},
	},
	"CrPC": {
		{ID: "Section 41", Title: "When police may arrest without warrant"},
		{ID: "Section 154", Title: "Information in cognizable cases (FIR)"},
	},
	"Contract Act": {
		{ID: "Section 2", Title: "Interpretation-clause"},
		{ID: "Section 10", Title: "What agreements are contracts"},
	},
}

var sampleTexts = map[string]string{
	"Article 14":  "The State shall not deny to any person equality before the law or the equal protection of the laws within the territory of India.",
	"Article 21":  "No person shall be deprived of his life or personal liberty except according to procedure established by law.",
	"Section 378": "Whoever, intending to take dishonestly any moveable property out of the possession of any person without that person's consent, moves that property in order to such taking, is said to commit theft.",
}

const caseScenario = "Rahul was walking home at night when a police officer stopped him and arrested him without telling him the reason for the arrest. Rahul was not allowed to call his lawyer or family for 24 hours."

var dailyConcepts = []Concept{
	{
		Title:       "Right to Information",
		Law:         "RTI Act, 2005",
		Clause:      "Section 3",
		Explanation: "Every citizen has the right to request information from a public authority.",
		Example:     "You can file an RTI to know the status of road repairs in your locality.",
	},
	{
		Title:       "Presumption of Innocence",
		Law:         "Indian Evidence Act",
		Clause:      "Section 101",
		Explanation: "A person is considered innocent until proven guilty in a court of law.",
		Example:     "The burden of proof lies on the prosecution to prove the accused committed the crime.",
	},
	{
		Title:       "Bail as a Right",
		Law:         "CrPC",
		Clause:      "Section 436",
		Explanation: "In bailable offenses, bail is a matter of right for the accused.",
		Example:     "If arrested for a minor traffic violation, you are entitled to bail immediately.",
	},
}

// Laws returns the browsable laws in display order.
func Laws() []string {
	return append([]string(nil), lawOrder...)
}

// LawItems returns the clause list for a law; unknown laws yield nil.
func LawItems(law string) []ClauseRef {
	return append([]ClauseRef(nil), lawCatalog[law]...)
}

// ClauseText returns the original legal text for an item, or a placeholder
// when no sample is on file.
func ClauseText(law, itemID string) string {
	if text, ok := sampleTexts[itemID]; ok {
		return text
	}
	return "Original legal text for " + itemID + " in " + law + "..."
}

// Scenario returns the case-study scenario for the case learning module.
func Scenario() string {
	return caseScenario
}

// DailyConcept rotates through the concept cards by day of year.
func DailyConcept(now time.Time) Concept {
	return dailyConcepts[now.YearDay()%len(dailyConcepts)]
}
