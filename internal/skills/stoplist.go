package skills

// defaultStopWords filters common English words and generic business nouns
// that NER/pattern extraction over resume text produces in bulk. Anything on
// this list is never accepted as a skill, even if a noisy taxonomy alias
// would otherwise match it.
var defaultStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "good": true,
	"able": true, "such": true, "strong": true, "experience": true,
	"experienced": true, "skills": true, "skill": true, "knowledge": true,
	"work": true, "working": true, "team": true, "teams": true, "role": true,
	"job": true, "company": true, "business": true, "management": true,
	"manager": true, "project": true, "projects": true, "development": true,
	"developer": true, "engineer": true, "engineering": true, "senior": true,
	"junior": true, "years": true, "year": true, "proficient": true,
	"familiar": true, "excellent": true, "responsible": true, "ability": true,
	"environment": true, "tools": true, "various": true, "multiple": true,
	"including": true, "etc": true, "other": true, "related": true,
}
