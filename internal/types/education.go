package types

import "strings"

// EducationLevel is the highest degree a candidate holds, or the minimum
// degree a job requires. The empty string on a job means no requirement.
type EducationLevel string

// Recognized education levels, lowest to highest.
const (
	EducationNone      EducationLevel = "none"
	EducationAssociate EducationLevel = "associate"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationPhD       EducationLevel = "phd"
)

// educationRank maps levels to numeric ranks for ordering comparisons.
var educationRank = map[EducationLevel]int{
	EducationNone:      0,
	EducationAssociate: 1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationPhD:       4,
}

// ParseEducationLevel normalizes a freeform degree string to an EducationLevel.
// Returns false if the value is not a recognized level.
func ParseEducationLevel(s string) (EducationLevel, bool) {
	level := EducationLevel(strings.ToLower(strings.TrimSpace(s)))
	switch level {
	case "":
		return EducationNone, true
	case "doctorate", "doctoral":
		return EducationPhD, true
	case "bachelors":
		return EducationBachelor, true
	case "masters":
		return EducationMaster, true
	}
	if _, ok := educationRank[level]; ok {
		return level, true
	}
	return "", false
}

// Valid reports whether the level is one of the recognized constants.
func (l EducationLevel) Valid() bool {
	_, ok := educationRank[l]
	return ok
}

// Rank returns the numeric rank of the level for comparisons. Unknown levels
// rank as zero; callers should reject them with Valid first.
func (l EducationLevel) Rank() int {
	return educationRank[l]
}
