package types

import "strings"

// Ordinal education levels. Higher is more advanced; 0 means unrecognized.
const (
	LevelHighSchool = 1
	LevelAssociate  = 2
	LevelBachelor   = 3
	LevelMaster     = 4
	LevelPhD        = 5
)

// degreeTokenLevels maps normalized degree tokens to ordinal levels.
// Tokens are compared after lowercasing and stripping dots/apostrophes,
// so "Ph.D.", "PhD" and "phd" all resolve to the same level.
var degreeTokenLevels = map[string]int{
	"phd": LevelPhD, "dphil": LevelPhD, "doctorate": LevelPhD, "doctoral": LevelPhD,
	"master": LevelMaster, "masters": LevelMaster, "ms": LevelMaster, "msc": LevelMaster,
	"ma": LevelMaster, "meng": LevelMaster, "mba": LevelMaster,
	"bachelor": LevelBachelor, "bachelors": LevelBachelor, "bs": LevelBachelor,
	"bsc": LevelBachelor, "ba": LevelBachelor, "beng": LevelBachelor, "bcom": LevelBachelor,
	"associate": LevelAssociate, "associates": LevelAssociate,
	"ged": LevelHighSchool, "diploma": LevelHighSchool,
}

// DegreeLevel maps a degree description to its ordinal level. The highest
// level named anywhere in the text wins ("MBA, BSc" is a master's). Returns
// 0 when no degree token is recognized.
func DegreeLevel(degree string) int {
	norm := strings.NewReplacer(".", "", "'", "", ",", " ", ";", " ", "(", " ", ")", " ").
		Replace(strings.ToLower(degree))

	level := 0
	if strings.Contains(norm, "high school") {
		level = LevelHighSchool
	}
	for _, token := range strings.Fields(norm) {
		if l, ok := degreeTokenLevels[token]; ok && l > level {
			level = l
		}
	}
	return level
}
