package services

import (
	"fmt"
	"math/rand"
	"strings"
)

// UIN prefixes by class category. The institutional tag is fixed.
const uinTag = "GFA"

// GenerateUIN builds a pupil UIN from the class level: GFA-P-#### for
// primary classes, GFA-N-#### for nursery and pre-nursery, GFA-C-####
// otherwise (creche). The 4-digit suffix is drawn uniformly from
// [1000,9999]; uniqueness is left to the database index, with signup
// retrying on collision.
func GenerateUIN(classLevel string) string {
	category := "C"
	if strings.Contains(classLevel, "Primary") {
		category = "P"
	} else if strings.Contains(classLevel, "Nursery") {
		category = "N"
	}
	return fmt.Sprintf("%s-%s-%d", uinTag, category, 1000+rand.Intn(9000))
}

// GenerateTeacherUIN builds a teacher UIN of the form GFA-T-####.
func GenerateTeacherUIN() string {
	return fmt.Sprintf("%s-T-%d", uinTag, 1000+rand.Intn(9000))
}
