package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUINCategories(t *testing.T) {
	cases := []struct {
		classLevel string
		pattern    string
	}{
		{"Primary 1", `^GFA-P-\d{4}$`},
		{"Primary 6", `^GFA-P-\d{4}$`},
		{"Nursery 2", `^GFA-N-\d{4}$`},
		{"Pre-Nursery", `^GFA-N-\d{4}$`},
		{"Creche", `^GFA-C-\d{4}$`},
		{"", `^GFA-C-\d{4}$`},
	}

	for _, tc := range cases {
		uin := GenerateUIN(tc.classLevel)
		require.Regexp(t, regexp.MustCompile(tc.pattern), uin, "classLevel=%q", tc.classLevel)
	}
}

func TestGenerateUINSuffixRange(t *testing.T) {
	re := regexp.MustCompile(`^GFA-[PNC]-(\d{4})$`)
	for i := 0; i < 200; i++ {
		uin := GenerateUIN("Primary 3")
		m := re.FindStringSubmatch(uin)
		require.NotNil(t, m, "uin=%q", uin)
	}
}

func TestGenerateTeacherUIN(t *testing.T) {
	for i := 0; i < 50; i++ {
		require.Regexp(t, `^GFA-T-\d{4}$`, GenerateTeacherUIN())
	}
}
