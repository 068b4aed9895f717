package models

// Subjects is the fixed list of subjects the platform offers content and
// sessions for. Enrollment requests are validated against it at the
// boundary; anything else is rejected.
var Subjects = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"English",
	"ICT",
}

func IsValidSubject(subject string) bool {
	for _, s := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}
