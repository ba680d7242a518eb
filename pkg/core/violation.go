package core

// SystemStandard labels violations raised before any standard is applied,
// such as a target path that cannot be read at all.
const SystemStandard = "SYSTEM"

// Violation is one breach of one rule of one standard by one path.
type Violation struct {
	Kind     ErrorKind `json:"kind"`
	Standard string    `json:"standard"`
	Path     string    `json:"path"`
}

// IsSystem reports whether the violation was raised outside any standard.
func (v Violation) IsSystem() bool {
	return v.Standard == SystemStandard
}
