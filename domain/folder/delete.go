package folder

import "strings"

// DeleteMethod selects how a folder is removed.
type DeleteMethod string

// DeleteMethod values.
const (
	DeleteLookForLineage DeleteMethod = "LOOK_FOR_LINEAGE"
	DeleteArchive        DeleteMethod = "ARCHIVE"
	DeleteSoft           DeleteMethod = "SOFT_DELETE"
	DeletePurge          DeleteMethod = "PURGE"
)

// ParseDeleteMethod parses a delete method name. The empty string selects
// SOFT_DELETE.
func ParseDeleteMethod(s string) (DeleteMethod, bool) {
	if strings.TrimSpace(s) == "" {
		return DeleteSoft, true
	}
	m := DeleteMethod(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case DeleteLookForLineage, DeleteArchive, DeleteSoft, DeletePurge:
		return m, true
	}
	return "", false
}

// Purges reports whether the method removes rows instead of marking them DELETED.
// No lineage is recorded, so LOOK_FOR_LINEAGE keeps the history like ARCHIVE.
func (m DeleteMethod) Purges() bool {
	return m == DeletePurge
}
