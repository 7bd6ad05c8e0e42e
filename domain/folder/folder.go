// Package folder provides the domain model for metadata folders.
package folder

import (
	"maps"
	"strings"
	"time"
)

// TypeName is the open metadata type name of a folder element.
const TypeName = "Folder"

// PathSeparator separates the segments of a folder path name.
const PathSeparator = "/"

// Status is the lifecycle status of a metadata element.
type Status string

// Status values.
const (
	StatusUnknown               Status = "UNKNOWN"
	StatusDraft                 Status = "DRAFT"
	StatusPrepared              Status = "PREPARED"
	StatusProposed              Status = "PROPOSED"
	StatusApproved              Status = "APPROVED"
	StatusRejected              Status = "REJECTED"
	StatusApprovedConcept       Status = "APPROVED_CONCEPT"
	StatusUnderDevelopment      Status = "UNDER_DEVELOPMENT"
	StatusDevelopmentComplete   Status = "DEVELOPMENT_COMPLETE"
	StatusApprovedForDeployment Status = "APPROVED_FOR_DEPLOYMENT"
	StatusStandby               Status = "STANDBY"
	StatusActive                Status = "ACTIVE"
	StatusFailed                Status = "FAILED"
	StatusDisabled              Status = "DISABLED"
	StatusComplete              Status = "COMPLETE"
	StatusDeprecated            Status = "DEPRECATED"
	StatusOther                 Status = "OTHER"
	StatusDeleted               Status = "DELETED"
)

// Statuses lists every status in declaration order.
func Statuses() []Status {
	return []Status{
		StatusUnknown, StatusDraft, StatusPrepared, StatusProposed, StatusApproved,
		StatusRejected, StatusApprovedConcept, StatusUnderDevelopment, StatusDevelopmentComplete,
		StatusApprovedForDeployment, StatusStandby, StatusActive, StatusFailed, StatusDisabled,
		StatusComplete, StatusDeprecated, StatusOther, StatusDeleted,
	}
}

// ParseStatus returns the status with the given name, ignoring case.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses() {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return StatusUnknown, false
}

// VisibleStatuses returns the statuses returned by queries that do not name
// any: everything except DELETED, unless lineage is requested.
func VisibleStatuses(forLineage bool) []Status {
	all := Statuses()
	if forLineage {
		return all
	}
	visible := make([]Status, 0, len(all)-1)
	for _, st := range all {
		if st != StatusDeleted {
			visible = append(visible, st)
		}
	}
	return visible
}

// Properties holds the user-settable attributes of a folder.
type Properties struct {
	QualifiedName        string
	DisplayName          string
	Description          string
	AdditionalProperties map[string]string
}

// Folder is a node in the metadata folder hierarchy.
// It is an immutable value object identified by its GUID once persisted.
type Folder struct {
	id                   int64
	guid                 string
	qualifiedName        string
	displayName          string
	description          string
	pathName             string
	parentGUID           string
	status               Status
	additionalProperties map[string]string
	version              int64
	createdAt            time.Time
	updatedAt            time.Time
}

// NewFolder creates a folder that has not been persisted yet.
func NewFolder(guid, parentGUID, pathName string, props Properties) Folder {
	now := time.Now()
	qualifiedName := props.QualifiedName
	if qualifiedName == "" {
		qualifiedName = DefaultQualifiedName(pathName)
	}
	return Folder{
		guid:                 guid,
		qualifiedName:        qualifiedName,
		displayName:          props.DisplayName,
		description:          props.Description,
		pathName:             pathName,
		parentGUID:           parentGUID,
		status:               StatusActive,
		additionalProperties: maps.Clone(props.AdditionalProperties),
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}
}

// ReconstructFolder recreates a folder from persistence.
func ReconstructFolder(
	id int64,
	guid string,
	qualifiedName string,
	displayName string,
	description string,
	pathName string,
	parentGUID string,
	status Status,
	additionalProperties map[string]string,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) Folder {
	return Folder{
		id:                   id,
		guid:                 guid,
		qualifiedName:        qualifiedName,
		displayName:          displayName,
		description:          description,
		pathName:             pathName,
		parentGUID:           parentGUID,
		status:               status,
		additionalProperties: maps.Clone(additionalProperties),
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// DefaultQualifiedName derives a qualified name from a path name.
func DefaultQualifiedName(pathName string) string {
	return TypeName + "::" + pathName
}

// ChildPath joins a parent path and a display name. An empty parent yields a root path.
func ChildPath(parentPath, displayName string) string {
	if parentPath == "" || parentPath == PathSeparator {
		return PathSeparator + displayName
	}
	return parentPath + PathSeparator + displayName
}

// NormalizePath trims surrounding whitespace and any trailing separator,
// and makes the path absolute.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, PathSeparator) {
		path = PathSeparator + path
	}
	for len(path) > 1 && strings.HasSuffix(path, PathSeparator) {
		path = strings.TrimSuffix(path, PathSeparator)
	}
	return path
}

// ID returns the database identifier.
func (f Folder) ID() int64 { return f.id }

// GUID returns the globally unique identifier.
func (f Folder) GUID() string { return f.guid }

// TypeName returns the open metadata type name.
func (f Folder) TypeName() string { return TypeName }

// QualifiedName returns the unique qualified name.
func (f Folder) QualifiedName() string { return f.qualifiedName }

// DisplayName returns the display name.
func (f Folder) DisplayName() string { return f.displayName }

// Description returns the description.
func (f Folder) Description() string { return f.description }

// PathName returns the full path from the root.
func (f Folder) PathName() string { return f.pathName }

// ParentGUID returns the GUID of the parent folder, empty for a root folder.
func (f Folder) ParentGUID() string { return f.parentGUID }

// IsRoot reports whether the folder has no parent.
func (f Folder) IsRoot() bool { return f.parentGUID == "" }

// Status returns the lifecycle status.
func (f Folder) Status() Status { return f.status }

// IsDeleted reports whether the folder has been soft deleted.
func (f Folder) IsDeleted() bool { return f.status == StatusDeleted }

// AdditionalProperties returns a copy of the free-form properties.
func (f Folder) AdditionalProperties() map[string]string {
	return maps.Clone(f.additionalProperties)
}

// Version returns the update counter, starting at 1.
func (f Folder) Version() int64 { return f.version }

// CreatedAt returns when the folder was created.
func (f Folder) CreatedAt() time.Time { return f.createdAt }

// UpdatedAt returns when the folder was last updated.
func (f Folder) UpdatedAt() time.Time { return f.updatedAt }

// Properties returns the user-settable attributes.
func (f Folder) Properties() Properties {
	return Properties{
		QualifiedName:        f.qualifiedName,
		DisplayName:          f.displayName,
		Description:          f.description,
		AdditionalProperties: f.AdditionalProperties(),
	}
}

// WithID returns a copy with the given database identifier.
func (f Folder) WithID(id int64) Folder {
	f.id = id
	return f
}

// WithProperties returns a copy with the properties applied. When merge is
// true only non-empty values overwrite and additional properties are merged
// key by key; otherwise every property is replaced.
func (f Folder) WithProperties(props Properties, merge bool) Folder {
	if merge {
		if props.QualifiedName != "" {
			f.qualifiedName = props.QualifiedName
		}
		if props.DisplayName != "" {
			f.displayName = props.DisplayName
		}
		if props.Description != "" {
			f.description = props.Description
		}
		if len(props.AdditionalProperties) > 0 {
			merged := maps.Clone(f.additionalProperties)
			if merged == nil {
				merged = make(map[string]string, len(props.AdditionalProperties))
			}
			maps.Copy(merged, props.AdditionalProperties)
			f.additionalProperties = merged
		}
	} else {
		f.qualifiedName = props.QualifiedName
		if f.qualifiedName == "" {
			f.qualifiedName = DefaultQualifiedName(f.pathName)
		}
		f.displayName = props.DisplayName
		f.description = props.Description
		f.additionalProperties = maps.Clone(props.AdditionalProperties)
	}
	return f.touch()
}

// WithDescription returns a copy with the description replaced.
func (f Folder) WithDescription(description string) Folder {
	f.description = description
	return f.touch()
}

// WithStatus returns a copy with the status replaced.
func (f Folder) WithStatus(status Status) Folder {
	f.status = status
	return f.touch()
}

// WithPathName returns a copy moved to the given path. A qualified name that
// was derived from the old path follows the move.
func (f Folder) WithPathName(pathName string) Folder {
	if f.qualifiedName == DefaultQualifiedName(f.pathName) {
		f.qualifiedName = DefaultQualifiedName(pathName)
	}
	f.pathName = pathName
	return f.touch()
}

func (f Folder) touch() Folder {
	f.version++
	f.updatedAt = time.Now()
	return f
}
