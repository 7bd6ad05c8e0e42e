package dto

// ElementStatus is the lifecycle status of a metadata element on the wire.
type ElementStatus string

// ElementStatus values.
const (
	StatusUnknown               ElementStatus = "UNKNOWN"
	StatusDraft                 ElementStatus = "DRAFT"
	StatusPrepared              ElementStatus = "PREPARED"
	StatusProposed              ElementStatus = "PROPOSED"
	StatusApproved              ElementStatus = "APPROVED"
	StatusRejected              ElementStatus = "REJECTED"
	StatusApprovedConcept       ElementStatus = "APPROVED_CONCEPT"
	StatusUnderDevelopment      ElementStatus = "UNDER_DEVELOPMENT"
	StatusDevelopmentComplete   ElementStatus = "DEVELOPMENT_COMPLETE"
	StatusApprovedForDeployment ElementStatus = "APPROVED_FOR_DEPLOYMENT"
	StatusStandby               ElementStatus = "STANDBY"
	StatusActive                ElementStatus = "ACTIVE"
	StatusFailed                ElementStatus = "FAILED"
	StatusDisabled              ElementStatus = "DISABLED"
	StatusComplete              ElementStatus = "COMPLETE"
	StatusDeprecated            ElementStatus = "DEPRECATED"
	StatusOther                 ElementStatus = "OTHER"
	StatusDeleted               ElementStatus = "DELETED"
)

// DeleteMethod selects how an element is removed.
type DeleteMethod string

// DeleteMethod values.
const (
	DeleteLookForLineage DeleteMethod = "LOOK_FOR_LINEAGE"
	DeleteArchive        DeleteMethod = "ARCHIVE"
	DeleteSoft           DeleteMethod = "SOFT_DELETE"
	DeletePurge          DeleteMethod = "PURGE"
)
