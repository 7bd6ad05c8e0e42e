package dto

// MetadataSourceOptions identifies the metadata source of a request and the
// point in time it applies to.
type MetadataSourceOptions struct {
	ExternalSourceGUID     string     `json:"externalSourceGUID,omitempty"`
	ExternalSourceName     string     `json:"externalSourceName,omitempty"`
	EffectiveTime          *EpochTime `json:"effectiveTime,omitempty"`
	ForLineage             bool       `json:"forLineage"`
	ForDuplicateProcessing bool       `json:"forDuplicateProcessing"`
}

// Clone returns an independent copy.
func (o *MetadataSourceOptions) Clone() *MetadataSourceOptions {
	if o == nil {
		return nil
	}
	c := *o
	c.EffectiveTime = cloneEpoch(o.EffectiveTime)
	return &c
}

// Equal reports whether both options carry the same values.
func (o *MetadataSourceOptions) Equal(other *MetadataSourceOptions) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.ExternalSourceGUID == other.ExternalSourceGUID &&
		o.ExternalSourceName == other.ExternalSourceName &&
		epochEqual(o.EffectiveTime, other.EffectiveTime) &&
		o.ForLineage == other.ForLineage &&
		o.ForDuplicateProcessing == other.ForDuplicateProcessing
}

// String renders the options for logs.
func (o *MetadataSourceOptions) String() string {
	if o == nil {
		return "<nil>"
	}
	return render("MetadataSourceOptions", o)
}

// DeleteOptions controls how an element and its dependants are removed.
type DeleteOptions struct {
	MetadataSourceOptions
	CascadedDelete bool         `json:"cascadedDelete"`
	DeleteMethod   DeleteMethod `json:"deleteMethod,omitempty" validate:"omitempty,oneof=LOOK_FOR_LINEAGE ARCHIVE SOFT_DELETE PURGE"`
}

// Clone returns an independent copy.
func (o *DeleteOptions) Clone() *DeleteOptions {
	if o == nil {
		return nil
	}
	c := *o
	c.MetadataSourceOptions = *o.MetadataSourceOptions.Clone()
	return &c
}

// Equal reports whether both options carry the same values.
func (o *DeleteOptions) Equal(other *DeleteOptions) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.MetadataSourceOptions.Equal(&other.MetadataSourceOptions) &&
		o.CascadedDelete == other.CascadedDelete &&
		o.DeleteMethod == other.DeleteMethod
}

// String renders the options for logs.
func (o *DeleteOptions) String() string {
	if o == nil {
		return "<nil>"
	}
	return render("DeleteOptions", o)
}

// UpdateElementRequestBody is the base of update requests. MergeUpdate
// keeps properties the request leaves empty.
type UpdateElementRequestBody struct {
	MetadataSourceOptions
	MergeUpdate bool `json:"mergeUpdate"`
}

// Clone returns an independent copy.
func (b *UpdateElementRequestBody) Clone() *UpdateElementRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	c.MetadataSourceOptions = *b.MetadataSourceOptions.Clone()
	return &c
}

// Equal reports whether both bodies carry the same values.
func (b *UpdateElementRequestBody) Equal(other *UpdateElementRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.MetadataSourceOptions.Equal(&other.MetadataSourceOptions) &&
		b.MergeUpdate == other.MergeUpdate
}

// String renders the body for logs.
func (b *UpdateElementRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("UpdateElementRequestBody", b)
}
