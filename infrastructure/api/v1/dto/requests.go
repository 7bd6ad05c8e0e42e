package dto

import "slices"

// StringRequestBody carries a single string value.
type StringRequestBody struct {
	Value string `json:"string,omitempty"`
}

// Clone returns an independent copy.
func (b *StringRequestBody) Clone() *StringRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// Equal reports whether both bodies carry the same value.
func (b *StringRequestBody) Equal(other *StringRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Value == other.Value
}

// String renders the body for logs.
func (b *StringRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("StringRequestBody", b)
}

// BooleanRequestBody carries a single flag.
type BooleanRequestBody struct {
	Flag bool `json:"flag"`
}

// Clone returns an independent copy.
func (b *BooleanRequestBody) Clone() *BooleanRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

// Equal reports whether both bodies carry the same flag.
func (b *BooleanRequestBody) Equal(other *BooleanRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Flag == other.Flag
}

// String renders the body for logs.
func (b *BooleanRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("BooleanRequestBody", b)
}

// PathNameRequestBody carries the full path of an element.
type PathNameRequestBody struct {
	MetadataSourceOptions
	FullPath string `json:"fullPath,omitempty" validate:"required"`
}

// Clone returns an independent copy.
func (b *PathNameRequestBody) Clone() *PathNameRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	c.MetadataSourceOptions = *b.MetadataSourceOptions.Clone()
	return &c
}

// Equal reports whether both bodies carry the same values.
func (b *PathNameRequestBody) Equal(other *PathNameRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.MetadataSourceOptions.Equal(&other.MetadataSourceOptions) &&
		b.FullPath == other.FullPath
}

// String renders the body for logs.
func (b *PathNameRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("PathNameRequestBody", b)
}

// DeleteRequestBody carries the options of a delete request.
type DeleteRequestBody struct {
	DeleteOptions
}

// Clone returns an independent copy.
func (b *DeleteRequestBody) Clone() *DeleteRequestBody {
	if b == nil {
		return nil
	}
	return &DeleteRequestBody{DeleteOptions: *b.DeleteOptions.Clone()}
}

// Equal reports whether both bodies carry the same values.
func (b *DeleteRequestBody) Equal(other *DeleteRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.DeleteOptions.Equal(&other.DeleteOptions)
}

// String renders the body for logs.
func (b *DeleteRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("DeleteRequestBody", b)
}

// SearchStringRequestBody requests elements matching a search string.
// An empty search string or "*" matches everything. LimitResultsByStatus
// restricts the statuses returned; when empty all but DELETED are returned.
type SearchStringRequestBody struct {
	MetadataSourceOptions
	SearchString              string          `json:"searchString,omitempty"`
	SearchStringParameterName string          `json:"searchStringParameterName,omitempty"`
	StartsWith                bool            `json:"startsWith"`
	EndsWith                  bool            `json:"endsWith"`
	IgnoreCase                bool            `json:"ignoreCase"`
	LimitResultsByStatus      []ElementStatus `json:"limitResultsByStatus,omitempty" validate:"omitempty,dive,element_status"`
}

// Clone returns an independent copy.
func (b *SearchStringRequestBody) Clone() *SearchStringRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	c.MetadataSourceOptions = *b.MetadataSourceOptions.Clone()
	c.LimitResultsByStatus = slices.Clone(b.LimitResultsByStatus)
	return &c
}

// Equal reports whether both bodies carry the same values.
func (b *SearchStringRequestBody) Equal(other *SearchStringRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.MetadataSourceOptions.Equal(&other.MetadataSourceOptions) &&
		b.SearchString == other.SearchString &&
		b.SearchStringParameterName == other.SearchStringParameterName &&
		b.StartsWith == other.StartsWith &&
		b.EndsWith == other.EndsWith &&
		b.IgnoreCase == other.IgnoreCase &&
		slices.Equal(b.LimitResultsByStatus, other.LimitResultsByStatus)
}

// String renders the body for logs.
func (b *SearchStringRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("SearchStringRequestBody", b)
}

// FilterRequestBody requests elements whose name equals Filter.
type FilterRequestBody struct {
	MetadataSourceOptions
	Filter               string          `json:"filter,omitempty" validate:"required"`
	LimitResultsByStatus []ElementStatus `json:"limitResultsByStatus,omitempty" validate:"omitempty,dive,element_status"`
}

// Clone returns an independent copy.
func (b *FilterRequestBody) Clone() *FilterRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	c.MetadataSourceOptions = *b.MetadataSourceOptions.Clone()
	c.LimitResultsByStatus = slices.Clone(b.LimitResultsByStatus)
	return &c
}

// Equal reports whether both bodies carry the same values.
func (b *FilterRequestBody) Equal(other *FilterRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.MetadataSourceOptions.Equal(&other.MetadataSourceOptions) &&
		b.Filter == other.Filter &&
		slices.Equal(b.LimitResultsByStatus, other.LimitResultsByStatus)
}

// String renders the body for logs.
func (b *FilterRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("FilterRequestBody", b)
}

// NewFolderRequestBody creates a folder below ParentGUID, or at the root.
type NewFolderRequestBody struct {
	MetadataSourceOptions
	ParentGUID string            `json:"parentGUID,omitempty"`
	Properties *FolderProperties `json:"properties,omitempty" validate:"required"`
}

// Clone returns an independent copy.
func (b *NewFolderRequestBody) Clone() *NewFolderRequestBody {
	if b == nil {
		return nil
	}
	c := *b
	c.MetadataSourceOptions = *b.MetadataSourceOptions.Clone()
	c.Properties = b.Properties.Clone()
	return &c
}

// Equal reports whether both bodies carry the same values.
func (b *NewFolderRequestBody) Equal(other *NewFolderRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.MetadataSourceOptions.Equal(&other.MetadataSourceOptions) &&
		b.ParentGUID == other.ParentGUID &&
		b.Properties.Equal(other.Properties)
}

// String renders the body for logs.
func (b *NewFolderRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("NewFolderRequestBody", b)
}

// UpdateFolderRequestBody replaces or merges a folder's properties.
type UpdateFolderRequestBody struct {
	UpdateElementRequestBody
	Properties *FolderProperties `json:"properties,omitempty" validate:"required"`
}

// Clone returns an independent copy.
func (b *UpdateFolderRequestBody) Clone() *UpdateFolderRequestBody {
	if b == nil {
		return nil
	}
	return &UpdateFolderRequestBody{
		UpdateElementRequestBody: *b.UpdateElementRequestBody.Clone(),
		Properties:               b.Properties.Clone(),
	}
}

// Equal reports whether both bodies carry the same values.
func (b *UpdateFolderRequestBody) Equal(other *UpdateFolderRequestBody) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.UpdateElementRequestBody.Equal(&other.UpdateElementRequestBody) &&
		b.Properties.Equal(other.Properties)
}

// String renders the body for logs.
func (b *UpdateFolderRequestBody) String() string {
	if b == nil {
		return "<nil>"
	}
	return render("UpdateFolderRequestBody", b)
}
