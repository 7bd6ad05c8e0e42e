package dto

import (
	"slices"
	"time"
)

// VoidResponse reports the outcome of a request that returns no payload.
// Every failed request is answered with a VoidResponse.
type VoidResponse struct {
	FFDCResponseBase
}

// Clone returns an independent copy.
func (r *VoidResponse) Clone() *VoidResponse {
	if r == nil {
		return nil
	}
	return &VoidResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone()}
}

// Equal reports whether both responses carry the same values.
func (r *VoidResponse) Equal(other *VoidResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase)
}

// String renders the response for logs.
func (r *VoidResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("VoidResponse", r)
}

// BooleanResponse carries a single flag.
type BooleanResponse struct {
	FFDCResponseBase
	Flag bool `json:"flag"`
}

// Result returns the flag.
func (r *BooleanResponse) Result() bool { return r.Flag }

// Clone returns an independent copy.
func (r *BooleanResponse) Clone() *BooleanResponse {
	if r == nil {
		return nil
	}
	return &BooleanResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), Flag: r.Flag}
}

// Equal reports whether both responses carry the same values.
func (r *BooleanResponse) Equal(other *BooleanResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && r.Flag == other.Flag
}

// String renders the response for logs.
func (r *BooleanResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("BooleanResponse", r)
}

// CountResponse carries a count of matching elements.
type CountResponse struct {
	FFDCResponseBase
	Count int64 `json:"count"`
}

// Result returns the count.
func (r *CountResponse) Result() int64 { return r.Count }

// Clone returns an independent copy.
func (r *CountResponse) Clone() *CountResponse {
	if r == nil {
		return nil
	}
	return &CountResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), Count: r.Count}
}

// Equal reports whether both responses carry the same values.
func (r *CountResponse) Equal(other *CountResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && r.Count == other.Count
}

// String renders the response for logs.
func (r *CountResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("CountResponse", r)
}

// DateResponse carries a single point in time.
type DateResponse struct {
	FFDCResponseBase
	Date *EpochTime `json:"date,omitempty"`
}

// Result returns the date, or nil when none was set.
func (r *DateResponse) Result() *time.Time {
	if r.Date == nil {
		return nil
	}
	t := r.Date.Time()
	return &t
}

// Clone returns an independent copy.
func (r *DateResponse) Clone() *DateResponse {
	if r == nil {
		return nil
	}
	return &DateResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), Date: cloneEpoch(r.Date)}
}

// Equal reports whether both responses carry the same values.
func (r *DateResponse) Equal(other *DateResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && epochEqual(r.Date, other.Date)
}

// String renders the response for logs.
func (r *DateResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("DateResponse", r)
}

// GUIDResponse carries the GUID of a created element.
type GUIDResponse struct {
	FFDCResponseBase
	GUID string `json:"guid,omitempty"`
}

// Result returns the GUID.
func (r *GUIDResponse) Result() string { return r.GUID }

// Clone returns an independent copy.
func (r *GUIDResponse) Clone() *GUIDResponse {
	if r == nil {
		return nil
	}
	return &GUIDResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), GUID: r.GUID}
}

// Equal reports whether both responses carry the same values.
func (r *GUIDResponse) Equal(other *GUIDResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && r.GUID == other.GUID
}

// String renders the response for logs.
func (r *GUIDResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("GUIDResponse", r)
}

// GUIDListResponse carries a list of GUIDs.
type GUIDListResponse struct {
	FFDCResponseBase
	GUIDs []string `json:"guids,omitempty"`
}

// Result returns the GUIDs.
func (r *GUIDListResponse) Result() []string { return r.GUIDs }

// Clone returns an independent copy.
func (r *GUIDListResponse) Clone() *GUIDListResponse {
	if r == nil {
		return nil
	}
	return &GUIDListResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), GUIDs: slices.Clone(r.GUIDs)}
}

// Equal reports whether both responses carry the same values.
func (r *GUIDListResponse) Equal(other *GUIDListResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && slices.Equal(r.GUIDs, other.GUIDs)
}

// String renders the response for logs.
func (r *GUIDListResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("GUIDListResponse", r)
}

// NameListResponse carries a list of names.
type NameListResponse struct {
	FFDCResponseBase
	Names []string `json:"names,omitempty"`
}

// Result returns the names.
func (r *NameListResponse) Result() []string { return r.Names }

// Clone returns an independent copy.
func (r *NameListResponse) Clone() *NameListResponse {
	if r == nil {
		return nil
	}
	return &NameListResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), Names: slices.Clone(r.Names)}
}

// Equal reports whether both responses carry the same values.
func (r *NameListResponse) Equal(other *NameListResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && slices.Equal(r.Names, other.Names)
}

// String renders the response for logs.
func (r *NameListResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("NameListResponse", r)
}

// StringResponse carries a single string.
type StringResponse struct {
	FFDCResponseBase
	ResultString string `json:"resultString,omitempty"`
}

// Result returns the string.
func (r *StringResponse) Result() string { return r.ResultString }

// Clone returns an independent copy.
func (r *StringResponse) Clone() *StringResponse {
	if r == nil {
		return nil
	}
	return &StringResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), ResultString: r.ResultString}
}

// Equal reports whether both responses carry the same values.
func (r *StringResponse) Equal(other *StringResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && r.ResultString == other.ResultString
}

// String renders the response for logs.
func (r *StringResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("StringResponse", r)
}

// FolderResponse carries a single folder.
type FolderResponse struct {
	FFDCResponseBase
	Element *FolderElement `json:"element,omitempty"`
}

// Result returns the folder, or nil when none was set.
func (r *FolderResponse) Result() *FolderElement { return r.Element }

// Clone returns an independent copy.
func (r *FolderResponse) Clone() *FolderResponse {
	if r == nil {
		return nil
	}
	return &FolderResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), Element: r.Element.Clone()}
}

// Equal reports whether both responses carry the same values.
func (r *FolderResponse) Equal(other *FolderResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && r.Element.Equal(other.Element)
}

// String renders the response for logs.
func (r *FolderResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("FolderResponse", r)
}

// FolderListResponse carries a page of folders.
type FolderListResponse struct {
	FFDCResponseBase
	Elements []FolderElement `json:"elements,omitempty"`
}

// Result returns the folders.
func (r *FolderListResponse) Result() []FolderElement { return r.Elements }

// Clone returns an independent copy.
func (r *FolderListResponse) Clone() *FolderListResponse {
	if r == nil {
		return nil
	}
	return &FolderListResponse{FFDCResponseBase: *r.FFDCResponseBase.Clone(), Elements: cloneElements(r.Elements)}
}

// Equal reports whether both responses carry the same values.
func (r *FolderListResponse) Equal(other *FolderListResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.FFDCResponseBase.Equal(&other.FFDCResponseBase) && elementsEqual(r.Elements, other.Elements)
}

// String renders the response for logs.
func (r *FolderListResponse) String() string {
	if r == nil {
		return "<nil>"
	}
	return render("FolderListResponse", r)
}

var (
	_ Response                        = (*VoidResponse)(nil)
	_ ResultResponse[bool]            = (*BooleanResponse)(nil)
	_ ResultResponse[int64]           = (*CountResponse)(nil)
	_ ResultResponse[*time.Time]      = (*DateResponse)(nil)
	_ ResultResponse[string]          = (*GUIDResponse)(nil)
	_ ResultResponse[[]string]        = (*GUIDListResponse)(nil)
	_ ResultResponse[[]string]        = (*NameListResponse)(nil)
	_ ResultResponse[string]          = (*StringResponse)(nil)
	_ ResultResponse[*FolderElement]  = (*FolderResponse)(nil)
	_ ResultResponse[[]FolderElement] = (*FolderListResponse)(nil)
)
