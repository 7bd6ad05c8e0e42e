package dto

import "maps"

// ElementHeader identifies a stored metadata element.
type ElementHeader struct {
	GUID       string        `json:"guid,omitempty"`
	TypeName   string        `json:"typeName,omitempty"`
	Status     ElementStatus `json:"status,omitempty"`
	CreateTime *EpochTime    `json:"createTime,omitempty"`
	UpdateTime *EpochTime    `json:"updateTime,omitempty"`
	Version    int64         `json:"version"`
}

// Clone returns an independent copy.
func (h *ElementHeader) Clone() *ElementHeader {
	if h == nil {
		return nil
	}
	c := *h
	c.CreateTime = cloneEpoch(h.CreateTime)
	c.UpdateTime = cloneEpoch(h.UpdateTime)
	return &c
}

// Equal reports whether both headers carry the same values.
func (h *ElementHeader) Equal(other *ElementHeader) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.GUID == other.GUID &&
		h.TypeName == other.TypeName &&
		h.Status == other.Status &&
		epochEqual(h.CreateTime, other.CreateTime) &&
		epochEqual(h.UpdateTime, other.UpdateTime) &&
		h.Version == other.Version
}

// String renders the header for logs.
func (h *ElementHeader) String() string {
	if h == nil {
		return "<nil>"
	}
	return render("ElementHeader", h)
}

// FolderProperties are the user-controlled properties of a folder.
// PathName is derived by the server and ignored on create and update.
type FolderProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty"`
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	PathName             string            `json:"pathName,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

// Clone returns an independent copy.
func (p *FolderProperties) Clone() *FolderProperties {
	if p == nil {
		return nil
	}
	c := *p
	c.AdditionalProperties = maps.Clone(p.AdditionalProperties)
	return &c
}

// Equal reports whether both property sets carry the same values.
func (p *FolderProperties) Equal(other *FolderProperties) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.QualifiedName == other.QualifiedName &&
		p.DisplayName == other.DisplayName &&
		p.Description == other.Description &&
		p.PathName == other.PathName &&
		maps.Equal(p.AdditionalProperties, other.AdditionalProperties)
}

// String renders the properties for logs.
func (p *FolderProperties) String() string {
	if p == nil {
		return "<nil>"
	}
	return render("FolderProperties", p)
}

// FolderElement wraps a folder's header and properties.
type FolderElement struct {
	ElementHeader *ElementHeader    `json:"elementHeader,omitempty"`
	Properties    *FolderProperties `json:"properties,omitempty"`
	ParentGUID    string            `json:"parentGUID,omitempty"`
}

// Clone returns an independent copy.
func (e *FolderElement) Clone() *FolderElement {
	if e == nil {
		return nil
	}
	return &FolderElement{
		ElementHeader: e.ElementHeader.Clone(),
		Properties:    e.Properties.Clone(),
		ParentGUID:    e.ParentGUID,
	}
}

// Equal reports whether both elements carry the same values.
func (e *FolderElement) Equal(other *FolderElement) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ElementHeader.Equal(other.ElementHeader) &&
		e.Properties.Equal(other.Properties) &&
		e.ParentGUID == other.ParentGUID
}

// String renders the element for logs.
func (e *FolderElement) String() string {
	if e == nil {
		return "<nil>"
	}
	return render("FolderElement", e)
}

func cloneElements(elements []FolderElement) []FolderElement {
	if elements == nil {
		return nil
	}
	c := make([]FolderElement, len(elements))
	for i := range elements {
		c[i] = *elements[i].Clone()
	}
	return c
}

func elementsEqual(a, b []FolderElement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}
