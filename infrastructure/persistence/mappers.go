package persistence

import (
	"encoding/json"
	"log/slog"

	"github.com/openmeta/omrest/domain/folder"
)

// FolderMapper maps between domain Folder and persistence FolderModel.
type FolderMapper struct{}

// ToDomain converts a FolderModel to a domain Folder.
func (m FolderMapper) ToDomain(e FolderModel) folder.Folder {
	return folder.ReconstructFolder(
		e.ID,
		e.GUID,
		e.QualifiedName,
		e.DisplayName,
		e.Description,
		e.PathName,
		e.ParentGUID,
		folder.Status(e.Status),
		decodeProperties(e.AdditionalProperties),
		e.Version,
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Folder to a FolderModel.
func (m FolderMapper) ToModel(f folder.Folder) FolderModel {
	return FolderModel{
		ID:                   f.ID(),
		GUID:                 f.GUID(),
		QualifiedName:        f.QualifiedName(),
		DisplayName:          f.DisplayName(),
		Description:          f.Description(),
		PathName:             f.PathName(),
		ParentGUID:           f.ParentGUID(),
		Status:               string(f.Status()),
		AdditionalProperties: encodeProperties(f.AdditionalProperties()),
		Version:              f.Version(),
		CreatedAt:            f.CreatedAt(),
		UpdatedAt:            f.UpdatedAt(),
	}
}

func encodeProperties(props map[string]string) string {
	if len(props) == 0 {
		return ""
	}
	data, err := json.Marshal(props)
	if err != nil {
		// map[string]string always marshals
		return ""
	}
	return string(data)
}

func decodeProperties(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	var props map[string]string
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		slog.Warn("discarding malformed additional properties", "error", err)
		return nil
	}
	return props
}
