package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

// Page selects a window of a list result. Zero values leave paging to the
// server defaults.
type Page struct {
	StartFrom int
	PageSize  int
}

func (p Page) query() (url.Values, error) {
	q := url.Values{}
	if p.StartFrom > 0 {
		if err := addQuery(q, "startFrom", p.StartFrom); err != nil {
			return nil, err
		}
	}
	if p.PageSize > 0 {
		if err := addQuery(q, "pageSize", p.PageSize); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// CreateFolder creates a folder and returns its GUID.
func (c *Client) CreateFolder(ctx context.Context, body dto.NewFolderRequestBody) (string, error) {
	resp, err := do[dto.GUIDResponse](ctx, c, http.MethodPost, foldersPath, nil, body)
	if err != nil {
		return "", err
	}
	return resp.Result(), nil
}

// GetFolder returns the folder with the given GUID. Deleted folders are
// only returned when forLineage is set.
func (c *Client) GetFolder(ctx context.Context, guid string, forLineage bool) (*dto.FolderElement, error) {
	path, err := folderPath(guid)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	if forLineage {
		if err := addQuery(q, "forLineage", true); err != nil {
			return nil, err
		}
	}
	resp, err := do[dto.FolderResponse](ctx, c, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Result(), nil
}

// UpdateFolder merges or replaces the folder's properties.
func (c *Client) UpdateFolder(ctx context.Context, guid string, body dto.UpdateFolderRequestBody) error {
	return c.post(ctx, guid, "/update", body)
}

// SetFolderDescription replaces the folder's description.
func (c *Client) SetFolderDescription(ctx context.Context, guid, description string) error {
	return c.post(ctx, guid, "/description", dto.StringRequestBody{Value: description})
}

// SetFolderDeprecated deprecates the folder, or reactivates it when flag is false.
func (c *Client) SetFolderDeprecated(ctx context.Context, guid string, flag bool) error {
	return c.post(ctx, guid, "/deprecated", dto.BooleanRequestBody{Flag: flag})
}

// DeleteFolder removes the folder using opts.
func (c *Client) DeleteFolder(ctx context.Context, guid string, opts dto.DeleteOptions) error {
	return c.post(ctx, guid, "/delete", dto.DeleteRequestBody{DeleteOptions: opts})
}

func (c *Client) post(ctx context.Context, guid, action string, body any) error {
	path, err := folderPath(guid, action)
	if err != nil {
		return err
	}
	_, err = do[dto.VoidResponse](ctx, c, http.MethodPost, path, nil, body)
	return err
}

// FolderLastUpdated returns when the folder last changed.
func (c *Client) FolderLastUpdated(ctx context.Context, guid string) (time.Time, error) {
	path, err := folderPath(guid, "/last-updated")
	if err != nil {
		return time.Time{}, err
	}
	resp, err := do[dto.DateResponse](ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return time.Time{}, err
	}
	if t := resp.Result(); t != nil {
		return *t, nil
	}
	return time.Time{}, nil
}

// FolderPathName returns the folder's full path.
func (c *Client) FolderPathName(ctx context.Context, guid string) (string, error) {
	path, err := folderPath(guid, "/path-name")
	if err != nil {
		return "", err
	}
	resp, err := do[dto.StringResponse](ctx, c, http.MethodGet, path, nil, nil)
	if err != nil {
		return "", err
	}
	return resp.Result(), nil
}

// ChildFolderGUIDs lists the GUIDs of the folder's direct children.
func (c *Client) ChildFolderGUIDs(ctx context.Context, guid string, page Page) ([]string, error) {
	path, q, err := pagedFolderPath(guid, "/children/guids", page)
	if err != nil {
		return nil, err
	}
	resp, err := do[dto.GUIDListResponse](ctx, c, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Result(), nil
}

// ChildFolderNames lists the display names of the folder's direct children.
func (c *Client) ChildFolderNames(ctx context.Context, guid string, page Page) ([]string, error) {
	path, q, err := pagedFolderPath(guid, "/children/names", page)
	if err != nil {
		return nil, err
	}
	resp, err := do[dto.NameListResponse](ctx, c, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	return resp.Result(), nil
}

func pagedFolderPath(guid, action string, page Page) (string, url.Values, error) {
	path, err := folderPath(guid, action)
	if err != nil {
		return "", nil, err
	}
	q, err := page.query()
	if err != nil {
		return "", nil, err
	}
	return path, q, nil
}

// FindFolders returns the folders matching body.
func (c *Client) FindFolders(ctx context.Context, body dto.SearchStringRequestBody, page Page) ([]dto.FolderElement, error) {
	q, err := page.query()
	if err != nil {
		return nil, err
	}
	resp, err := do[dto.FolderListResponse](ctx, c, http.MethodPost, foldersPath+"/by-search-string", q, body)
	if err != nil {
		return nil, err
	}
	return resp.Result(), nil
}

// CountFolders returns the number of folders matching body.
func (c *Client) CountFolders(ctx context.Context, body dto.SearchStringRequestBody) (int64, error) {
	resp, err := do[dto.CountResponse](ctx, c, http.MethodPost, foldersPath+"/by-search-string/count", nil, body)
	if err != nil {
		return 0, err
	}
	return resp.Result(), nil
}

// FoldersByName returns folders whose qualified or display name equals body.Filter.
func (c *Client) FoldersByName(ctx context.Context, body dto.FilterRequestBody, page Page) ([]dto.FolderElement, error) {
	q, err := page.query()
	if err != nil {
		return nil, err
	}
	resp, err := do[dto.FolderListResponse](ctx, c, http.MethodPost, foldersPath+"/by-name", q, body)
	if err != nil {
		return nil, err
	}
	return resp.Result(), nil
}

// FolderByPathName resolves a full path such as /finance/reports.
func (c *Client) FolderByPathName(ctx context.Context, body dto.PathNameRequestBody) (*dto.FolderElement, error) {
	resp, err := do[dto.FolderResponse](ctx, c, http.MethodPost, foldersPath+"/by-path-name", nil, body)
	if err != nil {
		return nil, err
	}
	return resp.Result(), nil
}

// FolderPathExists reports whether a visible folder exists at path.
func (c *Client) FolderPathExists(ctx context.Context, path string) (bool, error) {
	body := dto.PathNameRequestBody{FullPath: path}
	resp, err := do[dto.BooleanResponse](ctx, c, http.MethodPost, foldersPath+"/by-path-name/exists", nil, body)
	if err != nil {
		return false, err
	}
	return resp.Result(), nil
}
