package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/openmeta/omrest"
	"github.com/openmeta/omrest/application/service"
	"github.com/openmeta/omrest/domain/folder"
	"github.com/openmeta/omrest/infrastructure/api/middleware"
	"github.com/openmeta/omrest/infrastructure/api/v1/dto"
)

// Action descriptions reported in FFDC error responses.
const (
	actionCreate      = "createFolder"
	actionGet         = "getFolderByGUID"
	actionUpdate      = "updateFolder"
	actionDescription = "setFolderDescription"
	actionDeprecated  = "setFolderDeprecated"
	actionDelete      = "deleteFolder"
	actionLastUpdated = "getFolderLastUpdated"
	actionPathName    = "getFolderPathName"
	actionChildGUIDs  = "getChildFolderGUIDs"
	actionChildNames  = "getChildFolderNames"
	actionSearch      = "findFoldersBySearchString"
	actionSearchCount = "countFoldersBySearchString"
	actionByName      = "getFoldersByName"
	actionByPathName  = "getFolderByPathName"
	actionPathExists  = "folderPathExists"
	actionRoute       = "routeFolderRequest"
)

// FoldersRouter handles folder API endpoints.
type FoldersRouter struct {
	client   *omrest.Client
	logger   *slog.Logger
	auth     middleware.AuthConfig
	paging   Paging
	validate *validator.Validate
}

// NewFoldersRouter creates a new FoldersRouter.
func NewFoldersRouter(client *omrest.Client, paging Paging) *FoldersRouter {
	return &FoldersRouter{
		client:   client,
		logger:   client.Logger(),
		auth:     middleware.NewAuthConfigWithKeys(client.APIKeys()),
		paging:   paging,
		validate: newValidator(),
	}
}

// Routes returns the chi router for folder endpoints.
// Only the routes that change folders are write protected; the POST
// queries are reads and stay open.
func (r *FoldersRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.NotFound(r.notFound)
	router.MethodNotAllowed(r.methodNotAllowed)
	write := router.With(middleware.WriteProtect(r.auth))

	write.Post("/", r.Create)
	router.Post("/by-search-string", r.FindBySearchString)
	router.Post("/by-search-string/count", r.CountBySearchString)
	router.Post("/by-name", r.FindByName)
	router.Post("/by-path-name", r.GetByPathName)
	router.Post("/by-path-name/exists", r.PathExists)

	router.Get("/{guid}", r.Get)
	write.Post("/{guid}/update", r.Update)
	write.Post("/{guid}/description", r.SetDescription)
	write.Post("/{guid}/deprecated", r.SetDeprecated)
	write.Post("/{guid}/delete", r.Delete)
	router.Get("/{guid}/last-updated", r.LastUpdated)
	router.Get("/{guid}/path-name", r.PathName)
	router.Get("/{guid}/children/guids", r.ChildGUIDs)
	router.Get("/{guid}/children/names", r.ChildNames)

	return router
}

func (r *FoldersRouter) notFound(w http.ResponseWriter, req *http.Request) {
	err := middleware.NewAPIError(http.StatusNotFound,
		fmt.Sprintf("no folder endpoint matches %s", req.URL.Path), nil)
	middleware.WriteError(w, req, actionRoute, err, r.logger)
}

func (r *FoldersRouter) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	err := middleware.NewAPIError(http.StatusMethodNotAllowed,
		fmt.Sprintf("method %s is not supported on %s", req.Method, req.URL.Path), nil)
	middleware.WriteError(w, req, actionRoute, err, r.logger)
}

// Create handles POST /api/v1/folders.
//
//	@Summary		Create folder
//	@Description	Create a folder below parentGUID, or at the root when it is empty
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.NewFolderRequestBody	true	"Folder to create"
//	@Success		200		{object}	dto.GUIDResponse
//	@Failure		400		{object}	dto.VoidResponse
//	@Failure		401		{object}	dto.VoidResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Failure		409		{object}	dto.VoidResponse
//	@Security		APIKeyAuth
//	@Router			/folders [post]
func (r *FoldersRouter) Create(w http.ResponseWriter, req *http.Request) {
	var body dto.NewFolderRequestBody
	err := r.decode(req, &body, false)
	if err != nil {
		middleware.WriteError(w, req, actionCreate, err, r.logger)
		return
	}

	parentGUID := body.ParentGUID
	if parentGUID != "" {
		if parentGUID, err = parseGUID(parentGUID); err != nil {
			middleware.WriteError(w, req, actionCreate, err, r.logger)
			return
		}
	}

	created, err := r.client.Folders.Create(req.Context(), parentGUID, propertiesFromDTO(body.Properties))
	if err != nil {
		middleware.WriteError(w, req, actionCreate, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.GUIDResponse{FFDCResponseBase: ok(), GUID: created.GUID()})
}

// Get handles GET /api/v1/folders/{guid}.
//
//	@Summary		Get folder
//	@Description	Get a folder by GUID
//	@Tags			folders
//	@Produce		json
//	@Param			guid		path		string	true	"Folder GUID"
//	@Param			forLineage	query		bool	false	"Include deleted folders"
//	@Success		200			{object}	dto.FolderResponse
//	@Failure		400			{object}	dto.VoidResponse
//	@Failure		404			{object}	dto.VoidResponse
//	@Router			/folders/{guid} [get]
func (r *FoldersRouter) Get(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionGet, err, r.logger)
		return
	}
	forLineage, err := boolQuery(req, "forLineage")
	if err != nil {
		middleware.WriteError(w, req, actionGet, err, r.logger)
		return
	}

	f, err := r.client.Folders.Get(req.Context(), guid, forLineage)
	if err != nil {
		middleware.WriteError(w, req, actionGet, err, r.logger)
		return
	}

	element := FolderToDTO(f)
	middleware.WriteJSON(w, http.StatusOK, dto.FolderResponse{FFDCResponseBase: ok(), Element: &element})
}

// Update handles POST /api/v1/folders/{guid}/update.
//
//	@Summary		Update folder
//	@Description	Merge or replace the properties of a folder
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			guid	path		string						true	"Folder GUID"
//	@Param			body	body		dto.UpdateFolderRequestBody	true	"New properties"
//	@Success		200		{object}	dto.VoidResponse
//	@Failure		400		{object}	dto.VoidResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Failure		409		{object}	dto.VoidResponse
//	@Security		APIKeyAuth
//	@Router			/folders/{guid}/update [post]
func (r *FoldersRouter) Update(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionUpdate, err, r.logger)
		return
	}

	var body dto.UpdateFolderRequestBody
	if err := r.decode(req, &body, false); err != nil {
		middleware.WriteError(w, req, actionUpdate, err, r.logger)
		return
	}

	if _, err := r.client.Folders.Update(req.Context(), guid, propertiesFromDTO(body.Properties), body.MergeUpdate); err != nil {
		middleware.WriteError(w, req, actionUpdate, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.VoidResponse{FFDCResponseBase: ok()})
}

// SetDescription handles POST /api/v1/folders/{guid}/description.
//
//	@Summary		Set folder description
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			guid	path		string					true	"Folder GUID"
//	@Param			body	body		dto.StringRequestBody	true	"Description"
//	@Success		200		{object}	dto.VoidResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Security		APIKeyAuth
//	@Router			/folders/{guid}/description [post]
func (r *FoldersRouter) SetDescription(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionDescription, err, r.logger)
		return
	}

	var body dto.StringRequestBody
	if err := r.decode(req, &body, false); err != nil {
		middleware.WriteError(w, req, actionDescription, err, r.logger)
		return
	}

	if err := r.client.Folders.SetDescription(req.Context(), guid, body.Value); err != nil {
		middleware.WriteError(w, req, actionDescription, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.VoidResponse{FFDCResponseBase: ok()})
}

// SetDeprecated handles POST /api/v1/folders/{guid}/deprecated.
//
//	@Summary		Deprecate or reinstate a folder
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			guid	path		string					true	"Folder GUID"
//	@Param			body	body		dto.BooleanRequestBody	true	"true to deprecate, false to reactivate"
//	@Success		200		{object}	dto.VoidResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Security		APIKeyAuth
//	@Router			/folders/{guid}/deprecated [post]
func (r *FoldersRouter) SetDeprecated(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionDeprecated, err, r.logger)
		return
	}

	var body dto.BooleanRequestBody
	if err := r.decode(req, &body, false); err != nil {
		middleware.WriteError(w, req, actionDeprecated, err, r.logger)
		return
	}

	if err := r.client.Folders.SetDeprecated(req.Context(), guid, body.Flag); err != nil {
		middleware.WriteError(w, req, actionDeprecated, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.VoidResponse{FFDCResponseBase: ok()})
}

// Delete handles POST /api/v1/folders/{guid}/delete. The body is optional.
//
//	@Summary		Delete folder
//	@Description	Soft delete or purge a folder, optionally with its descendants
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			guid	path		string					true	"Folder GUID"
//	@Param			body	body		dto.DeleteRequestBody	false	"Delete options"
//	@Success		200		{object}	dto.VoidResponse
//	@Failure		400		{object}	dto.VoidResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Security		APIKeyAuth
//	@Router			/folders/{guid}/delete [post]
func (r *FoldersRouter) Delete(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionDelete, err, r.logger)
		return
	}

	var body dto.DeleteRequestBody
	if err := r.decode(req, &body, true); err != nil {
		middleware.WriteError(w, req, actionDelete, err, r.logger)
		return
	}

	method, valid := folder.ParseDeleteMethod(string(body.DeleteMethod))
	if !valid {
		err := middleware.NewAPIError(http.StatusBadRequest, "unknown deleteMethod "+string(body.DeleteMethod), nil)
		middleware.WriteError(w, req, actionDelete, err, r.logger)
		return
	}

	params := service.DeleteParams{Method: method, Cascade: body.CascadedDelete}
	if err := r.client.Folders.Delete(req.Context(), guid, params); err != nil {
		middleware.WriteError(w, req, actionDelete, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.VoidResponse{FFDCResponseBase: ok()})
}

// LastUpdated handles GET /api/v1/folders/{guid}/last-updated.
//
//	@Summary		Folder last update time
//	@Tags			folders
//	@Produce		json
//	@Param			guid	path		string	true	"Folder GUID"
//	@Success		200		{object}	dto.DateResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Router			/folders/{guid}/last-updated [get]
func (r *FoldersRouter) LastUpdated(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionLastUpdated, err, r.logger)
		return
	}

	updated, err := r.client.Folders.LastUpdated(req.Context(), guid)
	if err != nil {
		middleware.WriteError(w, req, actionLastUpdated, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.DateResponse{FFDCResponseBase: ok(), Date: dto.NewEpochTime(updated)})
}

// PathName handles GET /api/v1/folders/{guid}/path-name.
//
//	@Summary		Folder path name
//	@Tags			folders
//	@Produce		json
//	@Param			guid	path		string	true	"Folder GUID"
//	@Success		200		{object}	dto.StringResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Router			/folders/{guid}/path-name [get]
func (r *FoldersRouter) PathName(w http.ResponseWriter, req *http.Request) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		middleware.WriteError(w, req, actionPathName, err, r.logger)
		return
	}

	path, err := r.client.Folders.PathName(req.Context(), guid)
	if err != nil {
		middleware.WriteError(w, req, actionPathName, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.StringResponse{FFDCResponseBase: ok(), ResultString: path})
}

// ChildGUIDs handles GET /api/v1/folders/{guid}/children/guids.
//
//	@Summary		Child folder GUIDs
//	@Tags			folders
//	@Produce		json
//	@Param			guid		path		string	true	"Folder GUID"
//	@Param			startFrom	query		int		false	"Offset (default: 0)"
//	@Param			pageSize	query		int		false	"Results per page (default: 100)"
//	@Success		200			{object}	dto.GUIDListResponse
//	@Failure		404			{object}	dto.VoidResponse
//	@Router			/folders/{guid}/children/guids [get]
func (r *FoldersRouter) ChildGUIDs(w http.ResponseWriter, req *http.Request) {
	guid, page, err := r.guidAndPage(req)
	if err != nil {
		middleware.WriteError(w, req, actionChildGUIDs, err, r.logger)
		return
	}

	guids, err := r.client.Folders.ChildGUIDs(req.Context(), guid, page)
	if err != nil {
		middleware.WriteError(w, req, actionChildGUIDs, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.GUIDListResponse{FFDCResponseBase: ok(), GUIDs: guids})
}

// ChildNames handles GET /api/v1/folders/{guid}/children/names.
//
//	@Summary		Child folder names
//	@Tags			folders
//	@Produce		json
//	@Param			guid		path		string	true	"Folder GUID"
//	@Param			startFrom	query		int		false	"Offset (default: 0)"
//	@Param			pageSize	query		int		false	"Results per page (default: 100)"
//	@Success		200			{object}	dto.NameListResponse
//	@Failure		404			{object}	dto.VoidResponse
//	@Router			/folders/{guid}/children/names [get]
func (r *FoldersRouter) ChildNames(w http.ResponseWriter, req *http.Request) {
	guid, page, err := r.guidAndPage(req)
	if err != nil {
		middleware.WriteError(w, req, actionChildNames, err, r.logger)
		return
	}

	names, err := r.client.Folders.ChildNames(req.Context(), guid, page)
	if err != nil {
		middleware.WriteError(w, req, actionChildNames, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.NameListResponse{FFDCResponseBase: ok(), Names: names})
}

// FindBySearchString handles POST /api/v1/folders/by-search-string.
//
//	@Summary		Search folders
//	@Description	Match qualified name, display name or description against a search string
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			startFrom	query		int							false	"Offset (default: 0)"
//	@Param			pageSize	query		int							false	"Results per page (default: 100)"
//	@Param			body		body		dto.SearchStringRequestBody	false	"Search"
//	@Success		200			{object}	dto.FolderListResponse
//	@Failure		400			{object}	dto.VoidResponse
//	@Router			/folders/by-search-string [post]
func (r *FoldersRouter) FindBySearchString(w http.ResponseWriter, req *http.Request) {
	page, err := r.paging.Parse(req)
	if err != nil {
		middleware.WriteError(w, req, actionSearch, err, r.logger)
		return
	}

	var body dto.SearchStringRequestBody
	if err := r.decode(req, &body, true); err != nil {
		middleware.WriteError(w, req, actionSearch, err, r.logger)
		return
	}

	folders, err := r.client.Folders.FindBySearchString(req.Context(), searchQuery(body), statusFilter(body.LimitResultsByStatus, body.ForLineage), page)
	if err != nil {
		middleware.WriteError(w, req, actionSearch, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.FolderListResponse{FFDCResponseBase: ok(), Elements: foldersToDTO(folders)})
}

// CountBySearchString handles POST /api/v1/folders/by-search-string/count.
//
//	@Summary		Count matching folders
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.SearchStringRequestBody	false	"Search"
//	@Success		200		{object}	dto.CountResponse
//	@Failure		400		{object}	dto.VoidResponse
//	@Router			/folders/by-search-string/count [post]
func (r *FoldersRouter) CountBySearchString(w http.ResponseWriter, req *http.Request) {
	var body dto.SearchStringRequestBody
	if err := r.decode(req, &body, true); err != nil {
		middleware.WriteError(w, req, actionSearchCount, err, r.logger)
		return
	}

	count, err := r.client.Folders.CountBySearchString(req.Context(), searchQuery(body), statusFilter(body.LimitResultsByStatus, body.ForLineage))
	if err != nil {
		middleware.WriteError(w, req, actionSearchCount, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CountResponse{FFDCResponseBase: ok(), Count: count})
}

// FindByName handles POST /api/v1/folders/by-name.
//
//	@Summary		Folders by name
//	@Description	Exact match on qualified name or display name
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			startFrom	query		int						false	"Offset (default: 0)"
//	@Param			pageSize	query		int						false	"Results per page (default: 100)"
//	@Param			body		body		dto.FilterRequestBody	true	"Name filter"
//	@Success		200			{object}	dto.FolderListResponse
//	@Failure		400			{object}	dto.VoidResponse
//	@Router			/folders/by-name [post]
func (r *FoldersRouter) FindByName(w http.ResponseWriter, req *http.Request) {
	page, err := r.paging.Parse(req)
	if err != nil {
		middleware.WriteError(w, req, actionByName, err, r.logger)
		return
	}

	var body dto.FilterRequestBody
	if err := r.decode(req, &body, false); err != nil {
		middleware.WriteError(w, req, actionByName, err, r.logger)
		return
	}

	folders, err := r.client.Folders.FindByName(req.Context(), body.Filter, statusFilter(body.LimitResultsByStatus, body.ForLineage), page)
	if err != nil {
		middleware.WriteError(w, req, actionByName, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.FolderListResponse{FFDCResponseBase: ok(), Elements: foldersToDTO(folders)})
}

// GetByPathName handles POST /api/v1/folders/by-path-name.
//
//	@Summary		Folder by path name
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.PathNameRequestBody	true	"Path"
//	@Success		200		{object}	dto.FolderResponse
//	@Failure		400		{object}	dto.VoidResponse
//	@Failure		404		{object}	dto.VoidResponse
//	@Router			/folders/by-path-name [post]
func (r *FoldersRouter) GetByPathName(w http.ResponseWriter, req *http.Request) {
	var body dto.PathNameRequestBody
	if err := r.decode(req, &body, false); err != nil {
		middleware.WriteError(w, req, actionByPathName, err, r.logger)
		return
	}

	f, err := r.client.Folders.GetByPathName(req.Context(), body.FullPath, body.ForLineage)
	if err != nil {
		middleware.WriteError(w, req, actionByPathName, err, r.logger)
		return
	}

	element := FolderToDTO(f)
	middleware.WriteJSON(w, http.StatusOK, dto.FolderResponse{FFDCResponseBase: ok(), Element: &element})
}

// PathExists handles POST /api/v1/folders/by-path-name/exists.
//
//	@Summary		Check a folder path
//	@Tags			folders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.PathNameRequestBody	true	"Path"
//	@Success		200		{object}	dto.BooleanResponse
//	@Failure		400		{object}	dto.VoidResponse
//	@Router			/folders/by-path-name/exists [post]
func (r *FoldersRouter) PathExists(w http.ResponseWriter, req *http.Request) {
	var body dto.PathNameRequestBody
	if err := r.decode(req, &body, false); err != nil {
		middleware.WriteError(w, req, actionPathExists, err, r.logger)
		return
	}

	exists, err := r.client.Folders.PathExists(req.Context(), body.FullPath)
	if err != nil {
		middleware.WriteError(w, req, actionPathExists, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.BooleanResponse{FFDCResponseBase: ok(), Flag: exists})
}

func (r *FoldersRouter) decode(req *http.Request, body any, optional bool) error {
	if err := decodeBody(req, body, optional); err != nil {
		return err
	}
	return validateBody(r.validate, body)
}

func (r *FoldersRouter) guidAndPage(req *http.Request) (string, service.Page, error) {
	guid, err := parseGUID(chi.URLParam(req, "guid"))
	if err != nil {
		return "", service.Page{}, err
	}
	page, err := r.paging.Parse(req)
	if err != nil {
		return "", service.Page{}, err
	}
	return guid, page, nil
}

func ok() dto.FFDCResponseBase {
	return dto.FFDCResponseBase{RelatedHTTPCode: http.StatusOK}
}

func boolQuery(req *http.Request, name string) (bool, error) {
	s := req.URL.Query().Get(name)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, middleware.NewAPIError(http.StatusBadRequest, name+" must be true or false", err)
	}
	return v, nil
}

func searchQuery(body dto.SearchStringRequestBody) folder.SearchQuery {
	return folder.SearchQuery{
		Text:       body.SearchString,
		StartsWith: body.StartsWith,
		EndsWith:   body.EndsWith,
		IgnoreCase: body.IgnoreCase,
	}
}

func statusFilter(statuses []dto.ElementStatus, forLineage bool) service.StatusFilter {
	return service.StatusFilter{
		Statuses: lo.FilterMap(statuses, func(s dto.ElementStatus, _ int) (folder.Status, bool) {
			return folder.ParseStatus(string(s))
		}),
		ForLineage: forLineage,
	}
}

func propertiesFromDTO(p *dto.FolderProperties) folder.Properties {
	if p == nil {
		return folder.Properties{}
	}
	return folder.Properties{
		QualifiedName:        p.QualifiedName,
		DisplayName:          p.DisplayName,
		Description:          p.Description,
		AdditionalProperties: p.AdditionalProperties,
	}
}

// FolderToDTO converts a folder to its wire element.
func FolderToDTO(f folder.Folder) dto.FolderElement {
	return dto.FolderElement{
		ElementHeader: &dto.ElementHeader{
			GUID:       f.GUID(),
			TypeName:   f.TypeName(),
			Status:     dto.ElementStatus(f.Status()),
			CreateTime: dto.NewEpochTime(f.CreatedAt()),
			UpdateTime: dto.NewEpochTime(f.UpdatedAt()),
			Version:    f.Version(),
		},
		Properties: &dto.FolderProperties{
			QualifiedName:        f.QualifiedName(),
			DisplayName:          f.DisplayName(),
			Description:          f.Description(),
			PathName:             f.PathName(),
			AdditionalProperties: f.AdditionalProperties(),
		},
		ParentGUID: f.ParentGUID(),
	}
}

func foldersToDTO(folders []folder.Folder) []dto.FolderElement {
	return lo.Map(folders, func(f folder.Folder, _ int) dto.FolderElement {
		return FolderToDTO(f)
	})
}
