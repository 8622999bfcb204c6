package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterCategoryGroupRoutes registers the routes for CategoryGroups with
// the RouterGroup that is passed.
func RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryGroupList)
		r.GET("", GetCategoryGroups)
		r.POST("", CreateCategoryGroup)
	}

	// CategoryGroup with ID
	{
		r.OPTIONS("/:id", OptionsCategoryGroupDetail)
		r.GET("/:id", GetCategoryGroup)
		r.PATCH("/:id", UpdateCategoryGroup)
		r.DELETE("/:id", DeleteCategoryGroup)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Router			/v1/category-groups [options]
func OptionsCategoryGroupList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [options]
func OptionsCategoryGroupDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CategoryGroup{})
}

// @Summary		Create category group
// @Description	Creates a new category group
// @Tags			CategoryGroups
// @Accept			json
// @Produce		json
// @Success		201		{object}	CategoryGroupResponse
// @Failure		400		{object}	CategoryGroupResponse
// @Failure		500		{object}	CategoryGroupResponse
// @Param			group	body		CategoryGroupEditable	true	"Category group"
// @Router			/v1/category-groups [post]
func CreateCategoryGroup(c *gin.Context) {
	var editable CategoryGroupEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &e,
		})
		return
	}

	group := editable.model()
	err = models.DB.Create(&group).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &e,
		})
		return
	}

	data := newCategoryGroup(c, group)
	c.JSON(http.StatusCreated, CategoryGroupResponse{Data: &data})
}

// @Summary		List category groups
// @Description	Returns a list of category groups
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupListResponse
// @Failure		400	{object}	CategoryGroupListResponse
// @Failure		500	{object}	CategoryGroupListResponse
// @Router			/v1/category-groups [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the group archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first group returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of groups to return. Defaults to 50."
func GetCategoryGroups(c *gin.Context) {
	var filter CategoryGroupQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CategoryGroupListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var groups []models.CategoryGroup

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&groups).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryGroupListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]CategoryGroup, 0)
	for _, group := range groups {
		apiResources = append(apiResources, newCategoryGroup(c, group))
	}

	c.JSON(http.StatusOK, CategoryGroupListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroupResponse
// @Failure		400	{object}	CategoryGroupResponse
// @Failure		404	{object}	CategoryGroupResponse
// @Failure		500	{object}	CategoryGroupResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [get]
func GetCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var group models.CategoryGroup
	err = models.DB.First(&group, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	apiResource := newCategoryGroup(c, group)
	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &apiResource})
}

// @Summary		Update category group
// @Description	Updates a category group. Only values to be updated need to be specified.
// @Tags			CategoryGroups
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategoryGroupResponse
// @Failure		400		{object}	CategoryGroupResponse
// @Failure		404		{object}	CategoryGroupResponse
// @Failure		500		{object}	CategoryGroupResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			group	body		CategoryGroupEditable	true	"Category group"
// @Router			/v1/category-groups/{id} [patch]
func UpdateCategoryGroup(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var group models.CategoryGroup
	err = models.DB.First(&group, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryGroupEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	var data CategoryGroupEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&group).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryGroupResponse{
			Error: &s,
		})
		return
	}

	apiResource := newCategoryGroup(c, group)
	c.JSON(http.StatusOK, CategoryGroupResponse{Data: &apiResource})
}

// @Summary		Delete category group
// @Description	Deletes a category group
// @Tags			CategoryGroups
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/category-groups/{id} [delete]
func DeleteCategoryGroup(c *gin.Context) {
	deleteResource[models.CategoryGroup](c)
}
