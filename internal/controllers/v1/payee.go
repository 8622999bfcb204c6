package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterPayeeRoutes registers the routes for Payees with
// the RouterGroup that is passed.
func RegisterPayeeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPayeeList)
		r.GET("", GetPayees)
		r.POST("", CreatePayee)
	}

	// Payee with ID
	{
		r.OPTIONS("/:id", OptionsPayeeDetail)
		r.GET("/:id", GetPayee)
		r.PATCH("/:id", UpdatePayee)
		r.DELETE("/:id", DeletePayee)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payees
// @Success		204
// @Router			/v1/payees [options]
func OptionsPayeeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payees/{id} [options]
func OptionsPayeeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Payee{})
}

// @Summary		Create payee
// @Description	Creates a new payee
// @Tags			Payees
// @Accept			json
// @Produce		json
// @Success		201		{object}	PayeeResponse
// @Failure		400		{object}	PayeeResponse
// @Failure		500		{object}	PayeeResponse
// @Param			payee	body		PayeeEditable	true	"Payee"
// @Router			/v1/payees [post]
func CreatePayee(c *gin.Context) {
	var editable PayeeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	payee := editable.model()
	err = models.DB.Create(&payee).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &e,
		})
		return
	}

	data := newPayee(c, payee)
	c.JSON(http.StatusCreated, PayeeResponse{Data: &data})
}

// @Summary		List payees
// @Description	Returns a list of payees
// @Tags			Payees
// @Produce		json
// @Success		200	{object}	PayeeListResponse
// @Failure		400	{object}	PayeeListResponse
// @Failure		500	{object}	PayeeListResponse
// @Router			/v1/payees [get]
// @Param			budget		query	string	false	"Filter by budget ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			archived	query	bool	false	"Is the payee archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first payee returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of payees to return. Defaults to 50."
func GetPayees(c *gin.Context) {
	var filter PayeeQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, PayeeListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var payees []models.Payee

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

	err := q.Find(&payees).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PayeeListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Payee, 0)
	for _, payee := range payees {
		apiResources = append(apiResources, newPayee(c, payee))
	}

	c.JSON(http.StatusOK, PayeeListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get payee
// @Description	Returns a specific payee
// @Tags			Payees
// @Produce		json
// @Success		200	{object}	PayeeResponse
// @Failure		400	{object}	PayeeResponse
// @Failure		404	{object}	PayeeResponse
// @Failure		500	{object}	PayeeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payees/{id} [get]
func GetPayee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	var payee models.Payee
	err = models.DB.First(&payee, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPayee(c, payee)
	c.JSON(http.StatusOK, PayeeResponse{Data: &apiResource})
}

// @Summary		Update payee
// @Description	Updates a payee. Only values to be updated need to be specified.
// @Tags			Payees
// @Accept			json
// @Produce		json
// @Success		200		{object}	PayeeResponse
// @Failure		400		{object}	PayeeResponse
// @Failure		404		{object}	PayeeResponse
// @Failure		500		{object}	PayeeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payee	body		PayeeEditable	true	"Payee"
// @Router			/v1/payees/{id} [patch]
func UpdatePayee(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	var payee models.Payee
	err = models.DB.First(&payee, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PayeeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	var data PayeeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&payee).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PayeeResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPayee(c, payee)
	c.JSON(http.StatusOK, PayeeResponse{Data: &apiResource})
}

// @Summary		Delete payee
// @Description	Deletes a payee
// @Tags			Payees
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payees/{id} [delete]
func DeletePayee(c *gin.Context) {
	deleteResource[models.Payee](c)
}
