package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var budget models.Budget
	err := models.DB.First(&budget, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no budget matching your query")

	var category models.Category
	err = models.DB.First(&category, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no category matching your query")
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	var budget models.Budget
	err := models.DB.First(&budget, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
