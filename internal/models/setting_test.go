package models_test

import (
	"github.com/bankwatch/backend/internal/models"
)

func (suite *TestSuiteStandard) TestFindOrCreateSetting() {
	setting, err := models.FindOrCreateSetting(models.DB, "answer", "42")
	suite.Require().NoError(err)
	suite.Assert().Equal("42", setting.Value)

	// A second call finds the existing row and ignores the default
	setting, err = models.FindOrCreateSetting(models.DB, "answer", "23")
	suite.Require().NoError(err)
	suite.Assert().Equal("42", setting.Value)
}

func (suite *TestSuiteStandard) TestBoolSetting() {
	// An unknown setting defaults to false
	suite.Assert().False(models.BoolSetting(models.DB, models.SettingSyncOnStartup))

	err := models.DB.Model(&models.Setting{}).
		Where("name = ?", models.SettingSyncOnStartup).
		Update("value", "true").Error
	suite.Require().NoError(err)

	suite.Assert().True(models.BoolSetting(models.DB, models.SettingSyncOnStartup))
}

func (suite *TestSuiteStandard) TestBoolSettingUnparsable() {
	_, err := models.FindOrCreateSetting(models.DB, "broken", "maybe")
	suite.Require().NoError(err)

	suite.Assert().False(models.BoolSetting(models.DB, "broken"))
}

func (suite *TestSuiteStandard) TestSettingNameUnique() {
	_, err := models.FindOrCreateSetting(models.DB, "unique-name", "1")
	suite.Require().NoError(err)

	err = models.DB.Create(&models.Setting{Name: "unique-name", Value: "2"}).Error
	suite.Assert().ErrorIs(err, models.ErrSettingNameNotUnique)
}
