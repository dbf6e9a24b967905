package controllers_test

import (
	"net/http"
	"time"
)

func (suite *TestSuiteStandard) TestTriggerSynchronization() {
	recorder := suite.request(http.MethodPost, "/v1/synchronize", nil)
	suite.Assert().Equal(http.StatusAccepted, recorder.Code)

	// The pass runs in the background
	suite.Assert().Eventually(func() bool {
		return suite.triggered.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func (suite *TestSuiteStandard) TestGetLookups() {
	recorder := suite.request(http.MethodGet, "/v1/categories", nil)
	suite.Assert().Equal(http.StatusOK, recorder.Code)

	recorder = suite.request(http.MethodGet, "/v1/operation-types", nil)
	suite.Assert().Equal(http.StatusOK, recorder.Code)
}
