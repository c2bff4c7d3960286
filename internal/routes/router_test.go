package routes_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"go-multiuser-todo/backend/testutil"
)

func TestRouter_LogsRecoveredPanic(t *testing.T) {
	db, r, _, _ := testutil.SetupTestDB(t)
	defer db.Close()

	var buf bytes.Buffer
	logger := logrus.StandardLogger()
	origOut, origLevel := logger.Out, logger.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.InfoLevel)
	defer func() {
		logrus.SetOutput(origOut)
		logrus.SetLevel(origLevel)
	}()

	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := testutil.DoJSON(t, r, http.MethodGet, "/boom", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "path=/boom")
	assert.Contains(t, buf.String(), "status=500")
}
