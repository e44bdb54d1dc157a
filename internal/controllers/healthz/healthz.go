package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns 204 when the application is healthy and can reach its
// database, an error otherwise.
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
