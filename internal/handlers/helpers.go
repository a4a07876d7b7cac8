package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
	"github.com/BruksfildServices01/physio-clinic/internal/domain/catalog"
	"github.com/BruksfildServices01/physio-clinic/internal/httperr"
	"github.com/BruksfildServices01/physio-clinic/internal/middleware"
)

// notFound maps a repository miss to a 404 business error.
func notFound(err error, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFoundErr(code, message)
	}
	return err
}

// listFilter honors ?all=true only for admins.
func listFilter(c *gin.Context) catalog.ListFilter {
	return catalog.ListFilter{
		IncludeInactive: middleware.IsAdmin(c) && c.Query("all") == "true",
	}
}
