package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplecore/employee-records/internal/domain"
	"github.com/peoplecore/employee-records/internal/logger"
)

// ChildOps bundles the four storage operations for one child collection. The
// route factory works entirely through this struct, so every collection shares
// one handler implementation with full type safety.
type ChildOps[T any] struct {
	List   func(ctx context.Context, employeeID string) ([]T, error)
	Create func(ctx context.Context, rec T) (T, error)
	Update func(ctx context.Context, id string, patch domain.Patch) (T, error)
	Delete func(ctx context.Context, id string) error
}

// ResourceConfig describes one child collection's routes.
type ResourceConfig struct {
	// Name is the URL path segment, e.g. "training" or "timeOff".
	Name string
	// RequireBodyMatch rejects creates whose body employeeId differs from the
	// path instead of overwriting it.
	RequireBodyMatch bool
	// LogRequests emits a debug log line for every request on this resource.
	LogRequests bool
	// NoCache marks responses as non-cacheable.
	NoCache bool
}

// childRecord is the view of a child type the factory needs: read and write
// access to the id and owning employee id.
type childRecord[T any] interface {
	*T
	RecordID() string
	OwnerID() string
	SetOwnerID(string)
}

// RegisterChildRoutes wires the four standard routes for one child collection:
//
//	GET    /employees/:employeeId/<name>
//	POST   /employees/:employeeId/<name>
//	PATCH  /<name>/:id
//	DELETE /<name>/:id
func RegisterChildRoutes[T any, P childRecord[T]](g *echo.Group, cfg ResourceConfig, ops ChildOps[T]) {
	g.GET("/employees/:employeeId/"+cfg.Name, listChild(cfg, ops))
	g.POST("/employees/:employeeId/"+cfg.Name, createChild[T, P](cfg, ops))
	g.PATCH("/"+cfg.Name+"/:id", updateChild(cfg, ops))
	g.DELETE("/"+cfg.Name+"/:id", deleteChild(cfg, ops))
}

func listChild[T any](cfg ResourceConfig, ops ChildOps[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		prepare(c, cfg)
		records, err := ops.List(c.Request().Context(), c.Param("employeeId"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, records)
	}
}

func createChild[T any, P childRecord[T]](cfg ResourceConfig, ops ChildOps[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		prepare(c, cfg)

		var rec T
		if err := decodeBody(c.Request().Body, &rec); err != nil {
			return respondError(c, err)
		}

		p := P(&rec)
		if p.RecordID() != "" {
			return respondError(c, domain.Invalid("id is assigned by the server"))
		}

		employeeID := c.Param("employeeId")
		if cfg.RequireBodyMatch {
			if p.OwnerID() != employeeID {
				return respondError(c, domain.Invalid("employeeId in body does not match path"))
			}
		} else {
			p.SetOwnerID(employeeID)
		}

		created, err := ops.Create(c.Request().Context(), rec)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateChild[T any](cfg ResourceConfig, ops ChildOps[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		prepare(c, cfg)

		patch, err := decodePatch(c.Request().Body)
		if err != nil {
			return respondError(c, err)
		}

		updated, err := ops.Update(c.Request().Context(), c.Param("id"), patch)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteChild[T any](cfg ResourceConfig, ops ChildOps[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		prepare(c, cfg)
		if err := ops.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return respondError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func prepare(c echo.Context, cfg ResourceConfig) {
	if cfg.NoCache {
		c.Response().Header().Set("Cache-Control", "no-store")
	}
	if cfg.LogRequests {
		logger.DebugLog(c.Request().Context(), "resource %s: %s %s",
			cfg.Name, c.Request().Method, c.Request().URL.Path)
	}
}
