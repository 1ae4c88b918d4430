package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"drivesort/internal/model"
	"drivesort/internal/service"
	"drivesort/internal/store"
)

// organizeRequest is the optional POST /organize body.
type organizeRequest struct {
	RootFolderID string `json:"root_folder_id"`
}

// organizeResponse mirrors the batch run's summary.
type organizeResponse struct {
	Message         string             `json:"message"`
	Processed       int                `json:"processed"`
	TotalItemsFound int                `json:"total_items_found"`
	Results         []model.FileResult `json:"results,omitempty"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, defaultRootFolderID string, orgSvc service.Organizer) {
	// Serve the static OpenAPI spec and a CDN-backed Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", APIDocs())

	app.Get("/healthz", LivenessProbe())
	app.Post("/organize", Organize(defaultRootFolderID, orgSvc))
}

// APIDocs serves a Swagger UI page that renders /openapi.yaml.
func APIDocs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	}
}

// LivenessProbe is a simple liveness check; the service has no persistent
// dependencies to probe beyond itself.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Organize runs one batch pass over a root folder's children. The root
// folder id comes from the request body when present, otherwise from
// configuration; with neither, the run is rejected before any store access.
func Organize(defaultRootFolderID string, orgSvc service.Organizer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req organizeRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}

		rootID := req.RootFolderID
		if rootID == "" {
			rootID = defaultRootFolderID
		}
		if rootID == "" {
			return writeError(c, fiber.StatusBadRequest, "ROOT_FOLDER_REQUIRED", "no root folder id in request or configuration")
		}

		summary, err := orgSvc.Run(c.UserContext(), rootID)
		if err != nil {
			if errors.Is(err, service.ErrNoRootFolder) {
				return writeError(c, fiber.StatusBadRequest, "ROOT_FOLDER_REQUIRED", "no root folder id in request or configuration")
			}
			if errors.Is(err, store.ErrQuery) {
				return writeError(c, fiber.StatusBadGateway, "STORE_ERROR", "document store request failed")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.JSON(organizeResponse{
			Message:         fmt.Sprintf("Processed %d files in folder %s.", summary.Processed, summary.RootFolderID),
			Processed:       summary.Processed,
			TotalItemsFound: summary.TotalItems,
			Results:         summary.Results,
		})
	}
}
