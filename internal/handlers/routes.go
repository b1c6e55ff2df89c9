package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register wires every route onto the app. One canonical route per
// operation.
func Register(app *fiber.App, media *MediaHandler, playlists *PlaylistHandler, monitors *MonitorHandler, menu *MenuHandler) {
	app.Post("/midias", media.Upload)
	app.Get("/midias", media.List)
	app.Delete("/midias/:id", media.Delete)

	app.Post("/playlists", playlists.Create)
	app.Get("/playlists", playlists.List)
	app.Delete("/playlists/:id", playlists.Delete)
	app.Post("/playlists/:id/midias", playlists.UploadItems)
	app.Put("/playlists/:id/midias", playlists.AppendItems)
	app.Post("/playlists/:playlistId/midias/:midiaId", playlists.AssociateMedia)
	app.Delete("/playlists/:playlistId/midias/:midiaId", playlists.RemoveItem)

	app.Post("/monitores", monitors.Create)
	app.Get("/monitores", monitors.List)
	app.Get("/monitores/:id", monitors.Get)
	app.Put("/monitores/:id", monitors.AssignPlaylist)
	app.Delete("/monitores/:id", monitors.Delete)

	app.Get("/playlist/:monitorId", monitors.PlaylistURLs)

	app.Get("/api/cardapio", menu.List)
	app.Post("/api/cardapio", menu.Create)
	app.Put("/api/cardapio/:id", menu.UpdatePrice)
	app.Delete("/api/cardapio/:id", menu.Delete)
	app.Get("/api/inicializar", menu.Seed)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
}
