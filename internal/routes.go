package internal

import (
	"net/http"

	"namecard/internal/controllers"
	"namecard/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, adminController *controllers.AdminController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/recording-status", http.HandlerFunc(apiController.RecordingStatus))
	routers.Post("/api/record-location", http.HandlerFunc(apiController.RecordLocation))
	routers.Get("/api/locations", http.HandlerFunc(apiController.ListLocations))
	routers.Delete("/api/locations/{id}", http.HandlerFunc(apiController.DeleteLocation))
	routers.Get("/api/card-info", http.HandlerFunc(apiController.CardInfo))

	routers.Post("/api/admin/login", http.HandlerFunc(adminController.Login))
	routers.Post("/api/admin/session", http.HandlerFunc(adminController.SetSession))
	routers.Get("/api/admin/session-status", http.HandlerFunc(adminController.SessionStatus))
	routers.Get("/api/admin/locations", http.HandlerFunc(adminController.Locations))
	routers.Delete("/api/admin/locations/{id}", http.HandlerFunc(adminController.DeleteLocation))
	routers.Get("/api/admin/config", http.HandlerFunc(adminController.GetConfig))
	routers.Put("/api/admin/config", http.HandlerFunc(adminController.PutConfig))

	return routers
}
