package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mishumang/prame/internal/handler"
)

func SetupRoutes(r chi.Router, h *handler.UserHandler, uploadDir string) chi.Router {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Route("/api/users", func(api chi.Router) {
		api.Post("/register", h.Register)
		api.Post("/login", h.Login)
		api.Post("/google-signin", h.GoogleSignIn)
		api.Get("/profile/{userId}", h.GetProfile)
		api.Post("/update/{userId}", h.UpdateProfile)
		api.Post("/upload/{userId}", h.UploadProfileImage)
		api.Post("/updateProgress", h.UpdateProgress)
		api.Get("/progress/{uid}", h.GetProgress)
		api.Post("/send-otp", h.SendOTP)
		api.Post("/verify-otp", h.VerifyOTP)
		api.Post("/registerPhone", h.RegisterWithPhone)
	})

	return r
}
