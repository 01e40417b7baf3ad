package router

import (
	"net/http"

	"medora-backend/app/controllers"
)

func NewRouter(authCtrl *controllers.AuthController, healthCtrl *controllers.HealthController) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/signup", authCtrl.Signup)
	mux.HandleFunc("/token", authCtrl.Token)
	mux.HandleFunc("/health", healthCtrl.Health)
	return mux
}
