package main

import (
	"flag"

	"medora-backend/global"
	"medora-backend/initialize"
	"medora-backend/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional; env vars override)")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	global.Logger.Info().
		Str("host", app.Cfg.HTTP.Host).
		Int("port", app.Cfg.HTTP.Port).
		Str("db_driver", app.Cfg.DB.Driver).
		Msg("listening")

	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
