package initialize

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"medora-backend/global"
)

func init() {
	// basic zerolog setup: console writer to stdout
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}
