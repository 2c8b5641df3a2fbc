package harness

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger sets up the standard logrus logger used by the commands.
func InitLogger(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
