package main

import (
	"texasogwells-backend/cmd/rrc-cli/commands"
	"texasogwells-backend/lib/serviceutil"
	"texasogwells-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	commands.ExecuteContext(serviceutil.SignalContext())
}
