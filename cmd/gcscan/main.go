// cmd/gcscan/main.go
package main

import (
	"gcscan/internal/app"
	"gcscan/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
