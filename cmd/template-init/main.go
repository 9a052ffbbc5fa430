package main

import (
	"os"

	"github.com/genai-stack/template-init/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
