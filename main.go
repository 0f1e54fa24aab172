// @title        Okiteru API
// @version      1.0.0
// @description  Relatórios do dia anterior e diretório de usuários do Okiteru.
// @BasePath     /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"fmt"
	"os"

	"okiteru-api/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
