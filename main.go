//go:generate swagger generate model --accept-definitions-only -f api/swagger.yml -t ./generated
package main

import "github.com/jake-scott/switchbot-unlock/cmd"

func main() {
	cmd.Execute()
}
