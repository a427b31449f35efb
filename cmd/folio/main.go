package main

import "github.com/khizarrao/folio/cmd/folio/cmd"

func main() {
	cmd.Execute()
}
