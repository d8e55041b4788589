package main

import "github.com/kokomoarts/kokomo-events/internal/cli"

func main() {
	cli.Execute()
}
