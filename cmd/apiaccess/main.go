package main

import (
	// Register plugins via side-effects
	_ "apiaccess/internal/exporters/links"
	_ "apiaccess/internal/exporters/outbounds"
	_ "apiaccess/internal/sources/file"
	_ "apiaccess/internal/sources/http"
)

func main() {
	Execute()
}
