package main

import "labkeeper/internal/labkeeper"

func main() {
	labkeeper.Main()
}
