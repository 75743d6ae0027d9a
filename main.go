package main

import "sku-mapper/cmd"

func main() {
	cmd.Execute()
}
