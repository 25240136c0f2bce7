package main

import "restodesk/cmd"

func main() {
	cmd.Execute()
}
