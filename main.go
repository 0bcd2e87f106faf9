package main

import "github.com/ChiefGyk3D/yomama-as-a-service/cmd"

func main() {
	cmd.Execute()
}
