package main

import "github.com/Alijeyrad/hospital_backend/cmd"

func main() {
	cmd.Execute()
}
