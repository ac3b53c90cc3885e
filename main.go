package main

import (
	"github.com/wdcs-pruthvithakor/go-serializers-comparison/cmd"
)

func main() {
	cmd.Execute()
}
